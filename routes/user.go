package routes

import (
	"errors"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

func (h *Handler) GetUser(ctx iris.Context) {
	id := ctx.Params().Get("id")

	user, err := h.Store.GetUser(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("User", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(user)
}

type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	FullName  string `json:"fullName" validate:"required,max=255"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
	Role      string `json:"role" validate:"omitempty,oneof=user agent admin"`
}

// CreateUser provisions a user record on first login, bridging the
// identity provider into the entity store.
func (h *Handler) CreateUser(ctx iris.Context) {
	var input CreateUserInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := h.Store.CreateUser(models.User{
		Email:     input.Email,
		FullName:  input.FullName,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
		Role:      input.Role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.CreateError(iris.StatusConflict, "Email already registered", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(user)
}

// UpdateUser lets a user edit their own profile; admins can edit
// anyone. Role changes are admin-only.
func (h *Handler) UpdateUser(ctx iris.Context) {
	id := ctx.Params().Get("id")

	claims := jwt.Get(ctx).(*utils.AccessToken)
	if claims.ID != id && claims.Role != models.RoleAdmin {
		utils.CreateError(iris.StatusForbidden, "Not allowed", ctx)
		return
	}

	var input models.UserUpdate
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}
	if input.Role != nil && claims.Role != models.RoleAdmin {
		utils.CreateError(iris.StatusForbidden, "Not allowed", ctx)
		return
	}

	user, err := h.Store.UpdateUser(id, input)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("User", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(user)
}
