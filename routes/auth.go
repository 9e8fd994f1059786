package routes

import (
	"errors"
	"strings"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/crypto/bcrypt"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,max=255"`
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Register(ctx iris.Context) {
	var input RegisterInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := h.Store.CreateUser(models.User{
		Email:    strings.ToLower(input.Email),
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     models.RoleUser,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.CreateError(iris.StatusConflict, "Email already registered", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if err := h.Store.SetCredential(user.ID, string(hash)); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	h.issueSession(ctx, user, iris.StatusCreated)
}

func (h *Handler) Login(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user, err := h.Store.GetUserByEmail(strings.ToLower(input.Email))
	if err != nil {
		utils.CreateError(iris.StatusUnauthorized, "Invalid credentials", ctx)
		return
	}
	hash, err := h.Store.GetCredential(user.ID)
	if err != nil {
		utils.CreateError(iris.StatusUnauthorized, "Invalid credentials", ctx)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		utils.CreateError(iris.StatusUnauthorized, "Invalid credentials", ctx)
		return
	}

	h.issueSession(ctx, user, iris.StatusOK)
}

// Me is the session lookup: it resolves the verified token back to the
// stored user record.
func (h *Handler) Me(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	user, err := h.Store.GetUser(claims.ID)
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

func (h *Handler) issueSession(ctx iris.Context, user *models.User, status int) {
	token, err := utils.CreateAccessToken(user.ID, user.Role)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(status)
	ctx.JSON(iris.Map{"user": user, "accessToken": token})
}
