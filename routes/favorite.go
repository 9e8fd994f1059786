package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

func (h *Handler) GetUserFavorites(ctx iris.Context) {
	userID := ctx.Params().Get("id")

	properties, err := h.Store.GetUserFavorites(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(properties)
}

type FavoriteInput struct {
	UserID     string `json:"userId" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
}

// AddFavorite is idempotent: posting the same pair twice returns the
// existing favorite, never a duplicate.
func (h *Handler) AddFavorite(ctx iris.Context) {
	var input FavoriteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	favorite, err := h.Store.AddFavorite(input.UserID, input.PropertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(favorite)
}

func (h *Handler) RemoveFavorite(ctx iris.Context) {
	var input FavoriteInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if err := h.Store.RemoveFavorite(input.UserID, input.PropertyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Favorite", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusNoContent)
}
