package routes

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

type UploadImageInput struct {
	Image string `json:"image" validate:"required"` // base64 data URI
}

type DeleteImageInput struct {
	URL string `json:"url" validate:"required,url"`
}

// UploadImage pushes a property image to the blob store and returns
// the hosted URL for the caller to place in the property's images.
func (h *Handler) UploadImage(ctx iris.Context) {
	var input UploadImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	url, err := h.Blob.UploadBase64Image(input.Image, uuid.NewString())
	if err != nil {
		if errors.Is(err, storage.ErrBlobStoreDisabled) {
			utils.CreateError(iris.StatusServiceUnavailable, "Image storage not configured", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"url": url})
}

func (h *Handler) DeleteImage(ctx iris.Context) {
	var input DeleteImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if err := h.Blob.DeleteImageByURL(input.URL); err != nil {
		if errors.Is(err, storage.ErrBlobStoreDisabled) {
			utils.CreateError(iris.StatusServiceUnavailable, "Image storage not configured", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusNoContent)
}
