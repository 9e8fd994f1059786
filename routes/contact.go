package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

func (h *Handler) CreateContactMessage(ctx iris.Context) {
	var input ContactInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	message, err := h.Store.CreateContactMessage(models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(message)
}

func (h *Handler) AdminListContactMessages(ctx iris.Context) {
	messages, err := h.Store.GetContactMessages()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(messages)
}

func (h *Handler) AdminMarkContactMessageRead(ctx iris.Context) {
	id := ctx.Params().Get("id")

	message, err := h.Store.MarkContactMessageRead(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Contact message", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(message)
}
