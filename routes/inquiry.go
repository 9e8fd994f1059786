package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

type CreateInquiryInput struct {
	UserID     *string `json:"userId"`
	PropertyID *string `json:"propertyId"`
	AgentID    *string `json:"agentId"`
	Name       string  `json:"name" validate:"required,max=255"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone"`
	Message    string  `json:"message" validate:"required"`
}

// CreateInquiry is the public submission path; every inquiry starts
// out pending.
func (h *Handler) CreateInquiry(ctx iris.Context) {
	var input CreateInquiryInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	inquiry, err := h.Store.CreateInquiry(models.Inquiry{
		UserID:     input.UserID,
		PropertyID: input.PropertyID,
		AgentID:    input.AgentID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(inquiry)
}

func (h *Handler) GetUserInquiries(ctx iris.Context) {
	userID := ctx.Params().Get("id")

	inquiries, err := h.Store.GetUserInquiries(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(inquiries)
}

type InquiryStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending responded"`
}

func (h *Handler) UpdateInquiryStatus(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input InquiryStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	inquiry, err := h.Store.UpdateInquiryStatus(id, input.Status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Inquiry", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(inquiry)
}

func (h *Handler) AdminListInquiries(ctx iris.Context) {
	inquiries, err := h.Store.GetInquiries()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(inquiries)
}
