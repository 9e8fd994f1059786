package routes

import (
	"errors"

	"github.com/kataras/iris/v12"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

func (h *Handler) ListAgents(ctx iris.Context) {
	agents, err := h.Store.GetAgents()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(agents)
}

func (h *Handler) GetAgent(ctx iris.Context) {
	id := ctx.Params().Get("id")

	agent, err := h.Store.GetAgent(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Agent", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(agent)
}

func (h *Handler) GetAgentProperties(ctx iris.Context) {
	id := ctx.Params().Get("id")

	properties, err := h.Store.GetAgentProperties(id)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(properties)
}

func (h *Handler) GetAgentInquiries(ctx iris.Context) {
	id := ctx.Params().Get("id")

	inquiries, err := h.Store.GetAgentInquiries(id)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(inquiries)
}

type CreateAgentInput struct {
	UserID          *string `json:"userId"`
	Bio             string  `json:"bio"`
	Specialization  string  `json:"specialization"`
	YearsExperience int     `json:"yearsExperience" validate:"min=0"`
	LicenseNumber   string  `json:"licenseNumber"`
	Location        string  `json:"location"`
	Rating          string  `json:"rating"`
	IsActive        *bool   `json:"isActive"`
}

func (h *Handler) CreateAgent(ctx iris.Context) {
	var input CreateAgentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	agent, err := h.Store.CreateAgent(models.Agent{
		UserID:          input.UserID,
		Bio:             input.Bio,
		Specialization:  input.Specialization,
		YearsExperience: input.YearsExperience,
		LicenseNumber:   input.LicenseNumber,
		Location:        input.Location,
		Rating:          input.Rating,
		IsActive:        isActive,
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(agent)
}
