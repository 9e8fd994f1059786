package routes

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/kataras/iris/v12"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

const featuredCacheKey = "cache:properties:featured"

// ListProperties is the filtered/sorted/paginated listing. Each query
// parameter is optional; all active filters apply together.
func (h *Handler) ListProperties(ctx iris.Context) {
	filters := storage.PropertyFilters{
		Location:  ctx.URLParam("location"),
		Type:      ctx.URLParam("type"),
		Bedrooms:  ctx.URLParam("bedrooms"),
		Bathrooms: ctx.URLParam("bathrooms"),
		Sort:      ctx.URLParam("sort"),
		Page:      ctx.URLParamIntDefault("page", 1),
		Limit:     ctx.URLParamIntDefault("limit", h.PageSize),
	}
	filters.MinPrice = intParam(ctx, "minPrice")
	filters.MaxPrice = intParam(ctx, "maxPrice")
	filters.MinArea = intParam(ctx, "minArea")
	filters.MaxArea = intParam(ctx, "maxArea")
	if amenities := ctx.URLParam("amenities"); amenities != "" {
		for _, a := range strings.Split(amenities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				filters.Amenities = append(filters.Amenities, a)
			}
		}
	}

	properties, total, err := h.Store.GetProperties(filters)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"properties": properties, "total": total})
}

func (h *Handler) GetFeaturedProperties(ctx iris.Context) {
	var cached []models.Property
	if h.Cache.Get(ctx.Request().Context(), featuredCacheKey, &cached) {
		ctx.JSON(cached)
		return
	}

	featured, err := h.Store.GetFeaturedProperties()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	h.Cache.Set(ctx.Request().Context(), featuredCacheKey, featured, time.Minute)
	ctx.JSON(featured)
}

// GetProperty serves the detail view. The fetch itself bumps the view
// count (popularity tracking), so this endpoint is deliberately not
// idempotent; list and search reads never touch the counter.
func (h *Handler) GetProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	property, err := h.Store.GetProperty(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Property", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(property)
}

func (h *Handler) GetSimilarProperties(ctx iris.Context) {
	id := ctx.Params().Get("id")

	similar, err := h.Store.GetSimilarProperties(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Property", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(similar)
}

type CreatePropertyInput struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Description  string   `json:"description"`
	Price        int      `json:"price" validate:"required,gt=0"`
	PropertyType string   `json:"propertyType" validate:"required,oneof=apartment villa penthouse townhouse condo house"`
	Status       string   `json:"status"`
	Location     string   `json:"location" validate:"required"`
	Address      string   `json:"address"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Area         int      `json:"area" validate:"required,gt=0"`
	Bedrooms     int      `json:"bedrooms" validate:"min=0"`
	Bathrooms    int      `json:"bathrooms" validate:"min=0"`
	FloorNumber  *int     `json:"floorNumber"`
	YearBuilt    *int     `json:"yearBuilt"`
	Amenities    []string `json:"amenities"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	AgentID      *string  `json:"agentId"`
	IsFeatured   bool     `json:"isFeatured"`
}

func (h *Handler) CreateProperty(ctx iris.Context) {
	var input CreatePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := h.Store.CreateProperty(models.Property{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		PropertyType: input.PropertyType,
		Status:       input.Status,
		Location:     input.Location,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		ZipCode:      input.ZipCode,
		Area:         input.Area,
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		FloorNumber:  input.FloorNumber,
		YearBuilt:    input.YearBuilt,
		Amenities:    input.Amenities,
		Features:     input.Features,
		Images:       input.Images,
		AgentID:      input.AgentID,
		IsFeatured:   input.IsFeatured,
	})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	h.Cache.Delete(ctx.Request().Context(), featuredCacheKey)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(property)
}

func (h *Handler) UpdateProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input models.PropertyUpdate
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := h.Store.UpdateProperty(id, input)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Property", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	h.Cache.Delete(ctx.Request().Context(), featuredCacheKey)
	ctx.JSON(property)
}

func (h *Handler) DeleteProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	if err := h.Store.DeleteProperty(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Property", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	h.Cache.Delete(ctx.Request().Context(), featuredCacheKey)
	ctx.StatusCode(iris.StatusNoContent)
}

// AdminListProperties backs the dashboard table: one large page,
// newest first, no public filters.
func (h *Handler) AdminListProperties(ctx iris.Context) {
	properties, _, err := h.Store.GetProperties(storage.PropertyFilters{Limit: 100})
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(properties)
}

func intParam(ctx iris.Context, name string) *int {
	raw := ctx.URLParam(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
