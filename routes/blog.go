package routes

import (
	"errors"
	"time"

	"github.com/kataras/iris/v12"

	"luxe-estates-server/models"
	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

const blogPreviewCacheKey = "cache:blog:preview"

// ListBlogPosts returns published posts, optionally narrowed to a
// category slug (e.g. "market-trends").
func (h *Handler) ListBlogPosts(ctx iris.Context) {
	category := ctx.URLParam("category")

	posts, err := h.Store.GetBlogPosts(category)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(posts)
}

// BlogPreview serves the homepage teaser: the first three published posts.
func (h *Handler) BlogPreview(ctx iris.Context) {
	var cached []models.BlogPostWithAuthor
	if h.Cache.Get(ctx.Request().Context(), blogPreviewCacheKey, &cached) {
		ctx.JSON(cached)
		return
	}

	posts, err := h.Store.GetBlogPosts("")
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if len(posts) > 3 {
		posts = posts[:3]
	}
	h.Cache.Set(ctx.Request().Context(), blogPreviewCacheKey, posts, time.Minute)
	ctx.JSON(posts)
}

func (h *Handler) GetBlogPost(ctx iris.Context) {
	slug := ctx.Params().Get("slug")

	post, err := h.Store.GetBlogPost(slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateNotFound("Blog post", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(post)
}

type CreateBlogPostInput struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Slug          string   `json:"slug" validate:"required,max=255"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content" validate:"required"`
	FeaturedImage string   `json:"featuredImage"`
	Category      string   `json:"category" validate:"required"`
	Tags          []string `json:"tags"`
	AuthorID      *string  `json:"authorId"`
	IsPublished   bool     `json:"isPublished"`
}

func (h *Handler) CreateBlogPost(ctx iris.Context) {
	var input CreateBlogPostInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	post := models.BlogPost{
		Title:         input.Title,
		Slug:          input.Slug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		Category:      input.Category,
		Tags:          input.Tags,
		AuthorID:      input.AuthorID,
		IsPublished:   input.IsPublished,
	}
	if input.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	created, err := h.Store.CreateBlogPost(post)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.CreateError(iris.StatusConflict, "Slug already in use", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	h.Cache.Delete(ctx.Request().Context(), blogPreviewCacheKey)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(created)
}
