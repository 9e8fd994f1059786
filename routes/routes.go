package routes

import (
	"os"
	"strconv"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"luxe-estates-server/storage"
	"luxe-estates-server/utils"
)

// Handler holds the collaborators every route needs: the entity store,
// the optional response cache and the blob store client. A single
// instance is constructed at startup and injected here, so there is no
// package-level state.
type Handler struct {
	Store    storage.Store
	Cache    *storage.Cache
	Blob     *storage.Cloudinary
	PageSize int
}

func NewHandler(store storage.Store, cache *storage.Cache, blob *storage.Cloudinary) *Handler {
	pageSize := storage.DefaultPageSize
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageSize = n
		}
	}
	return &Handler{Store: store, Cache: cache, Blob: blob, PageSize: pageSize}
}

// Register wires every route onto the app. Mutating property, blog and
// admin operations sit behind the access-token verifier plus a role
// middleware; the core itself never checks roles.
func Register(app *iris.Application, h *Handler) {
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	authRequired := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", h.Register)
		auth.Post("/login", h.Login)
		auth.Get("/me", authRequired, h.Me)
	}

	properties := app.Party("/api/properties")
	{
		// Featured before {id} so the literal segment wins.
		properties.Get("/featured", h.GetFeaturedProperties)
		properties.Get("/", h.ListProperties)
		properties.Get("/{id}", h.GetProperty)
		properties.Get("/{id}/similar", h.GetSimilarProperties)
		properties.Post("/", authRequired, utils.AgentOnlyMiddleware, h.CreateProperty)
		properties.Patch("/{id}", authRequired, utils.AgentOnlyMiddleware, h.UpdateProperty)
		properties.Delete("/{id}", authRequired, utils.AgentOnlyMiddleware, h.DeleteProperty)
	}

	agents := app.Party("/api/agents")
	{
		agents.Get("/", h.ListAgents)
		agents.Get("/{id}", h.GetAgent)
		agents.Get("/{id}/properties", h.GetAgentProperties)
		agents.Get("/{id}/inquiries", authRequired, utils.AgentOnlyMiddleware, h.GetAgentInquiries)
		agents.Post("/", authRequired, utils.AdminOnlyMiddleware, h.CreateAgent)
	}

	users := app.Party("/api/users")
	{
		users.Get("/{id}", h.GetUser)
		users.Post("/", h.CreateUser)
		users.Patch("/{id}", authRequired, h.UpdateUser)
		users.Get("/{id}/favorites", h.GetUserFavorites)
		users.Get("/{id}/inquiries", h.GetUserInquiries)
	}

	favorites := app.Party("/api/favorites")
	{
		favorites.Post("/", h.AddFavorite)
		favorites.Delete("/", h.RemoveFavorite)
	}

	inquiries := app.Party("/api/inquiries")
	{
		inquiries.Post("/", h.CreateInquiry)
		inquiries.Patch("/{id}/status", authRequired, utils.AgentOnlyMiddleware, h.UpdateInquiryStatus)
	}

	blog := app.Party("/api/blog")
	{
		blog.Get("/", h.ListBlogPosts)
		blog.Get("/preview", h.BlogPreview)
		blog.Get("/{slug}", h.GetBlogPost)
		blog.Post("/", authRequired, utils.AdminOnlyMiddleware, h.CreateBlogPost)
	}

	app.Post("/api/contact", h.CreateContactMessage)

	uploads := app.Party("/api/uploads", authRequired, utils.AgentOnlyMiddleware)
	{
		uploads.Post("/images", h.UploadImage)
		uploads.Delete("/images", h.DeleteImage)
	}

	admin := app.Party("/api/admin", authRequired, utils.AdminOnlyMiddleware)
	{
		admin.Get("/properties", h.AdminListProperties)
		admin.Get("/inquiries", h.AdminListInquiries)
		admin.Get("/contact-messages", h.AdminListContactMessages)
		admin.Patch("/contact-messages/{id}/read", h.AdminMarkContactMessageRead)
	}
}
