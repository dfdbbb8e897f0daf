package contentHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	contentService "PortfolioBackend/internal/api/content/service"
	"PortfolioBackend/internal/middleware"
	websocketPkg "PortfolioBackend/pkg/websocket"
)

type ContentHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	contentService contentService.IContentService
	hub            websocketPkg.IHub
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs contentService.IContentService,
	hub websocketPkg.IHub,
) *ContentHandler {
	return &ContentHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		contentService: cs,
		hub:            hub,
	}
}

func (h *ContentHandler) Start(srv fiber.Router) {
	content := srv.Group("/content")
	content.Get("/", h.GetSnapshot)
	content.Use("/feed", h.UpgradeFeed)
	content.Get("/feed", websocket.New(h.Feed))

	blogs := srv.Group("/blogs")

	// Public endpoints (no auth required)
	blogs.Get("", h.SearchBlogs)
	blogs.Get("/:slug", h.GetBlogBySlug)
	blogs.Post("/:id/like", h.LikeBlog)
	blogs.Post("/:id/unlike", h.UnlikeBlog)
	blogs.Get("/:id/comments", h.GetVisibleComments)
	blogs.Post("/:id/comments", h.AddComment)

	// Editing (requires auth)
	blogs.Post("/", h.middleware.NewTokenMiddleware, h.CreateBlog)
	blogs.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateBlog)
	blogs.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteBlog)

	skills := srv.Group("/skills")
	skills.Post("/", h.middleware.NewTokenMiddleware, h.CreateSkill)
	skills.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateSkill)
	skills.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteSkill)

	projects := srv.Group("/projects")
	projects.Post("/", h.middleware.NewTokenMiddleware, h.CreateProject)
	projects.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateProject)
	projects.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteProject)

	testimonials := srv.Group("/testimonials")
	testimonials.Post("/", h.middleware.NewTokenMiddleware, h.CreateTestimonial)
	testimonials.Put("/:id", h.middleware.NewTokenMiddleware, h.UpdateTestimonial)
	testimonials.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTestimonial)

	comments := srv.Group("/comments")
	comments.Patch("/:id/visibility", h.middleware.NewTokenMiddleware, h.ToggleCommentVisibility)
	comments.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteComment)
}
