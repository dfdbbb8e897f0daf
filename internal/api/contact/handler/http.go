package contactHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	contactService "PortfolioBackend/internal/api/contact/service"
	"PortfolioBackend/internal/middleware"
)

type ContactHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	contactService contactService.IContactService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs contactService.IContactService,
) *ContactHandler {
	return &ContactHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		contactService: cs,
	}
}

func (h *ContactHandler) Start(srv fiber.Router) {
	contact := srv.Group("/contact")
	contact.Post("/", h.CreateMessage)
	contact.Get("/", h.middleware.NewTokenMiddleware, h.ListMessages)
}
