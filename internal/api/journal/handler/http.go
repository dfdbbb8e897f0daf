package journalHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	journalService "PortfolioBackend/internal/api/journal/service"
	"PortfolioBackend/internal/middleware"
)

type JournalHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	journalService journalService.IJournalService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	js journalService.IJournalService,
) *JournalHandler {
	return &JournalHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		journalService: js,
	}
}

func (h *JournalHandler) Start(srv fiber.Router) {
	journal := srv.Group("/journal", h.middleware.NewTokenMiddleware)
	journal.Post("/", h.CreateEntry)
	journal.Get("/", h.ListEntries)
	journal.Get("/calendar", h.GetCalendarMonth)
	journal.Put("/:id", h.UpdateEntry)
	journal.Delete("/:id", h.DeleteEntry)
}
