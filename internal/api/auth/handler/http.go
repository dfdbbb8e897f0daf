package authHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	authService "PortfolioBackend/internal/api/auth/service"
	"PortfolioBackend/internal/middleware"
	"PortfolioBackend/pkg/google"
)

type AuthHandler struct {
	log            *logrus.Logger
	authService    authService.IAuthService
	validator      *validator.Validate
	middleware     middleware.Middleware
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.IAuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		authService:    as,
		validator:      validate,
		middleware:     middleware,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")
	auth.Post("/login", h.HandleLogin)
	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)
	auth.Get("/session", h.middleware.NewTokenMiddleware, h.HandleSession)
}
