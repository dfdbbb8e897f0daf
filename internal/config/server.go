package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioBackend/database/postgres"
	authHandler "PortfolioBackend/internal/api/auth/handler"
	authRepository "PortfolioBackend/internal/api/auth/repository"
	authService "PortfolioBackend/internal/api/auth/service"
	contactHandler "PortfolioBackend/internal/api/contact/handler"
	contactRepository "PortfolioBackend/internal/api/contact/repository"
	contactService "PortfolioBackend/internal/api/contact/service"
	contentHandler "PortfolioBackend/internal/api/content/handler"
	contentRepository "PortfolioBackend/internal/api/content/repository"
	contentService "PortfolioBackend/internal/api/content/service"
	journalHandler "PortfolioBackend/internal/api/journal/handler"
	journalRepository "PortfolioBackend/internal/api/journal/repository"
	journalService "PortfolioBackend/internal/api/journal/service"
	"PortfolioBackend/internal/middleware"
	"PortfolioBackend/pkg/bcrypt"
	"PortfolioBackend/pkg/google"
	"PortfolioBackend/pkg/notion"
	"PortfolioBackend/pkg/redis"
	"PortfolioBackend/pkg/s3"
	"PortfolioBackend/pkg/smtp"
	"PortfolioBackend/pkg/utils"
	websocketPkg "PortfolioBackend/pkg/websocket"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	bcryptUtils    bcrypt.IBcrypt
	handlers       []handler
	googleProvider google.ItfGoogle
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	notionClient   notion.ItfNotion
	hub            websocketPkg.IHub
	s3Client       s3.ItfS3

	contentStore contentService.IContentService
	authServices authService.IAuthService
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithNotionClient(notionClient notion.ItfNotion) ServerOption {
	return func(s *Server) error {
		s.notionClient = notionClient
		return nil
	}
}

func WithHub(hub websocketPkg.IHub) ServerOption {
	return func(s *Server) error {
		s.hub = hub
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	s.authServices = authService.NewAuthService(s.log, authRepo, s.bcryptUtils, s.googleProvider, s.utils)
	authHandlers := authHandler.New(s.log, s.authServices, s.validator, s.middleware, s.googleProvider)

	// Content store
	contentRepo := contentRepository.New(s.db, s.log)
	s.contentStore = contentService.NewContentService(s.log, contentRepo, s.redisServer, s.hub, s.s3Client, s.utils)
	contentHandlers := contentHandler.New(s.log, s.validator, s.middleware, s.contentStore, s.hub)

	// Journal
	journalRepo := journalRepository.New(s.db, s.log)
	journalServices := journalService.NewJournalService(s.log, journalRepo, s.notionClient, s.utils)
	journalHandlers := journalHandler.New(s.log, s.validator, s.middleware, journalServices)

	// Contact inbox
	contactRepo := contactRepository.New(s.db, s.log)
	contactServices := contactService.NewContactService(s.log, contactRepo, s.smtpMailer, s.utils)
	contactHandlers := contactHandler.New(s.log, s.validator, s.middleware, contactServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, contentHandlers, journalHandlers, contactHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	// Seed the admin account before accepting traffic so the login
	// endpoints have someone to authenticate on a fresh database.
	if s.authServices != nil {
		if err := s.authServices.ProvisionAdmin(context.Background()); err != nil {
			s.log.Errorf("Failed to provision admin account: %v", err)
		}
	}

	// Warm the content collections and start the comment feed before
	// accepting traffic. Load never returns an error; a failed read just
	// leaves that collection empty.
	if s.contentStore != nil {
		s.contentStore.Load(context.Background())
		s.contentStore.Run(context.Background())
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		s.Shutdown()
		return err
	}

	return nil
}

func (s *Server) Shutdown() {
	if s.contentStore != nil {
		s.contentStore.Close()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.log.Errorf("Failed to close database: %v", err)
		}
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
