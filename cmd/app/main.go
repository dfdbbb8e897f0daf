package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"PortfolioBackend/internal/config"
	"PortfolioBackend/pkg/google"
	"PortfolioBackend/pkg/log"
	"PortfolioBackend/pkg/notion"
	"PortfolioBackend/pkg/redis"
	"PortfolioBackend/pkg/smtp"
	websocketPkg "PortfolioBackend/pkg/websocket"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Fatalf("Error loading .env file: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	googleProvider := google.New()
	redisServer := redis.New(logger)
	smtpMailer := smtp.New()
	notionClient := notion.New(logger)
	hub := websocketPkg.NewHub(logger)

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithGoogleProvider(googleProvider),
		config.WithRedisServer(redisServer),
		config.WithSMTPMailer(smtpMailer),
		config.WithNotionClient(notionClient),
		config.WithHub(hub),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithBcryptUtils(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	server.Shutdown()
}
