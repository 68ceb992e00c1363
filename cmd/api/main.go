package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github-activity/config"
	_ "github-activity/docs" // Swagger docs
	eventHTTP "github-activity/internal/event/delivery/http"
	"github-activity/internal/event/repository"
	"github-activity/internal/event/usecase"
	"github-activity/internal/httpserver"
	"github-activity/internal/middleware"
	"github-activity/internal/webhook"
	"github-activity/pkg/log"
)

const closeTimeout = 5 * time.Second

// @title       GitHub Activity API
// @description Receives GitHub push and pull request webhooks and serves the most recent activity.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Activity...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Event store
	repo, err := openRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open event store: %v", err)
		return
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			logger.Warnf(closeCtx, "Failed to close event store: %v", err)
		}
	}()

	// 4. Event domain
	eventUC := usecase.New(repo, logger)
	eventHandler := eventHTTP.New(logger, eventUC)

	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	if !security.SignatureRequired() {
		logger.Warn(ctx, "WEBHOOK_SECRET is not set, deliveries are accepted unsigned")
	}
	mw := middleware.New(logger, security)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EventHandler:   eventHandler,
		Middleware:     mw,
		Readiness: func(ctx context.Context) error {
			_, err := repo.ListRecentEvents(ctx, repository.ListRecentEventsOptions{Limit: 1})
			return err
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	go announceWebhookURL(ctx, logger, cfg.Webhook)

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
