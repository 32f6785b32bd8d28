package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"insighthub/config"
	_ "insighthub/docs" // Swagger docs
	"insighthub/internal/app"
	"insighthub/pkg/log"
)

// @title       InsightHub API
// @description Personal knowledge base: a category, subcategory and entry catalog mirrored to a GitHub file.
// @version     1
// @host        localhost:8080
// @schemes     http
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
// @description                "Bearer <token>" with the token stored in the sync settings.
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

	logger.Info(ctx, "Starting InsightHub...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Storage, use cases
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize app: ", err)
		return
	}
	defer a.Close()

	// 4. HTTP Server
	httpServer, err := a.HTTPServer()
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
