package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taskgen/config"
	"taskgen/internal/httpserver"
	"taskgen/pkg/kvstore"
	"taskgen/pkg/log"
)

// @title       Taskgen API
// @description Rule-based task generation pipeline: classifies free-text activity descriptions, synthesizes task lists and notifies a webhook on completion.
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

	logger.Info(ctx, "Starting Taskgen...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task store
	var store kvstore.Store
	if cfg.Store.Path != "" {
		store, err = kvstore.NewFileStore(cfg.Store.Path)
		if err != nil {
			logger.Error(ctx, "Failed to open task store: ", err)
			return
		}
		logger.Infof(ctx, "Task store: %s", cfg.Store.Path)
	} else {
		store = kvstore.NewMemoryStore()
		logger.Warn(ctx, "No store path configured, tasks will not survive restarts")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Store:               store,
		StoreKey:            cfg.Store.Key,
		ClassifierCacheSize: cfg.Classifier.CacheSize,
		RateLimitPerMin:     cfg.RateLimit.GeneratePerMin,
		WebhookURL:          cfg.Notifier.WebhookURL,
	})
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
