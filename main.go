package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"retaildesk/advisor"
	"retaildesk/config"
	"retaildesk/database"
	"retaildesk/handlers"
	"retaildesk/logger"
	"retaildesk/routes"

	"go.uber.org/zap"
)

func main() {
	// Load .env file
	envErr := config.LoadEnvFile()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	if envErr != nil {
		zl.Info("no .env file loaded, using environment variables", zap.Error(envErr))
	}

	// Set up the AI advisor; without a key it serves fallback text only
	var gen advisor.Generator
	if cfg.Gemini.APIKey != "" {
		gemini, err := advisor.NewGeminiGenerator(context.Background(), cfg.Gemini.APIKey)
		if err != nil {
			zl.Error("Gemini client unavailable, AI features disabled", zap.Error(err))
		} else {
			defer gemini.Close()
			gen = gemini
		}
	} else {
		zl.Warn("GEMINI_API_KEY not set, AI features will return fallback text")
	}

	adv := advisor.New(advisor.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}, gen, zl)

	app := routes.NewApp(handlers.New(database.Seeded(), adv, zl), zl)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		zl.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			zl.Error("shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	zl.Info("serving", zap.String("addr", cfg.Server.Addr), zap.String("model", cfg.Gemini.Model))
	if err := app.Listen(cfg.Server.Addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
