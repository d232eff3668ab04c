package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"skycast/internal/config"
)

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		log.Fatal(err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
