package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/studioforma/contact-api/internal/config"
	"github.com/studioforma/contact-api/internal/logging"
	"github.com/studioforma/contact-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.GetLogger().Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	logging.Configure(&logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	})
	logger := logging.GetLogger()
	defer logger.Close()

	// Fail fast on misconfiguration instead of failing the first send
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger.Info("Starting contact API in %s mode", cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg)
	if err := srv.Run(ctx); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
