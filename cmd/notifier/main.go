package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stagedoor/internal/config"
	"stagedoor/internal/logger"
	"stagedoor/internal/notifier"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Each NATS streaming client needs its own ID.
	cfg.NATS.ClientID = "stagedoor-notifier"

	svc, err := notifier.NewService(cfg)
	if err != nil {
		logger.Fatal("Failed to create notifier service", "error", err)
	}

	if err := svc.Start(); err != nil {
		logger.Fatal("Failed to start notifier", "error", err)
	}

	logger.Get().Info("Notifier service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info("Shutting down notifier service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := svc.Shutdown(ctx); err != nil {
		logger.Get().Error("Error during shutdown", "error", err)
	}

	logger.Get().Info("Notifier service stopped")
}
