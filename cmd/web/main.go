package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"abcretail/internal/api"
	"abcretail/internal/commons"
	"abcretail/internal/infrastructure/logger"
	"abcretail/internal/server"
	"abcretail/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	apiClient, err := api.New(cfg.Functions.BaseURL, cfg.Functions.Timeout, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating functions client", zap.Error(err))
	}
	zapLogger.Info("functions backend configured", zap.String("baseUrl", cfg.Functions.BaseURL))

	ctrl := web.NewController(apiClient, cfg.Upload.MaxBytes, zapLogger)
	router := server.NewRouter(ctrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
