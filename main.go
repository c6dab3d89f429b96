package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-item-api/config"
	_ "go-item-api/docs" // Registers the OpenAPI document served under /swagger
	"go-item-api/internal/app"
	"go-item-api/internal/logger"
	"go-item-api/internal/server"
	"go-item-api/internal/telemetry"

	"go.uber.org/zap"
)

// @title           Item API
// @version         1.0
// @description     Item validation and echo endpoints with optional Google sign-in.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		zl.Fatal("failed to initialize telemetry", zap.Error(err))
	}

	application, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatal("failed to build application", zap.Error(err))
	}

	var opts []server.Option
	if providers.TracingEnabled {
		opts = append(opts, server.WithTracing(cfg.Telemetry.ServiceName))
	}
	srv := server.NewServer(application, opts...)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			zl.Error("server error", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		zl.Error("telemetry shutdown failed", zap.Error(err))
	}

	zl.Info("application gracefully stopped")
}
