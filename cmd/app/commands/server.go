package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/gamestats/internal/app"
	"github.com/allisson/gamestats/internal/config"
)

// shutdownTimeout bounds graceful shutdown of the servers and the container.
const shutdownTimeout = 30 * time.Second

// RunServer starts the API server with graceful shutdown support.
// Seeds DATA_INIT_FILE when set, then starts the API server, the metrics server when
// METRICS_ENABLED and the match generator when MATCH_GENERATOR_ENABLED. Blocks until
// receiving SIGINT/SIGTERM or encountering a fatal error.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server", slog.String("version", version))

	defer closeContainer(container, logger)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if cfg.DataInitFile != "" {
		seedUseCase, err := container.SeedUseCase()
		if err != nil {
			return fmt.Errorf("failed to initialize data seeding: %w", err)
		}
		if _, err := seed(ctx, seedUseCase, logger, cfg.DataInitFile); err != nil {
			return err
		}
	}

	server, err := container.HTTPServer(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	runErr := make(chan error, 3)
	go func() {
		if err := server.Start(ctx); err != nil {
			runErr <- fmt.Errorf("api server error: %w", err)
		}
	}()

	if cfg.MetricsEnabled {
		metricsServer, err := container.MetricsServer()
		if err != nil {
			return fmt.Errorf("failed to initialize metrics server: %w", err)
		}
		go func() {
			if err := metricsServer.Start(ctx); err != nil {
				runErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	if cfg.MatchGeneratorEnabled {
		generator, err := container.MatchGenerator()
		if err != nil {
			return fmt.Errorf("failed to initialize match generator: %w", err)
		}
		go func() {
			if err := generator.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				runErr <- fmt.Errorf("match generator error: %w", err)
			}
		}()
	}

	var failure error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case failure = <-runErr:
		logger.Error("component failed, initiating shutdown", slog.Any("error", failure))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// The container shuts down both servers before closing Redis and the database.
	if err := container.Shutdown(shutdownCtx); err != nil {
		return errors.Join(failure, err)
	}
	return failure
}
