// Command api serves the reconciliation engine over HTTP for the upload UI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partslane/pricecheck/internal/api"
	"github.com/partslane/pricecheck/internal/domain/catalog"
	"github.com/partslane/pricecheck/internal/infrastructure/config"
	"github.com/partslane/pricecheck/internal/observability"
)

func main() {
	cfg := config.LoadOrEnv()
	logger := observability.NewLogger(cfg.Observability.Logging)

	cat, err := catalog.Load(cfg.Catalog.Path, logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "path", cfg.Catalog.Path, "entries", cat.Len(), "brands", cat.BrandCount())

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, cat, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
