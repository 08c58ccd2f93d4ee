package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/logging"
	"github.com/JonMunkholm/pharmacatalog/internal/metrics"
	"github.com/JonMunkholm/pharmacatalog/internal/store"
	"github.com/JonMunkholm/pharmacatalog/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"primary_backend", cfg.Primary.Backend,
		"local_storage", cfg.Local.Enabled,
		"upload_max_concurrent", cfg.Upload.MaxConcurrent,
		"rate_limit_enabled", cfg.Rate.Enabled,
	)
	slog.Debug("effective configuration", "config", cfg.String())

	if !cfg.Security.HasAdminSecret() {
		slog.Warn("no admin password configured; uploads are disabled")
	}

	if cfg.Metrics.Enabled {
		metrics.Register(prometheus.DefaultRegisterer)
	}

	ctx := context.Background()
	gateway, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open catalog storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	service := core.NewService(gateway, core.ServiceOptions{
		MaxConcurrentUploads: cfg.Upload.MaxConcurrent,
		MaxUploadWait:        cfg.Upload.MaxWaitTime,
		UploadTimeout:        cfg.Upload.Timeout,
	})

	snap := service.Catalog(ctx)
	slog.Info("catalog loaded", "source", snap.Source, "products", len(snap.Products))

	server := web.NewServer(service, cfg)

	// Graceful shutdown
	done := make(chan struct{})
	go func() {
		defer close(done)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		// Wait for active uploads so a catalog replace is not cut short
		if active := service.ActiveUploads(); active > 0 {
			slog.Info("waiting for uploads to complete", "active", active)
			if err := service.WaitForUploads(shutdownCtx); err != nil {
				slog.Warn("uploads did not complete in time", "error", err)
			} else {
				slog.Info("all uploads completed")
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		closeStore()
		os.Exit(1)
	}
	<-done
	slog.Info("server stopped")
}
