package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/logging"
	"github.com/JonMunkholm/pharmacatalog/internal/store"
)

// app carries the configuration loaded before every subcommand runs.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Manage the pharmacy product catalog",
		Long: `catalogctl imports product spreadsheets into the catalog, browses
the stored catalog and manages the primary database schema.

Storage is configured with the same environment variables as the server
(PRIMARY_BACKEND, DATABASE_URL, MONGO_URI, LOCAL_STORAGE_DIR, ...).`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	root.AddCommand(
		newImportCmd(a),
		newQueryCmd(a),
		newClassifyCmd(),
		newMigrateCmd(a),
		newStatusCmd(a),
	)
	return root
}

// init loads .env and the configuration, and sends logs to stderr so
// command output stays pipeable.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format))
	a.cfg = cfg
	return nil
}

// service opens storage and wraps it in a catalog service.
// The returned function closes the storage connections.
func (a *app) service(ctx context.Context) (*core.Service, func(), error) {
	gw, closeStore, err := store.Open(ctx, a.cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := core.NewService(gw, core.ServiceOptions{
		MaxConcurrentUploads: a.cfg.Upload.MaxConcurrent,
		MaxUploadWait:        a.cfg.Upload.MaxWaitTime,
		UploadTimeout:        a.cfg.Upload.Timeout,
	})
	return svc, closeStore, nil
}
