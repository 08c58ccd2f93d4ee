package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
)

// Open builds a Gateway from configuration: it connects the configured
// primary backend, applies migrations when asked and opens the local slot.
// The returned close function releases the primary connection.
func Open(ctx context.Context, cfg *config.Config) (*Gateway, func(), error) {
	policy, err := ParseReplacePolicy(cfg.Primary.ReplacePolicy)
	if err != nil {
		return nil, nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Primary.ConnectTimeout)
	defer cancel()

	primary, closePrimary, err := openPrimary(connectCtx, &cfg.Primary)
	if err != nil {
		return nil, nil, err
	}

	var local *LocalStore
	if cfg.Local.Enabled {
		local, err = NewLocalStore(cfg.Local.Dir)
		if err != nil {
			closePrimary()
			return nil, nil, err
		}
	}

	gw, err := NewGateway(Config{
		Primary:     primary,
		Local:       local,
		Policy:      policy,
		Concurrency: cfg.Primary.Concurrency,
	})
	if err != nil {
		closePrimary()
		return nil, nil, err
	}

	slog.Info("catalog storage ready",
		"primary", cfg.Primary.Backend,
		"policy", policy,
		"local", cfg.Local.Enabled,
		"write_target", gw.WriteTarget(),
	)
	return gw, closePrimary, nil
}

func openPrimary(ctx context.Context, cfg *config.PrimaryConfig) (Primary, func(), error) {
	switch config.CanonicalBackend(cfg.Backend) {
	case config.BackendPostgres:
		if cfg.MigrateOnStart {
			if err := MigrateUp(cfg.DatabaseURL); err != nil {
				return nil, nil, err
			}
		}
		pool, err := OpenPostgres(ctx, PoolOptions{
			URL:             cfg.DatabaseURL,
			MaxConns:        cfg.MaxConns,
			MinConns:        cfg.MinConns,
			MaxConnLifetime: cfg.MaxConnLifetime,
			MaxConnIdleTime: cfg.MaxConnIdleTime,
		})
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresPrimary(pool), pool.Close, nil

	case config.BackendMongo:
		client, err := ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				slog.Warn("disconnect MongoDB", "error", err)
			}
		}
		return NewMongoPrimary(client.Database(cfg.MongoDatabase)), closeFn, nil

	case config.BackendNone:
		return nil, func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown primary backend %q", cfg.Backend)
	}
}
