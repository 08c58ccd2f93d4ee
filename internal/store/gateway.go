// Package store persists the catalog across three tiers: a primary
// database, a local JSON slot and the built-in seed catalog.
//
// Writes go to the primary store when one is configured, otherwise to the
// local slot. Reads try the local slot first, then the primary store, then
// the seed catalog, so a read always returns something.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
	"github.com/JonMunkholm/pharmacatalog/internal/metrics"
)

// DefaultConcurrency bounds in-flight primary calls per write wave.
const DefaultConcurrency = 16

// Config wires the gateway. Any tier may be nil.
type Config struct {
	Primary     Primary
	Local       *LocalStore
	Seed        []core.Product // nil selects SeedProducts()
	Policy      ReplacePolicy
	Concurrency int
}

// Gateway implements core.CatalogStore over the configured tiers.
type Gateway struct {
	primary     Primary
	local       *LocalStore
	seed        []core.Product
	policy      ReplacePolicy
	concurrency int
}

var _ core.CatalogStore = (*Gateway)(nil)

// NewGateway validates cfg and returns a gateway.
func NewGateway(cfg Config) (*Gateway, error) {
	if cfg.Policy == ReplaceAtomic {
		if cfg.Primary == nil {
			return nil, errors.New("atomic replace policy requires a primary store")
		}
		if _, ok := cfg.Primary.(AtomicReplacer); !ok {
			return nil, fmt.Errorf("primary store %s does not support atomic replace", cfg.Primary.Name())
		}
	}

	seed := cfg.Seed
	if seed == nil {
		seed = SeedProducts()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Gateway{
		primary:     cfg.Primary,
		local:       cfg.Local,
		seed:        seed,
		policy:      cfg.Policy,
		concurrency: concurrency,
	}, nil
}

// IsPrimaryReady reports whether a primary store is configured.
func (g *Gateway) IsPrimaryReady() bool {
	return g.primary != nil
}

// WriteTarget returns the tier the next write goes to.
// SourceSeed means no tier can accept writes.
func (g *Gateway) WriteTarget() core.Source {
	switch {
	case g.primary != nil:
		return core.SourcePrimary
	case g.local != nil:
		return core.SourceLocal
	default:
		return core.SourceSeed
	}
}

// Write replaces the catalog in the write target. A primary failure is
// returned as a *PrimaryError and is not retried against the local slot.
func (g *Gateway) Write(ctx context.Context, products []core.Product) (core.Source, error) {
	target := g.WriteTarget()

	var err error
	switch target {
	case core.SourcePrimary:
		if g.policy == ReplaceAtomic {
			err = g.replaceAtomic(ctx, products)
		} else {
			err = g.replaceBestEffort(ctx, products)
		}
	case core.SourceLocal:
		if saveErr := g.local.Save(products); saveErr != nil {
			err = fmt.Errorf("%w: %w", ErrStorageUnavailable, saveErr)
		}
	default:
		err = ErrStorageUnavailable
	}

	metrics.ObserveUpload(target.String(), err)
	return target, err
}

func (g *Gateway) replaceAtomic(ctx context.Context, products []core.Product) error {
	start := time.Now()
	err := g.primary.(AtomicReplacer).ReplaceAll(ctx, products)
	metrics.ObservePrimary(g.primary.Name(), "replace", start, err)
	if err != nil {
		return &PrimaryError{Backend: g.primary.Name(), Op: "replace", Err: err}
	}
	return nil
}

// replaceBestEffort deletes every existing record, then inserts the batch.
// Each wave runs to completion before the next starts; the first error of
// a wave is reported after all of its calls have returned.
func (g *Gateway) replaceBestEffort(ctx context.Context, products []core.Product) error {
	name := g.primary.Name()

	start := time.Now()
	existing, err := g.primary.List(ctx)
	metrics.ObservePrimary(name, "list", start, err)
	if err != nil {
		return &PrimaryError{Backend: name, Op: "list", Err: err}
	}

	ids := make([]string, len(existing))
	for i, p := range existing {
		ids[i] = p.ID
	}
	if done, err := wave(g.concurrency, ids, func(id string) error {
		start := time.Now()
		err := g.primary.Delete(ctx, id)
		metrics.ObservePrimary(name, "delete", start, err)
		return err
	}); err != nil {
		return &PrimaryError{Backend: name, Op: "delete", Done: done, Total: len(ids), Err: err}
	}

	if done, err := wave(g.concurrency, products, func(p core.Product) error {
		p.ID = ""
		start := time.Now()
		_, err := g.primary.Insert(ctx, p)
		metrics.ObservePrimary(name, "insert", start, err)
		return err
	}); err != nil {
		return &PrimaryError{Backend: name, Op: "insert", Done: done, Total: len(products), Err: err}
	}

	slog.Debug("primary catalog replaced",
		"backend", name,
		"deleted", len(ids),
		"inserted", len(products),
	)
	return nil
}

// wave runs fn over items at most limit at a time and returns how many
// calls succeeded along with the first error.
func wave[T any](limit int, items []T, fn func(T) error) (int, error) {
	var eg errgroup.Group
	eg.SetLimit(limit)
	var done atomic.Int64

	for _, it := range items {
		eg.Go(func() error {
			if err := fn(it); err != nil {
				return err
			}
			done.Add(1)
			return nil
		})
	}

	err := eg.Wait()
	return int(done.Load()), err
}

// Read returns the catalog from the first tier that has one. It never
// fails: tier errors are logged and the next tier is tried.
func (g *Gateway) Read(ctx context.Context) core.Snapshot {
	if g.local != nil {
		products, err := g.local.Load()
		switch {
		case err != nil:
			slog.Warn("local catalog unreadable, trying next source", "source", core.SourceLocal, "error", err)
			metrics.ObserveFallback(core.SourceLocal.String())
		case len(products) > 0:
			return g.served(core.SourceLocal, products)
		}
	}

	if g.primary != nil {
		start := time.Now()
		products, err := g.primary.List(ctx)
		metrics.ObservePrimary(g.primary.Name(), "list", start, err)
		switch {
		case err != nil:
			slog.Warn("primary catalog unavailable, falling back to sample data",
				"source", core.SourcePrimary,
				"backend", g.primary.Name(),
				"error", err,
			)
			metrics.ObserveFallback(core.SourcePrimary.String())
		case len(products) > 0:
			return g.served(core.SourcePrimary, products)
		}
	}

	seed := make([]core.Product, len(g.seed))
	copy(seed, g.seed)
	return g.served(core.SourceSeed, seed)
}

func (g *Gateway) served(src core.Source, products []core.Product) core.Snapshot {
	metrics.ObserveRead(src.String(), len(products))
	return core.Snapshot{Products: products, Source: src}
}
