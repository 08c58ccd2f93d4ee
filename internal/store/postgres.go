package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

// PoolOptions configures the Postgres connection pool.
type PoolOptions struct {
	URL             string
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// OpenPostgres creates a pool and verifies the connection.
func OpenPostgres(ctx context.Context, opts PoolOptions) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	if opts.MaxConns > 0 {
		poolConfig.MaxConns = int32(opts.MaxConns)
	}
	if opts.MinConns > 0 {
		poolConfig.MinConns = int32(opts.MinConns)
	}
	if opts.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = opts.MaxConnLifetime
	}
	if opts.MaxConnIdleTime > 0 {
		poolConfig.MaxConnIdleTime = opts.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// PostgresPrimary stores the catalog in the products table.
// Rows come back in insertion order.
type PostgresPrimary struct {
	pool *pgxpool.Pool
}

var (
	_ Primary        = (*PostgresPrimary)(nil)
	_ AtomicReplacer = (*PostgresPrimary)(nil)
)

// NewPostgresPrimary wraps an open pool. The schema must be migrated.
func NewPostgresPrimary(pool *pgxpool.Pool) *PostgresPrimary {
	return &PostgresPrimary{pool: pool}
}

func (s *PostgresPrimary) Name() string { return "postgres" }

const listProductsSQL = `
	SELECT id::text, name, unit, company, category
	FROM products
	ORDER BY seq`

func (s *PostgresPrimary) List(ctx context.Context) ([]core.Product, error) {
	rows, err := s.pool.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (core.Product, error) {
		var p core.Product
		err := row.Scan(&p.ID, &p.Name, &p.Unit, &p.Company, &p.Category)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

const insertProductSQL = `
	INSERT INTO products (id, name, unit, company, category)
	VALUES ($1, $2, $3, $4, $5)`

func (s *PostgresPrimary) Insert(ctx context.Context, p core.Product) (string, error) {
	id := uuid.New()
	if _, err := s.pool.Exec(ctx, insertProductSQL, id, p.Name, p.Unit, p.Company, p.Category); err != nil {
		return "", fmt.Errorf("insert product %q: %w", p.Name, err)
	}
	return id.String(), nil
}

func (s *PostgresPrimary) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", id, err)
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, uid); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

var productColumns = []string{"id", "name", "unit", "company", "category"}

// ReplaceAll swaps the catalog in one transaction using COPY.
// Readers see either the old or the new catalog, never a mix.
func (s *PostgresPrimary) ReplaceAll(ctx context.Context, products []core.Product) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"products"}, productColumns,
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{uuid.New(), p.Name, p.Unit, p.Company, p.Category}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy products: %w", err)
	}
	if int(n) != len(products) {
		return fmt.Errorf("copy products: wrote %d of %d rows", n, len(products))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
