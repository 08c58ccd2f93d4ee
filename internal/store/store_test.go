package store

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/pharmacatalog/internal/config"
	"github.com/JonMunkholm/pharmacatalog/internal/core"
)

func TestSeedProducts(t *testing.T) {
	seed := SeedProducts()
	require.Len(t, seed, 75)

	for _, p := range seed {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Company)
		assert.True(t, core.IsCategory(p.Category), "%s has unknown category %q", p.Name, p.Category)
		assert.Empty(t, p.ID)
	}

	seed[0].Name = "CHANGED"
	assert.Equal(t, "ENSURE CH-RF", SeedProducts()[0].Name)
}

func TestParseReplacePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ReplacePolicy
		wantErr bool
	}{
		{"", ReplaceBestEffort, false},
		{"best-effort", ReplaceBestEffort, false},
		{"ATOMIC", ReplaceAtomic, false},
		{" atomic ", ReplaceAtomic, false},
		{" BestEffort ", ReplaceBestEffort, false},
		{"eventual", ReplaceBestEffort, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReplacePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "atomic", ReplaceAtomic.String())
	assert.Equal(t, "best-effort", ReplaceBestEffort.String())
}

func TestPrimaryError(t *testing.T) {
	cause := errors.New("timeout")
	err := &PrimaryError{Backend: "postgres", Op: "insert", Done: 4, Total: 10, Err: cause}

	assert.ErrorIs(t, err, ErrPrimaryUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "primary store unavailable: postgres insert (4/10 done): timeout", err.Error())

	short := &PrimaryError{Backend: "mongo", Op: "list", Err: cause}
	assert.Equal(t, "primary store unavailable: mongo list: timeout", short.Error())
}

func TestPgx5URL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/catalog", pgx5URL("postgres://u:p@db:5432/catalog"))
	assert.Equal(t, "pgx5://db/catalog", pgx5URL("postgresql://db/catalog"))
	assert.Equal(t, "pgx5://db/catalog", pgx5URL("pgx5://db/catalog"))
}

func TestMigrationsEmbedded(t *testing.T) {
	ups, err := fs.Glob(migrationFS, "migrations/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrationFS, "migrations/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}

func TestOpen_LocalOnly(t *testing.T) {
	cfg := &config.Config{
		Primary: config.PrimaryConfig{Backend: config.BackendNone, ReplacePolicy: "best-effort", ConnectTimeout: time.Second},
		Local:   config.LocalConfig{Enabled: true, Dir: t.TempDir()},
	}

	gw, closeFn, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.False(t, gw.IsPrimaryReady())
	assert.Equal(t, core.SourceLocal, gw.WriteTarget())
}

func TestOpen_BackendNameIsCaseInsensitive(t *testing.T) {
	cfg := &config.Config{
		Primary: config.PrimaryConfig{Backend: " None ", ReplacePolicy: " BestEffort ", ConnectTimeout: time.Second},
		Local:   config.LocalConfig{Enabled: true, Dir: t.TempDir()},
	}

	gw, closeFn, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, core.SourceLocal, gw.WriteTarget())

	// A mixed-case postgres name reaches the postgres branch and fails on the
	// malformed URL, not as an unknown backend.
	_, _, err = openPrimary(context.Background(), &config.PrimaryConfig{
		Backend:     "Postgres",
		DatabaseURL: "::not a url::",
	})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "unknown primary backend")
}

func TestOpen_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		primary config.PrimaryConfig
	}{
		{"unknown backend", config.PrimaryConfig{Backend: "redis", ReplacePolicy: "best-effort", ConnectTimeout: time.Second}},
		{"unknown policy", config.PrimaryConfig{Backend: config.BackendNone, ReplacePolicy: "eventually", ConnectTimeout: time.Second}},
		{"atomic without postgres", config.PrimaryConfig{Backend: config.BackendNone, ReplacePolicy: "atomic", ConnectTimeout: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Open(context.Background(), &config.Config{Primary: tt.primary})
			assert.Error(t, err)
		})
	}
}
