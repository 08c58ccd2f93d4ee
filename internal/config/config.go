// Package config provides centralized configuration management for the catalog.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"strings"
	"time"
)

// Primary store backends.
const (
	BackendNone     = "none"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Primary replace policies.
const (
	PolicyBestEffort = "best-effort"
	PolicyAtomic     = "atomic"
)

// CanonicalBackend lower-cases and trims a PRIMARY_BACKEND value.
// Empty means none.
func CanonicalBackend(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BackendNone
	}
	return s
}

// CanonicalReplacePolicy maps the accepted spellings of a replace policy
// to its canonical name. ok is false for unknown values.
func CanonicalReplacePolicy(s string) (policy string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", PolicyBestEffort, "besteffort":
		return PolicyBestEffort, true
	case PolicyAtomic:
		return PolicyAtomic, true
	default:
		return "", false
	}
}

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Primary  PrimaryConfig
	Local    LocalConfig
	Upload   UploadConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 0, uploads can be slow)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"0s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for non-upload requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// PrimaryConfig selects and configures the durable shared catalog store.
type PrimaryConfig struct {
	// Backend is none, postgres or mongo (default: none)
	Backend string `env:"PRIMARY_BACKEND" default:"none"`

	// DatabaseURL is the PostgreSQL connection string, required for postgres.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	// MaxConns is the maximum number of connections in the pool (default: 20)
	MaxConns int `env:"DB_MAX_CONNS" default:"20"`

	// MinConns is the minimum number of connections to keep open (default: 2)
	MinConns int `env:"DB_MIN_CONNS" default:"2"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`

	// MigrateOnStart applies pending schema migrations at startup (default: true)
	MigrateOnStart bool `env:"DB_MIGRATE_ON_START" default:"true"`

	// MongoURI is the MongoDB connection string, required for mongo
	MongoURI string `env:"MONGO_URI" envAlt:"MONGODB_URI"`

	// MongoDatabase is the database holding the products collection (default: anand_pharma)
	MongoDatabase string `env:"MONGO_DATABASE" default:"anand_pharma"`

	// ReplacePolicy is best-effort or atomic; atomic needs postgres (default: best-effort)
	ReplacePolicy string `env:"PRIMARY_REPLACE_POLICY" default:"best-effort"`

	// Concurrency bounds in-flight deletes or inserts during a replace (default: 16)
	Concurrency int `env:"PRIMARY_CONCURRENCY" default:"16"`

	// ConnectTimeout bounds the initial connection attempt (default: 10s)
	ConnectTimeout time.Duration `env:"PRIMARY_CONNECT_TIMEOUT" default:"10s"`
}

// LocalConfig holds the local catalog slot settings.
type LocalConfig struct {
	// Enabled turns the local slot on (default: true)
	Enabled bool `env:"LOCAL_STORAGE_ENABLED" default:"true"`

	// Dir is where the slot file lives (default: ./data)
	Dir string `env:"LOCAL_STORAGE_DIR" default:"./data"`
}

// UploadConfig holds spreadsheet upload settings.
type UploadConfig struct {
	// MaxFileSize is the maximum allowed file size in bytes (default: 20MB)
	MaxFileSize int64 `env:"UPLOAD_MAX_FILE_SIZE" default:"20971520"`

	// MaxConcurrent is the maximum number of parallel uploads (default: 1)
	MaxConcurrent int `env:"UPLOAD_MAX_CONCURRENT" default:"1"`

	// MaxWaitTime is how long to wait for an upload slot (default: 30s)
	MaxWaitTime time.Duration `env:"UPLOAD_MAX_WAIT_TIME" default:"30s"`

	// Timeout is the maximum duration for a single upload (default: 10m)
	Timeout time.Duration `env:"UPLOAD_TIMEOUT" default:"10m"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// UploadLimit is requests per minute for upload endpoints (default: 10)
	UploadLimit int `env:"RATE_LIMIT_UPLOAD" default:"10"`

	// LoginLimit is operator login attempts per minute (default: 10)
	LoginLimit int `env:"RATE_LIMIT_LOGIN" default:"10"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// AdminPassword is the shared operator secret
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// AdminPasswordHash is a bcrypt hash of the operator secret; wins over AdminPassword
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	// Enabled serves collectors at Path (default: true)
	Enabled bool `env:"METRICS_ENABLED" default:"true"`

	// Path is the scrape endpoint (default: /metrics)
	Path string `env:"METRICS_PATH" default:"/metrics"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// HasAdminSecret reports whether an operator secret is configured.
func (c *SecurityConfig) HasAdminSecret() bool {
	return c.AdminPassword != "" || c.AdminPasswordHash != ""
}
