// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// MaxBodyBytes caps the size of request bodies.
	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`

	// AutoMigrate applies pending migrations on startup.
	AutoMigrate bool `envconfig:"AUTO_MIGRATE" default:"true"`

	// ShutdownTimeout bounds how long in-flight requests get to finish on SIGTERM.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variable that is missing or empty,
// or any value that fails validation.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	// envconfig accepts a variable that is set but empty.
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return Config{}, errors.New("config.Load: required environment variables not set: DATABASE_URL")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}

// SlogLevel parses LogLevel. An empty level means info.
func (c Config) SlogLevel() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// trimAll trims each entry, ignoring empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
