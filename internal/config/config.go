// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog backends.
const (
	BackendStatic   = "static"
	BackendPostgres = "postgres"
	BackendDataAPI  = "dataapi"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisURL        string
	DataAPIURL      string
	DataAPIKey      string
	BearerToken     string
	CatalogBackend  string
	MigrationsDir   string
	CatalogCacheTTL time.Duration
	RateLimitPerMin int
	LogLevel        slog.Level
}

// Load reads an optional .env file, then the process environment.
// Malformed values are errors; missing values take defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := getDuration("CATALOG_CACHE_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	limit, err := getInt("RATE_LIMIT_PER_MIN", 60)
	if err != nil {
		return nil, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		DataAPIURL:      os.Getenv("DATA_API_URL"),
		DataAPIKey:      os.Getenv("DATA_API_KEY"),
		BearerToken:     os.Getenv("BEARER_TOKEN"),
		CatalogBackend:  strings.ToLower(getEnv("CATALOG_BACKEND", BackendStatic)),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", "migrations"),
		CatalogCacheTTL: ttl,
		RateLimitPerMin: limit,
		LogLevel:        level,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings and backend-specific requirements.
func (c *Config) Validate() error {
	var errs []error

	if c.BearerToken == "" {
		errs = append(errs, errors.New("BEARER_TOKEN is required"))
	}
	if c.RateLimitPerMin <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MIN must be positive"))
	}

	switch c.CatalogBackend {
	case BackendStatic:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres backend"))
		}
	case BackendDataAPI:
		if c.DataAPIURL == "" || c.DataAPIKey == "" {
			errs = append(errs, errors.New("DATA_API_URL and DATA_API_KEY are required for the dataapi backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("CATALOG_BACKEND %q is not one of static, postgres, dataapi", c.CatalogBackend))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
