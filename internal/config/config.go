// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
}

// UpstreamConfig holds settings for the remote network service.
type UpstreamConfig struct {
	BaseURL string        `env:"UPSTREAM_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`

	// Headers are sent with every upstream request, e.g. "X-Api-Key:secret,X-Tenant:ops"
	Headers map[string]string `env:"UPSTREAM_HEADERS" envSeparator:"," envKeyValSeparator:":"`

	// BreakerFailureThreshold is the number of consecutive failures that opens the breaker
	BreakerFailureThreshold uint32        `env:"UPSTREAM_BREAKER_FAILURES" envDefault:"5"`
	BreakerTimeout          time.Duration `env:"UPSTREAM_BREAKER_TIMEOUT" envDefault:"30s"`
}

// SearchConfig holds route search and lookup settings.
type SearchConfig struct {
	// OperatorTimezone is the IANA zone whose calendar day a travel date refers to
	OperatorTimezone string `env:"OPERATOR_TIMEZONE" envDefault:"UTC"`

	// LocationLookupSize bounds the location list used to resolve ids to labels
	LocationLookupSize int `env:"LOCATION_LOOKUP_SIZE" envDefault:"100"`

	// VerifyRouteShape drops upstream routes that break the one-flight route shape
	VerifyRouteShape bool `env:"VERIFY_ROUTE_SHAPE" envDefault:"false"`

	// SessionIdleTTL evicts operator search sessions that have been idle this long
	SessionIdleTTL time.Duration `env:"SEARCH_SESSION_IDLE_TTL" envDefault:"30m"`
}

// RateLimitConfig holds per-client request limits for the console API.
type RateLimitConfig struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"120"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute http(s) URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if cfg.Upstream.BreakerFailureThreshold == 0 {
		return fmt.Errorf("UPSTREAM_BREAKER_FAILURES must be at least 1")
	}
	if cfg.Upstream.BreakerTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_BREAKER_TIMEOUT must be positive")
	}

	// Upstream calls must finish before the server gives up writing the response
	if cfg.Upstream.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("UPSTREAM_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Upstream.Timeout, cfg.Server.WriteTimeout)
	}

	if _, err := timeutil.GetLocation(cfg.Search.OperatorTimezone); err != nil {
		return fmt.Errorf("OPERATOR_TIMEZONE must be a valid IANA zone, got %q", cfg.Search.OperatorTimezone)
	}
	if cfg.Search.LocationLookupSize < 1 {
		return fmt.Errorf("LOCATION_LOOKUP_SIZE must be at least 1, got %d", cfg.Search.LocationLookupSize)
	}
	if cfg.Search.SessionIdleTTL <= 0 {
		return fmt.Errorf("SEARCH_SESSION_IDLE_TTL must be positive")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Requests < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", cfg.RateLimit.Requests)
		}
		if cfg.RateLimit.Window <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// OperatorLocation returns the operator time zone. Load has already validated it.
func (c *Config) OperatorLocation() *time.Location {
	return timeutil.MustGetLocation(c.Search.OperatorTimezone)
}
