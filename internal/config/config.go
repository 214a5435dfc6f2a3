// Package config loads the widget service configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the widget service.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"WIDGET_ADDR" envDefault:":8080"`

	// Environment tags logs and Sentry events (production, staging, dev).
	Environment string `env:"WIDGET_ENV" envDefault:"production"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"WIDGET_LOG_LEVEL" envDefault:"info"`

	// SentryDSN enables error reporting when set.
	SentryDSN string `env:"WIDGET_SENTRY_DSN"`

	// AllowedOrigins restricts CORS. The widget embeds cross-origin on the
	// marketing sites, so the default allows all origins.
	AllowedOrigins []string `env:"WIDGET_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// QuotePath overrides the language-specific call-to-action path from
	// the translations when the quote form is mounted elsewhere.
	QuotePath string `env:"WIDGET_QUOTE_PATH"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"WIDGET_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsDev reports whether the service runs in a development environment.
func (c Config) IsDev() bool {
	return c.Environment == "dev" || c.Environment == "development" || c.Environment == "local"
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
