package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/lmittmann/tint"
)

type config struct {
	out        io.Writer
	level      slog.Level
	dev        bool
	sentryDSN  string
	sentryEnv  string
	extractors []ContextExtractor
}

// Option configures the logger factory.
type Option func(*config)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithDevMode switches to a colored, human-readable console handler.
func WithDevMode() Option {
	return func(c *config) {
		c.dev = true
	}
}

// WithOutput redirects log output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

// WithSentry enables the Sentry fan-out. An empty DSN leaves the logger on
// stdout only.
func WithSentry(dsn, environment string) Option {
	return func(c *config) {
		c.sentryDSN = dsn
		c.sentryEnv = environment
	}
}

// WithExtractors adds context extractors applied to every log record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// New creates a logger from the given options. The default is a JSON
// handler on stdout at info level.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		out:   os.Stdout,
		level: slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	if cfg.dev {
		handler = tint.NewHandler(cfg.out, &tint.Options{
			Level:      cfg.level,
			TimeFormat: time.Kitchen,
		})
	} else {
		handler = slog.NewJSONHandler(cfg.out, &slog.HandlerOptions{
			Level: cfg.level,
		})
	}

	if cfg.sentryDSN != "" {
		if sentryHandler, ok := initSentry(cfg, handler); ok {
			handler = newMultiHandler(handler, sentryHandler)
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

// NewNope creates a no-op logger that discards all output. Used as the
// default when logging is not configured, e.g. in tests.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// initSentry initializes the Sentry SDK and returns a handler that forwards
// warnings and errors. Initialization failure degrades to stdout-only
// logging instead of aborting startup.
func initSentry(cfg *config, fallback slog.Handler) (slog.Handler, bool) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.sentryDSN,
		Environment: cfg.sentryEnv,
		EnableLogs:  true,
	}); err != nil {
		slog.New(fallback).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return nil, false
	}

	handler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},                  // errors create Issues
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError}, // logs stored for context
	}.NewSentryHandler(context.Background())

	return handler, true
}
