// Package logger builds the widget service's structured loggers on top of
// log/slog.
//
// It provides context extractors that inject request-scoped attributes
// (request IDs) into every log record, a colored console handler for
// development, and an optional Sentry fan-out for error tracking. When no
// Sentry DSN is configured the logger degrades gracefully to stdout only,
// so the same code path works in development and production.
package logger
