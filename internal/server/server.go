// Package server exposes the calculation engine and translations as the
// JSON API consumed by the embedded widget.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tecblu/savings-widget/internal/config"
	"github.com/tecblu/savings-widget/pkg/i18n"
)

const (
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
)

// Server wires configuration, logging, and the translation bundle into the
// widget's HTTP API.
type Server struct {
	cfg    config.Config
	log    *slog.Logger
	bundle *i18n.Bundle
	router chi.Router
}

// New creates a fully routed Server.
func New(cfg config.Config, log *slog.Logger, bundle *i18n.Bundle) *Server {
	s := &Server{
		cfg:    cfg,
		log:    log,
		bundle: bundle,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(log))
	r.Use(Recover(log))
	r.Use(CORS(cfg.AllowedOrigins...))

	r.Get("/healthz", s.handleLiveness)
	r.Get("/readyz", s.handleReadiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calculate", s.handleCalculate)
		r.Get("/locale", s.handleLocale)
		r.Get("/translations/{lang}", s.handleTranslations)
	})

	s.router = r
	return s
}

// Handler returns the routed HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a serve
// error, then shuts down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Listen first so the logged address is the bound one.
	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		s.log.Error("shutdown failed", slog.Any("error", err))
		return err
	}

	s.log.Info("shutdown completed")
	return nil
}
