package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tecblu/savings-widget/internal/config"
	"github.com/tecblu/savings-widget/internal/server"
	"github.com/tecblu/savings-widget/pkg/i18n"
	"github.com/tecblu/savings-widget/pkg/logger"
	"github.com/tecblu/savings-widget/translations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithSentry(cfg.SentryDSN, cfg.Environment),
		logger.WithExtractors(logger.RequestIDExtractor(server.RequestIDKey{})),
	}
	if cfg.IsDev() {
		opts = append(opts, logger.WithDevMode())
	}
	log := logger.New(opts...).With("app", "savings-widget")

	bundle, err := i18n.New(i18n.WithJSONDir(translations.FS))
	if err != nil {
		log.Error("loading translations", "error", err)
		os.Exit(1)
	}

	if err := server.New(cfg, log, bundle).Run(context.Background()); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
