package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"horizon-cli/internal/app/catalog"
	"horizon-cli/internal/cli"
	"horizon-cli/internal/config"
	"horizon-cli/internal/horizon"
)

func main() {
	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		logger = logger.Level(lvl)
	} else {
		logger.Warn().Str("level", cfg.Log.Level).Msg("unknown log level, keeping info")
	}

	client := horizon.New(cfg.Horizon.EndpointFormat, cfg.Horizon.SubsitesURL, logger)
	svc := catalog.NewService(client, cfg.Horizon.DefaultSubsite, logger)

	root := cli.NewRootCommand(cli.Dependencies{
		Catalog:        svc,
		DefaultSubsite: cfg.Horizon.DefaultSubsite,
		Defaults:       cfg.Defaults,
	})
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
