package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/rankfit-labs/rankfit/internal/api"
	"github.com/rankfit-labs/rankfit/internal/config"
	"github.com/rankfit-labs/rankfit/internal/utils/logger"
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	srv := api.NewServer(&cfg.ServerEnvConfig, cfg.Bins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("address", cfg.Address).
		Int("port", cfg.Port).
		Int("default_bins", cfg.Bins).
		Msg("starting rankfit analysis server")

	if err := srv.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
