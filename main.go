package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"blocky/config"
	"blocky/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "YAML config file, settings can also come from BLOCKY_* variables")
	name := pflag.StringP("name", "n", "batch", "experiment name, used as the output subfolder")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, _ := cfg.Level() // checked by Load
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *name); err != nil {
		log.Error().Err(err).Msg("experiment failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, name string) error {
	result, err := experiments.Run(ctx, cfg)
	if err != nil {
		return err
	}
	dir, err := experiments.Store(cfg, name, result)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msgf("stored %d games", len(result.Games))
	return nil
}
