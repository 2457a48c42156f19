// Package experiments plays batches of independent games between automated
// players and stores their records as CSV.
package experiments

import (
	"context"
	"fmt"

	"blocky/config"
	"blocky/engine"
	"blocky/experiments/metrics"
	"blocky/game"
	"blocky/player"
	"blocky/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Result holds the records of every game of an experiment, in game order.
type Result struct {
	Players []metrics.PlayerConfig
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

type outcome struct {
	game  metrics.GameMetric
	moves []metrics.MoveMetric
}

// Run plays cfg.Games games, at most cfg.Workers at a time. Game i uses seed
// cfg.Seed+i for its board, goals and moves, so a run is reproducible.
func Run(ctx context.Context, cfg *config.Config) (Result, error) {
	log.Info().Msgf("starting experiment with %d games on %d workers...", cfg.Games, cfg.Workers)

	outcomes := make([]outcome, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := cfg.Seed + uint64(i)
			gameMetric, moveMetrics := runGame(cfg, seed)
			outcomes[i] = outcome{game: gameMetric, moves: moveMetrics}
			log.Info().Msgf("completed game %d of %d with winner: player %d", i+1, cfg.Games, gameMetric.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("failed to run games: %w", err)
	}
	log.Info().Msg("completed experiment")

	result := Result{Players: playerConfigs(cfg)}
	for _, o := range outcomes {
		result.Games = append(result.Games, metrics.GameRecord{GameMetric: o.game})
		for _, mm := range o.moves {
			result.Moves = append(result.Moves, metrics.MoveRecord{Game: o.game.ID, MoveMetric: mm})
		}
	}
	return result, nil
}

// runGame plays a single game. The game owns its board and generator, so
// games never share state.
func runGame(cfg *config.Config, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	palette := cfg.GamePalette()
	rng := game.NewRand(seed)
	board := game.NewBoard(cfg.MaxDepth, cfg.BoardSize, palette, rng)
	goals := game.GenerateGoals(cfg.Players(), palette, rng)
	rules := game.NewRules(palette, rng)
	players := player.CreatePlayers(cfg.RandomPlayers, cfg.SmartPlayers, goals, rules, searcher.WithMetrics())

	e := engine.NewLocalEngine(board, rules, players, cfg.Turns).WithSeed(seed)
	_, gameMetric, moveMetrics := e.Run()
	return gameMetric, moveMetrics
}

// playerConfigs describes the line-up. Goals differ per game, so only the
// strategy and difficulty are recorded.
func playerConfigs(cfg *config.Config) []metrics.PlayerConfig {
	configs := []metrics.PlayerConfig{}
	for i := 0; i < cfg.RandomPlayers; i++ {
		configs = append(configs, metrics.PlayerConfig{ID: i, Strategy: searcher.RandomStrategy.String()})
	}
	for i, difficulty := range cfg.SmartPlayers {
		configs = append(configs, metrics.PlayerConfig{ID: cfg.RandomPlayers + i, Strategy: searcher.GreedyStrategy.String(), Difficulty: difficulty})
	}
	return configs
}

// Store writes the experiment's records under cfg.OutputDir and returns the
// directory they were written to.
func Store(cfg *config.Config, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WritePlayerConfigs(result.Players)
	if err != nil {
		return "", fmt.Errorf("failed to store player configs: %w", err)
	}
	log.Info().Msg("stored player configs")

	err = writer.WriteGameRecords(result.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(result.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
