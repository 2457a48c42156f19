package engine

import (
	"fmt"
	"time"

	"blocky/experiments/metrics"
	"blocky/game"
	"blocky/player"
	"blocky/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LocalEngine owns the authoritative board of one game. Players take turns in
// ID order; a turn consists of one move by every player.
type LocalEngine struct {
	ID      uuid.UUID
	Seed    uint64
	Board   *game.Block
	Rules   *game.Rules
	Players []player.Player
	Turns   int
}

func NewLocalEngine(board *game.Block, rules *game.Rules, players []player.Player, turns int) *LocalEngine {
	if len(players) == 0 {
		panic("need at least one player")
	}
	if turns < 0 {
		panic(fmt.Sprintf("number of turns must be non-negative, got %d", turns))
	}
	for i, p := range players {
		if p.ID() != i {
			panic(fmt.Sprintf("player at index %d has ID %d", i, p.ID()))
		}
	}
	return &LocalEngine{
		ID:      uuid.New(),
		Board:   board,
		Rules:   rules,
		Players: players,
		Turns:   turns,
	}
}

// WithSeed records the seed the board and rules were created from.
func (e *LocalEngine) WithSeed(seed uint64) *LocalEngine {
	e.Seed = seed
	return e
}

// Run executes the entire game loop for the configured number of turns.
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	logger := log.With().Str("game", e.ID.String()).Logger()
	logger.Info().Msgf("starting game with %d players for %d turns", len(e.Players), e.Turns)

	gameMetric := metrics.GameMetric{
		ID:        e.ID.String(),
		Seed:      e.Seed,
		MaxDepth:  e.Board.MaxDepth,
		StartTime: time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	step := 0
	for turn := 1; turn <= e.Turns; turn++ {
		for _, p := range e.Players {
			step++
			move, searchMetric := p.FindMove(e.Board)
			if move.IsPass() {
				gameMetric.Passes++
			} else if !e.Rules.Apply(move) {
				// Only possible if the player searched a stale board
				logger.Warn().Int("player", p.ID()).Msgf("rejected move %s", move)
				move = game.Pass(e.Board)
				gameMetric.Passes++
			}

			score := p.Goal().Score(e.Board)
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Player:       p.ID(),
				Action:       move.Action.String(),
				Score:        score,
				SearchMetric: searchMetric,
			})
			logger.Debug().Int("turn", turn).Int("player", p.ID()).Int("score", score).Msgf("played %s", move)
		}
	}

	scores := Scores(e.Board, e.Players)
	winner := Winner(scores)

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Scores = scores
	gameMetric.Winner = winner

	logger.Info().Ints("scores", scores).Msgf("game over after %d moves, winner: player %d", step, winner)
	return winner, gameMetric, moveMetrics
}

// Scores returns each player's score on board, indexed by player ID.
func Scores(board *game.Block, players []player.Player) []int {
	scores := make([]int, len(players))
	for _, p := range players {
		scores[p.ID()] = p.Goal().Score(board)
	}
	return scores
}

// Winner returns the player with the highest score. Ties go to the lowest ID.
func Winner(scores []int) int {
	if len(scores) == 0 {
		panic("no scores")
	}
	return utils.ArgMax(scores)
}
