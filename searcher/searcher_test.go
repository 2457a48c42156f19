package searcher

import (
	"testing"

	"blocky/game"

	"github.com/stretchr/testify/require"
)

var (
	blue = game.PacificPoint
	red  = game.RealRed
)

func newRules(seed uint64) *game.Rules {
	return game.NewRules(game.DefaultPalette(), game.NewRand(seed))
}

func contains(board, target *game.Block) bool {
	found := false
	board.Walk(func(b *game.Block) bool {
		found = b == target
		return !found
	})
	return found
}

func uniformBoard(c game.Colour) *game.Block {
	leaves := [4]*game.Block{}
	for i := range leaves {
		leaves[i] = game.NewLeaf(game.Position{}, 0, c, 1, 1)
	}
	return game.NewInternal(game.Position{}, 750, 0, 1, leaves)
}

func TestRandom(t *testing.T) {
	t.Run("returns a legal move on the authoritative board", func(t *testing.T) {
		for seed := uint64(0); seed < 30; seed++ {
			rules := newRules(seed)
			board := game.NewBoard(3, 750, rules.Palette, game.NewRand(seed+100))
			goal := game.NewGoal(game.BlobKind, red)
			before := board.Hash()

			move, _, ok := NewRandom(rules).FindMove(board, goal)

			require.True(t, ok)
			require.False(t, move.IsPass())
			require.Equal(t, before, board.Hash(), "Searching should not mutate the board")
			require.True(t, contains(board, move.Target), "Target should be a block of the board")
			require.True(t, rules.CanApply(move), "Move %s should be legal", move)
			if move.Action == game.PaintAction {
				require.Equal(t, red, move.Colour, "Paint should use the goal colour")
			}
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		board := game.NewLeaf(game.Position{}, 750, red, 0, 0)
		goal := game.NewGoal(game.PerimeterKind, red)

		move, metric, ok := NewRandom(newRules(1), WithMaxAttempts(50), WithMetrics()).FindMove(board, goal)

		require.False(t, ok)
		require.True(t, move.IsPass())
		require.Equal(t, 50, metric.Attempts)
		require.Equal(t, 0, metric.Successes)
	})

	t.Run("collecting metrics", func(t *testing.T) {
		board := game.NewBoard(3, 750, game.DefaultPalette(), game.NewRand(9))
		goal := game.NewGoal(game.PerimeterKind, blue)

		_, metric, ok := NewRandom(newRules(2), WithMetrics()).FindMove(board, goal)

		require.True(t, ok)
		require.Equal(t, "random", metric.Strategy)
		require.Equal(t, 1, metric.Successes)
		require.GreaterOrEqual(t, metric.Attempts, 1)
		require.Equal(t, goal.Score(board), metric.InitialScore)
	})
}

func TestGreedy(t *testing.T) {
	t.Run("budget 0 passes", func(t *testing.T) {
		board := game.NewBoard(3, 750, game.DefaultPalette(), game.NewRand(4))
		goal := game.NewGoal(game.BlobKind, red)

		move, metric, ok := NewGreedy(newRules(1), 0, WithMetrics()).FindMove(board, goal)

		require.False(t, ok)
		require.True(t, move.IsPass())
		require.Equal(t, 0, metric.Attempts)
	})

	t.Run("taking the only improving move", func(t *testing.T) {
		rules := newRules(3)
		board := game.NewLeaf(game.Position{}, 750, blue, 0, 0)
		goal := game.NewGoal(game.PerimeterKind, red)

		move, metric, ok := NewGreedy(rules, 5, WithMetrics()).FindMove(board, goal)

		require.True(t, ok)
		require.Equal(t, game.PaintAction, move.Action)
		require.Equal(t, red, move.Colour)
		require.Same(t, board, move.Target)
		require.Equal(t, 5, metric.Successes, "Only successful trials use the budget")
		require.Equal(t, 6, metric.BestScore)
		require.Equal(t, 0, goal.Score(board), "Searching should not mutate the board")

		require.True(t, game.ApplyMove(rules, move))
		require.Equal(t, 6, goal.Score(board))
	})

	t.Run("passing when nothing beats the current score", func(t *testing.T) {
		board := uniformBoard(red)
		goal := game.NewGoal(game.BlobKind, red)

		move, metric, ok := NewGreedy(newRules(5), 20, WithMetrics()).FindMove(board, goal)

		require.False(t, ok)
		require.True(t, move.IsPass())
		require.Equal(t, 20, metric.Successes)
		require.Equal(t, 4, metric.BestScore)
	})

	t.Run("passing when no move is legal", func(t *testing.T) {
		board := game.NewLeaf(game.Position{}, 750, red, 0, 0)
		goal := game.NewGoal(game.BlobKind, red)

		move, metric, ok := NewGreedy(newRules(5), 3, WithMaxAttempts(100), WithMetrics()).FindMove(board, goal)

		require.False(t, ok)
		require.True(t, move.IsPass())
		require.Equal(t, 100, metric.Attempts)
	})

	t.Run("improving on generated boards", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			rules := newRules(seed)
			board := game.NewBoard(3, 750, rules.Palette, game.NewRand(seed+50))
			goal := game.NewGoal(game.PerimeterKind, red)
			before := board.Hash()

			move, metric, ok := NewGreedy(rules, 30, WithMetrics()).FindMove(board, goal)

			require.Equal(t, before, board.Hash(), "Searching should not mutate the board")
			if !ok {
				require.True(t, move.IsPass())
				require.LessOrEqual(t, metric.BestScore, metric.InitialScore)
				continue
			}
			require.Greater(t, metric.BestScore, metric.InitialScore)
			require.True(t, contains(board, move.Target), "Target should be a block of the board")
			require.True(t, rules.CanApply(move))
		}
	})

	t.Run("committing the move that was scored", func(t *testing.T) {
		for seed := uint64(0); seed < 300; seed++ {
			rules := newRules(seed)
			board := game.NewBoard(4, 16, rules.Palette, game.NewRand(seed+1000))
			goal := game.NewGoal(game.BlobKind, red)

			move, metric, ok := NewGreedy(rules, 20, WithMetrics()).FindMove(board, goal)
			if !ok || move.Action == game.SmashAction {
				// smash children are random on every application
				continue
			}

			require.True(t, game.ApplyMove(rules, move), "Move %s", move)
			require.Equal(t, metric.BestScore, goal.Score(board), "Seed %d move %s", seed, move)
		}
	})

	t.Run("negative budget panics", func(t *testing.T) {
		require.Panics(t, func() { NewGreedy(newRules(1), -1) })
	})
}

func TestGenerateMove(t *testing.T) {
	board := game.NewLeaf(game.Position{}, 750, blue, 0, 0)
	goal := game.NewGoal(game.PerimeterKind, red)

	move, ok := GenerateMove(GreedyStrategy, newRules(1), board, goal, 3)
	require.True(t, ok)
	require.Equal(t, game.PaintAction, move.Action)

	move, ok = GenerateMove(RandomStrategy, newRules(1), board, goal, 0)
	require.True(t, ok)
	require.Equal(t, game.PaintAction, move.Action)

	require.Panics(t, func() { New(Strategy(7), newRules(1), 1) })
	require.Panics(t, func() { NewRandom(nil) })
}
