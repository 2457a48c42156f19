package player

import (
	"testing"

	"blocky/game"
	"blocky/searcher"

	"github.com/stretchr/testify/require"
)

func TestCreatePlayers(t *testing.T) {
	palette := game.DefaultPalette()
	rules := game.NewRules(palette, game.NewRand(1))

	t.Run("random players first then smart players", func(t *testing.T) {
		goals := game.GenerateGoals(4, palette, game.NewRand(2))

		players := CreatePlayers(1, []int{3, 7, 0}, goals, rules)

		require.Len(t, players, 4)
		for i, p := range players {
			require.Equal(t, i, p.ID())
			require.Equal(t, goals[i], p.Goal())
		}
		require.Equal(t, searcher.RandomStrategy, players[0].Strategy())
		require.Equal(t, searcher.GreedyStrategy, players[1].Strategy())
		require.Equal(t, 3, players[1].Difficulty())
		require.Equal(t, 7, players[2].Difficulty())
		require.Equal(t, 0, players[3].Difficulty())
	})

	t.Run("goal count must match", func(t *testing.T) {
		goals := game.GenerateGoals(2, palette, game.NewRand(2))

		require.Panics(t, func() { CreatePlayers(2, []int{1}, goals, rules) })
	})
}

func TestFindMove(t *testing.T) {
	palette := game.DefaultPalette()

	t.Run("smart player passes without budget", func(t *testing.T) {
		board := game.NewBoard(2, 750, palette, game.NewRand(3))
		p := NewSmartPlayer(0, game.NewGoal(game.BlobKind, game.RealRed), game.NewRules(palette, game.NewRand(4)), 0)

		move, _ := p.FindMove(board)

		require.True(t, move.IsPass())
		require.Same(t, board, move.Target)
		require.True(t, game.ApplyMove(game.NewRules(palette, game.NewRand(1)), move), "A pass always applies")
	})

	t.Run("random player passes when stuck", func(t *testing.T) {
		board := game.NewLeaf(game.Position{}, 750, game.RealRed, 0, 0)
		rules := game.NewRules(palette, game.NewRand(4))
		p := NewRandomPlayer(0, game.NewGoal(game.BlobKind, game.RealRed), rules, searcher.WithMaxAttempts(10))

		move, _ := p.FindMove(board)

		require.True(t, move.IsPass())
		require.Same(t, board, move.Target)
	})

	t.Run("random player moves", func(t *testing.T) {
		board := game.NewBoard(3, 750, palette, game.NewRand(5))
		rules := game.NewRules(palette, game.NewRand(6))
		p := NewRandomPlayer(0, game.NewGoal(game.PerimeterKind, game.OldOlive), rules)

		move, _ := p.FindMove(board)

		require.False(t, move.IsPass())
		require.True(t, game.ApplyMove(rules, move))
		require.NoError(t, board.Validate())
	})
}
