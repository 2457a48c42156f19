package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Run("grid side is 2^max depth", func(t *testing.T) {
		for maxDepth := 0; maxDepth <= 6; maxDepth++ {
			board := NewBoard(maxDepth, 750, DefaultPalette(), NewRand(uint64(maxDepth)))

			grid := Flatten(board)

			require.Len(t, grid, 1<<maxDepth)
			for _, column := range grid {
				require.Len(t, column, 1<<maxDepth)
			}
		}
	})

	t.Run("single leaf board", func(t *testing.T) {
		board := NewLeaf(Position{}, 750, olive, 0, 0)

		require.Equal(t, Grid{{olive}}, Flatten(board))
	})

	t.Run("placing children by quadrant, column first", func(t *testing.T) {
		board := fourLeaves(1, blue, red, olive, yellow)

		grid := Flatten(board)

		require.Equal(t, red, grid[0][0], "Upper left")
		require.Equal(t, blue, grid[1][0], "Upper right")
		require.Equal(t, olive, grid[0][1], "Lower left")
		require.Equal(t, yellow, grid[1][1], "Lower right")
	})

	t.Run("leaf above max depth fills its square", func(t *testing.T) {
		board := NewLeaf(Position{}, 750, red, 0, 2)

		grid := Flatten(board)

		require.Len(t, grid, 4)
		for _, column := range grid {
			require.Equal(t, []Colour{red, red, red, red}, column)
		}
	})

	t.Run("mixing leaf depths", func(t *testing.T) {
		inner := NewInternal(Position{}, 8, 1, 2, [4]*Block{leaf(blue), leaf(red), leaf(olive), leaf(yellow)})
		board := NewInternal(Position{0, 0}, 16, 0, 2, [4]*Block{leaf(olive), inner, leaf(red), leaf(blue)})

		grid := Flatten(board)

		expected := Grid{
			{red, olive, red, red},
			{blue, yellow, red, red},
			{olive, olive, blue, blue},
			{olive, olive, blue, blue},
		}
		require.Equal(t, expected, grid)
	})

	t.Run("flattening a sub-block", func(t *testing.T) {
		inner := NewInternal(Position{}, 8, 1, 2, [4]*Block{leaf(blue), leaf(red), leaf(olive), leaf(yellow)})
		board := NewInternal(Position{0, 0}, 16, 0, 2, [4]*Block{leaf(olive), inner, leaf(red), leaf(blue)})

		grid := Flatten(board.Child(UpperLeft))

		require.Equal(t, Grid{{red, olive}, {blue, yellow}}, grid)
	})

	t.Run("reflecting later mutations", func(t *testing.T) {
		board := fourLeaves(1, blue, red, olive, yellow)
		first := Flatten(board)

		require.True(t, board.Rotate(Clockwise))
		second := Flatten(board)

		require.Equal(t, red, first[0][0])
		require.Equal(t, olive, second[0][0], "Upper left should now hold the old lower left")
		require.Equal(t, red, second[1][0], "Upper right should now hold the old upper left")
	})
}
