package game

import "fmt"

// Goal scores a board for one player. Scores are non-negative and only
// comparable between boards scored by the same goal.
type Goal interface {
	Colour() Colour
	Score(board *Block) int
	ScoreGrid(grid Grid) int
	Description(palette Palette) string
}

// GoalKind selects one of the scoring rules.
type GoalKind int

const (
	PerimeterKind GoalKind = iota
	BlobKind
)

// NewGoal creates a goal of the given kind for a target colour.
func NewGoal(kind GoalKind, colour Colour) Goal {
	switch kind {
	case PerimeterKind:
		return PerimeterGoal{colour: colour}
	case BlobKind:
		return BlobGoal{colour: colour}
	default:
		panic(fmt.Sprintf("unknown goal kind %d", kind))
	}
}

// GenerateGoals returns n goals of one randomly chosen kind, each with a
// different palette colour. Asking for more goals than there are colours is a
// caller error and panics.
func GenerateGoals(n int, palette Palette, rng Rand) []Goal {
	if n > len(palette.Colours) {
		panic(fmt.Sprintf("cannot generate %d goals from %d colours", n, len(palette.Colours)))
	}
	kind := GoalKind(RandInt(rng, 0, 1))

	chosen := make([]int, 0, n)
	taken := make(map[int]bool, n)
	for len(chosen) < n {
		i := RandInt(rng, 0, len(palette.Colours)-1)
		if !taken[i] {
			taken[i] = true
			chosen = append(chosen, i)
		}
	}

	goals := make([]Goal, n)
	for i, colourIndex := range chosen {
		goals[i] = NewGoal(kind, palette.Colours[colourIndex])
	}
	return goals
}

// PerimeterGoal rewards target-coloured cells on the outer edge of the board.
// Corner cells count twice.
type PerimeterGoal struct {
	colour Colour
}

func (g PerimeterGoal) Colour() Colour {
	return g.colour
}

func (g PerimeterGoal) Score(board *Block) int {
	return g.ScoreGrid(Flatten(board))
}

// ScoreGrid scores the first and last columns in full, plus their end cells
// again as corners, then the top and bottom cells of every column between
// them. On a 1x1 grid the only column is both the first and the last, so a
// target cell is worth 6.
func (g PerimeterGoal) ScoreGrid(grid Grid) int {
	side := grid.Side()
	if side == 0 {
		return 0
	}
	last := side - 1
	score := 0
	for _, col := range []int{0, last} {
		for row := 0; row < side; row++ {
			if grid[col][row] == g.colour {
				score++
			}
		}
		if grid[col][0] == g.colour {
			score++
		}
		if grid[col][last] == g.colour {
			score++
		}
	}
	for col := 1; col < last; col++ {
		if grid[col][0] == g.colour {
			score++
		}
		if grid[col][last] == g.colour {
			score++
		}
	}
	return score
}

func (g PerimeterGoal) Description(palette Palette) string {
	return fmt.Sprintf("Get as many %s blocks as you can on the edges of the board.", palette.Name(g.colour))
}

// BlobGoal rewards the largest 4-connected region of the target colour.
type BlobGoal struct {
	colour Colour
}

func (g BlobGoal) Colour() Colour {
	return g.colour
}

func (g BlobGoal) Score(board *Block) int {
	return g.ScoreGrid(Flatten(board))
}

type visit int8

const (
	unvisited visit = iota
	visitedOther
	visitedTarget
)

func (g BlobGoal) ScoreGrid(grid Grid) int {
	side := grid.Side()
	visited := make([][]visit, side)
	for col := range visited {
		visited[col] = make([]visit, side)
	}

	largest := 0
	for col := 0; col < side; col++ {
		for row := 0; row < side; row++ {
			if size := g.undiscoveredBlobSize(col, row, grid, visited); size > largest {
				largest = size
			}
		}
	}
	return largest
}

// undiscoveredBlobSize returns the size of the target-coloured region through
// (col, row) made of cells not visited before, marking every cell it touches.
// Out of bounds and already visited cells contribute 0.
func (g BlobGoal) undiscoveredBlobSize(col, row int, grid Grid, visited [][]visit) int {
	if col < 0 || row < 0 || col >= len(grid) || row >= len(grid) {
		return 0
	}
	if visited[col][row] != unvisited {
		return 0
	}
	if grid[col][row] != g.colour {
		visited[col][row] = visitedOther
		return 0
	}
	visited[col][row] = visitedTarget

	size := 1
	size += g.undiscoveredBlobSize(col+1, row, grid, visited)
	size += g.undiscoveredBlobSize(col, row+1, grid, visited)
	size += g.undiscoveredBlobSize(col-1, row, grid, visited)
	size += g.undiscoveredBlobSize(col, row-1, grid, visited)
	return size
}

func (g BlobGoal) Description(palette Palette) string {
	return fmt.Sprintf("Get as many %s blocks as you can in one giant blob.", palette.Name(g.colour))
}
