package game

// Grid is a square of unit cells indexed [column][row], with [0][0] the upper
// left cell.
type Grid [][]Colour

// Side returns the number of cells along one edge.
func (g Grid) Side() int {
	return len(g)
}

// Flatten projects a block onto a grid of 2^(max depth - level) cells per side.
// It reads the tree on every call and keeps no state between calls.
func Flatten(b *Block) Grid {
	side := 1 << (b.MaxDepth - b.Level)
	cells := make([]Colour, side*side)
	grid := make(Grid, side)
	for col := range grid {
		grid[col] = cells[col*side : (col+1)*side]
	}
	fill(grid, b, 0, 0, side)
	return grid
}

// fill paints the side x side square whose upper left cell is (col, row).
func fill(grid Grid, b *Block, col, row, side int) {
	if b.IsLeaf() {
		for c := col; c < col+side; c++ {
			for r := row; r < row+side; r++ {
				grid[c][r] = b.colour
			}
		}
		return
	}
	half := side / 2
	for i, child := range b.children {
		offset := quadrants[i]
		fill(grid, child, col+offset.col*half, row+offset.row*half, half)
	}
}
