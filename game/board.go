package game

import (
	"fmt"
	"math"

	"blocky/meta"
)

// NewBoard generates a random board. A block at level L below max depth is
// subdivided with probability exp(-0.25 L), so the root always is, and every
// leaf gets a random palette colour. The board needs at least one pixel per
// cell of its flattened grid, so size must be at least 2^maxDepth.
func NewBoard(maxDepth, size int, palette Palette, rng Rand) *Block {
	if maxDepth < 0 || maxDepth > meta.MAX_DEPTH_LIMIT {
		panic(fmt.Sprintf("max depth must be in [0, %d], got %d", meta.MAX_DEPTH_LIMIT, maxDepth))
	}
	if size < 1<<maxDepth {
		panic(fmt.Sprintf("board size %d is too small for max depth %d, need at least %d", size, maxDepth, 1<<maxDepth))
	}
	return generate(Position{0, 0}, size, 0, maxDepth, palette, rng)
}

func generate(position Position, size, level, maxDepth int, palette Palette, rng Rand) *Block {
	if level == maxDepth || rng.Float64() >= math.Exp(-0.25*float64(level)) {
		return NewLeaf(position, size, palette.Random(rng), level, maxDepth)
	}
	b := &Block{
		Position: position,
		Size:     size,
		Level:    level,
		MaxDepth: maxDepth,
		children: make([]*Block, len(quadrants)),
	}
	for i := range b.children {
		b.children[i] = generate(b.childPosition(Quadrant(i)), b.childSize(), level+1, maxDepth, palette, rng)
	}
	return b
}
