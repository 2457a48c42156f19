package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
)

// Quadrant is a child index of an internal block.
type Quadrant int

const (
	UpperRight Quadrant = iota
	UpperLeft
	LowerLeft
	LowerRight
)

// cell is a unit offset (column, row) inside a 2x2 square.
type cell struct {
	col, row int
}

// quadrants is the single source of truth for where each child index sits
// inside its parent. Swap, rotate, flatten and lookup all go through it.
var quadrants = [4]cell{
	UpperRight: {1, 0},
	UpperLeft:  {0, 0},
	LowerLeft:  {0, 1},
	LowerRight: {1, 1},
}

// quadrantAt is the inverse of quadrants.
func quadrantAt(c cell) Quadrant {
	for q, offset := range quadrants {
		if offset == c {
			return Quadrant(q)
		}
	}
	panic(fmt.Sprintf("no quadrant at %+v", c))
}

// Position is the top-left corner of a block in board coordinates.
type Position struct {
	X, Y int
}

// Block is one node of the board's subdivision tree. A block is either a leaf
// with a colour, or an internal node that owns exactly four children.
type Block struct {
	Position Position
	Size     int
	Level    int
	MaxDepth int

	colour   Colour
	children []*Block // nil for a leaf, otherwise indexed by Quadrant
}

// NewLeaf creates a block without children.
func NewLeaf(position Position, size int, colour Colour, level, maxDepth int) *Block {
	if level > maxDepth {
		panic(fmt.Sprintf("level %d exceeds max depth %d", level, maxDepth))
	}
	return &Block{
		Position: position,
		Size:     size,
		Level:    level,
		MaxDepth: maxDepth,
		colour:   colour,
	}
}

// NewInternal creates a block that takes ownership of the given children. The
// children's geometry and levels are recomputed from the new parent.
func NewInternal(position Position, size int, level, maxDepth int, children [4]*Block) *Block {
	if level >= maxDepth {
		panic(fmt.Sprintf("block at level %d cannot have children with max depth %d", level, maxDepth))
	}
	if size < 1<<(maxDepth-level) {
		panic(fmt.Sprintf("block size %d is too small for %d levels below it", size, maxDepth-level))
	}
	b := &Block{
		Position: position,
		Size:     size,
		Level:    level,
		MaxDepth: maxDepth,
		children: children[:],
	}
	for _, child := range b.children {
		if child == nil {
			panic("internal block needs four children")
		}
	}
	b.relayout()
	return b
}

// IsLeaf reports whether the block has no children.
func (b *Block) IsLeaf() bool {
	return len(b.children) == 0
}

// Colour returns the block's colour. Internal blocks have no colour of their own.
func (b *Block) Colour() (Colour, bool) {
	if !b.IsLeaf() {
		return Colour{}, false
	}
	return b.colour, true
}

// Children returns the children in quadrant order, or nil for a leaf.
func (b *Block) Children() []*Block {
	return b.children
}

// Child returns the child in the given quadrant, or nil for a leaf.
func (b *Block) Child(q Quadrant) *Block {
	if b.IsLeaf() {
		return nil
	}
	return b.children[q]
}

// childSize rounds halves to even, so a 125 pixel block has 62 pixel children.
func (b *Block) childSize() int {
	return int(math.RoundToEven(float64(b.Size) / 2.0))
}

func (b *Block) childPosition(q Quadrant) Position {
	half := b.childSize()
	offset := quadrants[q]
	return Position{
		X: b.Position.X + offset.col*half,
		Y: b.Position.Y + offset.row*half,
	}
}

// relayout pushes this block's geometry down to every descendant.
func (b *Block) relayout() {
	for i, child := range b.children {
		child.Position = b.childPosition(Quadrant(i))
		child.Size = b.childSize()
		child.Level = b.Level + 1
		child.MaxDepth = b.MaxDepth
		child.relayout()
	}
}

// Copy returns a deep copy that shares no nodes with b.
func (b *Block) Copy() *Block {
	clone := &Block{
		Position: b.Position,
		Size:     b.Size,
		Level:    b.Level,
		MaxDepth: b.MaxDepth,
		colour:   b.colour,
	}
	if !b.IsLeaf() {
		clone.children = make([]*Block, len(b.children))
		for i, child := range b.children {
			clone.children[i] = child.Copy()
		}
	}
	return clone
}

// Walk visits b and its descendants in pre-order until fn returns false.
func (b *Block) Walk(fn func(*Block) bool) bool {
	if !fn(b) {
		return false
	}
	for _, child := range b.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Smashable reports whether Smash would succeed.
func (b *Block) Smashable() bool {
	return b.IsLeaf() && b.Level < b.MaxDepth-1
}

// Smash turns a leaf into an internal block with four randomly coloured leaves.
func (b *Block) Smash(palette Palette, rng Rand) bool {
	if !b.Smashable() {
		return false
	}
	b.children = make([]*Block, len(quadrants))
	for i := range b.children {
		b.children[i] = &Block{colour: palette.Random(rng)}
	}
	b.colour = Colour{}
	b.relayout()
	return true
}

// Swap exchanges the top half with the bottom half (horizontal) or the left
// half with the right half (vertical). Grandchildren move with their parents.
func (b *Block) Swap(direction SwapDirection) bool {
	if b.IsLeaf() {
		return false
	}
	var mirror func(cell) cell
	switch direction {
	case Horizontal:
		mirror = func(c cell) cell { return cell{c.col, 1 - c.row} }
	case Vertical:
		mirror = func(c cell) cell { return cell{1 - c.col, c.row} }
	default:
		return false
	}
	b.permute(mirror)
	return true
}

// Rotate moves every child one quadrant along the given rotational order.
func (b *Block) Rotate(direction Rotation) bool {
	if b.IsLeaf() {
		return false
	}
	var turn func(cell) cell
	switch direction {
	case Clockwise:
		turn = func(c cell) cell { return cell{1 - c.row, c.col} }
	case CounterClockwise:
		turn = func(c cell) cell { return cell{c.row, 1 - c.col} }
	default:
		return false
	}
	b.permute(turn)
	return true
}

// permute moves the child at each quadrant to the quadrant dest maps it to.
func (b *Block) permute(dest func(cell) cell) {
	moved := make([]*Block, len(b.children))
	for i, child := range b.children {
		moved[quadrantAt(dest(quadrants[i]))] = child
	}
	b.children = moved
	b.relayout()
}

// Combinable reports whether Combine would succeed.
func (b *Block) Combinable() bool {
	if b.IsLeaf() {
		return false
	}
	for _, child := range b.children {
		if !child.IsLeaf() {
			return false
		}
	}
	return true
}

// Combine collapses four leaf children into this block, which takes the most
// frequent child colour. Ties go to the colour seen first in quadrant order.
func (b *Block) Combine() bool {
	if !b.Combinable() {
		return false
	}
	counts := make(map[Colour]int, len(b.children))
	most := 0
	for _, child := range b.children {
		counts[child.colour]++
		most = max(most, counts[child.colour])
	}
	for _, child := range b.children {
		if counts[child.colour] == most {
			b.colour = child.colour
			break
		}
	}
	b.children = nil
	return true
}

// Paint recolours a leaf. Painting a leaf with its own colour is not a move.
func (b *Block) Paint(colour Colour) bool {
	if !b.IsLeaf() || b.colour == colour {
		return false
	}
	b.colour = colour
	return true
}

// Hash identifies the tree's shape and colours.
func (b *Block) Hash() uint64 {
	hasher := fnv.New64a()
	b.Walk(func(node *Block) bool {
		binary.Write(hasher, binary.LittleEndian, int64(node.Level))
		if node.IsLeaf() {
			hasher.Write([]byte{0, node.colour.R, node.colour.G, node.colour.B})
		} else {
			hasher.Write([]byte{1})
		}
		return true
	})
	return hasher.Sum64()
}

// Validate returns the first structural invariant the tree violates, if any.
func (b *Block) Validate() error {
	var err error
	b.Walk(func(node *Block) bool {
		switch {
		case node.Level > node.MaxDepth:
			err = fmt.Errorf("block at %+v: level %d exceeds max depth %d", node.Position, node.Level, node.MaxDepth)
		case len(node.children) != 0 && len(node.children) != len(quadrants):
			err = fmt.Errorf("block at %+v: has %d children", node.Position, len(node.children))
		case node.Level == node.MaxDepth && !node.IsLeaf():
			err = fmt.Errorf("block at %+v: internal block at max depth", node.Position)
		}
		positions := make(map[Position]bool, len(node.children))
		for _, child := range node.children {
			if err != nil {
				break
			}
			if positions[child.Position] {
				err = fmt.Errorf("block at %+v: shared by two children", child.Position)
				break
			}
			positions[child.Position] = true
			if child.Level != node.Level+1 {
				err = fmt.Errorf("block at %+v: child level %d, want %d", child.Position, child.Level, node.Level+1)
			} else if child.MaxDepth != node.MaxDepth {
				err = fmt.Errorf("block at %+v: child max depth %d, want %d", child.Position, child.MaxDepth, node.MaxDepth)
			} else if !node.Contains(child.Position) {
				err = fmt.Errorf("block at %+v: child lies outside its parent at %+v", child.Position, node.Position)
			}
		}
		return err == nil
	})
	return err
}
