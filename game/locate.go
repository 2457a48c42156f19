package game

// Contains reports whether location lies in the block. The top and left edges
// belong to the block, the bottom and right edges do not.
func (b *Block) Contains(location Position) bool {
	return b.Position.X <= location.X && location.X < b.Position.X+b.Size &&
		b.Position.Y <= location.Y && location.Y < b.Position.Y+b.Size
}

// GetBlock returns the block at level that contains location. If the tree is
// shallower than level there, the deepest block containing location is
// returned. Locations outside the board yield nil.
func GetBlock(board *Block, location Position, level int) *Block {
	if board == nil || !board.Contains(location) {
		return nil
	}
	node := board
	for node.Level < level && !node.IsLeaf() {
		var next *Block
		for _, child := range node.children {
			if child.Contains(location) {
				next = child
				break
			}
		}
		if next == nil {
			return node
		}
		node = next
	}
	return node
}

// RandomBlock picks a block by drawing a level in [0, max depth] and descending
// through uniformly random children until that level or a leaf is reached.
func RandomBlock(board *Block, rng Rand) *Block {
	level := RandInt(rng, 0, board.MaxDepth)
	node := board
	for node.Level < level && !node.IsLeaf() {
		node = node.children[rng.Intn(len(node.children))]
	}
	return node
}
