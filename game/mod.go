// Package game implements the Blocky board: a square recursively split into
// quadrants, the structural moves that reshape it, its flattened grid view and
// the goals that score it.
package game

// Score returns the goal's score on the board.
func Score(goal Goal, board *Block) int {
	return goal.Score(board)
}

// ApplyMove applies a move to the board it targets. See Rules.Apply.
func ApplyMove(rules *Rules, move Move) bool {
	return rules.Apply(move)
}
