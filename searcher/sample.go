package searcher

import (
	"blocky/game"
)

// trial is a move that succeeded on a copy of the board.
type trial struct {
	action game.ActionType
	colour game.Colour
	target *game.Block // on the copy
}

// sample draws one random action and target on scratch and tries it. Paint
// always uses the goal colour. A failed attempt leaves scratch untouched, so
// the caller may keep sampling on it.
func (s *search) sample(scratch *game.Block, goal game.Goal) (trial, bool) {
	rng := s.rules.Rand
	action := game.Actions[rng.Intn(len(game.Actions))]
	target := game.RandomBlock(scratch, rng)

	move := game.NewMove(action, target)
	if action == game.PaintAction {
		move = game.NewPaintMove(goal.Colour(), target)
	}
	s.metrics.AddAttempt()
	if !s.rules.Apply(move) {
		return trial{}, false
	}
	return trial{action: action, colour: move.Colour, target: target}, true
}

// relocate maps a trial back onto the authoritative board. The target keeps
// its position and level under every structural move, so the lookup finds
// the block the move was sampled on.
func relocate(board *game.Block, t trial) game.Move {
	target := game.GetBlock(board, t.target.Position, t.target.Level)
	return game.Move{Action: t.action, Colour: t.colour, Target: target}
}
