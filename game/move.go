package game

import "fmt"

// Move describes a structural change: what to do, to which block, and with
// which colour when painting.
type Move struct {
	Action ActionType
	Colour Colour // Paint only
	Target *Block
}

// NewMove creates a move without a colour parameter.
func NewMove(action ActionType, target *Block) Move {
	return Move{Action: action, Target: target}
}

// NewPaintMove creates a paint move.
func NewPaintMove(colour Colour, target *Block) Move {
	return Move{Action: PaintAction, Colour: colour, Target: target}
}

// Pass is the move that leaves the board as it is.
func Pass(board *Block) Move {
	return Move{Action: PassAction, Target: board}
}

func (m Move) IsPass() bool {
	return m.Action == PassAction
}

func (m Move) String() string {
	if m.Target == nil {
		return m.Action.String()
	}
	if m.Action == PaintAction {
		return fmt.Sprintf("%s %s at %+v level %d", m.Action, m.Colour, m.Target.Position, m.Target.Level)
	}
	return fmt.Sprintf("%s at %+v level %d", m.Action, m.Target.Position, m.Target.Level)
}
