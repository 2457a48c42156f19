package game

// Rules carries what the structural operations need beyond the tree itself:
// the colour palette and the source of randomness for smashing.
type Rules struct {
	Palette Palette
	Rand    Rand
}

func NewRules(palette Palette, rng Rand) *Rules {
	if rng == nil {
		panic("rules need a source of randomness")
	}
	return &Rules{
		Palette: palette,
		Rand:    rng,
	}
}

// CanApply reports whether the move would succeed, without mutating anything.
func (r *Rules) CanApply(m Move) bool {
	if m.Target == nil {
		return false
	}
	switch m.Action {
	case RotateClockwiseAction, RotateCounterClockwiseAction, SwapHorizontalAction, SwapVerticalAction:
		return !m.Target.IsLeaf()
	case SmashAction:
		return m.Target.Smashable()
	case PaintAction:
		colour, ok := m.Target.Colour()
		return ok && colour != m.Colour
	case CombineAction:
		return m.Target.Combinable()
	case PassAction:
		return true
	default:
		return false
	}
}

// Apply performs the move on its target in place and reports whether it
// succeeded. A failed move leaves the tree untouched.
func (r *Rules) Apply(m Move) bool {
	if m.Target == nil {
		return false
	}
	switch m.Action {
	case RotateClockwiseAction:
		return m.Target.Rotate(Clockwise)
	case RotateCounterClockwiseAction:
		return m.Target.Rotate(CounterClockwise)
	case SwapHorizontalAction:
		return m.Target.Swap(Horizontal)
	case SwapVerticalAction:
		return m.Target.Swap(Vertical)
	case SmashAction:
		return m.Target.Smash(r.Palette, r.Rand)
	case PaintAction:
		return m.Target.Paint(m.Colour)
	case CombineAction:
		return m.Target.Combine()
	case PassAction:
		return true
	default:
		return false
	}
}
