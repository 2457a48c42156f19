package game

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	RotateClockwiseAction ActionType = iota
	RotateCounterClockwiseAction
	SwapHorizontalAction
	SwapVerticalAction
	SmashAction
	PaintAction
	CombineAction
	PassAction
)

// Actions lists every action that changes the board, in sampling order.
var Actions = []ActionType{
	RotateClockwiseAction,
	RotateCounterClockwiseAction,
	SwapHorizontalAction,
	SwapVerticalAction,
	SmashAction,
	PaintAction,
	CombineAction,
}

var actionNames = map[ActionType]string{
	RotateClockwiseAction:        "rotate-clockwise",
	RotateCounterClockwiseAction: "rotate-counter-clockwise",
	SwapHorizontalAction:         "swap-horizontal",
	SwapVerticalAction:           "swap-vertical",
	SmashAction:                  "smash",
	PaintAction:                  "paint",
	CombineAction:                "combine",
	PassAction:                   "pass",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Rotation is the direction of a rotate action.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// SwapDirection is the axis of a swap action.
type SwapDirection int

const (
	Horizontal SwapDirection = iota // top half with bottom half
	Vertical                        // left half with right half
)
