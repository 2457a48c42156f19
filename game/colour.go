package game

import (
	"fmt"

	"blocky/utils"
)

// Colour is an RGB triple. The zero value is black, which is not part of the
// default palette and is used as the "no colour" marker on internal blocks.
type Colour struct {
	R, G, B uint8
}

func (c Colour) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Palette is an ordered list of distinct colours together with their human
// readable names. It is static configuration supplied by the caller.
type Palette struct {
	Colours []Colour
	Names   []string
}

var (
	PacificPoint    = Colour{1, 128, 181}
	RealRed         = Colour{199, 44, 58}
	OldOlive        = Colour{138, 151, 71}
	DaffodilDelight = Colour{255, 211, 92}
)

// DefaultPalette returns the four standard Blocky colours.
func DefaultPalette() Palette {
	return Palette{
		Colours: []Colour{PacificPoint, RealRed, OldOlive, DaffodilDelight},
		Names:   []string{"Pacific Point", "Real Red", "Old Olive", "Daffodil Delight"},
	}
}

// NewPalette builds a palette, panicking if the colours are not pairwise
// distinct or the names do not line up with them.
func NewPalette(colours []Colour, names []string) Palette {
	if len(colours) != len(names) {
		panic(fmt.Sprintf("palette has %d colours but %d names", len(colours), len(names)))
	}
	if len(colours) == 0 {
		panic("palette must contain at least one colour")
	}
	for i, c := range colours {
		if utils.FindIndex(colours, c) != i {
			panic(fmt.Sprintf("palette colour %s is duplicated", c))
		}
	}
	return Palette{Colours: colours, Names: names}
}

// Name returns the name of a colour, or its RGB form if it is not in the palette.
func (p Palette) Name(c Colour) string {
	i := utils.FindIndex(p.Colours, c)
	if i < 0 || i >= len(p.Names) {
		return c.String()
	}
	return p.Names[i]
}

// Random picks a palette colour uniformly.
func (p Palette) Random(rng Rand) Colour {
	return p.Colours[rng.Intn(len(p.Colours))]
}
