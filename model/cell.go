package model

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultDecayTicks is how many ticks a decaying cell survives before dying.
const DefaultDecayTicks uint32 = 10

// ErrInvalidDims is returned when a board is requested with unusable dimensions.
var ErrInvalidDims = errors.New("invalid board dimensions")

// Cell is the state of one board position.
type Cell struct {
	Dead     bool
	Decaying bool
	// DecayingTicks is the remaining decay budget; meaningless once Dead.
	DecayingTicks uint32
	// Neighbors is recomputed by the count phase of every tick.
	Neighbors uint32
}

// DeadCell returns the resting state of an unseeded cell.
func DeadCell() Cell {
	return Cell{Dead: true}
}

// FreshCell returns a newly spawned or seeded cell with a full decay budget.
func FreshCell(budget uint32) Cell {
	return Cell{DecayingTicks: budget}
}

// Alive reports whether the cell shows life.
func (c Cell) Alive() bool { return !c.Dead }

// Position is a board coordinate. 2D boards always use Z == 0.
type Position struct {
	X, Y, Z int
}

// Variant selects the board shape and adjacency pattern.
type Variant int

const (
	// Variant2D is a single-layer board with the 8-cell Moore neighborhood.
	Variant2D Variant = iota
	// Variant3D is a volumetric board with the 6-cell face neighborhood.
	Variant3D
)

// ParseVariant maps "2d"/"3d" (any case) to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2d", "":
		return Variant2D, nil
	case "3d":
		return Variant3D, nil
	}
	return Variant2D, errors.Errorf("[ParseVariant] unknown variant %q", s)
}

func (v Variant) String() string {
	if v == Variant3D {
		return "3d"
	}
	return "2d"
}

// Neighborhood returns the adjacency pattern used by the variant.
func (v Variant) Neighborhood() Neighborhood {
	if v == Variant3D {
		return Face3D
	}
	return Moore2D
}

// Dims are the board extents. Depth is 1 for 2D boards.
type Dims struct {
	Width, Height, Depth int
}

// Volume returns the number of cells.
func (d Dims) Volume() int { return d.Width * d.Height * d.Depth }

// Contains reports whether p lies inside the board.
func (d Dims) Contains(p Position) bool {
	return p.X >= 0 && p.X < d.Width &&
		p.Y >= 0 && p.Y < d.Height &&
		p.Z >= 0 && p.Z < d.Depth
}

// Validate checks the dims against the variant.
func (d Dims) Validate(v Variant) error {
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 {
		return errors.Wrapf(ErrInvalidDims, "[Dims.Validate] %dx%dx%d", d.Width, d.Height, d.Depth)
	}
	if v == Variant2D && d.Depth != 1 {
		return errors.Wrapf(ErrInvalidDims, "[Dims.Validate] 2d board needs depth 1, got %d", d.Depth)
	}
	return nil
}
