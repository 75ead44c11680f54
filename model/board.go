package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Board owns every cell of the automaton in one dense slice, x varying fastest.
type Board struct {
	variant Variant
	dims    Dims
	cells   []Cell
	hood    Neighborhood
}

// NewBoard creates a board with every cell dead.
func NewBoard(variant Variant, dims Dims) (*Board, error) {
	if err := dims.Validate(variant); err != nil {
		return nil, errors.Wrap(err, "[NewBoard] failed to validate dims")
	}
	cells := make([]Cell, dims.Volume())
	for i := range cells {
		cells[i] = DeadCell()
	}
	return &Board{
		variant: variant,
		dims:    dims,
		cells:   cells,
		hood:    variant.Neighborhood(),
	}, nil
}

// NewBoardFromSeed creates a board where the given positions start alive-fresh
// with the given decay budget and everything else is dead.
func NewBoardFromSeed(variant Variant, dims Dims, alive []Position, budget uint32) (*Board, error) {
	b, err := NewBoard(variant, dims)
	if err != nil {
		return nil, err
	}
	for _, p := range alive {
		if !dims.Contains(p) {
			return nil, errors.Errorf("[NewBoardFromSeed] seed position %+v outside %dx%dx%d",
				p, dims.Width, dims.Height, dims.Depth)
		}
		b.cells[b.Index(p)] = FreshCell(budget)
	}
	return b, nil
}

// Variant returns the board variant.
func (b *Board) Variant() Variant { return b.variant }

// Dims returns the board extents.
func (b *Board) Dims() Dims { return b.dims }

// Neighborhood returns the adjacency pattern used for counting.
func (b *Board) Neighborhood() Neighborhood { return b.hood }

// Index returns the slice index of p. p must be in range.
func (b *Board) Index(p Position) int {
	return (p.Z*b.dims.Height+p.Y)*b.dims.Width + p.X
}

// PositionOf is the inverse of Index.
func (b *Board) PositionOf(i int) Position {
	w, h := b.dims.Width, b.dims.Height
	return Position{X: i % w, Y: (i / w) % h, Z: i / (w * h)}
}

// At returns a pointer to the cell at p, or nil when p is out of range.
func (b *Board) At(p Position) *Cell {
	if !b.dims.Contains(p) {
		return nil
	}
	return &b.cells[b.Index(p)]
}

// Get returns a copy of the cell at p. Out-of-range positions read as dead.
func (b *Board) Get(p Position) Cell {
	if c := b.At(p); c != nil {
		return *c
	}
	return DeadCell()
}

// Set replaces the cell at p. Out-of-range positions are ignored.
func (b *Board) Set(p Position, c Cell) {
	if cell := b.At(p); cell != nil {
		*cell = c
	}
}

// Each calls fn for every cell in index order.
func (b *Board) Each(fn func(p Position, c *Cell)) {
	for i := range b.cells {
		fn(b.PositionOf(i), &b.cells[i])
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{variant: b.variant, dims: b.dims, cells: cells, hood: b.hood}
}

// Equal reports whether both boards hold identical cells.
func (b *Board) Equal(o *Board) bool {
	if b.variant != o.variant || b.dims != o.dims {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for i := range b.cells {
		if !b.cells[i].Dead {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the full cell state
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, 0, 10)
	for i := range b.cells {
		c := &b.cells[i]
		buf = buf[:0]
		buf = append(buf, boolByte(c.Dead), boolByte(c.Decaying),
			byte(c.DecayingTicks), byte(c.DecayingTicks>>8), byte(c.DecayingTicks>>16), byte(c.DecayingTicks>>24))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
