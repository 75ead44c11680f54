package render

import "github.com/sheikhrachel/go-gol-decay/model"

// Canvas is a renderer-owned copy of which cells are alive. It is built once
// from the board at setup and afterwards only updated from change events, so
// renderers never read the engine's board while it ticks.
type Canvas struct {
	dims  model.Dims
	alive []bool
}

// NewCanvas snapshots the alive flags of b.
func NewCanvas(b *model.Board) *Canvas {
	c := &Canvas{dims: b.Dims(), alive: make([]bool, b.Dims().Volume())}
	b.Each(func(p model.Position, cell *model.Cell) {
		c.alive[c.index(p)] = cell.Alive()
	})
	return c
}

// Dims returns the canvas extents.
func (c *Canvas) Dims() model.Dims { return c.dims }

// Apply records one tick's changes. Out-of-range positions are ignored.
func (c *Canvas) Apply(changes []model.Change) {
	for _, ch := range changes {
		if !c.dims.Contains(ch.Pos) {
			continue
		}
		c.alive[c.index(ch.Pos)] = ch.Alive
	}
}

// Alive reports whether the cell at p was last seen alive.
func (c *Canvas) Alive(p model.Position) bool {
	if !c.dims.Contains(p) {
		return false
	}
	return c.alive[c.index(p)]
}

// Living returns the number of alive cells.
func (c *Canvas) Living() (count int) {
	for _, a := range c.alive {
		if a {
			count++
		}
	}
	return
}

func (c *Canvas) index(p model.Position) int {
	return (p.Z*c.dims.Height+p.Y)*c.dims.Width + p.X
}
