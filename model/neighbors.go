package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Neighborhood is a fixed list of offsets defining adjacency.
type Neighborhood []Position

var (
	// Moore2D is every cell touching horizontally, vertically or diagonally in one plane.
	Moore2D = Neighborhood{
		{-1, -1, 0}, {0, -1, 0}, {1, -1, 0},
		{-1, 0, 0}, {1, 0, 0},
		{-1, 1, 0}, {0, 1, 0}, {1, 1, 0},
	}
	// Face3D is the six cells offset by one along exactly one axis.
	Face3D = Neighborhood{
		{-1, 0, 0}, {1, 0, 0},
		{0, -1, 0}, {0, 1, 0},
		{0, 0, -1}, {0, 0, 1},
	}
)

// Max returns the largest possible neighbor count.
func (n Neighborhood) Max() int { return len(n) }

// CountCellNeighbors returns how many cells adjacent to p are not dead.
// Out-of-range candidates are skipped, so boundary cells have fewer neighbors.
func (b *Board) CountCellNeighbors(p Position) uint32 {
	var count uint32
	for _, off := range b.hood {
		q := Position{X: p.X + off.X, Y: p.Y + off.Y, Z: p.Z + off.Z}
		if !b.dims.Contains(q) {
			continue
		}
		if !b.cells[b.Index(q)].Dead {
			count++
		}
	}
	return count
}

// CountNeighbors recomputes Neighbors for every cell from the current Dead flags.
func (b *Board) CountNeighbors() {
	b.countRows(0, b.rows())
}

// CountNeighborsParallel is CountNeighbors split into row bands across workers.
// Workers read only Dead flags and write only the Neighbors of their own band,
// so the result is identical to the sequential pass.
func (b *Board) CountNeighborsParallel() {
	var (
		eg            errgroup.Group
		rows          = b.rows()
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			b.countRows(startRow, endRow)
			return nil
		})
	}

	// workers never fail
	_ = eg.Wait()
}

// rows is the number of x-lines in the board (height times depth).
func (b *Board) rows() int { return b.dims.Height * b.dims.Depth }

func (b *Board) countRows(startRow, endRow int) {
	w := b.dims.Width
	for row := startRow; row < endRow; row++ {
		for x := 0; x < w; x++ {
			i := row*w + x
			b.cells[i].Neighbors = b.CountCellNeighbors(b.PositionOf(i))
		}
	}
}
