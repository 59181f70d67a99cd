package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/patterns"
	"github.com/sheikhrachel/gol-board/rules"
)

// Board is a bounded Game of Life board.
//
// It owns two grids of the same shape. grids[generation%2] is the current
// generation; the other one is only ever written by Advance.
type Board struct {
	rows       int
	columns    int
	grids      [2]*grid
	generation int
}

// NewBoard creates an all-dead board at generation 0. Both dimensions must be
// positive.
func NewBoard(rows, columns int) *Board {
	return &Board{
		rows:    rows,
		columns: columns,
		grids:   [2]*grid{newGrid(rows, columns), newGrid(rows, columns)},
	}
}

// Rows returns the number of rows of the board
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns of the board
func (b *Board) Columns() int {
	return b.columns
}

// Generation returns the number of completed Advance calls
func (b *Board) Generation() int {
	return b.generation
}

func (b *Board) current() *grid {
	return b.grids[b.generation%2]
}

func (b *Board) next() *grid {
	return b.grids[(b.generation+1)%2]
}

// Place stamps p onto the current generation with its top-left corner at
// (row, column). Placement is all-or-nothing: if the pattern's bounding box
// does not fit, the board is left untouched and the returned error matches
// ErrOutOfBounds.
func (b *Board) Place(p patterns.Pattern, row, column int) error {
	height, width := p.Dims()
	if row < 0 || column < 0 || height > b.rows-row || width > b.columns-column {
		return errors.WithStack(&OutOfBoundsError{
			Pattern: p.Name(),
			Row:     row,
			Column:  column,
			Height:  height,
			Width:   width,
			Rows:    b.rows,
			Columns: b.columns,
		})
	}

	p.Place(&boxCanvas{
		grid:      b.current(),
		minRow:    row,
		minColumn: column,
		maxRow:    row + height - 1,
		maxColumn: column + width - 1,
	}, row, column)
	return nil
}

// Advance computes the next generation from the current one and makes it
// current. Every cell of the next grid is overwritten from the current grid
// alone.
func (b *Board) Advance() {
	read, write := b.current(), b.next()

	for r := range b.rows {
		for c := range b.columns {
			write.cells[r][c] = rules.ApplyConwayRules(read.CountNeighbors(r, c), read.Get(r, c))
		}
	}

	b.generation++
}

// Snapshot returns an immutable copy of the current generation
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		rows:       b.rows,
		columns:    b.columns,
		generation: b.generation,
		cells:      b.current().copyCells(),
	}
}

// boxCanvas restricts pattern writes to the placement's bounding box.
type boxCanvas struct {
	grid              *grid
	minRow, minColumn int
	maxRow, maxColumn int
}

func (c *boxCanvas) Set(row, column int, alive bool) {
	if row < c.minRow || row > c.maxRow || column < c.minColumn || column > c.maxColumn {
		return
	}
	c.grid.Set(row, column, alive)
}
