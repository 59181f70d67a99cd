package model

import "strings"

// Cell addresses a single cell as (row, column)
type Cell struct {
	Row    int
	Column int
}

// Bounds is the inclusive bounding box of the living cells
type Bounds struct {
	MinRow, MaxRow       int
	MinColumn, MaxColumn int
}

// Area returns the number of cells inside the bounding box
func (b Bounds) Area() int {
	return (b.MaxRow - b.MinRow + 1) * (b.MaxColumn - b.MinColumn + 1)
}

// Snapshot is a read-only copy of one generation of a Board.
// The zero value is an empty 0x0 snapshot.
type Snapshot struct {
	rows       int
	columns    int
	generation int
	cells      []bool // row-major
}

// Rows returns the number of rows
func (s Snapshot) Rows() int { return s.rows }

// Columns returns the number of columns
func (s Snapshot) Columns() int { return s.columns }

// Generation returns the generation the snapshot was taken at
func (s Snapshot) Generation() int { return s.generation }

// Alive returns the state of a cell; cells off the board read as dead
func (s Snapshot) Alive(row, column int) bool {
	if row < 0 || row >= s.rows || column < 0 || column >= s.columns {
		return false
	}
	return s.cells[row*s.columns+column]
}

// LiveCells returns the living cells in row-major order
func (s Snapshot) LiveCells() []Cell {
	var out []Cell
	for i, alive := range s.cells {
		if alive {
			out = append(out, Cell{Row: i / s.columns, Column: i % s.columns})
		}
	}
	return out
}

// Population returns the total number of living cells
func (s Snapshot) Population() (count int) {
	for _, alive := range s.cells {
		if alive {
			count++
		}
	}
	return
}

// Bounds returns the bounding box of the living cells. ok is false when
// nothing is alive.
func (s Snapshot) Bounds() (b Bounds, ok bool) {
	for _, c := range s.LiveCells() {
		if !ok {
			b = Bounds{MinRow: c.Row, MaxRow: c.Row, MinColumn: c.Column, MaxColumn: c.Column}
			ok = true
			continue
		}
		b.MinRow = min(b.MinRow, c.Row)
		b.MaxRow = max(b.MaxRow, c.Row)
		b.MinColumn = min(b.MinColumn, c.Column)
		b.MaxColumn = max(b.MaxColumn, c.Column)
	}
	return b, ok
}

// Hash returns an MD5 hash of the cell states, independent of the generation
func (s Snapshot) Hash() string {
	return hashCells(s.cells)
}

// Equal reports whether two snapshots have the same shape and cell states
func (s Snapshot) Equal(other Snapshot) bool {
	if s.rows != other.rows || s.columns != other.columns {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the snapshot with 'x' for alive and 'o' for dead cells, one
// newline-terminated line per row.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(s.rows * (s.columns + 1))
	for r := range s.rows {
		for c := range s.columns {
			if s.cells[r*s.columns+c] {
				sb.WriteString(textPosAlive)
			} else {
				sb.WriteString(textPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
