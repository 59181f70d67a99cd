package model

import (
	"crypto/md5"
	"fmt"
)

// grid is a fixed rows x columns block of cells, indexed cells[row][column]
type grid struct {
	rows    int
	columns int
	cells   [][]bool
}

// newGrid creates an all-dead grid with the specified dimensions
func newGrid(rows, columns int) *grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, columns)
	}
	return &grid{
		rows:    rows,
		columns: columns,
		cells:   cells,
	}
}

// inBounds reports whether (row, column) lies on the grid
func (g *grid) inBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// Set sets a cell to alive (true) or dead (false); off-grid writes are ignored
func (g *grid) Set(row, column int, alive bool) {
	if g.inBounds(row, column) {
		g.cells[row][column] = alive
	}
}

// Get returns the state of a cell; off-grid cells read as dead
func (g *grid) Get(row, column int) bool {
	if !g.inBounds(row, column) {
		return false
	}
	return g.cells[row][column]
}

// CountNeighbors counts living Moore neighbors, clipped at the grid edges
func (g *grid) CountNeighbors(row, column int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.rows-1, row+1)
	minColumn := max(0, column-1)
	maxColumn := min(g.columns-1, column+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minColumn; c <= maxColumn; c++ {
			if r == row && c == column {
				continue // Skip the cell itself
			}
			if g.cells[r][c] {
				count++
			}
		}
	}

	return count
}

// copyCells returns the cells in row-major order
func (g *grid) copyCells() []bool {
	out := make([]bool, 0, g.rows*g.columns)
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}

// hashCells returns an MD5 hash of a row-major cell slice
func hashCells(cells []bool) string {
	h := md5.New()
	buf := make([]byte, len(cells))
	for i, alive := range cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
