package model

import (
	"testing"

	"github.com/sheikhrachel/gol-board/rules"
)

func fullGrid(rows, columns int) *grid {
	g := newGrid(rows, columns)
	for r := range rows {
		for c := range columns {
			g.Set(r, c, true)
		}
	}
	return g
}

func TestCountNeighborsClipsAtEdges(t *testing.T) {
	g := fullGrid(3, 3)

	tests := []struct {
		row, column int
		want        int
	}{
		{0, 0, 3}, {0, 2, 3}, {2, 0, 3}, {2, 2, 3}, // corners
		{0, 1, 5}, {1, 0, 5}, {1, 2, 5}, {2, 1, 5}, // edges
		{1, 1, 8}, // center
	}

	for _, tt := range tests {
		if got := g.CountNeighbors(tt.row, tt.column); got != tt.want {
			t.Errorf("CountNeighbors(%d, %d) = %d, want %d", tt.row, tt.column, got, tt.want)
		}
	}
}

func TestCountNeighborsNeverExceedsMoore(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 4}, {4, 1}, {2, 2}, {6, 5}}
	for _, size := range sizes {
		g := fullGrid(size[0], size[1])
		for r := range size[0] {
			for c := range size[1] {
				n := g.CountNeighbors(r, c)
				if n > rules.MaxNeighbors {
					t.Fatalf("%dx%d: cell (%d,%d) counted %d neighbors", size[0], size[1], r, c, n)
				}

				// Every in-bounds neighbor is alive, so the count equals the
				// number of in-bounds neighbors.
				want := 0
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						if (dr != 0 || dc != 0) && g.inBounds(r+dr, c+dc) {
							want++
						}
					}
				}
				if n != want {
					t.Errorf("%dx%d: cell (%d,%d) counted %d, want %d", size[0], size[1], r, c, n, want)
				}
			}
		}
	}
}

func TestCountNeighborsIgnoresSelf(t *testing.T) {
	g := newGrid(3, 3)
	g.Set(1, 1, true)
	if n := g.CountNeighbors(1, 1); n != 0 {
		t.Errorf("expected a lone cell to have 0 neighbors, got %d", n)
	}
}

func TestGridGetSetOffGrid(t *testing.T) {
	g := newGrid(2, 2)
	g.Set(-1, 0, true)
	g.Set(0, 2, true)
	g.Set(5, 5, true)

	for r := range 2 {
		for c := range 2 {
			if g.Get(r, c) {
				t.Errorf("off-grid write leaked into (%d,%d)", r, c)
			}
		}
	}
	if g.Get(-1, -1) || g.Get(2, 0) {
		t.Error("off-grid cells must read as dead")
	}
}
