// Package patterns defines the stamps that can be placed on a board.
//
// A Pattern only knows which cells inside its own bounding box become alive.
// It writes through a Canvas and never depends on the board that receives it.
package patterns

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

// Canvas is the write surface a pattern stamps itself onto.
type Canvas interface {
	Set(row, column int, alive bool)
}

// Pattern is a named stamp with a fixed bounding box.
//
// Place must only set cells in rows [row, row+height) and
// columns [column, column+width), where (height, width) is Dims().
type Pattern interface {
	Name() string
	Dims() (height, width int)
	Place(c Canvas, row, column int)

	// sealed keeps the set of patterns closed to this package.
	sealed()
}

// ErrUnknownPattern is returned by Lookup for names not in the catalog.
var ErrUnknownPattern = errors.New("unknown pattern")

// Blinker is the period-2 oscillator in its vertical phase: the middle column
// of a 3x3 box.
type Blinker struct{}

func (Blinker) Name() string { return "blinker" }

func (Blinker) Dims() (int, int) { return 3, 3 }

func (Blinker) sealed() {}

// Place sets the middle column of the box alive.
func (Blinker) Place(c Canvas, row, column int) {
	c.Set(row, column+1, true)
	c.Set(row+1, column+1, true)
	c.Set(row+2, column+1, true)
}

// Glider is the 5-cell diagonal traveler heading down and to the right.
//
//	.x.
//	..x
//	xxx
type Glider struct{}

func (Glider) Name() string { return "glider" }

func (Glider) Dims() (int, int) { return 3, 3 }

func (Glider) sealed() {}

// Place sets the glider's five cells alive.
func (Glider) Place(c Canvas, row, column int) {
	c.Set(row, column+1, true)
	c.Set(row+1, column+2, true)
	c.Set(row+2, column, true)
	c.Set(row+2, column+1, true)
	c.Set(row+2, column+2, true)
}

// Random fills a caller-sized box with independent coin flips. The same Seed
// always produces the same field.
type Random struct {
	Height int
	Width  int
	Seed   int64
}

func (Random) Name() string { return "random" }

func (r Random) Dims() (int, int) { return r.Height, r.Width }

func (Random) sealed() {}

// Place sets each cell of the box alive with probability one half.
func (r Random) Place(c Canvas, row, column int) {
	rng := rand.New(rand.NewPCG(uint64(r.Seed), 0))
	for i := range r.Height {
		for j := range r.Width {
			if rng.IntN(2) == 1 {
				c.Set(row+i, column+j, true)
			}
		}
	}
}

// Catalog returns the fixed patterns keyed by name. Random is not included
// since it needs a size and a seed.
func Catalog() map[string]Pattern {
	return map[string]Pattern{
		Blinker{}.Name(): Blinker{},
		Glider{}.Name():  Glider{},
	}
}

// Names returns the catalog names in sorted order.
func Names() []string {
	catalog := Catalog()
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the catalog pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := Catalog()[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Lookup] %q", name)
	}
	return p, nil
}
