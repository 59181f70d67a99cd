package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is matched by every placement that does not fit the board.
var ErrOutOfBounds = errors.New("pattern out of bounds")

// OutOfBoundsError describes a rejected placement.
type OutOfBoundsError struct {
	Pattern       string
	Row, Column   int
	Height, Width int
	Rows, Columns int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s (%dx%d) at (%d, %d) on a %dx%d board",
		ErrOutOfBounds, e.Pattern, e.Height, e.Width, e.Row, e.Column, e.Rows, e.Columns)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
