// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Only the checked surface (At, Set, New) returns these; the unchecked
// accessors panic like a plain slice index would.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside the shape.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrEmpty is returned by New when the input has no rows or no columns.
	ErrEmpty = errors.New("grid: input must have at least one row and one column")

	// ErrRagged is returned by New when rows have differing lengths.
	ErrRagged = errors.New("grid: all rows must have the same length")
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// gridErrorf wraps err with the method tag and the offending coordinates,
// e.g. "Grid.At(3,0): grid: index out of range".
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
