// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Shape is the (rows, cols) pair describing a grid's dimensions.
type Shape struct {
	Rows int // number of rows
	Cols int // number of elements in each row
}

// String renders the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Len reports the number of cells, Rows*Cols.
func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// Contains reports whether (row, col) addresses a cell inside the shape.
func (s Shape) Contains(row, col int) bool {
	return row >= 0 && row < s.Rows && col >= 0 && col < s.Cols
}

// Grid is a dense row-major two-dimensional container.
//   - rows holds one owned slice per row; len(rows) == shape.Rows.
//   - shape is recorded at construction and never recomputed, so shrinking
//     or growing a row obtained from Row desynchronizes it (caller's problem).
//
// The zero value is an empty 0×0 grid.
type Grid[T any] struct {
	rows  [][]T // row-major storage, each row of length shape.Cols
	shape Shape // recorded dimensions
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)
