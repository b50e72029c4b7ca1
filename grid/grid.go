// SPDX-License-Identifier: MIT

// Package grid - construction, element access and conversion.
//
// Purpose:
//   - Build grids from a shape, from owned rows or from a read-only nested view.
//   - Address elements by (row, col) either unchecked (Get/GetMut, native
//     index panic) or checked (At/Set, ErrOutOfRange).
//   - Hand the rows back to the caller (IntoRows), ending the grid's use.
//
// Complexity quicksheet:
//   - Zeros/FromView/New/Clone: O(r*c); FromRows/Get/GetMut/At/Set/Shape: O(1).

package grid

import "fmt"

// Zeros returns a grid of shape.Rows rows, each holding shape.Cols zero values.
// A negative dimension panics the same way make does.
// Complexity: O(r*c) time and memory.
func Zeros[T any](shape Shape) *Grid[T] {
	rows := make([][]T, shape.Rows)
	for i := range rows {
		rows[i] = make([]T, shape.Cols) // make zero-fills deterministically
	}

	return &Grid[T]{rows: rows, shape: shape}
}

// FromRows takes ownership of rows without copying them.
// The shape is (len(rows), len(rows[0])); an empty rows slice panics with
// index out of range. Rows are assumed to share one length.
// Complexity: O(1).
func FromRows[T any](rows [][]T) *Grid[T] {
	shape := Shape{Rows: len(rows), Cols: len(rows[0])} // rows[0] is the precondition

	return &Grid[T]{rows: rows, shape: shape}
}

// FromView copies a read-only nested view into freshly owned storage.
// Later writes to rows never reach the grid and vice versa.
// The shape is derived exactly as in FromRows, with the same empty-input panic.
// Complexity: O(r*c).
func FromView[Ss ~[]S, S ~[]T, T any](rows Ss) *Grid[T] {
	shape := Shape{Rows: len(rows), Cols: len(rows[0])}

	data := make([][]T, len(rows))
	for i, src := range rows {
		data[i] = append(make([]T, 0, len(src)), src...)
	}

	return &Grid[T]{rows: data, shape: shape}
}

// New validates rows and returns a deep copy as a Grid.
// Stage 1 (Validate): at least one row, a non-empty first row, equal lengths.
// Stage 2 (Execute): copy via FromView.
//
// Errors:
//   - ErrEmpty when rows or rows[0] is empty.
//   - ErrRagged (wrapped with the row index) when a row length differs.
//
// Complexity: O(r*c).
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("New: row %d has %d elements, want %d: %w", i, len(row), width, ErrRagged)
		}
	}

	return FromView(rows), nil
}

// Shape returns the dimensions recorded at construction.
// Complexity: O(1).
func (g *Grid[T]) Shape() Shape {
	return g.shape
}

// Rows returns the recorded number of rows.
func (g *Grid[T]) Rows() int {
	return g.shape.Rows
}

// Cols returns the recorded number of columns.
func (g *Grid[T]) Cols() int {
	return g.shape.Cols
}

// Get returns the element at (row, col).
// There is no wraparound or clamping: an index outside the stored rows panics.
// Complexity: O(1).
func (g *Grid[T]) Get(row, col int) T {
	return g.rows[row][col]
}

// GetMut returns a pointer to the element at (row, col); writes through it
// land in the grid. Panics like Get on a bad index.
// Complexity: O(1).
func (g *Grid[T]) GetMut(row, col int) *T {
	return &g.rows[row][col]
}

// inBounds reports whether (row, col) is inside both the recorded shape and
// the row actually stored, so a desynchronized row cannot panic At/Set.
func (g *Grid[T]) inBounds(row, col int) bool {
	return g.shape.Contains(row, col) && row < len(g.rows) && col < len(g.rows[row])
}

// At is the checked counterpart of Get.
// Returns ErrOutOfRange (wrapped with coordinates) instead of panicking.
// Complexity: O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	if !g.inBounds(row, col) {
		var zero T
		return zero, gridErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return g.rows[row][col], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	if !g.inBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	g.rows[row][col] = v

	return nil
}

// Row returns the live storage of row i. Element writes are visible in the
// grid; changing its length is not reflected in Shape.
func (g *Grid[T]) Row(i int) []T {
	return g.rows[i]
}

// Clone returns a deep copy with independent storage and the same shape.
// Complexity: O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	data := make([][]T, len(g.rows))
	for i, src := range g.rows {
		data[i] = append(make([]T, 0, len(src)), src...)
	}

	return &Grid[T]{rows: data, shape: g.shape}
}

// IntoRows hands the stored rows to the caller, in row-major order and
// without copying. The grid is left empty (Shape{} and no rows), so any
// later Get or GetMut panics.
func (g *Grid[T]) IntoRows() [][]T {
	rows := g.rows
	g.rows, g.shape = nil, Shape{}

	return rows
}
