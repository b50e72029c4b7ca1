// SPDX-License-Identifier: MIT

// Package grid - iteration.
//
// Three access patterns, all in row-major order:
//   - shared    (Iter, All): rows are copied on read, so nothing a loop body
//     does to a yielded row reaches the grid; restartable.
//   - exclusive (IterMut): yields the live rows for in-place writes; the grid
//     must not be read or iterated elsewhere until the loop ends.
//   - consuming (Drain): detaches the rows from the grid and yields each one
//     exactly once.

package grid

import (
	"iter"
	"slices"
)

// Iter yields a copy of every row, top to bottom.
// Complexity: O(c) per yielded row.
func (g *Grid[T]) Iter() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for _, row := range g.rows {
			if !yield(slices.Clone(row)) {
				return
			}
		}
	}
}

// All is Iter with the row index.
func (g *Grid[T]) All() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i, row := range g.rows {
			if !yield(i, slices.Clone(row)) {
				return
			}
		}
	}
}

// IterMut yields the row index and the live row slice. Writing row[j] inside
// the loop updates the grid in place:
//
//	for _, row := range g.IterMut() {
//		for j := range row {
//			row[j] *= 2
//		}
//	}
func (g *Grid[T]) IterMut() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i, row := range g.rows {
			if !yield(i, slices.Clip(row)) { // clipped: append cannot reach spare capacity
				return
			}
		}
	}
}

// Drain empties the grid immediately, as IntoRows does, and returns a
// one-shot sequence over the detached rows. Rows already yielded are not
// yielded again: ranging a second time continues after the last yielded row,
// or yields nothing once the first range ran to completion.
func (g *Grid[T]) Drain() iter.Seq[[]T] {
	rows := g.IntoRows()

	return func(yield func([]T) bool) {
		for len(rows) > 0 {
			row := rows[0]
			rows[0] = nil // drop our reference, ownership moves to the caller
			rows = rows[1:]
			if !yield(row) {
				return
			}
		}
	}
}

// Each calls fn for every stored element in row-major order.
func (g *Grid[T]) Each(fn func(row, col int, v T)) {
	var i, j int
	for i = range g.rows {
		for j = range g.rows[i] {
			fn(i, j, g.rows[i][j])
		}
	}
}
