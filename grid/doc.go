// Package grid provides Grid, a generic dense two-dimensional container.
//
// What:
//
//   - Grid[T] stores its elements row-major as a slice of owned rows and
//     records its Shape (rows × cols) once, at construction.
//   - Elements are addressed by a (row, col) pair through Get / GetMut, or
//     through the checked At / Set pair that returns ErrOutOfRange.
//   - Three iteration styles: shared (Iter, All), exclusive (IterMut) and
//     consuming (Drain, IntoRows).
//
// Why:
//
//   - Distance tables, predecessor tables, game boards and other small dense
//     tables that are naturally written as [][]T literals.
//
// Construction:
//
//   - Zeros(shape)  — every element is T's zero value.
//   - FromRows(v)   — takes ownership of v, no copy.
//   - FromView(v)   — deep copy of a read-only nested slice.
//   - New(v)        — like FromView but rejects empty and ragged input.
//
// Errors:
//
//   - Get, GetMut, FromRows and FromView do not validate: an index outside the
//     shape (or an empty input) panics with the runtime's index-out-of-range.
//     Check coordinates against Shape() first.
//   - At, Set and New return ErrOutOfRange, ErrEmpty or ErrRagged instead.
//
// Concurrency:
//
//   - A Grid is not safe for concurrent mutation. Concurrent readers are fine;
//     a writer (Set, GetMut, IterMut) needs exclusive access.
//
// Complexity:
//
//   - Zeros, FromView, Clone: O(r*c). FromRows, Shape, Get, GetMut: O(1).
//   - Iter / All copy one row per step: O(c) per row.
package grid
