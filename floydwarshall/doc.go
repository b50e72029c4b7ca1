// Package floydwarshall computes all-pairs shortest paths over a small dense
// weight grid and restores the vertex sequence of any shortest path.
//
// What:
//
//   - Solve relaxes a square *grid.Grid[uint8] of edge weights in place,
//     turning it into a distance table, and returns a predecessor grid.
//   - Path walks the predecessor grid back from the destination.
//
// Conventions:
//
//   - Inf (255) marks a missing edge; the largest usable distance is 254.
//   - The diagonal is expected to be 0 (distance to self).
//   - Sums that overflow uint8, or that land on Inf, never relax an entry.
//
// Determinism:
//
//   - Fixed k → i → j loop order and strict-improvement relaxation, so ties
//     keep the first path found.
//
// Complexity:
//
//   - Solve: O(n³) time, O(n²) extra space for the predecessor grid.
//   - Path:  O(n).
//
// Errors:
//
//   - ErrNilGrid, ErrNonSquare, ErrOutOfRange, ErrNoPath.
package floydwarshall
