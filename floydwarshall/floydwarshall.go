// SPDX-License-Identifier: MIT
// Package: floydwarshall
//
// Purpose:
//   - Dense APSP over uint8 weights with deterministic loop order.
//   - In-place on the weight grid; predecessors are tracked in a second grid.
//
// Contract:
//   - Square grid; Inf means "no edge"; diagonal must be 0 before calling.

package floydwarshall

import (
	"fmt"

	"github.com/katalvlaran/arrays/grid"
)

// addUint8 returns a+b and whether the sum fits in a uint8.
func addUint8(a, b uint8) (uint8, bool) {
	sum := uint16(a) + uint16(b)

	return uint8(sum), sum <= uint16(Inf)
}

// validateSquare checks for a non-nil square grid.
func validateSquare[T any](g *grid.Grid[T]) error {
	if g == nil {
		return ErrNilGrid
	}
	if s := g.Shape(); s.Rows != s.Cols {
		return fmt.Errorf("%dx%d: %w", s.Rows, s.Cols, ErrNonSquare)
	}

	return nil
}

// initPredecessors builds the starting predecessor grid:
//
//	pred[v][u] = v when there is a direct edge v→u (v != u), NoPred otherwise.
//
// Complexity: O(n²).
func initPredecessors(w *grid.Grid[uint8]) *grid.Grid[int] {
	n := w.Rows()
	pred := grid.Zeros[int](w.Shape())

	var v, u int
	for v = 0; v < n; v++ {
		wv, pv := w.Row(v), pred.Row(v)
		for u = 0; u < n; u++ {
			if wv[u] != Inf && v != u {
				pv[u] = v
			} else {
				pv[u] = NoPred
			}
		}
	}

	return pred
}

// Solve runs Floyd–Warshall on w in place and returns the predecessor grid.
//
// After Solve, w.Get(i, j) is the shortest i→j distance (Inf if unreachable)
// and pred.Get(i, j) is the vertex right before j on that path, or NoPred.
//
// Errors:
//   - ErrNilGrid for a nil w, ErrNonSquare for a non-square w.
//
// Complexity: Time O(n³), extra space O(n²).
func Solve(w *grid.Grid[uint8]) (*grid.Grid[int], error) {
	if err := validateSquare(w); err != nil {
		return nil, fwErrorf(opSolve, err)
	}

	n := w.Rows()
	pred := initPredecessors(w)

	var (
		k, i, j    int
		ik, kj     uint8 // distances w[i,k], w[k,j]
		cand       uint8 // candidate via k
		ok         bool
		wk, wi     []uint8
		predK, prI []int
	)

	for k = 0; k < n; k++ { // outer: intermediate vertex
		wk, predK = w.Row(k), pred.Row(k)

		for i = 0; i < n; i++ { // middle: source
			wi, prI = w.Row(i), pred.Row(i)
			ik = wi[k]
			if ik == Inf { // i cannot reach k
				continue
			}

			for j = 0; j < n; j++ { // inner: destination
				kj = wk[j]
				if kj == Inf {
					continue
				}
				cand, ok = addUint8(ik, kj)
				if !ok {
					continue // overflow never relaxes
				}
				if cand < wi[j] { // strict improvement only
					wi[j] = cand
					prI[j] = predK[j]
				}
			}
		}
	}

	return pred, nil
}
