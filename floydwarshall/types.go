// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Inf marks "no edge" in a weight grid and "unreachable" in the result.
	Inf uint8 = math.MaxUint8

	// NoPred marks a predecessor cell with no path (i == j or j unreachable).
	NoPred = -1
)

var (
	// ErrNilGrid indicates that a nil grid was passed in.
	ErrNilGrid = errors.New("floydwarshall: grid is nil")

	// ErrNonSquare signals that a square weight or predecessor grid was required.
	ErrNonSquare = errors.New("floydwarshall: grid is not square")

	// ErrOutOfRange indicates a vertex index outside [0, n).
	ErrOutOfRange = errors.New("floydwarshall: vertex out of range")

	// ErrNoPath indicates that the destination is unreachable from the source.
	ErrNoPath = errors.New("floydwarshall: no path between vertices")
)

// Operation name constants for unified error wrapping.
const (
	opSolve = "FloydWarshall"
	opPath  = "Path"
)

// fwErrorf wraps err with the operation name.
func fwErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
