// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"slices"

	"github.com/katalvlaran/arrays/grid"
)

// Path restores the shortest path from → to out of a predecessor grid
// produced by Solve. The result starts with from and ends with to; a path
// from a vertex to itself is just [from].
//
// Errors:
//   - ErrNilGrid / ErrNonSquare for a bad pred grid.
//   - ErrOutOfRange when from or to is not a vertex.
//   - ErrNoPath when to is unreachable, or pred does not lead back to from.
//
// Complexity: O(n).
func Path(pred *grid.Grid[int], from, to int) ([]int, error) {
	if err := validateSquare(pred); err != nil {
		return nil, fwErrorf(opPath, err)
	}
	n := pred.Rows()
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fwErrorf(opPath, ErrOutOfRange)
	}
	if from == to {
		return []int{from}, nil
	}

	row := pred.Row(from)
	path := make([]int, 0, n)
	path = append(path, to)
	for cur := to; cur != from; {
		cur = row[cur]
		if cur == NoPred || cur < 0 || cur >= n || len(path) > n {
			return nil, fwErrorf(opPath, ErrNoPath)
		}
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
