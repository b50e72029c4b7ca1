// SPDX-License-Identifier: MIT

package floydwarshall_test

import (
	"github.com/katalvlaran/arrays/floydwarshall"
	"github.com/katalvlaran/arrays/grid"
)

const inf = floydwarshall.Inf

// sampleWeights is the undirected 8-vertex graph used across tests: two
// clusters {0,1,2,3} and {4,5,7} joined through vertex 6.
func sampleWeights() *grid.Grid[uint8] {
	return grid.FromView([][]uint8{
		{0, 1, inf, inf, inf, inf, 1, inf},
		{1, 0, 1, inf, inf, inf, 10, inf},
		{inf, 1, 0, 1, inf, inf, inf, inf},
		{inf, inf, 1, 0, inf, inf, inf, inf},
		{inf, inf, inf, inf, 0, 1, 1, inf},
		{inf, inf, inf, inf, 1, 0, inf, 1},
		{1, 10, inf, inf, 1, inf, 0, inf},
		{inf, inf, inf, inf, inf, 1, inf, 0},
	})
}
