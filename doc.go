// Package arrays is a small toolkit around one container: a generic, dense,
// row-major two-dimensional grid.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/          — Grid[T]: construction, (row, col) access, iteration, formatting
//	floydwarshall/ — all-pairs shortest paths over a Grid[uint8] of weights
//	gridmat/       — copy Grid[float64] to and from gonum's mat.Dense
//
// Quick example:
//
//	g := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	*g.GetMut(1, 1) = 10
//	fmt.Println(g) // [[1, 2, 3], [4, 10, 6], [7, 8, 9]]
//
// The arrays command (cmd/arrays) runs the same API end to end:
//
//	go run ./cmd/arrays demo
//	go run ./cmd/arrays paths --config graph.toml
package arrays
