package floydwarshall_test

import (
	"fmt"

	"github.com/katalvlaran/arrays/floydwarshall"
	"github.com/katalvlaran/arrays/grid"
)

// ExampleSolve finds that the two-hop route 0→2→1 beats the direct edge.
func ExampleSolve() {
	w := grid.FromView([][]uint8{
		{0, 9, 2},
		{9, 0, 3},
		{2, 3, 0},
	})

	pred, _ := floydwarshall.Solve(w)
	path, _ := floydwarshall.Path(pred, 0, 1)

	fmt.Println(w)
	fmt.Println(path)

	// Output:
	// [[0, 5, 2], [5, 0, 3], [2, 3, 0]]
	// [0 2 1]
}
