// SPDX-License-Identifier: MIT

// Package gridmat moves float64 grids in and out of gonum's mat package.
//
// Only data movement lives here; arithmetic is left to gonum itself.
//
// Complexity: ToDense and FromMatrix are O(r*c) and always copy.
package gridmat

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/arrays/grid"
)

// ToDense flattens g row-major into a new *mat.Dense of the same shape.
// A grid with no cells yields nil, since gonum rejects zero dimensions.
func ToDense(g *grid.Grid[float64]) *mat.Dense {
	s := g.Shape()
	if s.Len() == 0 {
		return nil
	}

	data := make([]float64, 0, s.Len())
	for row := range g.Iter() {
		data = append(data, row...)
	}

	return mat.NewDense(s.Rows, s.Cols, data)
}

// FromMatrix copies any gonum matrix into a freshly allocated grid.
func FromMatrix(m mat.Matrix) *grid.Grid[float64] {
	r, c := m.Dims()
	g := grid.Zeros[float64](grid.Shape{Rows: r, Cols: c})

	var i, j int
	for i = 0; i < r; i++ {
		row := g.Row(i)
		for j = 0; j < c; j++ {
			row[j] = m.At(i, j)
		}
	}

	return g
}
