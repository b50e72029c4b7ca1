// SPDX-License-Identifier: MIT

package grid_test

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrays/grid"
)

// collect drains a row sequence into a slice.
func collect[T any](seq iter.Seq[[]T]) [][]T {
	var out [][]T
	for row := range seq {
		out = append(out, row)
	}
	return out
}

// TestIter_Restartable ranges the shared iterator twice and expects the same rows.
func TestIter_Restartable(t *testing.T) {
	t.Parallel()

	g := grid.FromRows(square3())
	first := collect(g.Iter())
	second := collect(g.Iter())

	require.Equal(t, square3(), first)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second pass differs (-first +second):\n%s", diff)
	}
}

// TestIter_CopyOnRead checks that a yielded row cannot modify the grid.
func TestIter_CopyOnRead(t *testing.T) {
	t.Parallel()

	g := grid.FromRows(square3())
	for row := range g.Iter() {
		row[0] = -1
	}
	for i, row := range g.All() {
		row[1] = -1
		require.Equal(t, square3()[i][1], g.Get(i, 1))
	}
	require.Equal(t, square3(), g.IntoRows())
}

// TestAll_IndicesAndEarlyExit checks row indices and that break stops the walk.
func TestAll_IndicesAndEarlyExit(t *testing.T) {
	g := grid.FromRows(square3())

	var seen []int
	for i, row := range g.All() {
		seen = append(seen, i)
		require.Equal(t, square3()[i], row)
		if i == 1 {
			break
		}
	}
	require.Equal(t, []int{0, 1}, seen)
}

// TestIterMut_Doubling doubles every element and reads it back through Get.
func TestIterMut_Doubling(t *testing.T) {
	t.Parallel()

	g := grid.FromRows(square3())
	for _, row := range g.IterMut() {
		for j := range row {
			row[j] *= 2
		}
	}

	want := square3()
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			require.Equal(t, want[i][j]*2, g.Get(i, j), "cell (%d,%d)", i, j)
		}
	}
}

// TestIterMut_AppendDoesNotLeak checks that appending to a yielded row leaves
// the grid shape and contents alone.
func TestIterMut_AppendDoesNotLeak(t *testing.T) {
	rows := make([][]int, 2)
	for i := range rows {
		rows[i] = make([]int, 2, 4) // spare capacity
	}
	g := grid.FromRows(rows)

	for _, row := range g.IterMut() {
		row = append(row, 9)
		require.Len(t, row, 3)
	}
	require.Equal(t, grid.Shape{Rows: 2, Cols: 2}, g.Shape())
	require.Equal(t, [][]int{{0, 0}, {0, 0}}, g.IntoRows())
	require.Equal(t, []int{0, 0, 0, 0}, rows[0][:4], "spare capacity untouched")
}

// TestDrain_OneShot checks that consuming iteration empties the grid and
// cannot be repeated.
func TestDrain_OneShot(t *testing.T) {
	t.Parallel()

	g := grid.FromRows(square3())
	seq := g.Drain()

	require.Equal(t, grid.Shape{}, g.Shape(), "grid is emptied as soon as Drain is called")
	require.Empty(t, collect(g.Iter()))

	require.Equal(t, square3(), collect(seq))
	require.Empty(t, collect(seq), "second range must yield nothing")
}

// TestDrain_ResumeAfterBreak checks that rows yielded before a break are not
// yielded again.
func TestDrain_ResumeAfterBreak(t *testing.T) {
	seq := grid.FromRows(square3()).Drain()

	for row := range seq {
		require.Equal(t, []int{1, 2, 3}, row)
		break
	}
	require.Equal(t, [][]int{{4, 5, 6}, {7, 8, 9}}, collect(seq))
}

// TestEach_RowMajor checks visiting order.
func TestEach_RowMajor(t *testing.T) {
	g := grid.FromRows([][]int{{1, 2}, {3, 4}, {5, 6}})

	var got []int
	var coords [][2]int
	g.Each(func(r, c int, v int) {
		got = append(got, v)
		coords = append(coords, [2]int{r, c})
	})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
	require.Equal(t, [2]int{2, 1}, coords[len(coords)-1])
}
