package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrays/grid"
)

func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through construction, indexing and iteration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loggerFromContext(cmd.Context()).Debug("running demo")
			runDemo(cmd.OutOrStdout())
			return nil
		},
	}
}

// runDemo prints the guided tour of the grid API to w.
func runDemo(w io.Writer) {
	owned := [][]int{
		{1, 2, 3, 4, 5, 6},
		{4, 5, 6, 7, 8, 9},
		{7, 8, 9, 1, 2, 3},
	}
	view := [][]uint8{
		{1, 2, 3},
		{4, 5, 6},
		{0, 0, 0},
	}

	// Take ownership of a nested slice, or copy from a read-only view.
	s := grid.FromRows(owned)
	m := grid.FromView(view)
	fmt.Fprintf(w, "s_array = %v\n", s)
	fmt.Fprintf(w, "M = %v\n", m)

	// Indexed read and write.
	for i := 0; i < 3; i++ {
		*m.GetMut(2, i) = m.Get(0, i) + m.Get(1, i)
	}

	// Shared iteration.
	for row := range m.Iter() {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w)

	// Exclusive iteration.
	for _, row := range m.IterMut() {
		for j := range row {
			row[j] *= 2
		}
	}

	// Consuming iteration; m is empty afterwards.
	for row := range m.Drain() {
		fmt.Fprintln(w, row)
	}
}
