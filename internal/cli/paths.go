package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/arrays/floydwarshall"
	"github.com/katalvlaran/arrays/grid"
)

func (c *CLI) pathsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Run Floyd–Warshall over a weight matrix and print every path",
		Long: `Run all-pairs shortest paths over a weight matrix and print the
matrix, the distance | predecessor table and the path between every pair.

Without --config the built-in 8-vertex graph is used. A config file is TOML
with a [graph] table holding "weights", a square array of integer rows where
negative entries mean "no edge".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg := defaultPathsConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadPathsConfig(configPath); err != nil {
					return err
				}
				logger.Debug("loaded config", "path", configPath, "vertices", len(cfg.Graph.Weights))
			}

			return runPaths(cmd.OutOrStdout(), logger, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file with a [graph] weights matrix")

	return cmd
}

// runPaths solves cfg's graph and prints the three report sections to w.
func runPaths(w io.Writer, logger *log.Logger, cfg pathsConfig) error {
	weights, err := cfg.weights()
	if err != nil {
		return fmt.Errorf("weights: %w", err)
	}

	st := newStyles(w)
	sep, width := cfg.sepRune(), cfg.Width

	st.printSep(w, "Matrix", sep, width)
	for row := range weights.Iter() {
		for _, v := range row {
			fmt.Fprintf(w, "%4d ", v)
		}
		fmt.Fprintln(w)
	}

	p := newProgress(logger)
	pred, err := floydwarshall.Solve(weights)
	if err != nil {
		return err
	}
	p.done("solved", "vertices", weights.Rows())

	st.printSep(w, cfg.Title, sep, width)
	printTable(w, st, weights, pred)

	st.printSep(w, "Paths", sep, width)
	n := pred.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			path, err := floydwarshall.Path(pred, i, j)
			if err != nil {
				logger.Debug("unreachable", "from", i, "to", j, "err", err)
				fmt.Fprintf(w, "<%d..%d> = %s\n", i, j, st.miss.Render("no path"))
				continue
			}
			fmt.Fprintf(w, "<%d..%d> = %v\n", i, j, path)
		}
	}

	return nil
}

// printTable prints distances and predecessors side by side, one vertex per line.
func printTable(w io.Writer, st styles, dist *grid.Grid[uint8], pred *grid.Grid[int]) {
	for i, predRow := range pred.All() {
		for _, d := range dist.Row(i) {
			if d == floydwarshall.Inf {
				fmt.Fprintf(w, "%2s ", st.miss.Render("∞"))
				continue
			}
			fmt.Fprintf(w, "%2d ", d)
		}
		fmt.Fprint(w, " |")
		for _, v := range predRow {
			fmt.Fprintf(w, "%2d ", v)
		}
		fmt.Fprintln(w)
	}
}
