// Package cli implements the arrays command-line interface.
//
// The CLI exercises the grid container end to end:
//   - demo:  build grids from owned and viewed rows, write through indices,
//     iterate shared, exclusive and consuming.
//   - paths: run Floyd–Warshall over a weight matrix (built in, or loaded
//     from a TOML file) and print distances, predecessors and paths.
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command's context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "arrays"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected via ldflags at build time.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Two-dimensional grid container demos",
		Long:         `arrays demonstrates a generic row-major 2D grid: construction, indexed access, iteration and an all-pairs shortest path run over a grid of weights.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.pathsCommand())

	return root
}
