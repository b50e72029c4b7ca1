package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/arrays/floydwarshall"
	"github.com/katalvlaran/arrays/grid"
)

// ErrWeightRange is returned for a weight above 254. Negative weights mean "no edge".
var ErrWeightRange = errors.New("cli: weight out of range")

// pathsConfig is the TOML input of the paths command:
//
//	title     = "Result"
//	separator = "="
//	width     = 40
//
//	[graph]
//	weights = [
//	  [0, 1, -1],
//	  [1, 0, 1],
//	  [-1, 1, 0],
//	]
type pathsConfig struct {
	Title     string `toml:"title"`
	Separator string `toml:"separator"`
	Width     int    `toml:"width"`
	Graph     struct {
		Weights [][]int `toml:"weights"`
	} `toml:"graph"`
}

// defaultPathsConfig returns the built-in 8-vertex graph.
func defaultPathsConfig() pathsConfig {
	const x = -1
	var cfg pathsConfig
	cfg.Graph.Weights = [][]int{
		{0, 1, x, x, x, x, 1, x},
		{1, 0, 1, x, x, x, 10, x},
		{x, 1, 0, 1, x, x, x, x},
		{x, x, 1, 0, x, x, x, x},
		{x, x, x, x, 0, 1, 1, x},
		{x, x, x, x, 1, 0, x, 1},
		{1, 10, x, x, 1, x, 0, x},
		{x, x, x, x, x, 1, x, 0},
	}
	cfg.setDefaults()

	return cfg
}

// setDefaults fills presentation fields left empty in the file.
func (c *pathsConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "Result (matrix | predecessors)"
	}
	if c.Separator == "" {
		c.Separator = "-"
	}
	if c.Width <= 0 {
		c.Width = 50
	}
}

// sepRune is the first rune of Separator.
func (c *pathsConfig) sepRune() rune {
	for _, r := range c.Separator {
		return r
	}
	return '-'
}

// loadPathsConfig decodes a TOML file. Unknown keys are rejected so typos in
// the file do not go unnoticed.
func loadPathsConfig(path string) (pathsConfig, error) {
	var cfg pathsConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.setDefaults()

	return cfg, nil
}

// weights converts the configured matrix into a weight grid.
// Negative entries become floydwarshall.Inf; empty or ragged input is
// rejected by grid.New.
func (c *pathsConfig) weights() (*grid.Grid[uint8], error) {
	rows := make([][]uint8, len(c.Graph.Weights))
	for i, src := range c.Graph.Weights {
		rows[i] = make([]uint8, len(src))
		for j, v := range src {
			switch {
			case v < 0:
				rows[i][j] = floydwarshall.Inf
			case v >= int(floydwarshall.Inf):
				return nil, fmt.Errorf("weights[%d][%d] = %d: %w", i, j, v, ErrWeightRange)
			default:
				rows[i][j] = uint8(v)
			}
		}
	}

	return grid.New(rows)
}
