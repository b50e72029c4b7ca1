package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output and log text.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var logs, out, errOut bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()
	return out.String(), logs.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	names := make([]string, 0, 2)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	require.Subset(t, names, []string{"demo", "paths"})
}

func TestRootCommand_Demo(t *testing.T) {
	out, logs, err := execute(t, "demo")
	require.NoError(t, err)
	require.Contains(t, out, "M = [[1, 2, 3], [4, 5, 6], [0, 0, 0]]")
	require.Contains(t, logs, "running demo")
}

func TestRootCommand_PathsConfigFlag(t *testing.T) {
	path := writeConfig(t, "[graph]\nweights = [[0, 7], [7, 0]]\n")

	out, logs, err := execute(t, "paths", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "<0..1> = [0 1]")
	require.Contains(t, logs, "loaded config")
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "demo", "extra")
	require.Error(t, err)
}
