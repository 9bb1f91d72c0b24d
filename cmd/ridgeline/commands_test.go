package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridgeline/config"
	"github.com/katalvlaran/ridgeline/heightmap"
	"github.com/katalvlaran/ridgeline/solver"
)

const sample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// execute runs the root command with args and stdin, returning stdout and
// stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_Stdin(t *testing.T) {
	for _, args := range [][]string{{"solve"}, {"solve", "-"}} {
		out, _, err := execute(t, sample, args...)
		require.NoError(t, err)
		assert.Equal(t, "start to end: 31\nnearest lowland to end: 29\n", out)
	}
}

func TestSolve_File(t *testing.T) {
	path := writeFile(t, "input.txt", sample)

	out, _, err := execute(t, "", "solve", path, "--estimate", "target")
	require.NoError(t, err)
	assert.Equal(t, "start to end: 31\nnearest lowland to end: 29\n", out)
}

func TestSolve_NoRoute(t *testing.T) {
	out, _, err := execute(t, "Sbz\nabz\nabE", "solve")
	require.NoError(t, err)
	assert.Equal(t, "start to end: no route found\nnearest lowland to end: no route found\n", out)
}

func TestSolve_Path(t *testing.T) {
	out, _, err := execute(t, sample, "solve", "--path")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "start to end: 31\nnearest lowland to end: 29\n\n"))
	assert.Contains(t, out, "Sabqponm\n..cryxxl\n")
	assert.Contains(t, out, ".cctuvwj\nabdefghi\n")
}

func TestSolve_Logging(t *testing.T) {
	_, errOut, err := execute(t, sample, "solve", "--log-level", "debug", "--json-logs")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"solved"`)
	assert.Contains(t, errOut, `"run_id"`)
}

func TestSolve_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "ridgeline.yaml", "search:\n  return_path: true\nlog:\n  level: error\n")

	out, errOut, err := execute(t, sample, "--config", cfgPath, "solve")
	require.NoError(t, err)
	assert.Contains(t, out, "..defghi")
	assert.Empty(t, errOut)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, sample, "solve", "--estimate", "euclid")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, sample, "solve", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "Sab\nabc", "solve")
	assert.ErrorIs(t, err, solver.ErrParse)
	assert.ErrorIs(t, err, heightmap.ErrMissingMarker)

	_, _, err = execute(t, "", "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "solve")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, sample, "solve", "a", "b")
	assert.Error(t, err)
}
