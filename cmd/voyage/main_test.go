// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/voyage/instance"
	"github.com/katalvlaran/voyage/market/markettest"
	"github.com/katalvlaran/voyage/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with quiet logging and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"voyage", "--log-level", "error"}, args...))

	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractional.yaml")
	require.NoError(t, instance.Save(path, markettest.Fractional()))

	for _, algo := range solver.AlgorithmNames() {
		out, err := run(t, "solve", "--instance", path, "--algo", algo)
		require.NoError(t, err, algo)
		assert.Equal(t, "27.37\n", out, algo)
	}
}

func TestSolveCommand_Plan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.yaml")
	require.NoError(t, instance.Save(path, markettest.LongHarbor()))

	out, err := run(t, "solve", "-i", path, "--algo", "interleaved", "--workers", "2", "--plan")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "8.00\n"))
	assert.Contains(t, out, "route:")
	assert.Contains(t, out, "stops:")
}

func TestSolveCommand_Errors(t *testing.T) {
	_, err := run(t, "solve", "--instance", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "long.yaml")
	require.NoError(t, instance.Save(path, markettest.LongHarbor()))
	_, err = run(t, "solve", "--instance", path, "--algo", "bogus")
	assert.ErrorIs(t, err, solver.ErrUnsupportedAlgorithm)
}

func TestGenerateThenSolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	out, err := run(t, "generate", "--out", path, "--seed", "7", "--min-ports", "4", "--max-ports", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "4 ports")

	in, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, in.Ports())

	out, err = run(t, "solve", "--instance", path)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--cases", "5", "--seed", "3", "--max-ports", "4", "--iterations", "300")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "[OK]"))
	assert.Contains(t, out, "5/5 cases passed")
}

func TestCheckCommand_BadCases(t *testing.T) {
	_, err := run(t, "check", "--cases", "0")
	assert.Error(t, err)
}

func TestGlobalFlags_BadLogFormat(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "check", "--cases", "1")
	assert.Error(t, err)
}
