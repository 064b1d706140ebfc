package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/math-tools/factor-calc/internal/report"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml"), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestComputeCommand(t *testing.T) {
	out, err := execute(t, "", "compute", "12", "18", "--mode", "lcm")
	require.NoError(t, err)
	assert.Equal(t,
		"12 = 2^2 · 3^1\n"+
			"18 = 2^1 · 3^2\n"+
			"LCM(12, 18) = 2^2 · 3^2\n"+
			"LCM value: 36\n"+
			"Submission format: 2^2 * 3^2\n",
		out)
}

func TestComputeCommandDefaultModeAndExport(t *testing.T) {
	out, err := execute(t, "", "compute", "12", "18", "--export")
	require.NoError(t, err)
	assert.Equal(t, "2^1 * 3^1\n", out)
}

func TestComputeCommandInvalidInput(t *testing.T) {
	_, err := execute(t, "", "compute", "abc", "18")
	require.Error(t, err)
	assert.Contains(t, err.Error(), report.InvalidInputMessage)
}

func TestREPLCommand(t *testing.T) {
	out, err := execute(t, "12 18\n\n12 18 lcm\nabc 2\n1 2 3 4\nquit\n12 18\n", "repl")
	require.NoError(t, err)

	assert.Contains(t, out, "GCD value: 6")
	assert.Contains(t, out, "LCM value: 36")
	assert.Equal(t, 2, strings.Count(out, report.InvalidInputMessage))
	assert.Contains(t, out, "Exiting...")
	assert.Equal(t, 1, strings.Count(out, "GCD value: 6"))
}

func TestREPLEndOfInput(t *testing.T) {
	out, err := execute(t, "4 6 LCM\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "LCM value: 12")
}

func TestComputeCommandNegativeNumbers(t *testing.T) {
	testCases := [][]string{
		{"compute", "--", "-4", "6"},
		{"compute", "-4", "6"},
		{"compute", "--mode", "lcm", "--", "6", "-4"},
	}

	for _, args := range testCases {
		out, err := execute(t, "", args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), report.InvalidInputMessage, args)
		assert.Empty(t, out)
	}
}
