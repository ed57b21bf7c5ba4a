package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "script demo")
	assert.Contains(t, out, "[4 3 2]")
	assert.Contains(t, out, "[3 4]")
	assert.Contains(t, out, "reallocations")
}

func TestRunCommand(t *testing.T) {
	script := filepath.Join("..", "..", "internal", "scenario", "testdata", "doubling.yaml")
	out, err := execute(t, "run", script)
	require.NoError(t, err)
	assert.Contains(t, out, "script doubling")
	assert.Contains(t, out, "[4 3 2]")
}

func TestRunCommandStepError(t *testing.T) {
	script := filepath.Join("..", "..", "internal", "scenario", "testdata", "out_of_bounds.yaml")
	out, err := execute(t, "run", script)
	require.Error(t, err)
	assert.Contains(t, out, "Index out of bounds.")
}

func TestRunCommandNeedsScript(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}

func TestGrowthCommand(t *testing.T) {
	out, err := execute(t, "growth", "--initial", "1", "--count", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "capacity after each append (initial 1)")
	// 1 -> 2 -> 4 -> 8 -> 16 -> 32
	assert.Regexp(t, `reallocations\S*\s+\S*5\b`, out)

	_, err = execute(t, "growth", "--count", "0")
	assert.Error(t, err)
}
