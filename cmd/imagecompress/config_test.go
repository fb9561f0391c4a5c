package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reinshift/imagecompress/svd"
)

func TestLoadSolverConfig_Overlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solver.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"tolerance: 1e-5\nmax_iterations: 2000\nseed: 42\n"), 0o644))

	cfg, err := LoadSolverConfig(path)
	require.NoError(t, err)

	out := cfg.Apply(svd.DefaultOptions())
	assert.Equal(t, 1e-5, out.Tolerance)
	assert.Equal(t, 2000, out.MaxIterations)
	assert.Equal(t, int64(42), out.Seed)

	// untouched fields keep their defaults
	assert.Equal(t, svd.DefaultLargePixelCount, out.LargePixelCount)
	assert.Equal(t, svd.DefaultLooseTolerance, out.LooseTolerance)
}

func TestLoadSolverConfig_Errors(t *testing.T) {
	_, err := LoadSolverConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tolerance: [not a number"), 0o644))
	_, err = LoadSolverConfig(path)
	assert.Error(t, err)
}
