// SPDX-License-Identifier: MIT
package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatmesh/config"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Ingest.Strict)
	assert.Equal(t, 0.5, cfg.Remesh.TargetEdgeLength)
	assert.Equal(t, 10, cfg.Remesh.Iterations)
	assert.Equal(t, 10000, cfg.Delaunay.MaxPasses)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestDecode_Partial keeps defaults for keys the document does not set.
func TestDecode_Partial(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
[ingest]
strict = true

[remesh]
target_edge_length = 0.25
`))
	require.NoError(t, err)
	assert.True(t, cfg.Ingest.Strict)
	assert.Equal(t, 0.25, cfg.Remesh.TargetEdgeLength)
	assert.Equal(t, 10, cfg.Remesh.Iterations)
	assert.Equal(t, 10000, cfg.Delaunay.MaxPasses)
}

func TestDecode_Rejects(t *testing.T) {
	tests := map[string]string{
		"zero length":    "[remesh]\ntarget_edge_length = 0.0\n",
		"negative iters": "[remesh]\niterations = -1\n",
		"zero passes":    "[delaunay]\nmax_passes = 0\n",
		"bad level":      "[log]\nlevel = \"loud\"\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := config.Decode(strings.NewReader("[remesh]\ntarget_edge = 1.0\n"))
	require.Error(t, err)
	var strict *toml.StrictMissingError
	assert.True(t, errors.As(err, &strict), "got %v", err)
}

func TestDecode_Syntax(t *testing.T) {
	_, err := config.Decode(strings.NewReader("[remesh\n"))
	require.Error(t, err)
	var de *toml.DecodeError
	assert.True(t, errors.As(err, &de), "got %v", err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heatmesh.toml")
	require.NoError(t, os.WriteFile(path, []byte("[delaunay]\nmax_passes = 50\n[log]\nlevel = \"debug\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Delaunay.MaxPasses)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
