package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 0, c.Components)
	assert.InDelta(t, 0.80, c.VarianceThreshold, 1e-12)
	assert.Equal(t, 1, c.MinCategoryCount)
	assert.Equal(t, ",", c.Delimiter)
	assert.Equal(t, ',', c.Comma())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"components: 3\nvariance_threshold: 0.9\ndelimiter: \";\"\n",
	), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Components)
	assert.InDelta(t, 0.9, c.VarianceThreshold, 1e-12)
	assert.Equal(t, ';', c.Comma())
	// Untouched keys keep their defaults.
	assert.Equal(t, 1, c.MinCategoryCount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "assente.yaml"))
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	in := &config.Analysis{
		Components:        2,
		VarianceThreshold: 0.75,
		MinCategoryCount:  10,
		PlotDir:           "plots",
		Delimiter:         ",",
	}
	require.NoError(t, config.Save(in, path))

	out, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
