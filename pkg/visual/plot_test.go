package visual_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/visual"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScorePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.png")

	err := visual.ScorePlot(
		[][]float64{{1, 2}, {-1, 0.5}, {0.3, -1.2}},
		[]string{"1", "2", "3"},
		"Scores", "Dim 1", "Dim 2", path,
	)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestScorePlot_OneAxis(t *testing.T) {
	err := visual.ScorePlot(
		[][]float64{{1}, {2}},
		nil,
		"Scores", "Dim 1", "Dim 2",
		filepath.Join(t.TempDir(), "scores.png"),
	)
	require.Error(t, err)
}

func TestBiplot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biplot.png")

	err := visual.Biplot(
		[][]float64{{2, 1}, {-2, -1}, {1, -1}},
		[][]float64{{0.7, 0.1}, {-0.7, 0.1}, {0, 0.99}},
		[]string{"eta", "reddito", "ore"},
		"Biplot", "Dim 1", "Dim 2", path,
	)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestSymmetricMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")

	err := visual.SymmetricMap(
		[][]float64{{1, 0.2}, {-1, -0.2}},
		[]string{"2023Q1", "2023Q2"},
		[][]float64{{0.8, 0.5}, {-0.8, -0.5}},
		[]string{"tema=etica", "tema=lavoro"},
		"Mappa simmetrica", "Dim 1", "Dim 2", path,
	)
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.png")

	err := visual.BarChart(
		[]string{"robot", "etica", "lavoro"},
		[]float64{3, 2, 2},
		"Frequenze", path,
	)
	require.NoError(t, err)
	assertPNG(t, path)
}
