package describe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/describe"
)

func articles() *dataset.Categorical {
	return &dataset.Categorical{
		Columns: []string{"giornale", "term"},
		Rows: [][]string{
			{"corriere", "lavoro"},
			{"corriere", "lavoro"},
			{"corriere", "etica"},
			{"wired", "robot"},
			{"wired", "robot"},
			{"wired", "robot"},
			{"wired", "etica"},
			{"wired", "NA"},
		},
	}
}

func TestFrequencies(t *testing.T) {
	rows, err := describe.Frequencies(articles(), "term", 0)
	require.NoError(t, err)

	// Ordered by count, ties broken alphabetically; the NA marker is skipped.
	assert.Equal(t, []describe.FrequencyRow{
		{Value: "robot", Count: 3},
		{Value: "etica", Count: 2},
		{Value: "lavoro", Count: 2},
	}, rows)
}

func TestFrequencies_TopK(t *testing.T) {
	rows, err := describe.Frequencies(articles(), "term", 1)
	require.NoError(t, err)
	assert.Equal(t, []describe.FrequencyRow{{Value: "robot", Count: 3}}, rows)
}

func TestFrequencies_UnknownColumn(t *testing.T) {
	_, err := describe.Frequencies(articles(), "tema", 0)
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}

func TestGroupedFrequencies(t *testing.T) {
	got, err := describe.GroupedFrequencies(articles(), "term", "giornale", 2, 0)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, []describe.FrequencyRow{{Value: "lavoro", Count: 2}}, got["corriere"])
	assert.Equal(t, []describe.FrequencyRow{{Value: "robot", Count: 3}}, got["wired"])
}

func TestSummarize(t *testing.T) {
	d := &dataset.Numeric{
		Columns: []string{"eta"},
		Rows:    [][]float64{{1}, {2}, {3}, {4}},
	}

	s := describe.Summarize(d)
	require.Len(t, s, 1)
	assert.Equal(t, "eta", s[0].Column)
	assert.InDelta(t, 2.5, s[0].Mean, 1e-12)
	assert.InDelta(t, 1.118033988749895, s[0].Std, 1e-12)
	assert.Equal(t, 1.0, s[0].Min)
	assert.Equal(t, 4.0, s[0].Max)
	assert.InDelta(t, 1.75, s[0].Q1, 1e-12)
	assert.InDelta(t, 2.5, s[0].Median, 1e-12)
	assert.InDelta(t, 3.25, s[0].Q3, 1e-12)
}

func TestContingency(t *testing.T) {
	rowLabels, colLabels, counts, err := describe.Contingency(articles(), "giornale", "term")
	require.NoError(t, err)

	// First-appearance ordering on both margins.
	assert.Equal(t, []string{"corriere", "wired"}, rowLabels)
	assert.Equal(t, []string{"lavoro", "etica", "robot"}, colLabels)
	assert.Equal(t, [][]float64{
		{2, 1, 0},
		{0, 1, 3},
	}, counts)
}
