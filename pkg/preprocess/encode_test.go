package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/preprocess"
)

func categorical(cols []string, rows ...[]string) *dataset.Categorical {
	return &dataset.Categorical{Columns: cols, Rows: rows}
}

func TestEncode(t *testing.T) {
	d := categorical([]string{"colore", "forma"},
		[]string{"rosso", "cerchio"},
		[]string{"blu", "quadrato"},
		[]string{"rosso", "quadrato"},
	)

	ind, err := preprocess.Encode(d, 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"colore=rosso", "colore=blu", "forma=cerchio", "forma=quadrato"}, ind.Columns)
	assert.Equal(t, 2, ind.NumVars)
	assert.Equal(t, [][]float64{
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 0, 1},
	}, ind.X)
	assert.Equal(t, []int{0, 1, 2}, ind.RowIndex)
	assert.Zero(t, ind.Dropped)

	// Complete disjunctive: every row sums to the variable count.
	for _, row := range ind.X {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.Equal(t, float64(ind.NumVars), sum)
	}
}

func TestEncode_DropsMissingRows(t *testing.T) {
	d := categorical([]string{"colore"},
		[]string{"rosso"},
		[]string{"NA"},
		[]string{"blu"},
	)

	ind, err := preprocess.Encode(d, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, ind.Dropped)
	assert.Equal(t, []int{0, 2}, ind.RowIndex)
}

func TestEncode_MinCountCascades(t *testing.T) {
	// Dropping the only "en" row leaves "lavoro" under the threshold too,
	// so the filter has to run again.
	d := categorical([]string{"lingua", "tema"},
		[]string{"it", "ai"},
		[]string{"it", "ai"},
		[]string{"it", "lavoro"},
		[]string{"en", "lavoro"},
	)

	ind, err := preprocess.Encode(d, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"lingua=it", "tema=ai"}, ind.Columns)
	assert.Equal(t, []int{0, 1}, ind.RowIndex)
	assert.Equal(t, 2, ind.Dropped)
}

func TestEncode_AllMissingColumn(t *testing.T) {
	d := categorical([]string{"colore", "vuota"},
		[]string{"rosso", ""},
		[]string{"blu", "NA"},
	)

	_, err := preprocess.Encode(d, 1)
	require.ErrorIs(t, err, preprocess.ErrEmptyCategory)
	assert.Contains(t, err.Error(), `"vuota"`)
}

func TestEncode_EverythingFiltered(t *testing.T) {
	d := categorical([]string{"colore"},
		[]string{"rosso"},
		[]string{"blu"},
	)

	_, err := preprocess.Encode(d, 2)
	require.ErrorIs(t, err, preprocess.ErrEmptyCategory)
}

func TestEncode_EmptyTable(t *testing.T) {
	_, err := preprocess.Encode(&dataset.Categorical{Columns: []string{"a"}}, 1)
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}
