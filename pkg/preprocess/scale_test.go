package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/preprocess"
)

func table(cols []string, rows ...[]float64) *dataset.Numeric {
	return &dataset.Numeric{Columns: cols, Rows: rows}
}

func TestStandardScaler(t *testing.T) {
	d := table([]string{"a", "b"},
		[]float64{1, 10},
		[]float64{2, 20},
		[]float64{3, 30},
		[]float64{4, 40},
	)

	s := preprocess.NewStandardScaler()
	out, err := s.FitTransform(d)
	require.NoError(t, err)

	assert.InDelta(t, 2.5, s.Mean[0], 1e-12)
	assert.InDelta(t, 1.118033988749895, s.Std[0], 1e-12)
	assert.InDelta(t, -1.3416407864998738, out.Rows[0][0], 1e-12)
	assert.InDelta(t, 1.3416407864998738, out.Rows[3][1], 1e-12)

	// Input untouched.
	assert.Equal(t, 1.0, d.Rows[0][0])

	// Every column now has zero mean and unit variance.
	for j := 0; j < 2; j++ {
		sum, sumSq := 0.0, 0.0
		for _, row := range out.Rows {
			sum += row[j]
			sumSq += row[j] * row[j]
		}
		assert.InDelta(t, 0, sum, 1e-12)
		assert.InDelta(t, 1, sumSq/float64(len(out.Rows)), 1e-12)
	}
}

func TestStandardScaler_Idempotent(t *testing.T) {
	d := table([]string{"a", "b"},
		[]float64{1, 5},
		[]float64{2, 9},
		[]float64{4, 2},
		[]float64{7, 6},
	)

	once, err := preprocess.NewStandardScaler().FitTransform(d)
	require.NoError(t, err)
	twice, err := preprocess.NewStandardScaler().FitTransform(once)
	require.NoError(t, err)

	for i := range once.Rows {
		for j := range once.Rows[i] {
			assert.InDelta(t, once.Rows[i][j], twice.Rows[i][j], 1e-12)
		}
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	d := table([]string{"a", "costante"},
		[]float64{1, 7},
		[]float64{2, 7},
		[]float64{3, 7},
	)

	err := preprocess.NewStandardScaler().Fit(d)
	require.ErrorIs(t, err, preprocess.ErrDegenerateVariable)
	assert.Contains(t, err.Error(), `"costante"`)
}

func TestStandardScaler_TransformBeforeFit(t *testing.T) {
	d := table([]string{"a"}, []float64{1}, []float64{2})
	_, err := preprocess.NewStandardScaler().Transform(d)
	require.Error(t, err)
}

func TestStandardScaler_WidthMismatch(t *testing.T) {
	d := table([]string{"a", "b"}, []float64{1, 2}, []float64{3, 4})
	s := preprocess.NewStandardScaler()
	require.NoError(t, s.Fit(d))

	_, err := s.Transform(table([]string{"a"}, []float64{1}, []float64{2}))
	require.ErrorIs(t, err, dataset.ErrDataFormat)
}
