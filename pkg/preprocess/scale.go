// Package preprocess prepares loaded tables for the fitters: column
// standardization for the numeric (PCA) flow, tokenization and indicator
// encoding for the categorical (MCA) flow.
package preprocess

import (
	"fmt"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/stats"
)

// StandardScaler rescales each column to zero mean and unit variance so
// every variable carries equal weight in the decomposition. Population
// standard deviation is used, which makes the transform idempotent:
// standardizing already-standardized data changes nothing.
type StandardScaler struct {
	Mean []float64
	Std  []float64

	fitted bool
}

// NewStandardScaler returns an unfitted scaler.
func NewStandardScaler() *StandardScaler { return &StandardScaler{} }

// Fit learns per-column means and standard deviations. A zero-variance
// column makes scaling undefined and returns ErrDegenerateVariable.
func (s *StandardScaler) Fit(d *dataset.Numeric) error {
	n, p := d.Dims()
	if n == 0 || p == 0 {
		return fmt.Errorf("%w: empty table", dataset.ErrDataFormat)
	}

	s.Mean = make([]float64, p)
	s.Std = make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			col[i] = d.Rows[i][j]
		}
		s.Mean[j] = stats.Mean(col)
		s.Std[j] = stats.Std(col)
		if s.Std[j] == 0 {
			return fmt.Errorf("%w: column %q is constant", ErrDegenerateVariable, d.Columns[j])
		}
	}
	s.fitted = true
	return nil
}

// Transform returns a new table with each column standardized by the
// fitted parameters. The input is left untouched.
func (s *StandardScaler) Transform(d *dataset.Numeric) (*dataset.Numeric, error) {
	if !s.fitted {
		return nil, fmt.Errorf("preprocess: scaler used before Fit")
	}
	n, p := d.Dims()
	if p != len(s.Mean) {
		return nil, fmt.Errorf("%w: fitted on %d columns, got %d", dataset.ErrDataFormat, len(s.Mean), p)
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, p)
		for j := 0; j < p; j++ {
			row[j] = (d.Rows[i][j] - s.Mean[j]) / s.Std[j]
		}
		rows[i] = row
	}
	return &dataset.Numeric{Columns: d.Columns, Rows: rows}, nil
}

// FitTransform fits the scaler and standardizes in one step.
func (s *StandardScaler) FitTransform(d *dataset.Numeric) (*dataset.Numeric, error) {
	if err := s.Fit(d); err != nil {
		return nil, err
	}
	return s.Transform(d)
}
