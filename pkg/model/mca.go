package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/KevinM0ney/thesis/pkg/preprocess"
)

// ErrZeroMass indicates a contingency row or column whose counts sum to
// zero; correspondence analysis has no coordinates for it.
var ErrZeroMass = errors.New("model: zero-mass row or column")

// Correspondence is the fitted model shared by simple correspondence
// analysis of a contingency table and multiple correspondence analysis of
// an indicator matrix.
//
// Inertias are the principal inertias (squared singular values) of the
// standardized residual matrix, ordered decreasingly; Ratios normalizes
// them by the total inertia, so they sum to one across all axes. RowCoords
// and ColCoords are principal coordinates: row and column profiles projected
// onto the axes.
type Correspondence struct {
	RowLabels []string
	ColLabels []string

	SingularValues []float64
	Inertias       []float64
	Ratios         []float64
	TotalInertia   float64

	RowCoords *mat.Dense // rows x axes
	ColCoords *mat.Dense // columns x axes
}

// FitCA decomposes a nonnegative contingency table. At most
// min(rows, columns) - 1 nontrivial axes are produced.
func FitCA(rowLabels, colLabels []string, counts [][]float64) (*Correspondence, error) {
	ni, nj := len(counts), 0
	if ni > 0 {
		nj = len(counts[0])
	}
	if ni < 2 || nj < 2 {
		return nil, fmt.Errorf("model: contingency table must be at least 2x2, got %dx%d", ni, nj)
	}
	maxAxes := min(ni-1, nj-1)
	return fitCorrespondence(rowLabels, colLabels, counts, maxAxes)
}

// FitMCA runs correspondence analysis on the complete disjunctive table.
// The number of nontrivial axes is bounded by both the observation count
// and the indicator structure: min(n-1, J-Q) for J indicator columns over
// Q variables.
func FitMCA(rowLabels []string, ind *preprocess.Indicator) (*Correspondence, error) {
	n := len(ind.X)
	j := len(ind.Columns)
	maxAxes := min(n-1, j-ind.NumVars)
	if maxAxes < 1 {
		return nil, fmt.Errorf("model: indicator matrix leaves no nontrivial axis")
	}
	if rowLabels == nil {
		rowLabels = make([]string, n)
		for i := range rowLabels {
			rowLabels[i] = strconv.Itoa(ind.RowIndex[i] + 1)
		}
	}
	return fitCorrespondence(rowLabels, ind.Columns, ind.X, maxAxes)
}

// fitCorrespondence builds the correspondence matrix, removes the trivial
// axis by centering, and decomposes the standardized residuals by SVD.
func fitCorrespondence(rowLabels, colLabels []string, counts [][]float64, axes int) (*Correspondence, error) {
	ni, nj := len(counts), len(counts[0])

	grand := 0.0
	for _, row := range counts {
		if len(row) != nj {
			return nil, fmt.Errorf("model: ragged contingency table")
		}
		for _, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("model: negative count in contingency table")
			}
			grand += v
		}
	}
	if grand == 0 {
		return nil, ErrZeroMass
	}

	// Row and column masses of the correspondence matrix P = counts/grand.
	r := make([]float64, ni)
	c := make([]float64, nj)
	for i, row := range counts {
		for j, v := range row {
			r[i] += v / grand
			c[j] += v / grand
		}
	}
	for i, m := range r {
		if m == 0 {
			return nil, fmt.Errorf("%w: row %q", ErrZeroMass, label(rowLabels, i))
		}
	}
	for j, m := range c {
		if m == 0 {
			return nil, fmt.Errorf("%w: column %q", ErrZeroMass, label(colLabels, j))
		}
	}

	// Standardized residuals S = Dr^-1/2 (P - r c^T) Dc^-1/2.
	s := mat.NewDense(ni, nj, nil)
	for i := 0; i < ni; i++ {
		for j := 0; j < nj; j++ {
			p := counts[i][j] / grand
			s.Set(i, j, (p-r[i]*c[j])/math.Sqrt(r[i]*c[j]))
		}
	}

	var svd mat.SVD
	if !svd.Factorize(s, mat.SVDThin) {
		return nil, fmt.Errorf("model: SVD did not converge")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	// Total inertia counts every singular value, including the numerically
	// negligible ones past the rank bound, so ratios sum to one exactly.
	total := 0.0
	for _, sv := range sigma {
		total += sv * sv
	}
	if total == 0 {
		return nil, fmt.Errorf("model: table has no association structure")
	}

	k := min(axes, len(sigma))
	orientAxes(&v, &u)

	fit := &Correspondence{
		RowLabels:      rowLabels,
		ColLabels:      colLabels,
		SingularValues: sigma[:k],
		Inertias:       make([]float64, k),
		Ratios:         make([]float64, k),
		TotalInertia:   total,
		RowCoords:      mat.NewDense(ni, k, nil),
		ColCoords:      mat.NewDense(nj, k, nil),
	}
	for a := 0; a < k; a++ {
		fit.Inertias[a] = sigma[a] * sigma[a]
		fit.Ratios[a] = fit.Inertias[a] / total
		for i := 0; i < ni; i++ {
			fit.RowCoords.Set(i, a, u.At(i, a)*sigma[a]/math.Sqrt(r[i]))
		}
		for j := 0; j < nj; j++ {
			fit.ColCoords.Set(j, a, v.At(j, a)*sigma[a]/math.Sqrt(c[j]))
		}
	}
	return fit, nil
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return strconv.Itoa(i)
}
