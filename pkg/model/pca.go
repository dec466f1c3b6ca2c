// Package model contains the two fitters of the thesis analyses: principal
// component analysis for numeric tables and correspondence analysis (simple
// and multiple) for categorical ones. Both decompose via SVD and are
// deterministic for identical input; each fitted model is created once and
// read-only afterwards.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/KevinM0ney/thesis/pkg/dataset"
)

// ErrTooFewObservations indicates a table with fewer than two rows, for
// which no variance decomposition exists.
var ErrTooFewObservations = errors.New("model: need at least two observations")

// PCA holds the orthogonal basis found by principal component analysis.
//
// Components has one column per axis with unit-norm loadings, Scores holds
// the projected observations, Eigenvalues the sample variance along each
// axis. Axes are ordered by decreasing explained variance; equal eigenvalues
// keep the order the decomposition produced them in. The number of axes is
// min(observations, variables).
type PCA struct {
	Columns     []string
	Eigenvalues []float64
	Ratios      []float64
	Components  *mat.Dense // variables x axes
	Scores      *mat.Dense // observations x axes
}

// FitPCA centers d and decomposes its covariance structure. The caller is
// expected to have standardized the table first when variables live on
// different scales.
//
// Each component is oriented so that its largest-magnitude loading is
// positive, removing the sign ambiguity of the decomposition and making
// repeated fits reproduce loadings exactly.
func FitPCA(d *dataset.Numeric) (*PCA, error) {
	n, p := d.Dims()
	if n < 2 {
		return nil, ErrTooFewObservations
	}
	if p == 0 {
		return nil, fmt.Errorf("%w: no variables", dataset.ErrDataFormat)
	}

	// Center columns; a no-op when the table is already standardized.
	means := make([]float64, p)
	for _, row := range d.Rows {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}
	z := mat.NewDense(n, p, nil)
	for i, row := range d.Rows {
		for j, v := range row {
			z.Set(i, j, v-means[j])
		}
	}

	var svd mat.SVD
	if !svd.Factorize(z, mat.SVDThin) {
		return nil, fmt.Errorf("model: SVD did not converge")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	m := len(sigma) // min(n, p)
	eig := make([]float64, m)
	total := 0.0
	for k, s := range sigma {
		eig[k] = s * s / float64(n-1)
		total += eig[k]
	}
	ratios := make([]float64, m)
	if total > 0 {
		for k := range eig {
			ratios[k] = eig[k] / total
		}
	}

	// Scores = U * Sigma.
	scores := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < m; k++ {
			scores.Set(i, k, u.At(i, k)*sigma[k])
		}
	}

	orientAxes(&v, scores)

	return &PCA{
		Columns:     d.Columns,
		Eigenvalues: eig,
		Ratios:      ratios,
		Components:  &v,
		Scores:      scores,
	}, nil
}

// orientAxes flips every axis whose largest-magnitude loading is negative,
// mirroring the scores to keep the projection consistent.
func orientAxes(loadings, scores *mat.Dense) {
	p, m := loadings.Dims()
	n, _ := scores.Dims()
	for k := 0; k < m; k++ {
		best, bestAbs := 0.0, 0.0
		for j := 0; j < p; j++ {
			v := loadings.At(j, k)
			if a := abs(v); a > bestAbs {
				best, bestAbs = v, a
			}
		}
		if best >= 0 {
			continue
		}
		for j := 0; j < p; j++ {
			loadings.Set(j, k, -loadings.At(j, k))
		}
		for i := 0; i < n; i++ {
			scores.Set(i, k, -scores.At(i, k))
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
