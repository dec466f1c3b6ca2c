// Package report extracts presentation summaries from fitted models. A
// Report is a pure read-only view: building one has no side effects and the
// underlying model is never modified.
package report

import (
	"fmt"

	"github.com/KevinM0ney/thesis/pkg/model"
)

// DefaultVarianceThreshold is the cumulative explained share used to pick
// the number of axes when the caller does not fix one.
const DefaultVarianceThreshold = 0.80

// Report summarizes k axes of a fitted model: explained shares, loadings
// (or category coordinates for correspondence models) and observation
// coordinates.
type Report struct {
	Method string
	Axes   int

	Explained  []float64 // per retained axis
	Cumulative []float64

	VariableLabels    []string
	Loadings          [][]float64 // variables x axes
	ObservationLabels []string
	Observations      [][]float64 // observations x axes
}

// AxisLabel renders a plot-friendly axis title such as
// "Dim 1 (66.7% explained)".
func (r *Report) AxisLabel(axis int) string {
	return fmt.Sprintf("Dim %d (%.1f%% explained)", axis+1, r.Explained[axis]*100)
}

// FromPCA summarizes k components of a fitted PCA. k <= 0 selects the
// smallest k whose cumulative explained variance reaches threshold
// (DefaultVarianceThreshold when threshold <= 0); k larger than the number
// of fitted axes is clamped.
func FromPCA(m *model.PCA, k int, threshold float64) *Report {
	k = axesFor(m.Ratios, k, threshold)
	r := &Report{
		Method:         "PCA",
		Axes:           k,
		Explained:      append([]float64(nil), m.Ratios[:k]...),
		VariableLabels: m.Columns,
	}
	r.Cumulative = cumulative(r.Explained)
	r.Loadings = matrixRows(m.Components, k)

	n, _ := m.Scores.Dims()
	r.ObservationLabels = make([]string, n)
	for i := range r.ObservationLabels {
		r.ObservationLabels[i] = fmt.Sprintf("%d", i+1)
	}
	r.Observations = matrixRows(m.Scores, k)
	return r
}

// FromCorrespondence summarizes k axes of a fitted CA or MCA; the category
// coordinates take the loadings slot. Axis selection works as in FromPCA.
func FromCorrespondence(m *model.Correspondence, k int, threshold float64) *Report {
	k = axesFor(m.Ratios, k, threshold)
	r := &Report{
		Method:            "MCA",
		Axes:              k,
		Explained:         append([]float64(nil), m.Ratios[:k]...),
		VariableLabels:    m.ColLabels,
		ObservationLabels: m.RowLabels,
	}
	r.Cumulative = cumulative(r.Explained)
	r.Loadings = matrixRows(m.ColCoords, k)
	r.Observations = matrixRows(m.RowCoords, k)
	return r
}

// axesFor resolves the retained axis count: an explicit k is clamped to the
// fitted axes, otherwise the cumulative threshold decides.
func axesFor(ratios []float64, k int, threshold float64) int {
	if len(ratios) == 0 {
		return 0
	}
	if k > 0 {
		if k > len(ratios) {
			return len(ratios)
		}
		return k
	}
	if threshold <= 0 {
		threshold = DefaultVarianceThreshold
	}
	cum := 0.0
	for i, v := range ratios {
		cum += v
		if cum >= threshold {
			return i + 1
		}
	}
	return len(ratios)
}

func cumulative(x []float64) []float64 {
	out := make([]float64, len(x))
	sum := 0.0
	for i, v := range x {
		sum += v
		out[i] = sum
	}
	return out
}

// matrixRows copies the first k columns of m into a row-major slice.
func matrixRows(m interface {
	Dims() (int, int)
	At(int, int) float64
}, k int) [][]float64 {
	n, _ := m.Dims()
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, k)
		for j := 0; j < k; j++ {
			row[j] = m.At(i, j)
		}
		out[i] = row
	}
	return out
}
