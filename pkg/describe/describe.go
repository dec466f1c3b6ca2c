// Package describe implements the descriptive side of the thesis: frequency
// tables over categorical columns, five-number summaries over numeric ones,
// and the group x term contingency tables the correspondence analysis
// starts from.
package describe

import (
	"sort"

	"github.com/KevinM0ney/thesis/pkg/dataset"
	"github.com/KevinM0ney/thesis/pkg/stats"
)

// FrequencyRow is one level of a categorical column with its count.
type FrequencyRow struct {
	Value string
	Count int
}

// Frequencies counts the levels of the named column and returns the topK
// most frequent, ties broken alphabetically so the order is stable.
// topK <= 0 returns every level. Missing markers are not counted.
func Frequencies(d *dataset.Categorical, col string, topK int) ([]FrequencyRow, error) {
	values, err := d.Column(col)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, v := range values {
		if !dataset.Missing(v) {
			counts[v]++
		}
	}
	rows := make([]FrequencyRow, 0, len(counts))
	for v, c := range counts {
		rows = append(rows, FrequencyRow{Value: v, Count: c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Value < rows[j].Value
	})
	if topK > 0 && topK < len(rows) {
		rows = rows[:topK]
	}
	return rows, nil
}

// GroupedFrequencies computes per-group frequency tables of col, split by
// groupCol. Levels appearing fewer than minCount times within a group are
// dropped, mirroring the corpus filter used in the thesis; each group keeps
// its topK rows.
func GroupedFrequencies(d *dataset.Categorical, col, groupCol string, minCount, topK int) (map[string][]FrequencyRow, error) {
	ci, err := d.ColumnIndex(col)
	if err != nil {
		return nil, err
	}
	gi, err := d.ColumnIndex(groupCol)
	if err != nil {
		return nil, err
	}

	counts := map[string]map[string]int{}
	for _, row := range d.Rows {
		g, v := row[gi], row[ci]
		if dataset.Missing(g) || dataset.Missing(v) {
			continue
		}
		if counts[g] == nil {
			counts[g] = map[string]int{}
		}
		counts[g][v]++
	}

	out := make(map[string][]FrequencyRow, len(counts))
	for g, m := range counts {
		var rows []FrequencyRow
		for v, c := range m {
			if c >= minCount {
				rows = append(rows, FrequencyRow{Value: v, Count: c})
			}
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Count != rows[j].Count {
				return rows[i].Count > rows[j].Count
			}
			return rows[i].Value < rows[j].Value
		})
		if topK > 0 && topK < len(rows) {
			rows = rows[:topK]
		}
		out[g] = rows
	}
	return out, nil
}

// Summary is the five-number summary of one numeric column, plus mean and
// standard deviation.
type Summary struct {
	Column string
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes a Summary per column of the numeric table.
func Summarize(d *dataset.Numeric) []Summary {
	n, p := d.Dims()
	out := make([]Summary, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			col[i] = d.Rows[i][j]
		}
		min, max := stats.MinMax(col)
		out[j] = Summary{
			Column: d.Columns[j],
			Mean:   stats.Mean(col),
			Std:    stats.Std(col),
			Min:    min,
			Q1:     stats.Percentile(col, 25),
			Median: stats.Median(col),
			Q3:     stats.Percentile(col, 75),
			Max:    max,
		}
	}
	return out
}

// Contingency cross-tabulates two categorical columns into a counts matrix,
// rows ordered by first appearance of the row variable's levels and columns
// by first appearance of the column variable's. Rows with a missing marker
// in either column are skipped.
func Contingency(d *dataset.Categorical, rowVar, colVar string) (rowLabels, colLabels []string, counts [][]float64, err error) {
	ri, err := d.ColumnIndex(rowVar)
	if err != nil {
		return nil, nil, nil, err
	}
	ci, err := d.ColumnIndex(colVar)
	if err != nil {
		return nil, nil, nil, err
	}

	rowIdx := map[string]int{}
	colIdx := map[string]int{}
	type cell struct{ r, c int }
	cells := map[cell]float64{}
	for _, row := range d.Rows {
		rv, cv := row[ri], row[ci]
		if dataset.Missing(rv) || dataset.Missing(cv) {
			continue
		}
		if _, ok := rowIdx[rv]; !ok {
			rowIdx[rv] = len(rowLabels)
			rowLabels = append(rowLabels, rv)
		}
		if _, ok := colIdx[cv]; !ok {
			colIdx[cv] = len(colLabels)
			colLabels = append(colLabels, cv)
		}
		cells[cell{rowIdx[rv], colIdx[cv]}]++
	}

	counts = make([][]float64, len(rowLabels))
	for i := range counts {
		counts[i] = make([]float64, len(colLabels))
	}
	for c, v := range cells {
		counts[c.r][c.c] = v
	}
	return rowLabels, colLabels, counts, nil
}
