package preprocess

import (
	"fmt"

	"github.com/KevinM0ney/thesis/pkg/dataset"
)

// Indicator is the complete disjunctive expansion of a categorical table:
// one 0/1 column per observed level, so every row sums to the number of
// variables. It is the input of the MCA fitter.
type Indicator struct {
	// Columns holds one "variable=level" label per indicator column.
	Columns []string
	// X is the n x J indicator matrix.
	X [][]float64
	// NumVars is the number of original categorical variables (Q).
	NumVars int
	// RowIndex maps indicator rows back to rows of the source table,
	// after missing-value and rare-level filtering.
	RowIndex []int
	// Dropped counts the source rows removed by filtering.
	Dropped int
}

// Encode builds the indicator matrix for every column of d.
//
// Rows containing a missing marker are dropped. Levels observed fewer than
// minCount times are removed, together with the rows that carry them, so the
// expansion stays complete-disjunctive. A variable whose every level is
// filtered away yields ErrEmptyCategory. Level order is order of first
// appearance, which keeps the encoding deterministic.
func Encode(d *dataset.Categorical, minCount int) (*Indicator, error) {
	n, q := d.Dims()
	if n == 0 || q == 0 {
		return nil, fmt.Errorf("%w: empty table", dataset.ErrDataFormat)
	}
	if minCount < 1 {
		minCount = 1
	}

	// A column carrying only missing markers has no observable level.
	for j, name := range d.Columns {
		empty := true
		for i := 0; i < n; i++ {
			if !dataset.Missing(d.Rows[i][j]) {
				empty = false
				break
			}
		}
		if empty {
			return nil, fmt.Errorf("%w: variable %q", ErrEmptyCategory, name)
		}
	}

	// Rows with missing markers are unusable for a disjunctive coding.
	usable := make([]bool, n)
	for i, row := range d.Rows {
		usable[i] = true
		for _, v := range row {
			if dataset.Missing(v) {
				usable[i] = false
				break
			}
		}
	}

	// Iterate level counting and row dropping until stable: removing the
	// rows of a rare level can push another level under minCount.
	type levelSet struct {
		order  []string
		counts map[string]int
	}
	var levels []levelSet
	for {
		levels = make([]levelSet, q)
		for j := range levels {
			levels[j] = levelSet{counts: map[string]int{}}
		}
		for i, row := range d.Rows {
			if !usable[i] {
				continue
			}
			for j, v := range row {
				if _, seen := levels[j].counts[v]; !seen {
					levels[j].order = append(levels[j].order, v)
				}
				levels[j].counts[v]++
			}
		}

		changed := false
		for i, row := range d.Rows {
			if !usable[i] {
				continue
			}
			for j, v := range row {
				if levels[j].counts[v] < minCount {
					usable[i] = false
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	for j := range levels {
		kept := levels[j].order[:0]
		for _, lv := range levels[j].order {
			if levels[j].counts[lv] >= minCount {
				kept = append(kept, lv)
			}
		}
		levels[j].order = kept
		if len(kept) == 0 {
			return nil, fmt.Errorf("%w: variable %q", ErrEmptyCategory, d.Columns[j])
		}
	}

	// Column labels and offsets.
	var labels []string
	offsets := make([]map[string]int, q)
	for j := range levels {
		offsets[j] = make(map[string]int, len(levels[j].order))
		for _, lv := range levels[j].order {
			offsets[j][lv] = len(labels)
			labels = append(labels, d.Columns[j]+"="+lv)
		}
	}

	ind := &Indicator{Columns: labels, NumVars: q}
	for i, row := range d.Rows {
		if !usable[i] {
			ind.Dropped++
			continue
		}
		vec := make([]float64, len(labels))
		for j, v := range row {
			vec[offsets[j][v]] = 1
		}
		ind.X = append(ind.X, vec)
		ind.RowIndex = append(ind.RowIndex, i)
	}
	if len(ind.X) == 0 {
		return nil, fmt.Errorf("%w: no rows left after filtering", ErrEmptyCategory)
	}
	return ind, nil
}
