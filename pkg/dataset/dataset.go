// Package dataset holds the immutable tables both analysis flows consume.
//
// A table is loaded exactly once per run and treated as read-only afterwards.
// Numeric tables feed the PCA flow, categorical tables feed the MCA flow;
// the two never share state.
package dataset

import "fmt"

// Numeric is a rectangular observations x variables table of continuous
// values. Rows and Columns are not mutated after loading.
type Numeric struct {
	Columns []string
	Rows    [][]float64
}

// Dims returns (observations, variables).
func (d *Numeric) Dims() (int, int) {
	if len(d.Rows) == 0 {
		return 0, len(d.Columns)
	}
	return len(d.Rows), len(d.Columns)
}

// ColumnIndex returns the position of the named column.
func (d *Numeric) ColumnIndex(name string) (int, error) {
	for i, c := range d.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q not found", ErrDataFormat, name)
}

// Column returns a copy of the named column.
func (d *Numeric) Column(name string) ([]float64, error) {
	j, err := d.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	col := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		col[i] = row[j]
	}
	return col, nil
}

// Categorical is a rectangular observations x variables table of discrete
// levels, typically text-derived. Missing markers ("", "NA", "NaN") are kept
// as loaded; the preprocessor decides what to do with them.
type Categorical struct {
	Columns []string
	Rows    [][]string
}

// Dims returns (observations, variables).
func (d *Categorical) Dims() (int, int) {
	if len(d.Rows) == 0 {
		return 0, len(d.Columns)
	}
	return len(d.Rows), len(d.Columns)
}

// ColumnIndex returns the position of the named column.
func (d *Categorical) ColumnIndex(name string) (int, error) {
	for i, c := range d.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: column %q not found", ErrDataFormat, name)
}

// Column returns a copy of the named column.
func (d *Categorical) Column(name string) ([]string, error) {
	j, err := d.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	col := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		col[i] = row[j]
	}
	return col, nil
}

// Missing reports whether a cell value is one of the missing markers.
func Missing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}
