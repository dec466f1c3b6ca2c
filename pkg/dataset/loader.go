package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

type loadOptions struct {
	comma    rune
	required []string
}

// Option configures CSV loading.
type Option func(*loadOptions)

// WithComma sets the field delimiter. Default is ','.
func WithComma(r rune) Option {
	return func(o *loadOptions) { o.comma = r }
}

// WithRequired declares columns that must be present in the header.
// Loading fails with ErrDataFormat when any of them is absent.
func WithRequired(cols ...string) Option {
	return func(o *loadOptions) { o.required = append(o.required, cols...) }
}

// LoadNumeric reads a comma-delimited table with a header row from path.
// Every cell must parse as a float; any failure is ErrDataFormat and fatal
// to the run, there are no retries.
func LoadNumeric(path string, opts ...Option) (*Numeric, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataFormat, path, err)
	}
	defer f.Close()
	return ReadNumeric(bufio.NewReader(f), opts...)
}

// ReadNumeric is LoadNumeric over an arbitrary reader.
func ReadNumeric(r io.Reader, opts ...Option) (*Numeric, error) {
	header, records, err := readTable(r, opts...)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %q: %q is not numeric",
					ErrDataFormat, i+1, header[j], cell)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return &Numeric{Columns: header, Rows: rows}, nil
}

// LoadCategorical reads a comma-delimited table with a header row from path,
// keeping every cell as a string level.
func LoadCategorical(path string, opts ...Option) (*Categorical, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDataFormat, path, err)
	}
	defer f.Close()
	return ReadCategorical(bufio.NewReader(f), opts...)
}

// ReadCategorical is LoadCategorical over an arbitrary reader.
func ReadCategorical(r io.Reader, opts ...Option) (*Categorical, error) {
	header, records, err := readTable(r, opts...)
	if err != nil {
		return nil, err
	}
	return &Categorical{Columns: header, Rows: records}, nil
}

// readTable handles the parts shared by both loaders: header, rectangular
// shape and required columns.
func readTable(r io.Reader, opts ...Option) ([]string, [][]string, error) {
	o := loadOptions{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.Comma = o.comma

	all, err := reader.ReadAll()
	if err != nil {
		// csv.Reader already rejects ragged rows.
		return nil, nil, fmt.Errorf("%w: %v", ErrDataFormat, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrDataFormat)
	}
	if len(all) < 2 {
		return nil, nil, fmt.Errorf("%w: header but no data rows", ErrDataFormat)
	}

	header := all[0]
	for _, want := range o.required {
		found := false
		for _, h := range header {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			return nil, nil, fmt.Errorf("%w: required column %q not found", ErrDataFormat, want)
		}
	}
	return header, all[1:], nil
}
