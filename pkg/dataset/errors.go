package dataset

import "errors"

var (
	// ErrDataFormat indicates malformed or missing input: an absent or empty
	// file, ragged rows, a missing required column, or a cell that does not
	// parse as the type the flow expects.
	ErrDataFormat = errors.New("dataset: malformed or missing input")
)
