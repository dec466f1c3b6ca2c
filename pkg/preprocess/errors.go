package preprocess

import "errors"

var (
	// ErrDegenerateVariable indicates a numeric column with zero variance,
	// for which standardization is undefined.
	ErrDegenerateVariable = errors.New("preprocess: zero-variance column")
	// ErrEmptyCategory indicates a categorical variable left without any
	// observed level after filtering.
	ErrEmptyCategory = errors.New("preprocess: category has no observations")
)
