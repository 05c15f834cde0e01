package dataset

import "errors"

var (
	// ErrEmptyInput is returned when the CSV file has no header row.
	ErrEmptyInput = errors.New("empty input: expected a header row")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing column")

	// ErrInvalidTrait is returned when a trait value is not a boolean flag.
	ErrInvalidTrait = errors.New("invalid trait: expected empty, 0 or 1")
)
