package pagerank

import "errors"

var (
	// ErrEmptyGraph is returned when the corpus has no pages.
	ErrEmptyGraph = errors.New("link graph has no pages")

	// ErrUnknownPage is returned when a page is not part of the corpus.
	ErrUnknownPage = errors.New("unknown page")

	// ErrInvalidDamping is returned when the damping factor is outside [0, 1).
	// At 1 or above the recurrence is no longer a contraction.
	ErrInvalidDamping = errors.New("invalid damping factor: must be in [0, 1)")

	// ErrInvalidSamples is returned when the sample count is not positive.
	ErrInvalidSamples = errors.New("invalid sample count: must be positive")

	// ErrInvalidThreshold is returned when the convergence threshold is negative.
	ErrInvalidThreshold = errors.New("invalid convergence threshold: must be non-negative")

	// ErrInvalidMaxIterations is returned when the iteration cap is not positive.
	ErrInvalidMaxIterations = errors.New("invalid iteration cap: must be positive")

	// ErrNotConverged is returned when Iterate reaches the iteration cap.
	ErrNotConverged = errors.New("pagerank failed to converge")
)
