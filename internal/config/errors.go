package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Probability and estimator errors come from the
// heredity and pagerank packages unchanged.
var (
	// ErrNoInput is returned when no CSV file or corpus directory is given.
	ErrNoInput = errors.New("no input specified: provide at least one file or directory")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidConcurrency is returned when the crawler concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxPeople is returned when the enumeration limit is out of range.
	ErrInvalidMaxPeople = errors.New("invalid max people")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidGeneCount is returned when the configuration file keys a
	// probability by a gene count outside 0..2.
	ErrInvalidGeneCount = errors.New("invalid gene count: must be 0, 1 or 2")

	// ErrInvalidEnv is returned when an INFERANK_* variable cannot be parsed.
	ErrInvalidEnv = errors.New("invalid environment variable")
)
