package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/inferank/internal/heredity"
	"github.com/nao1215/inferank/internal/pagerank"
)

// Default configuration values.
// The numeric defaults of the two computations live in the heredity and
// pagerank packages; this package only adds the CLI-level defaults.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "inferank"

	// DefaultBatchSize of 4 concurrent inputs keeps memory bounded. Each
	// heredity input may enumerate millions of hypotheses.
	DefaultBatchSize = 4

	// DefaultConcurrency is the number of corpus files parsed at once.
	DefaultConcurrency = 4

	// DefaultSeed of 0 draws a fresh random seed for every run.
	DefaultSeed = 0
)

// Config holds all configuration options for inferank.
// This struct is populated from defaults, the configuration file, the
// environment and CLI flags, in that order, and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We keep the probability table and estimator settings as
// their domain types rather than flattening them, so the computations
// receive exactly what they validate.
type Config struct {
	// Probabilities is the heredity prior, penetrance table and mutation rate.
	Probabilities heredity.Probabilities

	// MaxPeople is the largest pedigree enumerated exactly.
	MaxPeople int

	// Damping is the PageRank damping factor, in [0, 1).
	Damping float64

	// Samples is the number of samples drawn by the sampling estimator.
	Samples int

	// Threshold is the convergence threshold of the iterative solver.
	Threshold float64

	// MaxIterations caps the iterative solver.
	MaxIterations int

	// Seed seeds the sampling estimator. 0 means a random seed.
	Seed uint64

	// Concurrency is the number of corpus files parsed concurrently.
	Concurrency int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// LogJSON selects the JSON log handler instead of the text handler.
	LogJSON bool

	// BatchSize is the number of inputs processed concurrently.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport enables JSON report output instead of plain text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of plain text.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// Inputs are the CSV files or corpus directories to process.
	Inputs []string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (damping, probability
// tables). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	s := pagerank.DefaultSettings()
	return &Config{
		Probabilities: heredity.DefaultProbabilities(),
		MaxPeople:     heredity.DefaultMaxPeople,
		Damping:       s.Damping,
		Samples:       s.Samples,
		Threshold:     s.Threshold,
		MaxIterations: s.MaxIterations,
		Seed:          DefaultSeed,
		Concurrency:   DefaultConcurrency,
		BatchSize:     DefaultBatchSize,
	}
}

// PageRankSettings returns the estimator settings of the configuration.
func (c *Config) PageRankSettings() pagerank.Settings {
	return pagerank.Settings{
		Damping:       c.Damping,
		Samples:       c.Samples,
		Threshold:     c.Threshold,
		MaxIterations: c.MaxIterations,
	}
}

// XDGConfigDir returns the XDG config directory for inferank.
// On Linux: ~/.config/inferank
// On macOS: ~/Library/Application Support/inferank
// On Windows: %APPDATA%\inferank
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any computation begins.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxPeople <= 0 || c.MaxPeople > heredity.MaxPeopleLimit {
		return fmt.Errorf("%w: %d (limit %d)", ErrInvalidMaxPeople, c.MaxPeople, heredity.MaxPeopleLimit)
	}

	if err := c.Probabilities.Validate(); err != nil {
		return err
	}

	return c.PageRankSettings().Validate()
}
