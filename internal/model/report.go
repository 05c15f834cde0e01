package model

import (
	"time"

	"github.com/google/uuid"
)

// Run holds the bookkeeping shared by every report: identity, timing,
// performed steps and the error that stopped the run, if any.
//
// Design decision: Reports are passed through the pipeline and filled in by
// each step, so the pipeline only needs the small Recorder surface that Run
// provides rather than knowing about each report type.
type Run struct {
	// ID uniquely identifies the run in JSON output.
	ID string `json:"id"`

	// Source is the input path (CSV file or corpus directory).
	Source string `json:"source"`

	// GeneratedAt is when the run was created.
	GeneratedAt time.Time `json:"generated_at"`

	// Elapsed is the wall time spent executing the pipeline.
	Elapsed time.Duration `json:"elapsed"`

	// PerformedSteps lists the pipeline steps that were executed.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error is the error that stopped the run.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

func newRun(source string) Run {
	return Run{
		ID:          uuid.NewString(),
		Source:      source,
		GeneratedAt: time.Now(),
	}
}

// RecordStep appends a performed step name.
func (r *Run) RecordStep(name string) {
	r.PerformedSteps = append(r.PerformedSteps, name)
}

// RecordError stores the error that stopped the run.
func (r *Run) RecordError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}

// RecordElapsed stores the pipeline wall time.
func (r *Run) RecordElapsed(d time.Duration) {
	r.Elapsed = d
}

// SourceName returns the input path of the run.
func (r *Run) SourceName() string {
	return r.Source
}

// Failed reports whether the run stopped with an error.
func (r *Run) Failed() bool {
	return r.Error != nil
}

// HeredityReport is the result of a pedigree inference run.
type HeredityReport struct {
	Run

	// Pedigree is the loaded input. It is filled by the load step.
	Pedigree *Pedigree `json:"-"`

	// Hypotheses is the number of hypotheses evaluated.
	Hypotheses int `json:"hypotheses"`

	// Marginals holds the normalized per-person distributions.
	Marginals MarginalTable `json:"marginals"`
}

// NewHeredityReport creates an empty report for the given CSV path.
func NewHeredityReport(source string) *HeredityReport {
	return &HeredityReport{Run: newRun(source)}
}

// PageRankReport is the result of a PageRank run.
type PageRankReport struct {
	Run

	// Graph is the crawled corpus. It is filled by the crawl step.
	Graph *LinkGraph `json:"-"`

	// Pages is the number of pages in the corpus.
	Pages int `json:"pages"`

	// Links is the number of links kept after filtering.
	Links int `json:"links"`

	// Damping is the damping factor used by both estimators.
	Damping float64 `json:"damping"`

	// Samples is the number of samples drawn by the sampling estimator.
	Samples int `json:"samples"`

	// Sampled is the rank vector estimated by sampling.
	Sampled RankVector `json:"sampled,omitempty"`

	// Iterations is the number of iterations used by the iterative solver.
	Iterations int `json:"iterations"`

	// Iterated is the rank vector computed by iteration.
	Iterated RankVector `json:"iterated,omitempty"`
}

// NewPageRankReport creates an empty report for the given corpus directory.
func NewPageRankReport(source string) *PageRankReport {
	return &PageRankReport{Run: newRun(source)}
}
