package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Report is the bookkeeping surface a pipeline needs from the report it
// fills in. model.HeredityReport and model.PageRankReport implement it
// through their embedded model.Run.
type Report interface {
	// SourceName returns the input path the report is about.
	SourceName() string

	// RecordStep appends the name of a performed step.
	RecordStep(name string)

	// RecordError stores the error that stopped the run.
	RecordError(err error)

	// RecordElapsed stores the pipeline wall time.
	RecordElapsed(d time.Duration)
}

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// report from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., priority, dependencies)
type Step[R Report] interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation, and the report to modify.
	Do(ctx context.Context, report R) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
// It maintains a list of steps and executes them in order.
//
// Design decision: Pipeline is generic over the report type so that the
// heredity and PageRank runs share one executor while each step still
// sees its concrete report type without assertions.
type Pipeline[R Report] struct {
	// steps contains the ordered list of steps to execute.
	steps []Step[R]

	settings
}

// settings holds the report-independent pipeline configuration.
type settings struct {
	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*settings)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a step fails. Failed steps are logged and their errors
// are recorded in the report, but subsequent steps still execute.
//
// Design decision: The default is to stop on error because later steps
// depend on earlier ones (no pedigree, no inference; no graph, no ranks).
func WithContinueOnError(continueOnError bool) Option {
	return func(s *settings) {
		s.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New[R Report](opts ...Option) *Pipeline[R] {
	p := &Pipeline[R]{
		steps: make([]Step[R], 0),
	}

	for _, opt := range opts {
		opt(&p.settings)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline[R]) AddStep(step Step[R]) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline[R]) AddSteps(steps ...Step[R]) {
	p.steps = append(p.steps, steps...)
}

// Logger returns the pipeline logger.
func (p *Pipeline[R]) Logger() *slog.Logger {
	return p.logger
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because the computations are not interruptible. The crawler
// checks the context itself.
//
// Returns the first error encountered if continueOnError is false,
// or the last step error otherwise. Every error is recorded in the report.
func (p *Pipeline[R]) Execute(ctx context.Context, report R) error {
	start := time.Now()
	defer func() {
		report.RecordElapsed(time.Since(start))
	}()

	var lastErr error
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			report.RecordError(ctx.Err())
			return ctx.Err()
		default:
		}

		p.logger.Info("executing step",
			"step", step.Name(),
			"source", report.SourceName(),
		)

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"source", report.SourceName(),
				"error", err,
			)

			report.RecordError(err)
			lastErr = err

			if !p.continueOnError {
				return err
			}
		} else {
			p.logger.Debug("step completed",
				"step", step.Name(),
				"source", report.SourceName(),
			)
		}

		report.RecordStep(step.Name())
	}

	return lastErr
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline[R]) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline[R]) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
