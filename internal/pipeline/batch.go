package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent processing of multiple inputs.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding batch
// functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-input execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor[R Report] struct {
	// pipelineFactory creates a new pipeline for each input.
	// We use a factory to ensure each input gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline[R]

	// newReport creates the empty report for an input path.
	newReport func(source string) R

	// concurrency is the maximum number of concurrent inputs.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
// It is independent of the report type, like Option.
type BatchOption func(*batchSettings)

type batchSettings struct {
	concurrency int
	logger      *slog.Logger
}

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *batchSettings) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent inputs.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *batchSettings) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each input to create a fresh
// pipeline instance. This ensures that pipeline state doesn't leak between
// inputs. newReport creates the report each pipeline fills in.
func NewBatchProcessor[R Report](pipelineFactory func() *Pipeline[R], newReport func(source string) R, opts ...BatchOption) *BatchProcessor[R] {
	s := batchSettings{concurrency: 4}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return &BatchProcessor[R]{
		pipelineFactory: pipelineFactory,
		newReport:       newReport,
		concurrency:     s.concurrency,
		logger:          s.logger,
	}
}

// ProcessBatch runs one pipeline per input concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each input gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all reports in input order, even for inputs that failed; a failed
// input has its error recorded in its report. The error return is non-nil
// only when the batch was cancelled, in which case unstarted inputs have
// nil reports.
func (bp *BatchProcessor[R]) ProcessBatch(ctx context.Context, sources []string) ([]R, error) {
	bp.logger.Info("starting batch processing",
		"total_inputs", len(sources),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Each goroutine writes only its own index, so the slice needs no lock.
	results := make([]R, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, source := range sources {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Info("processing input",
				"source", source,
				"index", i+1,
				"total", len(sources),
			)

			report := bp.newReport(source)
			err := bp.pipelineFactory().Execute(ctx, report)
			results[i] = report

			if err != nil {
				bp.logger.Warn("input failed",
					"source", source,
					"error", err,
				)
				// Don't return error to errgroup - we want to continue other inputs.
				// The error is recorded in the report.
				return nil
			}

			bp.logger.Info("input completed", "source", source)
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch processing complete",
		"total_inputs", len(sources),
		"elapsed", time.Since(startTime),
	)

	return results, err
}
