package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/inferank/internal/crawler"
	"github.com/nao1215/inferank/internal/dataset"
	"github.com/nao1215/inferank/internal/heredity"
	"github.com/nao1215/inferank/internal/model"
	"github.com/nao1215/inferank/internal/pagerank"
)

// ErrMissingInput is returned when a step runs before the step that
// provides its input.
var ErrMissingInput = errors.New("missing input from a previous step")

// HeredityPipeline runs heredity inference for one pedigree CSV file.
type HeredityPipeline = Pipeline[*model.HeredityReport]

// PageRankPipeline runs both PageRank estimators for one corpus directory.
type PageRankPipeline = Pipeline[*model.PageRankReport]

// LoadPedigreeStep reads the pedigree CSV named by the report source.
//
// Design decision: Loading is a step of its own so that a malformed file
// is reported like any other failure, with the steps performed so far.
type LoadPedigreeStep struct{}

// NewLoadPedigreeStep creates a new pedigree loading step.
func NewLoadPedigreeStep() *LoadPedigreeStep {
	return &LoadPedigreeStep{}
}

// Name returns the step name.
func (s *LoadPedigreeStep) Name() string {
	return "load_pedigree"
}

// Do executes the pedigree loading step.
func (s *LoadPedigreeStep) Do(_ context.Context, report *model.HeredityReport) error {
	p, err := dataset.LoadPedigree(report.Source)
	if err != nil {
		return err
	}
	report.Pedigree = p
	return nil
}

// InferStep computes the marginal distributions of the loaded pedigree.
type InferStep struct {
	// probs is the probability table used for every joint probability.
	probs heredity.Probabilities

	// maxPeople bounds the pedigree size.
	maxPeople int

	// logger for structured logging.
	logger *slog.Logger
}

// InferStepOption configures an InferStep.
type InferStepOption func(*InferStep)

// WithInferMaxPeople sets the largest pedigree enumerated.
func WithInferMaxPeople(n int) InferStepOption {
	return func(s *InferStep) {
		s.maxPeople = n
	}
}

// WithInferLogger sets a custom logger for the inference step.
func WithInferLogger(logger *slog.Logger) InferStepOption {
	return func(s *InferStep) {
		s.logger = logger
	}
}

// NewInferStep creates a new inference step.
func NewInferStep(probs heredity.Probabilities, opts ...InferStepOption) *InferStep {
	s := &InferStep{
		probs:     probs,
		maxPeople: heredity.DefaultMaxPeople,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *InferStep) Name() string {
	return "infer"
}

// Do executes the inference step.
func (s *InferStep) Do(_ context.Context, report *model.HeredityReport) error {
	if report.Pedigree == nil {
		return fmt.Errorf("%w: pedigree", ErrMissingInput)
	}

	result, err := heredity.Infer(report.Pedigree, s.probs, heredity.WithMaxPeople(s.maxPeople))
	if err != nil {
		return err
	}
	report.Marginals = result.Marginals
	report.Hypotheses = result.Hypotheses

	for _, m := range result.Marginals {
		s.logger.Debug("marginal",
			"person", m.Name,
			"gene2", m.Gene[2],
			"gene1", m.Gene[1],
			"gene0", m.Gene[0],
			"trait", m.Trait.Present,
		)
	}
	return nil
}

// CrawlStep reads the corpus directory named by the report source and
// builds its link graph.
type CrawlStep struct {
	// concurrency limits how many files are parsed at once.
	concurrency int

	// logger for structured logging.
	logger *slog.Logger
}

// CrawlStepOption configures a CrawlStep.
type CrawlStepOption func(*CrawlStep)

// WithCrawlConcurrency sets the number of files parsed concurrently.
func WithCrawlConcurrency(n int) CrawlStepOption {
	return func(s *CrawlStep) {
		s.concurrency = n
	}
}

// WithCrawlLogger sets a custom logger for the crawl step.
func WithCrawlLogger(logger *slog.Logger) CrawlStepOption {
	return func(s *CrawlStep) {
		s.logger = logger
	}
}

// NewCrawlStep creates a new corpus crawl step.
func NewCrawlStep(opts ...CrawlStepOption) *CrawlStep {
	s := &CrawlStep{
		concurrency: 4,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return "crawl"
}

// Do executes the crawl step.
func (s *CrawlStep) Do(ctx context.Context, report *model.PageRankReport) error {
	corpus := crawler.NewCorpus(report.Source,
		crawler.WithConcurrency(s.concurrency),
		crawler.WithLogger(s.logger),
	)
	graph, err := corpus.Graph(ctx)
	if err != nil {
		return err
	}
	if graph.Len() == 0 {
		return fmt.Errorf("%w: no *.html files in %s", pagerank.ErrEmptyGraph, report.Source)
	}

	report.Graph = graph
	report.Pages = graph.Len()
	report.Links = graph.Edges()

	s.logger.Debug("crawled corpus",
		"source", report.Source,
		"pages", report.Pages,
		"links", report.Links,
	)
	return nil
}

// SampleStep estimates PageRank by random sampling.
type SampleStep struct {
	// settings configures the estimator.
	settings pagerank.Settings

	// seed seeds the random generator; 0 draws a random seed.
	seed uint64

	// logger for structured logging.
	logger *slog.Logger
}

// SampleStepOption configures a SampleStep.
type SampleStepOption func(*SampleStep)

// WithSampleSeed sets the random seed. 0 draws a random seed per run.
func WithSampleSeed(seed uint64) SampleStepOption {
	return func(s *SampleStep) {
		s.seed = seed
	}
}

// WithSampleLogger sets a custom logger for the sample step.
func WithSampleLogger(logger *slog.Logger) SampleStepOption {
	return func(s *SampleStep) {
		s.logger = logger
	}
}

// NewSampleStep creates a new sampling step.
func NewSampleStep(settings pagerank.Settings, opts ...SampleStepOption) *SampleStep {
	s := &SampleStep{
		settings: settings,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *SampleStep) Name() string {
	return "sample"
}

// Do executes the sampling step.
//
// Design decision: A fresh generator is created per run so that batch runs
// never share random state across goroutines.
func (s *SampleStep) Do(_ context.Context, report *model.PageRankReport) error {
	if report.Graph == nil {
		return fmt.Errorf("%w: link graph", ErrMissingInput)
	}

	ranks, err := pagerank.Sample(report.Graph, s.settings, pagerank.NewRand(s.seed))
	if err != nil {
		return err
	}
	report.Damping = s.settings.Damping
	report.Samples = s.settings.Samples
	report.Sampled = ranks

	s.logger.Debug("sampled ranks", "source", report.Source, "ranks", ranks)
	return nil
}

// IterateStep computes PageRank by fixed-point iteration.
type IterateStep struct {
	// settings configures the solver.
	settings pagerank.Settings

	// logger for structured logging.
	logger *slog.Logger
}

// IterateStepOption configures an IterateStep.
type IterateStepOption func(*IterateStep)

// WithIterateLogger sets a custom logger for the iterate step.
func WithIterateLogger(logger *slog.Logger) IterateStepOption {
	return func(s *IterateStep) {
		s.logger = logger
	}
}

// NewIterateStep creates a new iteration step.
func NewIterateStep(settings pagerank.Settings, opts ...IterateStepOption) *IterateStep {
	s := &IterateStep{
		settings: settings,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *IterateStep) Name() string {
	return "iterate"
}

// Do executes the iteration step.
func (s *IterateStep) Do(_ context.Context, report *model.PageRankReport) error {
	if report.Graph == nil {
		return fmt.Errorf("%w: link graph", ErrMissingInput)
	}

	ranks, iterations, err := pagerank.Iterate(report.Graph, s.settings)
	report.Damping = s.settings.Damping
	report.Iterations = iterations
	if err != nil {
		return err
	}
	report.Iterated = ranks

	s.logger.Debug("iterated ranks",
		"source", report.Source,
		"iterations", iterations,
		"ranks", ranks,
	)
	return nil
}

// DefaultHeredityPipeline creates a pipeline with all heredity steps configured.
//
// Design decision: We provide default pipelines because:
// 1. Every run needs the same steps
// 2. Reduces boilerplate in CLI
// 3. Ensures consistent ordering
func DefaultHeredityPipeline(probs heredity.Probabilities, maxPeople int, opts ...Option) *HeredityPipeline {
	p := New[*model.HeredityReport](opts...)
	p.AddSteps(
		NewLoadPedigreeStep(),
		NewInferStep(probs,
			WithInferMaxPeople(maxPeople),
			WithInferLogger(p.Logger()),
		),
	)
	return p
}

// DefaultPageRankPipeline creates a pipeline that crawls a corpus and runs
// both estimators.
//
// The iterative solver runs last so that a run hitting the iteration cap
// still reports the sampled ranks next to the ErrNotConverged error.
func DefaultPageRankPipeline(settings pagerank.Settings, seed uint64, concurrency int, opts ...Option) *PageRankPipeline {
	p := New[*model.PageRankReport](opts...)
	p.AddSteps(
		NewCrawlStep(
			WithCrawlConcurrency(concurrency),
			WithCrawlLogger(p.Logger()),
		),
		NewSampleStep(settings,
			WithSampleSeed(seed),
			WithSampleLogger(p.Logger()),
		),
		NewIterateStep(settings,
			WithIterateLogger(p.Logger()),
		),
	)
	return p
}
