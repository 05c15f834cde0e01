package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/inferank/internal/config"
	"github.com/nao1215/inferank/internal/model"
	"github.com/nao1215/inferank/internal/pagerank"
	"github.com/nao1215/inferank/internal/pipeline"
	"github.com/nao1215/inferank/internal/report"
)

// NewPageRankCmd creates the pagerank command.
func NewPageRankCmd() *cobra.Command {
	defaults := pagerank.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "pagerank <corpus-dir>...",
		Short: "Rank the pages of a directory of HTML files",
		Long: `PageRank reads every .html file of a directory, extracts the links between
them, and ranks the pages twice:

- Sampling: a random surfer follows a link with probability --damping and
  jumps to a random page otherwise. Ranks are visit frequencies over
  --samples pages.
- Iteration: the PageRank formula is applied to every page until no rank
  moves by --threshold or more, or --max-iterations is reached.

A page without outgoing links is treated as linking to every page,
itself included.

Examples:
  # Rank a corpus
  inferank pagerank corpus0

  # Reproducible sampling with more samples
  inferank pagerank --seed 42 -n 100000 corpus0

  # JSON report written to a file
  inferank pagerank --json -o out/ranks.json corpus0`,
		Args: cobra.MinimumNArgs(1),
		RunE: runPageRankCmd,
	}

	cmd.Flags().Float64P("damping", "d", defaults.Damping,
		"Probability of following a link, in [0, 1)")
	cmd.Flags().IntP("samples", "n", defaults.Samples,
		"Number of pages visited by the sampling estimator")
	cmd.Flags().Float64("threshold", defaults.Threshold,
		"Convergence threshold of the iterative solver")
	cmd.Flags().Int("max-iterations", defaults.MaxIterations,
		"Upper bound on iterative solver iterations")
	cmd.Flags().Uint64("seed", config.DefaultSeed,
		"Seed of the sampling estimator (0 draws a random seed)")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of HTML files parsed concurrently")
	addOutputFlags(cmd)

	return cmd
}

// runPageRankCmd executes the pagerank command.
func runPageRankCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runPageRank(ctx, cmd, cfg)
}

// runPageRank ranks every corpus and writes the reports.
func runPageRank(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	settings := cfg.PageRankSettings()
	logger.Info("starting pagerank",
		"inputs", cfg.Inputs,
		"damping", settings.Damping,
		"samples", settings.Samples,
		"threshold", settings.Threshold,
		"seed", cfg.Seed,
	)

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.PageRankPipeline {
			return pipeline.DefaultPageRankPipeline(settings, cfg.Seed, cfg.Concurrency,
				pipeline.WithLogger(logger))
		},
		model.NewPageRankReport,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	return writeReports(cmd, cfg, reports,
		func(w report.Writer, r *model.PageRankReport) (int, error) { return w.WritePageRank(r) },
		func(r *model.PageRankReport) *model.Run { return &r.Run },
	)
}
