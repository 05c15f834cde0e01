package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/inferank/internal/config"
	"github.com/nao1215/inferank/internal/heredity"
	"github.com/nao1215/inferank/internal/model"
	"github.com/nao1215/inferank/internal/pipeline"
	"github.com/nao1215/inferank/internal/report"
)

// NewHeredityCmd creates the heredity command.
func NewHeredityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heredity <family.csv>...",
		Short: "Infer gene and trait probabilities for a family",
		Long: `Heredity computes, for every person in a family, the probability of
carrying 0, 1 or 2 copies of a gene and of showing the trait it causes.

The input is a CSV file with the header name,mother,father,trait. Parents are
either both given or both empty. The trait column is empty when unknown, or a
boolean such as 1, 0, true or false.

Every combination of gene counts and traits consistent with the observed
traits is enumerated, so the work grows as 6^people. Pedigrees larger than
--max-people are rejected.

Examples:
  # Infer a single family
  inferank heredity family0.csv

  # Several families, two at a time, as Markdown
  inferank heredity -b 2 --markdown family0.csv family1.csv family2.csv

  # Use a different mutation rate
  inferank heredity --mutation 0.05 family0.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runHeredityCmd,
	}

	cmd.Flags().Int("max-people", heredity.DefaultMaxPeople,
		fmt.Sprintf("Largest pedigree enumerated exactly (at most %d)", heredity.MaxPeopleLimit))
	cmd.Flags().Float64("mutation", heredity.DefaultMutationRate,
		"Probability that a gene copy flips when passed to a child")
	addOutputFlags(cmd)

	return cmd
}

// runHeredityCmd executes the heredity command.
func runHeredityCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runHeredity(ctx, cmd, cfg)
}

// runHeredity infers every input and writes the reports.
func runHeredity(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := setupLogger(cmd.ErrOrStderr(), cfg)
	logger.Info("starting heredity inference",
		"inputs", cfg.Inputs,
		"batchSize", cfg.BatchSize,
		"maxPeople", cfg.MaxPeople,
	)

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.HeredityPipeline {
			return pipeline.DefaultHeredityPipeline(cfg.Probabilities, cfg.MaxPeople,
				pipeline.WithLogger(logger))
		},
		model.NewHeredityReport,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	return writeReports(cmd, cfg, reports,
		func(w report.Writer, r *model.HeredityReport) (int, error) { return w.WriteHeredity(r) },
		func(r *model.HeredityReport) *model.Run { return &r.Run },
	)
}
