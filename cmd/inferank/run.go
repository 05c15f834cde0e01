package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nao1215/inferank/internal/config"
	ilog "github.com/nao1215/inferank/internal/log"
	"github.com/nao1215/inferank/internal/model"
	"github.com/nao1215/inferank/internal/report"
)

// addOutputFlags registers the flags shared by the heredity and pagerank
// commands.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of inputs processed concurrently")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .inferank in current or home directory)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
}

// buildConfig layers defaults, the configuration file, the environment and
// the flags the user actually set, in that order.
//
// Design decision: Flags only override when Changed, otherwise a flag's
// default would silently replace a value from the file or the environment.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file path, error if not found.
	// Otherwise silently keep the defaults when no file exists.
	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	vars, err := config.LoadEnv(config.DefaultEnvFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(vars); err != nil {
		return nil, err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.Inputs = args
	return cfg, nil
}

// applyFlags copies every flag the user set onto cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "verbose":
			cfg.Verbose, err = flags.GetBool(f.Name)
		case "log-json":
			cfg.LogJSON, err = flags.GetBool(f.Name)
		case "batch":
			cfg.BatchSize, err = flags.GetInt(f.Name)
		case "json":
			cfg.JSONReport, err = flags.GetBool(f.Name)
		case "markdown":
			cfg.MarkdownReport, err = flags.GetBool(f.Name)
		case "output":
			cfg.ReportFile, err = flags.GetString(f.Name)
		case "max-people":
			cfg.MaxPeople, err = flags.GetInt(f.Name)
		case "mutation":
			cfg.Probabilities.Mutation, err = flags.GetFloat64(f.Name)
		case "damping":
			cfg.Damping, err = flags.GetFloat64(f.Name)
		case "samples":
			cfg.Samples, err = flags.GetInt(f.Name)
		case "threshold":
			cfg.Threshold, err = flags.GetFloat64(f.Name)
		case "max-iterations":
			cfg.MaxIterations, err = flags.GetInt(f.Name)
		case "seed":
			cfg.Seed, err = flags.GetUint64(f.Name)
		case "concurrency":
			cfg.Concurrency, err = flags.GetInt(f.Name)
		}
	})

	return err
}

// setupLogger creates a structured logger based on the configuration.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return ilog.NewJSONLogger(w, cfg.Verbose)
	}
	return ilog.NewLogger(w, cfg.Verbose)
}

// openOutput returns the report destination: the -o file, created with its
// parent directories, or the command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// newWriter selects the report writer for the configured format.
func newWriter(w io.Writer, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewFullJSONWriter(w, getVersion(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(w)
	default:
		return report.NewSimpleWriter(w, report.WithHeader(len(cfg.Inputs) > 1))
	}
}

// writeReports writes every report and then returns the errors of the
// failed runs, each prefixed with its input.
func writeReports[R any](
	cmd *cobra.Command,
	cfg *config.Config,
	reports []R,
	write func(report.Writer, R) (int, error),
	run func(R) *model.Run,
) (err error) {
	out, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := newWriter(out, cfg)
	var errs []error
	for _, r := range reports {
		if _, err := write(w, r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if rr := run(r); rr.Failed() {
			errs = append(errs, fmt.Errorf("%s: %w", rr.Source, rr.Error))
		}
	}
	return errors.Join(errs...)
}
