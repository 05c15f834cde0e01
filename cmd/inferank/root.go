package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for inferank.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inferank",
		Short: "Pedigree heredity inference and PageRank estimation",
		Long: `inferank runs two numeric computations over small datasets.

heredity infers, for every person in a family CSV, the probability of
carrying 0, 1 or 2 copies of a gene and of showing the trait it causes.

pagerank ranks the pages of a directory of HTML files, once by sampling a
random surfer and once by iterating the PageRank formula to convergence.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	// Add subcommands
	cmd.AddCommand(NewHeredityCmd())
	cmd.AddCommand(NewPageRankCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
