package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/inferank/internal/config"
)

//go:embed templates/inferank.yaml
var configTemplate embed.FS

// templatePath is the embedded configuration template.
const templatePath = "templates/inferank.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new inferank configuration file",
		Long: `Initialize creates a new .inferank configuration file in the current directory.

The generated file includes:
- The default gene prior, trait table and mutation rate
- The default PageRank damping factor, sample count and solver limits
- Comments documenting every option

Examples:
  # Create .inferank in current directory
  inferank init

  # Create config file at a specific path
  inferank init -o myconfig.yaml

  # Force overwrite existing file
  inferank init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := loadTemplate()
	if err != nil {
		return err
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change:")
	fmt.Fprintln(out, "  - The gene prior, trait table and mutation rate")
	fmt.Fprintln(out, "  - The PageRank damping factor and sample count")
	fmt.Fprintln(out, "  - The iterative solver threshold and iteration cap")

	return nil
}

// loadTemplate reads the embedded template and checks that it parses and
// validates, so init never writes a file the other commands reject.
func loadTemplate() ([]byte, error) {
	content, err := configTemplate.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config template: %w", err)
	}

	var file config.File
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("invalid config template: %w", err)
	}

	cfg := config.NewConfig()
	if err := file.Apply(cfg); err != nil {
		return nil, fmt.Errorf("invalid config template: %w", err)
	}
	cfg.Inputs = []string{templatePath}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config template: %w", err)
	}

	return content, nil
}
