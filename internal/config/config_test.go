package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nao1215/inferank/internal/heredity"
	"github.com/nao1215/inferank/internal/pagerank"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
// Changes to defaults must be intentional: these tests fail if a default moves.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default probabilities are the standard table", func(t *testing.T) {
		t.Parallel()
		if cfg.Probabilities != heredity.DefaultProbabilities() {
			t.Errorf("unexpected probabilities: %+v", cfg.Probabilities)
		}
	})

	t.Run("default MaxPeople is 16", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxPeople != 16 {
			t.Errorf("expected MaxPeople to be 16, got %d", cfg.MaxPeople)
		}
	})

	t.Run("default Damping is 0.85", func(t *testing.T) {
		t.Parallel()
		if cfg.Damping != 0.85 {
			t.Errorf("expected Damping to be 0.85, got %v", cfg.Damping)
		}
	})

	t.Run("default Samples is 10000", func(t *testing.T) {
		t.Parallel()
		if cfg.Samples != 10000 {
			t.Errorf("expected Samples to be 10000, got %d", cfg.Samples)
		}
	})

	t.Run("default Threshold is 0.001", func(t *testing.T) {
		t.Parallel()
		if cfg.Threshold != 0.001 {
			t.Errorf("expected Threshold to be 0.001, got %v", cfg.Threshold)
		}
	})

	t.Run("default MaxIterations is 1000", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxIterations != 1000 {
			t.Errorf("expected MaxIterations to be 1000, got %d", cfg.MaxIterations)
		}
	})

	t.Run("default Seed is random", func(t *testing.T) {
		t.Parallel()
		if cfg.Seed != 0 {
			t.Errorf("expected Seed to be 0, got %d", cfg.Seed)
		}
	})

	t.Run("default BatchSize is 4", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 4 {
			t.Errorf("expected BatchSize to be 4, got %d", cfg.BatchSize)
		}
	})

	t.Run("PageRankSettings matches estimator defaults", func(t *testing.T) {
		t.Parallel()
		if cfg.PageRankSettings() != pagerank.DefaultSettings() {
			t.Errorf("unexpected settings: %+v", cfg.PageRankSettings())
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	// validConfig returns a minimal valid configuration.
	// Tests can modify specific fields to test validation rules.
	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Inputs = []string{"family0.csv"}
		return cfg
	}

	t.Run("valid config returns nil", func(t *testing.T) {
		t.Parallel()
		if err := validConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("multiple inputs is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.Inputs = []string{"family0.csv", "family1.csv", "family2.csv"}

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"nil inputs returns ErrNoInput", func(c *Config) { c.Inputs = nil }, ErrNoInput},
		{"zero batch size returns ErrInvalidBatchSize", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"negative batch size returns ErrInvalidBatchSize", func(c *Config) { c.BatchSize = -1 }, ErrInvalidBatchSize},
		{"zero concurrency returns ErrInvalidConcurrency", func(c *Config) { c.Concurrency = 0 }, ErrInvalidConcurrency},
		{"json and markdown returns ErrConflictingReportFormats", func(c *Config) {
			c.JSONReport = true
			c.MarkdownReport = true
		}, ErrConflictingReportFormats},
		{"zero max people returns ErrInvalidMaxPeople", func(c *Config) { c.MaxPeople = 0 }, ErrInvalidMaxPeople},
		{"max people above limit returns ErrInvalidMaxPeople", func(c *Config) { c.MaxPeople = heredity.MaxPeopleLimit + 1 }, ErrInvalidMaxPeople},
		{"gene prior not summing to one returns ErrInvalidProbabilities", func(c *Config) { c.Probabilities.Gene[0] = 0.5 }, heredity.ErrInvalidProbabilities},
		{"mutation above one returns ErrInvalidProbabilities", func(c *Config) { c.Probabilities.Mutation = 1.5 }, heredity.ErrInvalidProbabilities},
		{"damping of one returns ErrInvalidDamping", func(c *Config) { c.Damping = 1 }, pagerank.ErrInvalidDamping},
		{"zero samples returns ErrInvalidSamples", func(c *Config) { c.Samples = 0 }, pagerank.ErrInvalidSamples},
		{"negative threshold returns ErrInvalidThreshold", func(c *Config) { c.Threshold = -0.1 }, pagerank.ErrInvalidThreshold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("json only is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.JSONReport = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("markdown only is valid", func(t *testing.T) {
		t.Parallel()
		cfg := validConfig()
		cfg.MarkdownReport = true
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// writeFile writes content to name inside a fresh temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile("/nonexistent/path/.inferank")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cf != nil {
			t.Error("expected nil file when not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, ".inferank", `heredity:
  gene:
    2: 0.02
    1: 0.04
    0: 0.94
  trait:
    0:
      present: 0.02
      absent: 0.98
  mutation: 0
  maxPeople: 12
pagerank:
  damping: 0.9
  samples: 500
  threshold: 0.0001
  maxIterations: 50
  seed: 42
  concurrency: 2
`)

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg := NewConfig()
		if err := cf.Apply(cfg); err != nil {
			t.Fatalf("unexpected apply error: %v", err)
		}

		if cfg.Probabilities.Gene != [3]float64{0.94, 0.04, 0.02} {
			t.Errorf("unexpected gene prior: %v", cfg.Probabilities.Gene)
		}
		if cfg.Probabilities.Trait[0].Present != 0.02 || cfg.Probabilities.Trait[0].Absent != 0.98 {
			t.Errorf("unexpected trait row 0: %+v", cfg.Probabilities.Trait[0])
		}
		if cfg.Probabilities.Trait[1] != heredity.DefaultProbabilities().Trait[1] {
			t.Errorf("expected trait row 1 to keep its default, got %+v", cfg.Probabilities.Trait[1])
		}
		if cfg.Probabilities.Mutation != 0 {
			t.Errorf("expected explicit zero mutation, got %v", cfg.Probabilities.Mutation)
		}
		if cfg.MaxPeople != 12 {
			t.Errorf("expected MaxPeople 12, got %d", cfg.MaxPeople)
		}
		if cfg.Damping != 0.9 || cfg.Samples != 500 || cfg.Threshold != 0.0001 || cfg.MaxIterations != 50 {
			t.Errorf("unexpected pagerank settings: %+v", cfg.PageRankSettings())
		}
		if cfg.Seed != 42 || cfg.Concurrency != 2 {
			t.Errorf("unexpected seed/concurrency: %d/%d", cfg.Seed, cfg.Concurrency)
		}
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile(writeFile(t, ".inferank", ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cfg := NewConfig()
		if err := cf.Apply(cfg); err != nil {
			t.Fatalf("unexpected apply error: %v", err)
		}
		if !reflect.DeepEqual(cfg, NewConfig()) {
			t.Errorf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(writeFile(t, ".inferank", `invalid: yaml: content: [}`))
		if err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("rejects gene count outside the table", func(t *testing.T) {
		t.Parallel()

		cf, err := LoadConfigFile(writeFile(t, ".inferank", "heredity:\n  gene:\n    3: 0.5\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cf.Apply(NewConfig()); !errors.Is(err, ErrInvalidGeneCount) {
			t.Errorf("expected ErrInvalidGeneCount, got %v", err)
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "custom.yaml", "pagerank: {}")
		if result := FindConfigFile(path); result != path {
			t.Errorf("expected %q, got %q", path, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("search does not panic", func(_ *testing.T) {
		// This may or may not find a config depending on the system.
		_ = FindConfigFile("")
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected XDG config dir to end in %q, got %q", AppName, dir)
	}
}

// TestLoadEnv tests dotenv and process environment collection.
// Subtests using t.Setenv cannot run in parallel.
func TestLoadEnv(t *testing.T) {
	t.Run("reads prefixed dotenv variables", func(t *testing.T) {
		path := writeFile(t, ".env", "INFERANK_DAMPING=0.5\nOTHER=ignored\n")

		vars, err := LoadEnv(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vars["INFERANK_DAMPING"] != "0.5" {
			t.Errorf("expected INFERANK_DAMPING from dotenv, got %v", vars)
		}
		if _, ok := vars["OTHER"]; ok {
			t.Error("expected unprefixed variable to be ignored")
		}
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("INFERANK_SAMPLES", "77")
		path := writeFile(t, ".env", "INFERANK_SAMPLES=5\n")

		vars, err := LoadEnv(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vars["INFERANK_SAMPLES"] != "77" {
			t.Errorf("expected process value 77, got %q", vars["INFERANK_SAMPLES"])
		}
	})

	t.Run("missing dotenv file is fine", func(t *testing.T) {
		if _, err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestApplyEnv tests environment overrides.
func TestApplyEnv(t *testing.T) {
	t.Parallel()

	t.Run("applies every recognized variable", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		err := cfg.ApplyEnv(map[string]string{
			"INFERANK_DAMPING":        "0.7",
			"INFERANK_SAMPLES":        "123",
			"INFERANK_THRESHOLD":      "0.01",
			"INFERANK_MAX_ITERATIONS": "9",
			"INFERANK_SEED":           "5",
			"INFERANK_CONCURRENCY":    "3",
			"INFERANK_BATCH":          "2",
			"INFERANK_MAX_PEOPLE":     "8",
			"INFERANK_MUTATION":       " 0.02 ",
			"INFERANK_VERBOSE":        "true",
			"INFERANK_LOG_JSON":       "1",
			"INFERANK_UNKNOWN":        "whatever",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.Damping != 0.7 || cfg.Samples != 123 || cfg.Threshold != 0.01 || cfg.MaxIterations != 9 {
			t.Errorf("unexpected pagerank settings: %+v", cfg.PageRankSettings())
		}
		if cfg.Seed != 5 || cfg.Concurrency != 3 || cfg.BatchSize != 2 || cfg.MaxPeople != 8 {
			t.Errorf("unexpected ints: seed=%d concurrency=%d batch=%d maxPeople=%d",
				cfg.Seed, cfg.Concurrency, cfg.BatchSize, cfg.MaxPeople)
		}
		if cfg.Probabilities.Mutation != 0.02 {
			t.Errorf("expected mutation 0.02, got %v", cfg.Probabilities.Mutation)
		}
		if !cfg.Verbose || !cfg.LogJSON {
			t.Error("expected Verbose and LogJSON to be true")
		}
	})

	t.Run("rejects unparsable value", func(t *testing.T) {
		t.Parallel()

		err := NewConfig().ApplyEnv(map[string]string{"INFERANK_SAMPLES": "many"})
		if !errors.Is(err, ErrInvalidEnv) {
			t.Errorf("expected ErrInvalidEnv, got %v", err)
		}
	})

	t.Run("rejects negative seed", func(t *testing.T) {
		t.Parallel()

		err := NewConfig().ApplyEnv(map[string]string{"INFERANK_SEED": "-1"})
		if !errors.Is(err, ErrInvalidEnv) {
			t.Errorf("expected ErrInvalidEnv, got %v", err)
		}
	})
}
