package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/inferank/internal/config"
)

const family0 = `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// twoPageCorpus creates a corpus of two pages linking to each other.
func twoPageCorpus(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeFile(t, dir, "1.html", `<html><body><a href="2.html">two</a></body></html>`)
	writeFile(t, dir, "2.html", `<html><body><a href="1.html">one</a></body></html>`)
	return dir
}

func TestHeredityCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints marginals as text", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "family0.csv", family0)
		out, err := execute(t, "heredity", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{
			"Harry:\n  Gene:\n",
			"    True: 0.2665\n    False: 0.7335\n",
			"James:\n",
			"Lily:\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("writes JSON report to file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "family0.csv", family0)
		reportPath := filepath.Join(dir, "out", "report.json")

		if _, err := execute(t, "heredity", "--json", "-o", reportPath, path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := os.ReadFile(reportPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}
		var decoded struct {
			Kind   string `json:"kind"`
			Report struct {
				Hypotheses int `json:"hypotheses"`
			} `json:"report"`
		}
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if decoded.Kind != "heredity" {
			t.Errorf("expected kind heredity, got %q", decoded.Kind)
		}
		if decoded.Report.Hypotheses == 0 {
			t.Error("expected hypotheses to be recorded")
		}
	})

	t.Run("missing input fails after writing report", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.csv")
		out, err := execute(t, "heredity", missing)
		if err == nil {
			t.Fatal("expected error for missing input")
		}
		if !strings.Contains(err.Error(), missing) {
			t.Errorf("expected error to name the input, got %v", err)
		}
		if !strings.Contains(out, "Status: ERROR") {
			t.Errorf("expected error status in output, got:\n%s", out)
		}
	})

	t.Run("rejects conflicting formats", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "family0.csv", family0)
		_, err := execute(t, "heredity", "--json", "--markdown", path)
		if !errors.Is(err, config.ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("rejects missing explicit config file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "family0.csv", family0)
		_, err := execute(t, "heredity", "-c", filepath.Join(t.TempDir(), "nope.yaml"), path)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("requires an argument", func(t *testing.T) {
		t.Parallel()

		if _, err := execute(t, "heredity"); err == nil {
			t.Error("expected error without arguments")
		}
	})
}

func TestPageRankCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints both estimates", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "pagerank", "--seed", "42", "-n", "1000", twoPageCorpus(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(out, "PageRank Results from Sampling (n = 1000)\n") {
			t.Errorf("expected sampling header, got:\n%s", out)
		}
		want := "PageRank Results from Iteration\n  1.html: 0.5000\n  2.html: 0.5000\n"
		if !strings.Contains(out, want) {
			t.Errorf("expected iteration section %q, got:\n%s", want, out)
		}
	})

	t.Run("config file sets the sample count", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeFile(t, t.TempDir(), "inferank.yaml", "pagerank:\n  samples: 500\n  seed: 7\n")
		out, err := execute(t, "pagerank", "-c", cfgPath, twoPageCorpus(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "(n = 500)") {
			t.Errorf("expected sample count from config file, got:\n%s", out)
		}
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeFile(t, t.TempDir(), "inferank.yaml", "pagerank:\n  samples: 500\n")
		out, err := execute(t, "pagerank", "-c", cfgPath, "-n", "800", twoPageCorpus(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "(n = 800)") {
			t.Errorf("expected flag to override config file, got:\n%s", out)
		}
	})

	t.Run("markdown report", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "pagerank", "--markdown", "--seed", "1", twoPageCorpus(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "# PageRank Report") {
			t.Errorf("expected markdown title, got:\n%s", out)
		}
	})

	t.Run("rejects invalid damping", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "pagerank", "-d", "1.5", twoPageCorpus(t))
		if err == nil || !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("expected configuration error, got %v", err)
		}
	})

	t.Run("empty corpus fails", func(t *testing.T) {
		t.Parallel()

		if _, err := execute(t, "pagerank", t.TempDir()); err == nil {
			t.Error("expected error for empty corpus")
		}
	})
}
