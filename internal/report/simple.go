package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/inferank/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// The layout is the classic one: one indented block per person or page,
// probabilities with four decimal places.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. The output stays diffable against earlier runs
type SimpleWriter struct {
	baseWriter

	// header prints the input path above each report. Used when several
	// inputs are written to the same stream.
	header bool

	// title capitalizes section labels ("gene" -> "Gene").
	title cases.Caser
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithHeader prints the input path above each report.
func WithHeader(header bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.header = header
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteHeredity outputs the marginals of every person in pedigree order.
func (w *SimpleWriter) WriteHeredity(report *model.HeredityReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, &report.Run)

	for _, m := range report.Marginals {
		sb.WriteString(fmt.Sprintf("%s:\n", m.Name))

		sb.WriteString(fmt.Sprintf("  %s:\n", w.title.String("gene")))
		for _, genes := range model.GeneCounts {
			sb.WriteString(fmt.Sprintf("    %d: %.4f\n", genes, m.Gene[genes]))
		}

		sb.WriteString(fmt.Sprintf("  %s:\n", w.title.String("trait")))
		sb.WriteString(fmt.Sprintf("    %s: %.4f\n", w.title.String(strconv.FormatBool(true)), m.Trait.Present))
		sb.WriteString(fmt.Sprintf("    %s: %.4f\n", w.title.String(strconv.FormatBool(false)), m.Trait.Absent))
	}

	w.writeError(&sb, &report.Run)

	return w.output.Write([]byte(sb.String()))
}

// WritePageRank outputs the sampled and iterated ranks in page order.
// A section is left out when its estimator did not produce ranks.
func (w *SimpleWriter) WritePageRank(report *model.PageRankReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, &report.Run)

	if report.Sampled != nil {
		sb.WriteString(fmt.Sprintf("PageRank Results from Sampling (n = %d)\n", report.Samples))
		writeRanks(&sb, report.Sampled)
	}
	if report.Iterated != nil {
		sb.WriteString("PageRank Results from Iteration\n")
		writeRanks(&sb, report.Iterated)
	}

	w.writeError(&sb, &report.Run)

	return w.output.Write([]byte(sb.String()))
}

// writeRanks writes one indented line per page, in sorted page order.
func writeRanks(sb *strings.Builder, ranks model.RankVector) {
	for _, page := range ranks.Pages() {
		sb.WriteString(fmt.Sprintf("  %s: %.4f\n", page, ranks[page]))
	}
}

func (w *SimpleWriter) writeHeader(sb *strings.Builder, run *model.Run) {
	if w.header {
		sb.WriteString(fmt.Sprintf("==> %s <==\n", run.Source))
	}
}

func (w *SimpleWriter) writeError(sb *strings.Builder, run *model.Run) {
	if run.Failed() {
		sb.WriteString(fmt.Sprintf("Status: %s\n", statusText(run)))
	}
}
