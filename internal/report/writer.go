package report

import (
	"io"

	"github.com/nao1215/inferank/internal/model"
)

// Writer defines the interface for report output.
// Implementations write run results in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files or stdout with the same
// API.
type Writer interface {
	// WriteHeredity outputs a heredity inference report.
	// Returns the number of bytes written and any error encountered.
	WriteHeredity(report *model.HeredityReport) (int, error)

	// WritePageRank outputs a PageRank report.
	WritePageRank(report *model.PageRankReport) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// WriteHeredity outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) WriteHeredity(report *model.HeredityReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteHeredity(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WritePageRank outputs the report to all configured Writers.
func (m *MultiWriter) WritePageRank(report *model.PageRankReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WritePageRank(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// statusText returns a one-line status for a run.
func statusText(run *model.Run) string {
	if run.Failed() {
		return "ERROR - " + run.ErrorMessage
	}
	return "Complete"
}
