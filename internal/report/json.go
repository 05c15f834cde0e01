package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/inferank/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WriteHeredity outputs the heredity report in JSON format.
func (w *JSONWriter) WriteHeredity(report *model.HeredityReport) (int, error) {
	return w.writeJSON(report)
}

// WritePageRank outputs the PageRank report in JSON format.
func (w *JSONWriter) WritePageRank(report *model.PageRankReport) (int, error) {
	return w.writeJSON(report)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// JSONReport is a wrapper for a report with additional metadata.
//
// Design decision: We wrap the report rather than adding a version field to
// the model types because this allows us to add output-specific fields
// without polluting the core data structures.
type JSONReport struct {
	// Version is the inferank version that generated this report.
	Version string `json:"version"`

	// Kind is "heredity" or "pagerank".
	Kind string `json:"kind"`

	// Report is the wrapped report.
	Report any `json:"report"`
}

// FullJSONWriter outputs reports with the metadata wrapper.
type FullJSONWriter struct {
	*JSONWriter

	// version is the inferank version string.
	version string
}

// NewFullJSONWriter creates a writer for reports with metadata.
func NewFullJSONWriter(output io.Writer, version string, opts ...JSONWriterOption) *FullJSONWriter {
	return &FullJSONWriter{
		JSONWriter: NewJSONWriter(output, opts...),
		version:    version,
	}
}

// WriteHeredity outputs the heredity report wrapped with metadata.
func (w *FullJSONWriter) WriteHeredity(report *model.HeredityReport) (int, error) {
	return w.writeJSON(&JSONReport{Version: w.version, Kind: "heredity", Report: report})
}

// WritePageRank outputs the PageRank report wrapped with metadata.
func (w *FullJSONWriter) WritePageRank(report *model.PageRankReport) (int, error) {
	return w.writeJSON(&JSONReport{Version: w.version, Kind: "pagerank", Report: report})
}
