package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/inferank/internal/model"
)

// basisPoints scales a probability to an integer pie chart slice.
const basisPoints = 10000

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteHeredity outputs the heredity report in Markdown format.
func (w *MarkdownWriter) WriteHeredity(report *model.HeredityReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, "Heredity Report", &report.Run, [][]string{
		{"People", strconv.Itoa(len(report.Marginals))},
		{"Hypotheses", strconv.Itoa(report.Hypotheses)},
	})

	md.H2("Marginal Probabilities")
	md.PlainText("")

	if len(report.Marginals) == 0 {
		md.PlainText("No marginals computed.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(report.Marginals))
		for i, m := range report.Marginals {
			rows[i] = []string{
				m.Name,
				formatProbability(m.Gene[2]),
				formatProbability(m.Gene[1]),
				formatProbability(m.Gene[0]),
				formatProbability(m.Trait.Present),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Person", "P(2 genes)", "P(1 gene)", "P(0 genes)", "P(trait)"},
			Rows:   rows,
		})
		md.PlainText("")
		w.writeCarrierAlert(md, report.Marginals)
	}

	w.writeError(md, &report.Run)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeCarrierAlert highlights the person most likely to carry the gene.
func (w *MarkdownWriter) writeCarrierAlert(md *markdown.Markdown, marginals model.MarginalTable) {
	best := -1
	var bestCarrier float64
	for i, m := range marginals {
		carrier := m.Gene[1] + m.Gene[2]
		if best < 0 || carrier > bestCarrier {
			best, bestCarrier = i, carrier
		}
	}

	if bestCarrier >= 0.5 {
		md.Warningf("%s most likely carries the gene (P = %s).",
			marginals[best].Name, formatProbability(bestCarrier))
	} else {
		md.Tip("No person is more likely than not to carry the gene.")
	}
	md.PlainText("")
}

// WritePageRank outputs the PageRank report in Markdown format.
func (w *MarkdownWriter) WritePageRank(report *model.PageRankReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, "PageRank Report", &report.Run, [][]string{
		{"Pages", strconv.Itoa(report.Pages)},
		{"Links", strconv.Itoa(report.Links)},
		{"Damping", strconv.FormatFloat(report.Damping, 'f', -1, 64)},
		{"Samples", strconv.Itoa(report.Samples)},
		{"Iterations", strconv.Itoa(report.Iterations)},
	})

	md.H2("Ranks")
	md.PlainText("")

	ranks := report.Iterated
	if ranks == nil {
		ranks = report.Sampled
	}

	if ranks == nil {
		md.PlainText("No ranks computed.")
		md.PlainText("")
	} else {
		pages := ranks.Pages()
		rows := make([][]string, len(pages))
		for i, page := range pages {
			rows[i] = []string{
				"`" + page + "`",
				formatRank(report.Sampled, page),
				formatRank(report.Iterated, page),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Page", "Sampled", "Iterated"},
			Rows:   rows,
		})
		md.PlainText("")
		w.writePieChart(md, ranks)
	}

	if report.Sampled != nil && report.Iterated != nil {
		md.Note(fmt.Sprintf("Largest difference between the two estimates: %s.",
			formatProbability(report.Sampled.MaxDelta(report.Iterated))))
		md.PlainText("")
	}

	w.writeError(md, &report.Run)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of the rank distribution.
// Slices are in basis points because the chart only takes integers.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, ranks model.RankVector) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Rank Distribution (basis points)"),
		piechart.WithShowData(true),
	)

	for _, page := range ranks.Pages() {
		bp := uint64(math.Round(ranks[page] * basisPoints))
		if bp > 0 {
			chart.LabelAndIntValue(page, bp)
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeHeader writes the title and the run information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, title string, run *model.Run, extra [][]string) {
	md.H1(title)
	md.PlainText("")

	rows := [][]string{
		{"Source", "`" + run.Source + "`"},
		{"Run ID", run.ID},
		{"Generated", run.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Elapsed", run.Elapsed.String()},
	}
	rows = append(rows, extra...)
	rows = append(rows, []string{"Status", w.getStatusText(run)})

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getStatusText returns the status text based on run state.
func (w *MarkdownWriter) getStatusText(run *model.Run) string {
	if run.Failed() {
		return "❌ " + statusText(run)
	}
	return "✅ " + statusText(run)
}

// writeError writes a caution alert and the failing step for failed runs.
func (w *MarkdownWriter) writeError(md *markdown.Markdown, run *model.Run) {
	if !run.Failed() {
		return
	}
	md.Cautionf("Run failed: %s", run.ErrorMessage)
	md.PlainText("")
	if len(run.PerformedSteps) > 0 {
		md.Details("Performed steps", fmt.Sprint(run.PerformedSteps))
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [inferank](https://github.com/nao1215/inferank)*")
}

func formatProbability(p float64) string {
	return strconv.FormatFloat(p, 'f', 4, 64)
}

// formatRank returns the rank of page in ranks, or "-" when ranks is nil.
func formatRank(ranks model.RankVector, page string) string {
	if ranks == nil {
		return "-"
	}
	return formatProbability(ranks[page])
}
