package log

import (
	"context"
	"io"
	"log/slog"
	"math"
)

// DefaultPrecision is the number of decimal places kept for float
// attributes. It matches the precision of the text report.
const DefaultPrecision = 4

// RoundingHandler wraps an slog.Handler to round float attributes.
// Probabilities and ranks carry long binary tails (0.29180000000000006)
// that make debug output hard to scan; the handler rounds them to a fixed
// number of decimal places before passing the record on.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Values stay numeric, so JSON logs remain machine-readable
type RoundingHandler struct {
	// handler is the underlying slog handler that receives rounded records.
	handler slog.Handler

	// scale is 10^precision.
	scale float64
}

// NewRoundingHandler creates a new RoundingHandler wrapping the given handler.
// If handler is nil, the returned RoundingHandler will use slog.Default().Handler().
// A negative precision is treated as 0.
func NewRoundingHandler(handler slog.Handler, precision int) *RoundingHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	precision = max(precision, 0)
	return &RoundingHandler{handler: handler, scale: math.Pow10(precision)}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *RoundingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rounds the record's attributes and passes it to the underlying handler.
func (h *RoundingHandler) Handle(ctx context.Context, r slog.Record) error {
	rounded := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rounded.AddAttrs(h.roundAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rounded)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are rounded before being added.
func (h *RoundingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rounded := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rounded[i] = h.roundAttr(a)
	}
	return &RoundingHandler{handler: h.handler.WithAttrs(rounded), scale: h.scale}
}

// WithGroup returns a new handler with the given group name.
func (h *RoundingHandler) WithGroup(name string) slog.Handler {
	return &RoundingHandler{handler: h.handler.WithGroup(name), scale: h.scale}
}

// roundAttr rounds a single attribute, recursively handling groups.
// LogValuer values are resolved first so that types logging themselves as
// groups of floats are rounded too.
func (h *RoundingHandler) roundAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()

	switch v.Kind() {
	case slog.KindGroup:
		attrs := v.Group()
		rounded := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rounded[i] = h.roundAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rounded...)}
	case slog.KindFloat64:
		return slog.Float64(a.Key, h.round(v.Float64()))
	default:
		return slog.Attr{Key: a.Key, Value: v}
	}
}

// round rounds f to the handler precision. NaN and infinities pass through.
func (h *RoundingHandler) round(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	return math.Round(f*h.scale) / h.scale
}

// NewLogger creates a new slog.Logger writing text records with rounded
// float attributes.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewRoundingHandler(slog.NewTextHandler(w, opts), DefaultPrecision))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON records with
// rounded float attributes. Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(verbose)}
	return slog.New(NewRoundingHandler(slog.NewJSONHandler(w, opts), DefaultPrecision))
}

func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
