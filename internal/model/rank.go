package model

import (
	"log/slog"
	"math"
	"sort"
)

// RankVector maps page names to their PageRank.
// Values are non-negative and sum to 1 within floating tolerance.
type RankVector map[string]float64

// Sum returns the total rank mass.
func (r RankVector) Sum() float64 {
	var total float64
	for _, v := range r {
		total += v
	}
	return total
}

// Pages returns the page names in sorted order.
func (r RankVector) Pages() []string {
	pages := make([]string, 0, len(r))
	for page := range r {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// MaxDelta returns the largest absolute per-page difference between r and
// other. Pages missing from other count as zero.
func (r RankVector) MaxDelta(other RankVector) float64 {
	var delta float64
	for page, v := range r {
		delta = math.Max(delta, math.Abs(v-other[page]))
	}
	return delta
}

// LogValue implements slog.LogValuer. Pages are logged as a group in
// sorted order.
func (r RankVector) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(r))
	for _, page := range r.Pages() {
		attrs = append(attrs, slog.Float64(page, r[page]))
	}
	return slog.GroupValue(attrs...)
}
