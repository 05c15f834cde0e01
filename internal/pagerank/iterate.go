package pagerank

import (
	"fmt"
	"math"

	"github.com/nao1215/inferank/internal/model"
)

// Iterate computes PageRank by fixed-point iteration.
//
// Ranks start at 1/N and the recurrence is applied until every page changes
// by strictly less than s.Threshold between two iterations. It returns the
// converged ranks and the number of iterations used, or ErrNotConverged once
// s.MaxIterations is reached.
func Iterate(g *model.LinkGraph, s Settings) (model.RankVector, int, error) {
	if g.Len() == 0 {
		return nil, 0, ErrEmptyGraph
	}
	if err := s.validateIteration(); err != nil {
		return nil, 0, err
	}

	x := index(g)
	ranks := x.uniform()
	for iteration := 1; iteration <= s.MaxIterations; iteration++ {
		next := x.step(ranks, s.Damping)
		converged := true
		for i := range next {
			if !(math.Abs(next[i]-ranks[i]) < s.Threshold) {
				converged = false
				break
			}
		}
		ranks = next
		if converged {
			return x.vector(ranks), iteration, nil
		}
	}
	return nil, s.MaxIterations, fmt.Errorf("%w after %d iterations", ErrNotConverged, s.MaxIterations)
}

// Step applies the PageRank recurrence once to ranks.
// Pages missing from ranks start from zero.
func Step(g *model.LinkGraph, ranks model.RankVector, damping float64) (model.RankVector, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	if !(damping >= 0 && damping < 1) {
		return nil, ErrInvalidDamping
	}

	x := index(g)
	current := make([]float64, len(x.pages))
	for i, p := range x.pages {
		current[i] = ranks[p]
	}
	return x.vector(x.step(current, damping)), nil
}
