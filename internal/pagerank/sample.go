package pagerank

import (
	"fmt"
	"math/rand/v2"

	"github.com/nao1215/inferank/internal/model"
)

// Transition returns the probability distribution over the next page of a
// surfer currently on page.
//
// With probability d the surfer follows one of page's links, chosen
// uniformly (any page of the corpus when page is dangling). With probability
// 1-d the surfer jumps to a uniformly chosen page.
func Transition(g *model.LinkGraph, page string, damping float64) (model.RankVector, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.Has(page) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}
	if !(damping >= 0 && damping < 1) {
		return nil, ErrInvalidDamping
	}

	pages := g.Pages()
	links := g.Links(page)
	if len(links) == 0 {
		links = pages
	}

	dist := make(model.RankVector, len(pages))
	jump := (1 - damping) / float64(len(pages))
	for _, p := range pages {
		dist[p] = jump
	}
	follow := damping / float64(len(links))
	for _, p := range links {
		dist[p] += follow
	}
	return dist, nil
}

// Sample estimates PageRank by a random walk of s.Samples samples.
//
// The first sample is a uniformly chosen page; every further sample is drawn
// from the transition model of the previous one. The rank of a page is the
// fraction of samples that landed on it, so the result sums to 1 and pages
// never visited rank 0.
func Sample(g *model.LinkGraph, s Settings, rng *rand.Rand) (model.RankVector, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	if err := s.validateSampling(); err != nil {
		return nil, err
	}

	x := index(g)
	n := len(x.pages)
	counts := make([]int, n)

	current := rng.IntN(n)
	counts[current]++
	for i := 1; i < s.Samples; i++ {
		current = x.next(current, s.Damping, rng)
		counts[current]++
	}

	freq := make([]float64, n)
	for i, c := range counts {
		freq[i] = float64(c) / float64(s.Samples)
	}
	return x.vector(freq), nil
}

// next draws the page after current from the transition model.
func (x *indexed) next(current int, damping float64, rng *rand.Rand) int {
	if rng.Float64() < damping {
		if out := x.out[current]; len(out) > 0 {
			return out[rng.IntN(len(out))]
		}
	}
	return rng.IntN(len(x.pages))
}
