package model

import (
	"slices"
	"sort"
)

// LinkGraph maps every page of a corpus to the set of pages it links to.
// Construction applies the corpus rules exactly once: self-links, duplicate
// links and links to pages outside the corpus are dropped.
//
// A page with no outbound links is dangling; both PageRank estimators treat
// it as linking to every page in the corpus.
type LinkGraph struct {
	pages []string
	links map[string][]string
}

// NewLinkGraph builds a LinkGraph from raw extracted links.
// Every key of raw is a page of the corpus; values may contain anything.
func NewLinkGraph(raw map[string][]string) *LinkGraph {
	g := &LinkGraph{
		pages: make([]string, 0, len(raw)),
		links: make(map[string][]string, len(raw)),
	}
	for page := range raw {
		g.pages = append(g.pages, page)
	}
	sort.Strings(g.pages)

	for _, page := range g.pages {
		seen := make(map[string]bool)
		out := make([]string, 0, len(raw[page]))
		for _, target := range raw[page] {
			if target == page || seen[target] {
				continue
			}
			if _, ok := raw[target]; !ok {
				continue
			}
			seen[target] = true
			out = append(out, target)
		}
		sort.Strings(out)
		g.links[page] = out
	}
	return g
}

// Len returns the number of pages.
func (g *LinkGraph) Len() int {
	return len(g.pages)
}

// Pages returns the page names in sorted order.
func (g *LinkGraph) Pages() []string {
	return slices.Clone(g.pages)
}

// Links returns the sorted outbound links of page.
func (g *LinkGraph) Links(page string) []string {
	return slices.Clone(g.links[page])
}

// Has reports whether page is part of the corpus.
func (g *LinkGraph) Has(page string) bool {
	_, ok := g.links[page]
	return ok
}

// IsDangling reports whether page has no outbound links.
func (g *LinkGraph) IsDangling(page string) bool {
	return len(g.links[page]) == 0
}

// LinksTo reports whether from links to to.
func (g *LinkGraph) LinksTo(from, to string) bool {
	_, found := slices.BinarySearch(g.links[from], to)
	return found
}

// Edges returns the number of links in the graph.
func (g *LinkGraph) Edges() int {
	n := 0
	for _, out := range g.links {
		n += len(out)
	}
	return n
}
