package pagerank

import "github.com/nao1215/inferank/internal/model"

// indexed is a LinkGraph flattened to page indices, so the hot loops of
// both estimators avoid map lookups.
type indexed struct {
	pages    []string
	out      [][]int
	in       [][]int
	dangling []int
}

func index(g *model.LinkGraph) *indexed {
	pages := g.Pages()
	pos := make(map[string]int, len(pages))
	for i, p := range pages {
		pos[p] = i
	}

	x := &indexed{
		pages: pages,
		out:   make([][]int, len(pages)),
		in:    make([][]int, len(pages)),
	}
	for i, p := range pages {
		links := g.Links(p)
		if len(links) == 0 {
			x.dangling = append(x.dangling, i)
			continue
		}
		x.out[i] = make([]int, len(links))
		for k, target := range links {
			j := pos[target]
			x.out[i][k] = j
			x.in[j] = append(x.in[j], i)
		}
	}
	return x
}

// uniform returns 1/N for every page.
func (x *indexed) uniform() []float64 {
	ranks := make([]float64, len(x.pages))
	for i := range ranks {
		ranks[i] = 1 / float64(len(ranks))
	}
	return ranks
}

// step applies the PageRank recurrence once:
//
//	new[p] = (1-d)/N + d * sum_i contribution(i, p)
//
// where a dangling page i contributes rank[i]/N to every page and any other
// page contributes rank[i]/|out(i)| to each page it links to.
func (x *indexed) step(ranks []float64, d float64) []float64 {
	n := float64(len(x.pages))

	var danglingMass float64
	for _, i := range x.dangling {
		danglingMass += ranks[i]
	}
	base := (1-d)/n + d*danglingMass/n

	next := make([]float64, len(ranks))
	for p := range next {
		var sum float64
		for _, i := range x.in[p] {
			sum += ranks[i] / float64(len(x.out[i]))
		}
		next[p] = base + d*sum
	}
	return next
}

func (x *indexed) vector(values []float64) model.RankVector {
	ranks := make(model.RankVector, len(values))
	for i, v := range values {
		ranks[x.pages[i]] = v
	}
	return ranks
}
