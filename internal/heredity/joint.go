package heredity

import (
	"fmt"

	"github.com/nao1215/inferank/internal/model"
)

// Engine computes joint probabilities of hypotheses over one pedigree.
// It is immutable after construction and safe for concurrent use.
type Engine struct {
	probs   Probabilities
	size    int
	mothers []int
	fathers []int
}

// NewEngine creates an Engine for pedigree using probs.
func NewEngine(pedigree *model.Pedigree, probs Probabilities) (*Engine, error) {
	if err := probs.Validate(); err != nil {
		return nil, err
	}
	if pedigree.Len() > MaxPeopleLimit {
		return nil, fmt.Errorf("%w: %d people", ErrPedigreeTooLarge, pedigree.Len())
	}

	e := &Engine{
		probs:   probs,
		size:    pedigree.Len(),
		mothers: make([]int, pedigree.Len()),
		fathers: make([]int, pedigree.Len()),
	}
	for i := range e.size {
		e.mothers[i], e.fathers[i] = pedigree.Parents(i)
	}
	return e, nil
}

// Joint returns the probability that every person has exactly the gene
// count and trait h assigns them. It returns ErrUnassigned when h is not a
// complete assignment over the engine's pedigree.
func (e *Engine) Joint(h Hypothesis) (float64, error) {
	if !h.assigns(e.size) {
		return 0, fmt.Errorf("%w: hypothesis of size %d over %d people", ErrUnassigned, h.Size, e.size)
	}
	return e.joint(h), nil
}

// JointAssignment is Joint for name-keyed assignments.
func (e *Engine) JointAssignment(pedigree *model.Pedigree, genes model.GeneAssignment, traits model.TraitAssignment) (float64, error) {
	h, err := NewHypothesis(pedigree, genes, traits)
	if err != nil {
		return 0, err
	}
	return e.Joint(h)
}

// joint is the unchecked hot path used during enumeration.
func (e *Engine) joint(h Hypothesis) float64 {
	p := 1.0
	for i := range e.size {
		p *= e.person(h, i)
	}
	return p
}

// person returns P(genes | parents) * P(trait | genes) for person i.
func (e *Engine) person(h Hypothesis, i int) float64 {
	genes := h.Genes(i)

	var geneProb float64
	if mother := e.mothers[i]; mother < 0 {
		geneProb = e.probs.Gene[genes]
	} else {
		pm := e.probs.PassProbability(h.Genes(mother))
		pf := e.probs.PassProbability(h.Genes(e.fathers[i]))
		geneProb = GeneGivenParents(genes, pm, pf)
	}

	return geneProb * e.probs.TraitGiven(genes, h.HasTrait(i))
}
