package heredity

import (
	"fmt"

	"github.com/nao1215/inferank/internal/model"
)

// Result is the outcome of Infer.
type Result struct {
	// Marginals holds the normalized distributions in pedigree order.
	Marginals model.MarginalTable

	// Hypotheses is the number of hypotheses that were evaluated.
	Hypotheses int
}

// Option configures Infer.
type Option func(*options)

type options struct {
	maxPeople int
}

// WithMaxPeople bounds the pedigree size accepted for enumeration.
// Values above MaxPeopleLimit are clamped.
func WithMaxPeople(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPeople = n
		}
	}
}

// Infer computes every person's marginal gene and trait distribution.
//
// Every hypothesis consistent with the evidence contributes its joint
// probability to the bucket of the value it assigns, for every person. By
// the law of total probability the bucket sums are proportional to the
// marginals; each distribution is then divided by its own sum.
func Infer(pedigree *model.Pedigree, probs Probabilities, opts ...Option) (*Result, error) {
	o := options{maxPeople: DefaultMaxPeople}
	for _, opt := range opts {
		opt(&o)
	}

	enum, err := NewEnumerator(pedigree, o.maxPeople)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(pedigree, probs)
	if err != nil {
		return nil, err
	}

	table := model.NewMarginalTable(pedigree.Names())
	count := 0
	for h := range enum.All() {
		Accumulate(table, h, engine.joint(h))
		count++
	}

	if err := Normalize(table); err != nil {
		return nil, err
	}
	return &Result{Marginals: table, Hypotheses: count}, nil
}

// Accumulate adds the joint probability p of h to every person's buckets.
func Accumulate(table model.MarginalTable, h Hypothesis, p float64) {
	for i := range table {
		table[i].Gene[h.Genes(i)] += p
		if h.HasTrait(i) {
			table[i].Trait.Present += p
		} else {
			table[i].Trait.Absent += p
		}
	}
}

// Normalize rescales every distribution of table to sum to 1.
// It stops at the first distribution with no mass and returns
// ErrInconsistentEvidence rather than dividing by zero.
func Normalize(table model.MarginalTable) error {
	for i := range table {
		m := &table[i]

		geneSum := m.Gene.Sum()
		if !(geneSum > 0) {
			return fmt.Errorf("%q gene distribution: %w", m.Name, ErrInconsistentEvidence)
		}
		traitSum := m.Trait.Sum()
		if !(traitSum > 0) {
			return fmt.Errorf("%q trait distribution: %w", m.Name, ErrInconsistentEvidence)
		}

		for g := range m.Gene {
			m.Gene[g] /= geneSum
		}
		m.Trait.Present /= traitSum
		m.Trait.Absent /= traitSum
	}
	return nil
}
