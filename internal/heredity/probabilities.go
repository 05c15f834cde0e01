package heredity

import (
	"fmt"
	"math"
)

// Default probability constants.
const (
	// DefaultMutationRate is the probability that a gene copy flips when it
	// is passed from a parent to a child.
	DefaultMutationRate = 0.01

	// sumTolerance is how far a distribution may drift from 1.
	sumTolerance = 1e-9
)

// TraitProbability is the probability of showing the trait, or not, given
// a gene count.
type TraitProbability struct {
	Present float64 `yaml:"present" json:"present"`
	Absent  float64 `yaml:"absent" json:"absent"`
}

// Probabilities is the immutable configuration of the inference engine.
// It is passed by value so that a computation never observes a change.
type Probabilities struct {
	// Gene is the unconditional prior of having 0, 1 or 2 copies, indexed by
	// gene count. It applies to people without recorded parents.
	Gene [3]float64

	// Trait is the penetrance table indexed by gene count.
	Trait [3]TraitProbability

	// Mutation is the probability that a passed copy flips.
	Mutation float64
}

// DefaultProbabilities returns the standard prior, penetrance and mutation
// rate.
func DefaultProbabilities() Probabilities {
	return Probabilities{
		Gene: [3]float64{0.96, 0.03, 0.01},
		Trait: [3]TraitProbability{
			{Present: 0.01, Absent: 0.99},
			{Present: 0.56, Absent: 0.44},
			{Present: 0.65, Absent: 0.35},
		},
		Mutation: DefaultMutationRate,
	}
}

// Validate checks that every value is a probability and that every
// distribution sums to 1.
func (p Probabilities) Validate() error {
	for genes, v := range p.Gene {
		if !isProbability(v) {
			return fmt.Errorf("%w: gene prior for %d copies is %v", ErrInvalidProbabilities, genes, v)
		}
	}
	if sum := p.Gene[0] + p.Gene[1] + p.Gene[2]; math.Abs(sum-1) > sumTolerance {
		return fmt.Errorf("%w: gene prior sums to %v", ErrInvalidProbabilities, sum)
	}

	for genes, t := range p.Trait {
		if !isProbability(t.Present) || !isProbability(t.Absent) {
			return fmt.Errorf("%w: trait probability for %d copies is out of range", ErrInvalidProbabilities, genes)
		}
		if sum := t.Present + t.Absent; math.Abs(sum-1) > sumTolerance {
			return fmt.Errorf("%w: trait probability for %d copies sums to %v", ErrInvalidProbabilities, genes, sum)
		}
	}

	if !isProbability(p.Mutation) {
		return fmt.Errorf("%w: mutation rate is %v", ErrInvalidProbabilities, p.Mutation)
	}
	return nil
}

// TraitGiven returns P(trait | genes).
func (p Probabilities) TraitGiven(genes int, present bool) float64 {
	if present {
		return p.Trait[genes].Present
	}
	return p.Trait[genes].Absent
}

// PassProbability returns the probability that a parent with the given gene
// count passes a copy of the gene to a child.
func (p Probabilities) PassProbability(genes int) float64 {
	switch genes {
	case 2:
		return 1 - p.Mutation
	case 1:
		return 0.5
	default:
		return p.Mutation
	}
}

// GeneGivenParents returns P(genes | parents) for a child whose mother and
// father pass a copy with probabilities pm and pf.
func GeneGivenParents(genes int, pm, pf float64) float64 {
	switch genes {
	case 2:
		return pm * pf
	case 1:
		return pm*(1-pf) + (1-pm)*pf
	default:
		return (1 - pm) * (1 - pf)
	}
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1 && !math.IsNaN(v)
}
