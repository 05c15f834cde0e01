package heredity

import (
	"fmt"
	"iter"

	"github.com/nao1215/inferank/internal/model"
)

const (
	// DefaultMaxPeople is the largest pedigree enumerated by default.
	// 6^16 hypotheses already take minutes.
	DefaultMaxPeople = 16

	// MaxPeopleLimit is the hard upper bound. Above it the hypothesis count
	// no longer fits in an int64.
	MaxPeopleLimit = 24
)

// Hypothesis is one complete joint assignment over a population of Size
// people, encoded as bitmasks over person indices. A person in One has
// exactly one gene copy, a person in Two has two copies, everybody else has
// none. A person in Trait has the trait.
type Hypothesis struct {
	Size  int
	One   uint64
	Two   uint64
	Trait uint64
}

// Genes returns the gene count of person i.
func (h Hypothesis) Genes(i int) int {
	bit := uint64(1) << i
	switch {
	case h.Two&bit != 0:
		return 2
	case h.One&bit != 0:
		return 1
	default:
		return 0
	}
}

// HasTrait reports whether person i has the trait.
func (h Hypothesis) HasTrait(i int) bool {
	return h.Trait&(uint64(1)<<i) != 0
}

// assigns reports whether h is a complete assignment over size people:
// no bit outside the population and no person with both one and two copies.
func (h Hypothesis) assigns(size int) bool {
	if h.Size != size || size < 0 || size > MaxPeopleLimit {
		return false
	}
	outside := ^(uint64(1)<<size - 1)
	if (h.One|h.Two|h.Trait)&outside != 0 {
		return false
	}
	return h.One&h.Two == 0
}

// Assignments converts h into name-keyed assignments over pedigree.
func (h Hypothesis) Assignments(pedigree *model.Pedigree) (model.GeneAssignment, model.TraitAssignment) {
	genes := make(model.GeneAssignment, pedigree.Len())
	traits := make(model.TraitAssignment, pedigree.Len())
	for i, name := range pedigree.Names() {
		genes[name] = h.Genes(i)
		traits[name] = h.HasTrait(i)
	}
	return genes, traits
}

// NewHypothesis builds a Hypothesis from name-keyed assignments.
// Every person of pedigree must appear in both assignments.
func NewHypothesis(pedigree *model.Pedigree, genes model.GeneAssignment, traits model.TraitAssignment) (Hypothesis, error) {
	if pedigree.Len() > MaxPeopleLimit {
		return Hypothesis{}, fmt.Errorf("%w: %d people", ErrPedigreeTooLarge, pedigree.Len())
	}
	for name := range genes {
		if _, ok := pedigree.Index(name); !ok {
			return Hypothesis{}, fmt.Errorf("%w: unknown person %q", ErrInvalidAssignment, name)
		}
	}
	for name := range traits {
		if _, ok := pedigree.Index(name); !ok {
			return Hypothesis{}, fmt.Errorf("%w: unknown person %q", ErrInvalidAssignment, name)
		}
	}

	h := Hypothesis{Size: pedigree.Len()}
	for i, name := range pedigree.Names() {
		count, ok := genes[name]
		if !ok {
			return Hypothesis{}, fmt.Errorf("%w: no gene count for %q", ErrUnassigned, name)
		}
		trait, ok := traits[name]
		if !ok {
			return Hypothesis{}, fmt.Errorf("%w: no trait for %q", ErrUnassigned, name)
		}

		bit := uint64(1) << i
		switch count {
		case 0:
		case 1:
			h.One |= bit
		case 2:
			h.Two |= bit
		default:
			return Hypothesis{}, fmt.Errorf("%w: %q has %d copies", ErrInvalidAssignment, name, count)
		}
		if trait {
			h.Trait |= bit
		}
	}
	return h, nil
}

// Enumerator produces every hypothesis consistent with the observed traits
// of a pedigree.
type Enumerator struct {
	size int

	// observed has a bit set for every person whose trait is known.
	observed uint64

	// present has a bit set for every person observed with the trait.
	present uint64
}

// NewEnumerator creates an Enumerator for pedigree.
// maxPeople bounds the pedigree size; zero means DefaultMaxPeople.
func NewEnumerator(pedigree *model.Pedigree, maxPeople int) (*Enumerator, error) {
	if maxPeople <= 0 {
		maxPeople = DefaultMaxPeople
	}
	maxPeople = min(maxPeople, MaxPeopleLimit)
	if pedigree.Len() > maxPeople {
		return nil, fmt.Errorf("%w: %d people, limit is %d", ErrPedigreeTooLarge, pedigree.Len(), maxPeople)
	}

	e := &Enumerator{size: pedigree.Len()}
	for i, person := range pedigree.People() {
		if !person.Observed() {
			continue
		}
		bit := uint64(1) << i
		e.observed |= bit
		if *person.Trait {
			e.present |= bit
		}
	}
	return e, nil
}

// Consistent reports whether h agrees with every observed trait.
func (e *Enumerator) Consistent(h Hypothesis) bool {
	return h.Trait&e.observed == e.present
}

// Count returns the number of hypotheses All yields: 3^n gene assignments
// times 2^(n-m) trait assignments for m observed people.
func (e *Enumerator) Count() int {
	count := 1
	for i := 0; i < e.size; i++ {
		count *= 3
		if e.observed&(uint64(1)<<i) == 0 {
			count *= 2
		}
	}
	return count
}

// All returns the lazy sequence of consistent hypotheses.
// The sequence can be ranged over any number of times.
//
// Trait sets are filtered against the evidence up front, then every pair of
// disjoint (one, two) gene sets is visited with submask iteration over the
// complement of one.
func (e *Enumerator) All() iter.Seq[Hypothesis] {
	return func(yield func(Hypothesis) bool) {
		full := uint64(1)<<e.size - 1
		for trait := uint64(0); trait <= full; trait++ {
			if trait&e.observed != e.present {
				continue
			}
			for one := uint64(0); one <= full; one++ {
				rest := full &^ one
				for two := rest; ; two = (two - 1) & rest {
					if !yield(Hypothesis{Size: e.size, One: one, Two: two, Trait: trait}) {
						return
					}
					if two == 0 {
						break
					}
				}
			}
		}
	}
}
