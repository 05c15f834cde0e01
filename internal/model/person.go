package model

import "fmt"

// Person is one member of a pedigree.
// Parents are either both known or both unknown; a person without parents
// is a founder whose gene count follows the unconditional prior.
type Person struct {
	// Name uniquely identifies the person within the pedigree.
	Name string `json:"name"`

	// Mother is the name of the person's mother, or empty for founders.
	Mother string `json:"mother,omitempty"`

	// Father is the name of the person's father, or empty for founders.
	Father string `json:"father,omitempty"`

	// Trait is the observed trait, or nil when the trait is unknown.
	Trait *bool `json:"trait,omitempty"`
}

// HasParents reports whether both parents are recorded.
func (p Person) HasParents() bool {
	return p.Mother != "" && p.Father != ""
}

// Observed reports whether the person's trait was observed.
func (p Person) Observed() bool {
	return p.Trait != nil
}

// Pedigree is an immutable, ordered set of people.
// Input order is preserved so that reports list people as they were loaded.
//
// Design decision: People are addressed by index internally (bitmask
// enumeration needs dense indices) while the public API stays name-based.
type Pedigree struct {
	people []Person
	index  map[string]int
}

// NewPedigree builds a Pedigree from people and validates it.
// It returns an error wrapping ErrDuplicatePerson, ErrUnknownParent,
// ErrIncompleteParents or ErrSelfParent when the input is malformed.
func NewPedigree(people []Person) (*Pedigree, error) {
	p := &Pedigree{
		people: make([]Person, len(people)),
		index:  make(map[string]int, len(people)),
	}
	copy(p.people, people)

	for i, person := range p.people {
		if person.Name == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyName)
		}
		if _, dup := p.index[person.Name]; dup {
			return nil, fmt.Errorf("%q: %w", person.Name, ErrDuplicatePerson)
		}
		p.index[person.Name] = i
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the parent invariants of every person.
func (p *Pedigree) Validate() error {
	for _, person := range p.people {
		if (person.Mother == "") != (person.Father == "") {
			return fmt.Errorf("%q: %w", person.Name, ErrIncompleteParents)
		}
		if !person.HasParents() {
			continue
		}
		if person.Mother == person.Name || person.Father == person.Name {
			return fmt.Errorf("%q: %w", person.Name, ErrSelfParent)
		}
		for _, parent := range []string{person.Mother, person.Father} {
			if _, ok := p.index[parent]; !ok {
				return fmt.Errorf("%q references %q: %w", person.Name, parent, ErrUnknownParent)
			}
		}
	}
	return nil
}

// Len returns the number of people.
func (p *Pedigree) Len() int {
	return len(p.people)
}

// People returns a copy of the people in input order.
func (p *Pedigree) People() []Person {
	out := make([]Person, len(p.people))
	copy(out, p.people)
	return out
}

// Person returns the person at index i.
func (p *Pedigree) Person(i int) Person {
	return p.people[i]
}

// Names returns the person names in input order.
func (p *Pedigree) Names() []string {
	names := make([]string, len(p.people))
	for i, person := range p.people {
		names[i] = person.Name
	}
	return names
}

// Index returns the index of the named person.
func (p *Pedigree) Index(name string) (int, bool) {
	i, ok := p.index[name]
	return i, ok
}

// Parents returns the indices of the mother and father of person i,
// or (-1, -1) for founders.
func (p *Pedigree) Parents(i int) (mother, father int) {
	person := p.people[i]
	if !person.HasParents() {
		return -1, -1
	}
	return p.index[person.Mother], p.index[person.Father]
}

// GeneAssignment maps every person name to a gene count in {0, 1, 2}.
type GeneAssignment map[string]int

// TraitAssignment maps every person name to whether they have the trait.
type TraitAssignment map[string]bool
