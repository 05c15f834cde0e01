package config

import "fmt"

// File represents the structure of the .inferank configuration file.
//
// Design decision: Scalar fields are pointers so that an explicit zero in
// the file (a mutation rate of 0, a threshold of 0) can be told apart from
// an omitted key.
type File struct {
	// Heredity overrides the probability tables.
	Heredity HereditySection `yaml:"heredity,omitempty"`

	// PageRank overrides the estimator settings.
	PageRank PageRankSection `yaml:"pagerank,omitempty"`
}

// HereditySection holds heredity overrides.
// Maps are keyed by gene count; keys that are omitted keep their default.
type HereditySection struct {
	// Gene is the unconditional prior of each gene count.
	Gene map[int]float64 `yaml:"gene,omitempty"`

	// Trait is the penetrance table of each gene count.
	Trait map[int]TraitSection `yaml:"trait,omitempty"`

	// Mutation is the per-copy mutation rate.
	Mutation *float64 `yaml:"mutation,omitempty"`

	// MaxPeople is the largest pedigree enumerated exactly.
	MaxPeople *int `yaml:"maxPeople,omitempty"`
}

// TraitSection is one row of the penetrance table.
type TraitSection struct {
	Present *float64 `yaml:"present,omitempty"`
	Absent  *float64 `yaml:"absent,omitempty"`
}

// PageRankSection holds PageRank overrides.
type PageRankSection struct {
	Damping       *float64 `yaml:"damping,omitempty"`
	Samples       *int     `yaml:"samples,omitempty"`
	Threshold     *float64 `yaml:"threshold,omitempty"`
	MaxIterations *int     `yaml:"maxIterations,omitempty"`
	Seed          *uint64  `yaml:"seed,omitempty"`
	Concurrency   *int     `yaml:"concurrency,omitempty"`
}

// Apply copies every value set in the file onto cfg.
// Range checks are left to Config.Validate; Apply only rejects gene counts
// that have no slot in the tables.
func (f *File) Apply(cfg *Config) error {
	h := f.Heredity
	for genes, v := range h.Gene {
		if genes < 0 || genes > 2 {
			return fmt.Errorf("%w: heredity.gene.%d", ErrInvalidGeneCount, genes)
		}
		cfg.Probabilities.Gene[genes] = v
	}
	for genes, t := range h.Trait {
		if genes < 0 || genes > 2 {
			return fmt.Errorf("%w: heredity.trait.%d", ErrInvalidGeneCount, genes)
		}
		if t.Present != nil {
			cfg.Probabilities.Trait[genes].Present = *t.Present
		}
		if t.Absent != nil {
			cfg.Probabilities.Trait[genes].Absent = *t.Absent
		}
	}
	if h.Mutation != nil {
		cfg.Probabilities.Mutation = *h.Mutation
	}
	if h.MaxPeople != nil {
		cfg.MaxPeople = *h.MaxPeople
	}

	p := f.PageRank
	if p.Damping != nil {
		cfg.Damping = *p.Damping
	}
	if p.Samples != nil {
		cfg.Samples = *p.Samples
	}
	if p.Threshold != nil {
		cfg.Threshold = *p.Threshold
	}
	if p.MaxIterations != nil {
		cfg.MaxIterations = *p.MaxIterations
	}
	if p.Seed != nil {
		cfg.Seed = *p.Seed
	}
	if p.Concurrency != nil {
		cfg.Concurrency = *p.Concurrency
	}
	return nil
}
