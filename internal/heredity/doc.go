// Package heredity computes exact marginal gene and trait distributions for
// every person of a pedigree.
//
// The computation enumerates every joint hypothesis (gene count and trait for
// every person) that agrees with the observed traits, computes the joint
// probability of each, and sums the mass into per-person buckets before
// normalizing. This is inference by enumeration: exact, and exponential in the
// number of people.
//
// # Scaling
//
// A pedigree of n people with m observed traits has 6^n / 2^m hypotheses.
// That is a property of the method, not a bug. Enumeration refuses pedigrees
// larger than the configured maximum (DefaultMaxPeople) with
// ErrPedigreeTooLarge instead of running for hours.
//
// # Usage
//
//	result, err := heredity.Infer(pedigree, heredity.DefaultProbabilities())
//	if err != nil {
//	    return err
//	}
//	for _, m := range result.Marginals {
//	    fmt.Println(m.Name, m.Gene[2], m.Trait.Present)
//	}
package heredity
