package heredity

import "errors"

var (
	// ErrInconsistentEvidence is returned when a marginal distribution has no
	// probability mass to normalize. It means the evidence rules out every
	// hypothesis for some person.
	ErrInconsistentEvidence = errors.New("inconsistent evidence: distribution has zero probability mass")

	// ErrUnassigned is returned when a hypothesis does not assign a gene count
	// and trait to every person of the population.
	ErrUnassigned = errors.New("hypothesis does not assign every person")

	// ErrInvalidAssignment is returned when an assignment names an unknown
	// person or uses a gene count outside 0..2.
	ErrInvalidAssignment = errors.New("invalid assignment")

	// ErrPedigreeTooLarge is returned when the pedigree exceeds the maximum
	// number of people that enumeration accepts.
	ErrPedigreeTooLarge = errors.New("pedigree too large for exact enumeration")

	// ErrInvalidProbabilities is returned when a probability table is not a
	// valid distribution.
	ErrInvalidProbabilities = errors.New("invalid probability table")
)
