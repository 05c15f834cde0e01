package model

// GeneCounts lists the possible number of gene copies, highest first.
// This matches the order the tables are printed in.
var GeneCounts = []int{2, 1, 0}

// GeneDistribution is a probability distribution over gene counts.
// Index i holds the probability of having exactly i copies.
type GeneDistribution [3]float64

// Sum returns the total mass of the distribution.
func (d GeneDistribution) Sum() float64 {
	return d[0] + d[1] + d[2]
}

// TraitDistribution is a probability distribution over the trait.
type TraitDistribution struct {
	// Present is the probability that the person has the trait.
	Present float64 `json:"true"`

	// Absent is the probability that the person does not have the trait.
	Absent float64 `json:"false"`
}

// Sum returns the total mass of the distribution.
func (d TraitDistribution) Sum() float64 {
	return d.Present + d.Absent
}

// Marginal holds the two marginal distributions of one person.
type Marginal struct {
	// Name is the person's name.
	Name string `json:"name"`

	// Gene is the distribution over 0, 1 and 2 gene copies.
	Gene GeneDistribution `json:"gene"`

	// Trait is the distribution over having the trait.
	Trait TraitDistribution `json:"trait"`
}

// MarginalTable holds one Marginal per person, in pedigree order.
type MarginalTable []Marginal

// NewMarginalTable creates a zeroed table for the given names.
func NewMarginalTable(names []string) MarginalTable {
	table := make(MarginalTable, len(names))
	for i, name := range names {
		table[i].Name = name
	}
	return table
}

// Lookup returns the marginal for the named person.
func (t MarginalTable) Lookup(name string) (Marginal, bool) {
	for _, m := range t {
		if m.Name == name {
			return m, true
		}
	}
	return Marginal{}, false
}
