package pagerank

import (
	"math"
	"math/rand/v2"
)

// Default estimator settings.
const (
	// DefaultDamping is the probability of following a link rather than
	// jumping to a random page.
	DefaultDamping = 0.85

	// DefaultSamples is the number of samples drawn by Sample.
	DefaultSamples = 10000

	// DefaultThreshold is the per-page change below which Iterate stops.
	DefaultThreshold = 0.001

	// DefaultMaxIterations caps Iterate. With the default damping factor the
	// corpora we see converge in a few dozen iterations.
	DefaultMaxIterations = 1000
)

// Settings configures both estimators.
type Settings struct {
	// Damping is the damping factor d, in [0, 1).
	Damping float64

	// Samples is the number of samples drawn by Sample.
	Samples int

	// Threshold is the convergence threshold of Iterate. A page has
	// converged when its rank changes by strictly less than Threshold.
	Threshold float64

	// MaxIterations is the iteration cap of Iterate.
	MaxIterations int
}

// DefaultSettings returns the standard settings.
func DefaultSettings() Settings {
	return Settings{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate checks the settings of both estimators.
func (s Settings) Validate() error {
	if err := s.validateSampling(); err != nil {
		return err
	}
	return s.validateIteration()
}

func (s Settings) validateSampling() error {
	if !(s.Damping >= 0 && s.Damping < 1) {
		return ErrInvalidDamping
	}
	if s.Samples <= 0 {
		return ErrInvalidSamples
	}
	return nil
}

func (s Settings) validateIteration() error {
	if !(s.Damping >= 0 && s.Damping < 1) {
		return ErrInvalidDamping
	}
	if !(s.Threshold >= 0) || math.IsInf(s.Threshold, 1) {
		return ErrInvalidThreshold
	}
	if s.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	return nil
}

// NewRand returns a PCG generator for Sample.
// A zero seed draws a random seed, so runs are not reproducible.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
