// Package rng defines the minimal random source abstraction used throughout
// evopush, and a default implementation backed by pgregory.net/rand — the
// same seeded generator used for reproducible property tests elsewhere in
// this ecosystem.
package rng

import "pgregory.net/rand"

// A Source is any random generator capable of the handful of operations the
// VM, instruction set, and operator/selector library need. Implementations
// are not required to be cryptographically secure.
type Source interface {
	// NextUint32 returns a uniformly distributed uint32.
	NextUint32() uint32

	// IntRange returns a uniform value in [lo, hi).
	IntRange(lo, hi int) int

	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// Bool returns true with probability p (clamped to [0, 1]).
	Bool(p float64) bool

	// NormFloat64 returns a value from the standard normal distribution
	// (mean 0, stdev 1), for samplers that build other distributions on
	// top of it (distribution.Normal, distribution.Lognormal).
	NormFloat64() float64
}

// source is the default Source, a thin wrapper over pgregory.net/rand.Rand.
type source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed. Two Sources
// built from the same seed produce identical sequences.
func New(seed uint64) Source {
	return &source{r: rand.New(rand.NewSource(seed))}
}

// FromRand adapts an existing *rand.Rand as a Source.
func FromRand(r *rand.Rand) Source {
	return &source{r: r}
}

func (s *source) NextUint32() uint32 {
	return s.r.Uint32()
}

func (s *source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo)
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}

func (s *source) Bool(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *source) NormFloat64() float64 {
	return s.r.NormFloat64()
}
