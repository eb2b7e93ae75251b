// Package distribution provides the sampling distributions used to seed and
// mutate genomes: real-valued Normal/Lognormal ported from the teacher's
// real/distributions.go, plus a gene-level Collection/generator used to
// produce random Plushy programs, enriched from the rest of the pack's
// treatment of random program generation.
package distribution

import (
	"math"

	"github.com/cbarrick/evopush/rng"
)

// Normal samples from a zero-mean normal distribution with the given
// standard deviation, exactly as the teacher's real.Normal did, but against
// the abstract rng.Source rather than the global math/rand generator so
// sampling is reproducible and parallel-safe.
func Normal(src rng.Source, stdv float64) float64 {
	return stdv * src.NormFloat64()
}

// Lognormal samples from a lognormal distribution with the given rate
// parameter, ported from the teacher's real.Lognormal.
func Lognormal(src rng.Source, rate float64) float64 {
	return math.Exp(Normal(src, rate))
}
