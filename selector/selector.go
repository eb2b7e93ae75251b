// Package selector implements the selection library: ways to pick an
// individual out of a population, built on the teacher's sel package
// (interface.go's Pool, tournament.go's Tournament/BinaryTournament,
// elite.go's best-tracking window) generalized from a channel-based Pool
// abstraction over a single float64 Fitness to a plain function interface
// over individual.Individual[G, R]'s ordered TestResults.
//
// Lexicase and the weighted-pair combinator have no analogue in the teacher
// and are ported instead from recursive_weighted.rs and lexicase.rs in
// original_source, in the idiom established by the rest of this package.
package selector

import (
	"errors"
	"fmt"

	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/rng"
)

// ErrEmptyPopulation is returned by every selector when asked to select from
// an empty population.
var ErrEmptyPopulation = errors.New("selector: empty population")

// TournamentSizeError is returned when a Tournament selector is asked to
// draw k distinct individuals from a population smaller than k.
type TournamentSizeError struct {
	K       int
	PopSize int
}

func (e TournamentSizeError) Error() string {
	return fmt.Sprintf("selector: tournament size %d exceeds population size %d", e.K, e.PopSize)
}

// A Selector picks one individual out of a population.
type Selector[G any, R individual.Ordered] interface {
	Select(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error)
}

// Func adapts a plain function to the Selector interface, mirroring the
// teacher's preference for free functions (sel/tournament.go's Tournament,
// BinaryTournament) over single-method interfaces where possible.
type Func[G any, R individual.Ordered] func(individual.Population[G, R], rng.Source) (individual.Individual[G, R], error)

func (f Func[G, R]) Select(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error) {
	return f(pop, src)
}

// Best returns the fittest individual in the population, adapted from
// sel/tournament.go's Tournament (which scans every suitor rather than
// sampling a subset).
func Best[G any, R individual.Ordered]() Selector[G, R] {
	return Func[G, R](func(pop individual.Population[G, R], _ rng.Source) (individual.Individual[G, R], error) {
		var zero individual.Individual[G, R]
		if len(pop) == 0 {
			return zero, ErrEmptyPopulation
		}
		best := pop[0]
		for _, ind := range pop[1:] {
			if ind.Results.Total > best.Results.Total {
				best = ind
			}
		}
		return best, nil
	})
}

// Worst returns the least fit individual in the population; among tied
// individuals it returns the last one in population order.
func Worst[G any, R individual.Ordered]() Selector[G, R] {
	return Func[G, R](func(pop individual.Population[G, R], _ rng.Source) (individual.Individual[G, R], error) {
		var zero individual.Individual[G, R]
		if len(pop) == 0 {
			return zero, ErrEmptyPopulation
		}
		worst := pop[0]
		for _, ind := range pop[1:] {
			if ind.Results.Total <= worst.Results.Total {
				worst = ind
			}
		}
		return worst, nil
	})
}

// Random returns a uniformly chosen individual, ignoring fitness.
func Random[G any, R individual.Ordered]() Selector[G, R] {
	return Func[G, R](func(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error) {
		var zero individual.Individual[G, R]
		if len(pop) == 0 {
			return zero, ErrEmptyPopulation
		}
		return pop[src.IntRange(0, len(pop))], nil
	})
}

// Tournament runs a k-way tournament: it draws k distinct individuals
// without replacement via a partial Fisher-Yates shuffle (the same
// technique the teacher's perm package uses for random permutations) and
// returns the fittest of the sample. k == 2 reproduces the teacher's
// BinaryTournament; larger k increases selection pressure, as in the
// spec's tuning knob. Fails with TournamentSizeError if the population is
// smaller than k.
func Tournament[G any, R individual.Ordered](k int) Selector[G, R] {
	return Func[G, R](func(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error) {
		var zero individual.Individual[G, R]
		if len(pop) == 0 {
			return zero, ErrEmptyPopulation
		}
		if k < 1 {
			k = 1
		}
		if len(pop) < k {
			return zero, TournamentSizeError{K: k, PopSize: len(pop)}
		}

		indices := make([]int, len(pop))
		for i := range indices {
			indices[i] = i
		}
		best := pop[partialShuffleDraw(indices, 0, src)]
		for i := 1; i < k; i++ {
			cand := pop[partialShuffleDraw(indices, i, src)]
			if cand.Results.Total > best.Results.Total {
				best = cand
			}
		}
		return best, nil
	})
}

// partialShuffleDraw draws the i'th distinct sample from indices via a
// partial Fisher-Yates shuffle: it swaps a uniformly chosen remaining
// element into position i and returns it, so repeated calls with
// increasing i yield distinct values without replacement.
func partialShuffleDraw(indices []int, i int, src rng.Source) int {
	j := i + src.IntRange(0, len(indices)-i)
	indices[i], indices[j] = indices[j], indices[i]
	return indices[i]
}
