package operator

import (
	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/rng"
	"github.com/cbarrick/evopush/selector"
	"github.com/cbarrick/evopush/sum"
)

// Select wraps a selector.Selector as an Operator from a population to the
// individual it picked, so selection composes with the rest of the pipeline
// exactly like any other stage.
func Select[G any, R individual.Ordered](sel selector.Selector[G, R]) Operator[individual.Population[G, R], individual.Individual[G, R]] {
	return Func[individual.Population[G, R], individual.Individual[G, R]](
		func(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error) {
			return sel.Select(pop, src)
		},
	)
}

// cloner is satisfied by a genome type that knows how to make an
// independent deep copy of itself, e.g. genome.Plushy's Clone method.
type cloner[G any] interface {
	Clone() G
}

// GenomeExtractor produces the selected individual's genome for later
// pipeline stages (mutation, crossover) to own. Ported from
// original_source's operator/genome_extractor.rs.
//
// If G implements cloner[G] (as genome.Plushy does), the returned genome is
// ind.Genome.Clone(): an independent copy that a later in-place mutation
// stage cannot use to corrupt the parent population's backing array. For a
// plain value type (an int, a fixed-size array, ...) that has no Clone
// method, Go's assignment semantics already produce an independent copy,
// so the genome is returned as-is.
func GenomeExtractor[G any, R individual.Ordered]() Operator[individual.Individual[G, R], G] {
	return Func[individual.Individual[G, R], G](
		func(ind individual.Individual[G, R], _ rng.Source) (G, error) {
			if c, ok := any(ind.Genome).(cloner[G]); ok {
				return c.Clone(), nil
			}
			return ind.Genome, nil
		},
	)
}

// Mutate applies a fallible mutation function to a genome.
func Mutate[G any](mutate func(G, rng.Source) (G, error)) Operator[G, G] {
	return Func[G, G](func(g G, src rng.Source) (G, error) {
		return mutate(g, src)
	})
}

// RecombineError distinguishes a failure while selecting the second parent
// from a failure in the crossover function itself, mirroring the two
// distinct failure modes original_source keeps apart by composing Select
// and a crossover operator with Then rather than folding them into one
// opaque stage.
type RecombineError = sum.Either[error, CrossoverError]

// CrossoverError wraps a crossover function's failure.
type CrossoverError struct{ Err error }

func (e CrossoverError) Error() string { return e.Err.Error() }
func (e CrossoverError) Unwrap() error { return e.Err }

// Recombine selects a second parent from pop and crosses it with the genome
// already produced earlier in the pipeline, via the supplied crossover
// function.
func Recombine[G any, R individual.Ordered](
	pop individual.Population[G, R],
	sel selector.Selector[G, R],
	crossover func(a, b G, src rng.Source) (G, error),
) Operator[G, G] {
	return Func[G, G](func(a G, src rng.Source) (G, error) {
		var zero G
		mate, err := sel.Select(pop, src)
		if err != nil {
			return zero, RecombineError(sum.First[error, CrossoverError](err))
		}
		out, err := crossover(a, mate.Genome, src)
		if err != nil {
			return zero, RecombineError(sum.Second[error, CrossoverError](CrossoverError{Err: err}))
		}
		return out, nil
	})
}

// GenomeScorer evaluates a genome against a set of test cases, reporting
// the per-case results it earns as a new Individual.
func GenomeScorer[G any, R individual.Ordered](score func(G, rng.Source) ([]R, error)) Operator[G, individual.Individual[G, R]] {
	return Func[G, individual.Individual[G, R]](func(g G, src rng.Source) (individual.Individual[G, R], error) {
		var zero individual.Individual[G, R]
		results, err := score(g, src)
		if err != nil {
			return zero, err
		}
		return individual.New(g, results), nil
	})
}
