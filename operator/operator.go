// Package operator implements the operator-composition algebra: small,
// independently testable pipeline stages (Operator[In, Out]) that combine
// via Then, Map, RepeatWith, Select, GenomeExtractor, Mutate, Recombine and
// GenomeScorer into an end-to-end "make the next generation" pipeline.
//
// Grounded on the teacher's sel.Pool (sel/interface.go) and
// sel.BinaryTournament (sel/tournament.go) for the general shape of
// "pull individuals out of a population, transform, emit a result", and
// enriched from original_source's operator/composable/then.rs and
// operator/genome_extractor.rs. Go interface methods cannot themselves carry
// type parameters, so where the Rust original defines a generic Operator
// trait with an associated Error type, this package instead keeps Apply's
// error plain (the built-in error interface). Then returns the failing
// stage's error unchanged and does not record which stage produced it; the
// typed error sum (sum.Either) is used only by Recombine, to tell a
// selection failure apart from a crossover failure.
package operator

import (
	"github.com/cbarrick/evopush/rng"
)

// Operator is a single pipeline stage: given an input and a random source,
// produce an output or fail.
type Operator[In, Out any] interface {
	Apply(in In, src rng.Source) (Out, error)
}

// Func adapts a plain function to Operator, as the teacher does throughout
// sel/tournament.go with free functions rather than named types.
type Func[In, Out any] func(in In, src rng.Source) (Out, error)

func (f Func[In, Out]) Apply(in In, src rng.Source) (Out, error) {
	return f(in, src)
}

// Identity returns its input unchanged. Useful as a Then/Map terminus.
func Identity[T any]() Operator[T, T] {
	return Func[T, T](func(in T, _ rng.Source) (T, error) {
		return in, nil
	})
}

// Constant always returns val, ignoring its input.
func Constant[In, Out any](val Out) Operator[In, Out] {
	return Func[In, Out](func(_ In, _ rng.Source) (Out, error) {
		return val, nil
	})
}

// Then runs f then g, feeding f's output into g, short-circuiting on the
// first error. Both stages' failures are reported through the plain error
// interface; callers needing to recover which stage failed should wrap each
// stage's error in a sum.Either at the call site (see Recombine) rather than
// relying on a generic typed Then, which Go's interface methods cannot
// express without unsound boxing (see DESIGN.md).
func Then[In, Mid, Out any](f Operator[In, Mid], g Operator[Mid, Out]) Operator[In, Out] {
	return Func[In, Out](func(in In, src rng.Source) (Out, error) {
		var zero Out
		mid, err := f.Apply(in, src)
		if err != nil {
			return zero, err
		}
		return g.Apply(mid, src)
	})
}

// Map lifts an Operator[In, Out] to run over every element of a slice,
// short-circuiting on the first element that errors.
func Map[In, Out any](op Operator[In, Out]) Operator[[]In, []Out] {
	return Func[[]In, []Out](func(ins []In, src rng.Source) ([]Out, error) {
		outs := make([]Out, 0, len(ins))
		for _, in := range ins {
			out, err := op.Apply(in, src)
			if err != nil {
				return nil, err
			}
			outs = append(outs, out)
		}
		return outs, nil
	})
}

// RepeatWith runs op n times against the same input, collecting n outputs.
// This is how a generation driver turns "build one offspring" into "build a
// whole new population" without needing its own loop.
func RepeatWith[In, Out any](op Operator[In, Out], n int) Operator[In, []Out] {
	return Func[In, []Out](func(in In, src rng.Source) ([]Out, error) {
		outs := make([]Out, 0, n)
		for i := 0; i < n; i++ {
			out, err := op.Apply(in, src)
			if err != nil {
				return nil, err
			}
			outs = append(outs, out)
		}
		return outs, nil
	})
}
