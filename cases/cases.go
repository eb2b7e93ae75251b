// Package cases implements the training-case abstraction supplemented from
// original_source's evaluation/cases.rs: pairing an input with its expected
// output, and scoring a Push program's actual output against it. The
// teacher has no notion of test cases (its genomes are scored by a single
// Fitness() method the caller supplies directly), so this is ported
// straight from the Rust original rather than adapted from teacher code,
// using a Go slice in place of Rust's Cases<Input, Output> wrapper.
package cases

// Case pairs a single input with its expected output.
type Case[Input, Output any] struct {
	Input  Input
	Output Output
}

// NewCase builds a Case from an input/output pair.
func NewCase[Input, Output any](input Input, output Output) Case[Input, Output] {
	return Case[Input, Output]{Input: input, Output: output}
}

// Cases is an ordered collection of training cases.
type Cases[Input, Output any] []Case[Input, Output]

// FromInputs builds a Cases set by applying targetFn to every input.
func FromInputs[Input, Output any](inputs []Input, targetFn func(Input) Output) Cases[Input, Output] {
	out := make(Cases[Input, Output], len(inputs))
	for i, in := range inputs {
		out[i] = NewCase(in, targetFn(in))
	}
	return out
}

// Inputs returns just the input half of every case, in order.
func (c Cases[Input, Output]) Inputs() []Input {
	out := make([]Input, len(c))
	for i, cs := range c {
		out[i] = cs.Input
	}
	return out
}

// Outputs returns just the expected-output half of every case, in order.
func (c Cases[Input, Output]) Outputs() []Output {
	out := make([]Output, len(c))
	for i, cs := range c {
		out[i] = cs.Output
	}
	return out
}

// Len reports the number of cases.
func (c Cases[Input, Output]) Len() int {
	return len(c)
}

// Score runs run once per case via the supplied function, mapping each
// case's (actual, expected) pair to a per-case result via errorFn, and
// returns the resulting slice in case order ready for
// individual.NewTestResults. run is expected to invoke a program (e.g. the
// Push VM) with Input wired in as input and return its observed Output;
// errorFn turns (actual, expected) into a score, typically "higher is
// better" per individual.TestResults's convention (e.g. negated absolute
// error).
func Score[Input, Output, R any](c Cases[Input, Output], run func(Input) (Output, error), errorFn func(actual, expected Output) R) ([]R, error) {
	results := make([]R, len(c))
	for i, cs := range c {
		actual, err := run(cs.Input)
		if err != nil {
			return nil, err
		}
		results[i] = errorFn(actual, cs.Output)
	}
	return results, nil
}
