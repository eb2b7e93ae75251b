// Package individual holds the core data model shared by the selection
// library, the operator-composition algebra, and the generation driver: an
// Individual pairs a genome with its test results, and a Population is a
// fixed-size collection of individuals ordered by fitness.
//
// This generalizes the teacher's Genome/Fitness-float64 model (view.go,
// stats.go) to an arbitrary, ordered result type, so that a scorer can
// report per-test-case results (for lexicase selection) rather than a single
// scalar.
package individual

// Ordered is the subset of cmp.Ordered this package needs locally: result
// types whose underlying type is int, int64 or float64 (error counts,
// squared error, pass/fail scores, ...).
type Ordered interface {
	~int | ~int64 | ~float64
}

// Individual is a (genome, test-results) pair. Ordering is by R only, via
// Less on Results.Total, matching the spec's rule that an Individual's
// identity for selection purposes is entirely its fitness.
type Individual[G any, R Ordered] struct {
	Genome  G
	Results TestResults[R]
}

// New builds an Individual from a genome and its per-case results.
func New[G any, R Ordered](genome G, results []R) Individual[G, R] {
	return Individual[G, R]{Genome: genome, Results: NewTestResults(results)}
}

// Less reports whether a is strictly worse than b (lexicographic compare of
// their totals).
func Less[G any, R Ordered](a, b Individual[G, R]) bool {
	return a.Results.Total < b.Results.Total
}

// TestResults is a vector of per-case results plus a cached total. It orders
// lexicographically by Total, matching the spec's "Score preserves order,
// Error orders reversed" rule: callers that model a minimization problem
// (lower is better) should store -error or invert their case results before
// constructing a TestResults, so that Total is always "higher is better"
// here; this keeps every consumer (Best, Tournament, Lexicase) a single
// uniform ordering rather than branching on a Score/Error tag per component.
type TestResults[R Ordered] struct {
	Cases []R
	Total R
}

// NewTestResults builds a TestResults from per-case values, summing them
// into Total.
func NewTestResults[R Ordered](cases []R) TestResults[R] {
	var total R
	for _, c := range cases {
		total += c
	}
	return TestResults[R]{Cases: append([]R(nil), cases...), Total: total}
}

// Len returns the number of per-case results.
func (t TestResults[R]) Len() int {
	return len(t.Cases)
}

// ToFloat64 widens an Ordered result to float64, for consumers (e.g.
// stats.Stats) that need a uniform numeric type regardless of whether R is
// an int, int64, or float64 score.
func ToFloat64[R Ordered](r R) float64 {
	return float64(r)
}

// Population is a fixed-size slice of individuals.
type Population[G any, R Ordered] []Individual[G, R]
