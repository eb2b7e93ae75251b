package selector

import (
	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/rng"
)

// Lexicase selects by considering test cases one at a time in a random
// order, each time keeping only the individuals tied for best on that case,
// until a single individual remains or the cases run out. Ported from
// original_source's recursive_weighted.rs sibling lexicase.rs, since the
// teacher has no case-by-case selector.
func Lexicase[G any, R individual.Ordered](numCases int) Selector[G, R] {
	return Func[G, R](func(pop individual.Population[G, R], src rng.Source) (individual.Individual[G, R], error) {
		var zero individual.Individual[G, R]
		if len(pop) == 0 {
			return zero, ErrEmptyPopulation
		}

		order := shuffledIndices(numCases, src)
		candidates := make([]individual.Individual[G, R], len(pop))
		copy(candidates, pop)

		for _, caseIdx := range order {
			if len(candidates) == 1 {
				break
			}
			winners := candidates[:0:0]
			best := caseValue(candidates[0], caseIdx)
			winners = append(winners, candidates[0])
			for _, c := range candidates[1:] {
				v := caseValue(c, caseIdx)
				switch {
				case v > best:
					winners = winners[:0]
					winners = append(winners, c)
					best = v
				case v == best:
					winners = append(winners, c)
				}
			}
			candidates = winners
		}

		return candidates[src.IntRange(0, len(candidates))], nil
	})
}

// caseValue reads the result for caseIdx, treating an individual with fewer
// cases than numCases as having no opinion on the missing ones.
func caseValue[G any, R individual.Ordered](ind individual.Individual[G, R], caseIdx int) R {
	if caseIdx < 0 || caseIdx >= ind.Results.Len() {
		var zero R
		return zero
	}
	return ind.Results.Cases[caseIdx]
}

func shuffledIndices(n int, src rng.Source) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.IntRange(0, i+1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
