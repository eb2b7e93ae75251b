// Package genome implements genome-level variation operators over Plushy
// programs (flat []push.Gene sequences): mutation (UMAD) and crossover
// (uniform, N-point, segment). The crossover shapes are ported directly
// from the teacher's fixed-length vector genomes (integer/cross.go,
// real/cross.go, perm/cross.go) generalized to variable-length gene
// sequences, since a Plushy genome's length is not fixed the way the
// teacher's integer/real/perm vectors are.
package genome

import (
	"errors"

	"github.com/cbarrick/evopush/distribution"
	"github.com/cbarrick/evopush/push"
	"github.com/cbarrick/evopush/rng"
)

// Plushy is a linear genome of Push genes, parsed into a program by
// push.Parse before execution.
type Plushy []push.Gene

// Clone returns an independent copy of p.
func (p Plushy) Clone() Plushy {
	out := make(Plushy, len(p))
	copy(out, p)
	return out
}

// ErrLengthMismatch is returned by crossover operators when two parent
// genomes have incompatible lengths for the requested operation.
var ErrLengthMismatch = errors.New("genome: parent lengths do not support this crossover")

// UMAD mutates a genome by Uniform Mutation through random Addition and
// Deletion, ported from original_source's mutator/umad.rs: each existing
// gene is independently kept or dropped (deletionRate), and a fresh gene
// sampled from pool is independently inserted after it (additionRate).
// Unlike the Rust original's Infallible error, this never fails, so it
// returns just the mutated genome.
func UMAD(parent Plushy, pool *distribution.Collection, additionRate, deletionRate float64, src rng.Source) Plushy {
	if len(parent) == 0 {
		if src.Bool(additionRate) {
			return Plushy{pool.Sample(src)}
		}
		return Plushy{}
	}

	child := make(Plushy, 0, len(parent))
	for _, gene := range parent {
		if !src.Bool(deletionRate) {
			child = append(child, gene)
		}
		if src.Bool(additionRate) {
			child = append(child, pool.Sample(src))
		}
	}
	return child
}

// BalancedDeletionRate derives the deletion rate that keeps a UMAD child's
// expected length equal to its parent's, given an addition rate, per the
// teacher-independent formula in original_source's
// new_with_balanced_deletion.
func BalancedDeletionRate(additionRate float64) float64 {
	return additionRate / (1 + additionRate)
}

// UniformCrossover builds a child the same length as the shortest parent by
// picking each gene independently from one of the parents, generalizing the
// teacher's integer.UniformX/real.UniformX to an arbitrary number of
// parents of possibly differing lengths.
func UniformCrossover(src rng.Source, parents ...Plushy) Plushy {
	if len(parents) == 0 {
		return Plushy{}
	}
	n := len(parents[0])
	for _, p := range parents[1:] {
		if len(p) < n {
			n = len(p)
		}
	}
	child := make(Plushy, n)
	for i := range child {
		child[i] = parents[src.IntRange(0, len(parents))][i]
	}
	return child
}

// NPointCrossover performs n-point crossover between two parents of equal
// length, generalizing the teacher's integer.PointX from fixed-width int
// vectors to gene sequences. It samples n distinct interior cut points (via
// Floyd's algorithm, as original_source's sample_distinct_uniform does) and
// alternates segments between the parents at each cut.
func NPointCrossover(n int, mom, dad Plushy, src rng.Source) (Plushy, error) {
	if len(mom) != len(dad) {
		return nil, ErrLengthMismatch
	}
	size := len(mom)
	if n <= 0 || size < 2 {
		return mom.Clone(), nil
	}
	if n > size-1 {
		n = size - 1
	}

	if src.Bool(0.5) {
		mom, dad = dad, mom
	}

	cuts := sampleDistinctSorted(1, size, n, src)

	child := make(Plushy, 0, size)
	start := 0
	from := mom
	other := dad
	for _, cut := range cuts {
		child = append(child, from[start:cut]...)
		start = cut
		from, other = other, from
	}
	child = append(child, from[start:]...)
	return child, nil
}

// sampleDistinctSorted draws n distinct values from [lo, hi) in ascending
// order using Floyd's algorithm: O(n^2) but n is always small (single
// digits of crossover points), matching original_source's own tradeoff
// note in sample_distinct_uniform.rs.
func sampleDistinctSorted(lo, hi, n int, src rng.Source) []int {
	length := hi - lo
	result := make([]int, 0, n)
	for i := length - n; i < length; i++ {
		t := src.IntRange(lo, i+lo+1)
		pos := 0
		for pos < len(result) && result[pos] < t {
			pos++
		}
		if pos < len(result) && result[pos] == t {
			result = append(result, i+lo)
		} else {
			result = append(result, 0)
			copy(result[pos+1:], result[pos:len(result)-1])
			result[pos] = t
		}
	}
	return result
}

// SegmentCrossover swaps a random contiguous segment between two
// equal-length parents, the gene-sequence analogue of the teacher's
// perm.RandSlice-based operators (perm/mutation.go): rather than
// reordering values in place, it takes the segment from dad and splices it
// into mom's position.
func SegmentCrossover(mom, dad Plushy, src rng.Source) (Plushy, error) {
	if len(mom) != len(dad) {
		return nil, ErrLengthMismatch
	}
	size := len(mom)
	if size == 0 {
		return Plushy{}, nil
	}
	left := src.IntRange(0, size)
	right := src.IntRange(0, size)
	if left > right {
		left, right = right, left
	}

	child := mom.Clone()
	copy(child[left:right], dad[left:right])
	return child, nil
}
