package genome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick/evopush/distribution"
	"github.com/cbarrick/evopush/genome"
	"github.com/cbarrick/evopush/push"
	"github.com/cbarrick/evopush/rng"
)

func plushyOf(n int) genome.Plushy {
	p := make(genome.Plushy, n)
	for i := range p {
		p[i] = push.InstructionGene(push.IntAdd())
	}
	return p
}

func TestUMADOnEmptyParentRespectsAdditionRate(t *testing.T) {
	pool := distribution.NewCollection(0).Add(1, push.IntAdd())
	child := genome.UMAD(genome.Plushy{}, pool, 1.0, 0.0, rng.New(1))
	assert.Len(t, child, 1)

	child = genome.UMAD(genome.Plushy{}, pool, 0.0, 0.0, rng.New(1))
	assert.Len(t, child, 0)
}

func TestUMADZeroRatesIsIdentity(t *testing.T) {
	parent := plushyOf(5)
	child := genome.UMAD(parent, distribution.NewCollection(0), 0, 0, rng.New(1))
	assert.Equal(t, len(parent), len(child))
}

func TestBalancedDeletionRateKeepsExpectedLengthStable(t *testing.T) {
	rate := genome.BalancedDeletionRate(0.5)
	assert.InDelta(t, 0.5/1.5, rate, 1e-9)
}

func TestUniformCrossoverTruncatesToShortestParent(t *testing.T) {
	a := plushyOf(5)
	b := plushyOf(3)
	child := genome.UniformCrossover(rng.New(1), a, b)
	assert.Len(t, child, 3)
}

func TestNPointCrossoverRejectsLengthMismatch(t *testing.T) {
	_, err := genome.NPointCrossover(2, plushyOf(3), plushyOf(4), rng.New(1))
	assert.ErrorIs(t, err, genome.ErrLengthMismatch)
}

func TestNPointCrossoverPreservesLength(t *testing.T) {
	mom := plushyOf(10)
	dad := plushyOf(10)
	child, err := genome.NPointCrossover(3, mom, dad, rng.New(1))
	require.NoError(t, err)
	assert.Len(t, child, 10)
}

func TestSegmentCrossoverPreservesLength(t *testing.T) {
	mom := plushyOf(8)
	dad := plushyOf(8)
	child, err := genome.SegmentCrossover(mom, dad, rng.New(1))
	require.NoError(t, err)
	assert.Len(t, child, 8)
}
