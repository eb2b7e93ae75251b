package distribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbarrick/evopush/distribution"
	"github.com/cbarrick/evopush/push"
	"github.com/cbarrick/evopush/rng"
)

func TestNormalIsDeterministicForSeed(t *testing.T) {
	a := rng.New(3)
	b := rng.New(3)
	assert.Equal(t, distribution.Normal(a, 2.0), distribution.Normal(b, 2.0))
}

func TestLognormalIsPositive(t *testing.T) {
	src := rng.New(11)
	for i := 0; i < 50; i++ {
		assert.Greater(t, distribution.Lognormal(src, 1.0), 0.0)
	}
}

func TestCollectionAlwaysClosesWhenOnlyCloseWeighted(t *testing.T) {
	c := distribution.NewCollection(1)
	g := c.Sample(rng.New(1))
	assert.True(t, g.IsClose())
}

func TestCollectionNeverClosesWhenCloseWeightZero(t *testing.T) {
	c := distribution.NewCollection(0).Add(1, push.IntAdd())
	src := rng.New(5)
	for i := 0; i < 50; i++ {
		g := c.Sample(src)
		assert.False(t, g.IsClose())
	}
}

func TestSampleNProducesRequestedLength(t *testing.T) {
	c := distribution.NewCollection(1).Add(3, push.IntAdd()).Add(1, push.ExecDup())
	genes := c.SampleN(rng.New(2), 20)
	assert.Len(t, genes, 20)
}
