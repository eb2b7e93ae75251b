package generation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick/evopush/generation"
	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/operator"
	"github.com/cbarrick/evopush/rng"
	"github.com/cbarrick/evopush/selector"
)

func makeOffspring() operator.Operator[individual.Population[int, int64], individual.Individual[int, int64]] {
	selectOp := operator.Select[int, int64](selector.Best[int, int64]())
	extract := operator.GenomeExtractor[int, int64]()
	pipeline := operator.Then[individual.Population[int, int64], individual.Individual[int, int64], int](selectOp, extract)
	return operator.Func[individual.Population[int, int64], individual.Individual[int, int64]](
		func(pop individual.Population[int, int64], src rng.Source) (individual.Individual[int, int64], error) {
			g, err := pipeline.Apply(pop, src)
			if err != nil {
				var zero individual.Individual[int, int64]
				return zero, err
			}
			return individual.New[int, int64](g, []int64{int64(g)}), nil
		},
	)
}

func initialPop() individual.Population[int, int64] {
	return individual.Population[int, int64]{
		individual.New[int, int64](1, []int64{1}),
		individual.New[int, int64](2, []int64{2}),
		individual.New[int, int64](3, []int64{3}),
		individual.New[int, int64](4, []int64{4}),
	}
}

func TestSerialNextBuildsFullPopulation(t *testing.T) {
	driver := generation.Driver[int, int64]{PopulationSize: 4, MakeOffspring: makeOffspring()}
	next, stat, err := driver.SerialNext(initialPop(), rng.New(1))
	require.NoError(t, err)
	assert.Len(t, next, 4)
	for _, ind := range next {
		assert.Equal(t, 4, ind.Genome)
	}
	assert.Equal(t, 4, stat.Len())
	assert.Equal(t, 4.0, stat.Mean())
}

func TestParNextMatchesSerialGivenSameSeeds(t *testing.T) {
	driver := generation.Driver[int, int64]{PopulationSize: 4, MakeOffspring: makeOffspring()}
	next, stat, err := driver.ParNext(context.Background(), initialPop(), func(slot int) uint64 { return uint64(slot) + 1 })
	require.NoError(t, err)
	assert.Len(t, next, 4)
	for _, ind := range next {
		assert.Equal(t, 4, ind.Genome)
	}
	assert.Equal(t, 4, stat.Len())
	assert.Equal(t, 4.0, stat.Mean())

	serial, serialStat, err := driver.SerialNext(initialPop(), rng.New(1))
	require.NoError(t, err)
	assert.Equal(t, serial, next)
	assert.Equal(t, serialStat.Mean(), stat.Mean())
}

func TestRingTopologyIsSymmetric(t *testing.T) {
	topo := generation.Ring(4)
	assert.Contains(t, topo[0], 1)
	assert.Contains(t, topo[0], 3)
}

func TestNeighborsIncludesSelf(t *testing.T) {
	topo := generation.Ring(4)
	n := topo.Neighbors(0)
	assert.Contains(t, n, 0)
}

func TestNeighborhoodDriverBuildsFullPopulation(t *testing.T) {
	driver := generation.NeighborhoodDriver[int, int64]{
		PopulationSize: 4,
		Topology:       generation.Ring(4),
		MakeOffspring:  makeOffspring(),
	}
	next, _, err := driver.SerialNext(initialPop(), rng.New(2))
	require.NoError(t, err)
	assert.Len(t, next, 4)
}
