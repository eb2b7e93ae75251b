package generation

import (
	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/operator"
	"github.com/cbarrick/evopush/rng"
	"github.com/cbarrick/evopush/stats"
)

// NeighborhoodDriver builds the next population like Driver, but restricts
// MakeOffspring's candidate pool for slot i to that slot's neighbors in
// Topology rather than the whole population, giving spatially structured
// ("diffusion model") evolution as in the teacher's pop/graph package.
type NeighborhoodDriver[G any, R individual.Ordered] struct {
	PopulationSize int
	Topology       Topology
	MakeOffspring  operator.Operator[individual.Population[G, R], individual.Individual[G, R]]
}

// SerialNext builds one offspring per slot, each seeing only its
// neighborhood of the current population as candidates, and folds every
// slot's Results.Total into a stats.Stats alongside Driver.SerialNext.
func (d NeighborhoodDriver[G, R]) SerialNext(current individual.Population[G, R], src rng.Source) (individual.Population[G, R], stats.Stats, error) {
	next := make(individual.Population[G, R], d.PopulationSize)
	var s stats.Stats
	for i := range next {
		neighborhood := d.neighborhoodPopulation(current, i)
		ind, err := d.MakeOffspring.Apply(neighborhood, src)
		if err != nil {
			return nil, stats.Stats{}, err
		}
		next[i] = ind
		s = s.Insert(individual.ToFloat64(ind.Results.Total))
	}
	return next, s, nil
}

func (d NeighborhoodDriver[G, R]) neighborhoodPopulation(current individual.Population[G, R], slot int) individual.Population[G, R] {
	indices := d.Topology.Neighbors(slot)
	out := make(individual.Population[G, R], len(indices))
	for j, idx := range indices {
		out[j] = current[idx]
	}
	return out
}
