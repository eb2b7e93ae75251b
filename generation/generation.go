// Package generation implements the generation driver: building an entire
// next population from the current one, either serially or in parallel.
// Grounded on the teacher's two generational implementations (gen/generational.go
// and pop/gen/generational.go), both of which build a whole next generation
// before any member of it is used ("each successive generation is created
// in its entirety before starting the next generation") and evolve each
// slot with its own goroutine ("master-slave parallelism"). Rather than the
// teacher's hand-rolled channel orchestration, the parallel path here uses
// golang.org/x/sync/errgroup, matching the rest of the pack's modern
// treatment of fan-out-fan-in work (worker pools with first-error
// cancellation) and giving each worker its own rng.Source so concurrent
// runs stay reproducible and race-free.
//
// Both SerialNext and ParNext also report a stats.Stats over the new
// population's Results.Total, folded with the teacher's own Welford
// accumulator (stats.Stats.Insert) so a caller can log per-generation
// fitness spread without a second pass over the population. ParNext
// accumulates one Stats per worker shard and merges them with
// stats.Stats.Merge, exactly the "parallel-stream statistics merging"
// Merge exists for.
package generation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cbarrick/evopush/individual"
	"github.com/cbarrick/evopush/operator"
	"github.com/cbarrick/evopush/rng"
	"github.com/cbarrick/evopush/stats"
)

// Driver builds the next population from the current one by running a
// single "make one offspring" operator once per slot of the new
// population.
type Driver[G any, R individual.Ordered] struct {
	// PopulationSize is the number of individuals in each generation.
	PopulationSize int

	// MakeOffspring produces one new Individual from the current
	// population, typically Select -> GenomeExtractor -> Mutate/Recombine
	// -> GenomeScorer chained with Then.
	MakeOffspring operator.Operator[individual.Population[G, R], individual.Individual[G, R]]

	// Workers caps the number of shards ParNext splits PopulationSize
	// across. Zero (the default) uses runtime.GOMAXPROCS(0).
	Workers int
}

func (d Driver[G, R]) workers() int {
	if d.Workers > 0 {
		return d.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// SerialNext builds PopulationSize offspring one at a time against a single
// rng.Source, mirroring gen/generational.go's original single-goroutine
// loop shape before that package's own parallel rewrite.
func (d Driver[G, R]) SerialNext(current individual.Population[G, R], src rng.Source) (individual.Population[G, R], stats.Stats, error) {
	next := make(individual.Population[G, R], d.PopulationSize)
	var s stats.Stats
	for i := range next {
		ind, err := d.MakeOffspring.Apply(current, src)
		if err != nil {
			return nil, stats.Stats{}, err
		}
		next[i] = ind
		s = s.Insert(individual.ToFloat64(ind.Results.Total))
	}
	return next, s, nil
}

// ParNext builds PopulationSize offspring concurrently across d.workers()
// shards, short-circuiting and returning the first error encountered (via
// errgroup.Group). Each shard's goroutine gets its own rng.Source derived
// deterministically from seedForWorker so a given (current population,
// seeds) pair always produces the same next population regardless of
// goroutine scheduling order. Each shard folds its own slots into a local
// stats.Stats as it builds them; once every shard finishes, the
// shard-local Stats are merged into one population-wide Stats.
func (d Driver[G, R]) ParNext(ctx context.Context, current individual.Population[G, R], seedForWorker func(worker int) uint64) (individual.Population[G, R], stats.Stats, error) {
	next := make(individual.Population[G, R], d.PopulationSize)

	numWorkers := d.workers()
	if numWorkers > d.PopulationSize {
		numWorkers = d.PopulationSize
	}
	if numWorkers < 1 {
		numWorkers = 1
	}
	shardStats := make([]stats.Stats, numWorkers)

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			src := rng.New(seedForWorker(w))
			var local stats.Stats
			for i := w; i < d.PopulationSize; i += numWorkers {
				ind, err := d.MakeOffspring.Apply(current, src)
				if err != nil {
					return err
				}
				next[i] = ind
				local = local.Insert(individual.ToFloat64(ind.Results.Total))
			}
			shardStats[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats.Stats{}, err
	}

	var merged stats.Stats
	for _, s := range shardStats {
		merged = merged.Merge(s)
	}
	return next, merged, nil
}
