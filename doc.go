// Evopush is a framework for evolving Push programs: plushy genomes that
// decode into an executable stack-based language, evolved by the usual
// generate-evaluate-select-vary loop.
//
// The framework is oriented around a handful of small, composable packages
// rather than one central Population/Genome interface pair:
//
//   - push:        the Push virtual machine, its instruction set, and the
//     Plushy-to-program translation (this package is the evaluation target).
//   - individual:  the (genome, test results) pair and population type shared
//     by everything downstream of evaluation.
//   - selector:    ways to pick an individual out of a population (Best,
//     Worst, Random, Tournament, Lexicase, weighted combinations).
//   - operator:    the composition algebra (Then, Map, RepeatWith, Select,
//     GenomeExtractor, Mutate, Recombine, GenomeScorer) used to build a
//     "make one offspring" pipeline out of the selector and genome packages.
//   - genome:      Plushy-level mutation (UMAD) and crossover.
//   - distribution: sampling distributions for gene generation and
//     real-valued mutation step sizes.
//   - cases:       paired (input, expected output) training cases and a
//     helper for scoring a program's actual output against them.
//   - generation:  drivers that build a whole next population from the
//     current one, serially, in parallel, or under a spatial topology.
//
// A typical run wires these together by hand: build a distribution.Collection
// of instructions, seed an initial population of random Plushy genomes,
// score each with cases.Score run through the push VM, and repeatedly call a
// generation.Driver whose MakeOffspring operator chains Select, mutation,
// and recombination.
package evopush
