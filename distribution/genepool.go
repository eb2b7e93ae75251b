package distribution

import (
	"github.com/cbarrick/evopush/push"
	"github.com/cbarrick/evopush/rng"
)

// Collection is a weighted pool of instructions to draw genes from when
// building random Plushy genomes, plus a configurable probability of
// emitting a Close gene instead. There is no teacher analogue for
// random-program generation (cbarrick-evo's genomes are fixed-length
// numeric/permutation vectors), so this is grounded directly on how the
// rest of the pack treats weighted choice: accumulate weighted entries,
// then roll once over their total for each sample.
type Collection struct {
	instructions []weightedInstruction
	totalWeight  int
	closeWeight  int
}

type weightedInstruction struct {
	weight int
	instr  push.Instruction
}

// NewCollection starts an empty instruction pool. closeWeight sets how
// heavily the Close gene is weighted against every instruction added via
// Add; a Collection with closeWeight 0 and at least one positively weighted
// instruction never emits Close genes on its own (the caller's
// mutation/crossover operators are still free to insert them). When the
// close weight and every instruction weight are zero, Sample returns Close.
func NewCollection(closeWeight int) *Collection {
	return &Collection{closeWeight: closeWeight}
}

// Add registers an instruction with the given relative weight.
func (c *Collection) Add(weight int, instr push.Instruction) *Collection {
	c.instructions = append(c.instructions, weightedInstruction{weight: weight, instr: instr})
	c.totalWeight += weight
	return c
}

// Sample draws one gene from the pool: either the Close marker (with
// probability closeWeight/(closeWeight+totalWeight)) or a weighted-random
// instruction.
func (c *Collection) Sample(src rng.Source) push.Gene {
	total := c.totalWeight + c.closeWeight
	if total <= 0 {
		return push.CloseGene()
	}
	roll := src.IntRange(0, total)
	if roll < c.closeWeight {
		return push.CloseGene()
	}
	roll -= c.closeWeight
	for _, wi := range c.instructions {
		if roll < wi.weight {
			return push.InstructionGene(wi.instr)
		}
		roll -= wi.weight
	}
	// Unreachable unless weights were mutated concurrently with Sample;
	// fall back to the last instruction added rather than panicking.
	return push.InstructionGene(c.instructions[len(c.instructions)-1].instr)
}

// SampleN draws n genes, suitable as the body of a freshly generated Plushy
// genome.
func (c *Collection) SampleN(src rng.Source, n int) []push.Gene {
	genes := make([]push.Gene, n)
	for i := range genes {
		genes[i] = c.Sample(src)
	}
	return genes
}
