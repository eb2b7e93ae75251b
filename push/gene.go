package push

import "fmt"

// Gene is one unit of a Plushy genome: either a Close marker or an
// instruction. Plushy genomes are flat []Gene sequences produced and
// mutated by the genome package; Parse turns them into a nested Node tree.
type Gene struct {
	closeMarker bool
	instruction Instruction
}

// CloseGene returns the Close marker gene.
func CloseGene() Gene {
	return Gene{closeMarker: true}
}

// InstructionGene wraps an instruction as a gene.
func InstructionGene(i Instruction) Gene {
	return Gene{instruction: i}
}

// IsClose reports whether g is the Close marker.
func (g Gene) IsClose() bool {
	return g.closeMarker
}

// Instruction returns the wrapped instruction and true, or the zero value and
// false if g is a Close marker.
func (g Gene) Instruction() (Instruction, bool) {
	if g.closeMarker {
		return nil, false
	}
	return g.instruction, true
}

func (g Gene) String() string {
	if g.closeMarker {
		return "Close"
	}
	return g.instruction.String()
}

// Node is one node of a parsed Push program: either a single instruction or
// a Block of child nodes. Blocks arise from an instruction's declared
// num_opens() and the Close genes (or end of input) that terminate them.
type Node struct {
	instruction Instruction
	block       []Node
	isBlock     bool
}

// InstructionNode wraps a bare instruction as a program node.
func InstructionNode(i Instruction) Node {
	return Node{instruction: i}
}

// BlockNode wraps a sequence of child nodes as a block.
func BlockNode(children []Node) Node {
	return Node{block: children, isBlock: true}
}

// IsBlock reports whether n is a Block rather than a bare Instruction.
func (n Node) IsBlock() bool {
	return n.isBlock
}

// Instruction returns the wrapped instruction and true, or the zero value and
// false if n is a Block.
func (n Node) Instruction() (Instruction, bool) {
	if n.isBlock {
		return nil, false
	}
	return n.instruction, true
}

// Children returns the block's child nodes, or nil if n is not a Block.
func (n Node) Children() []Node {
	return n.block
}

func (n Node) String() string {
	if !n.isBlock {
		return n.instruction.String()
	}
	return fmt.Sprintf("Block%v", n.block)
}

// Parse converts a flat Plushy gene stream into a nested program. It never
// fails and never panics: unbalanced Close genes are dropped, and missing
// Close genes at the end of input implicitly close every open block. This
// forgiveness is deliberate — genes are produced by mutation operators that
// add and delete freely, and the parser must always yield a valid program.
func Parse(genes []Gene) []Node {
	nodes, _ := parseSequence(genes, false)
	return nodes
}

// parseSequence consumes genes, appending parsed nodes, until either the
// input is exhausted or (when inBlock) a Close gene is found. It returns the
// parsed nodes and the remaining unconsumed genes.
func parseSequence(genes []Gene, inBlock bool) ([]Node, []Gene) {
	var out []Node
	for len(genes) > 0 {
		g := genes[0]
		genes = genes[1:]

		if g.IsClose() {
			if inBlock {
				return out, genes
			}
			// An unmatched Close at the top level (or already inside a
			// block boundary we didn't open) is simply dropped.
			continue
		}

		instr, _ := g.Instruction()
		out = append(out, InstructionNode(instr))
		for i := 0; i < instr.NumOpens(); i++ {
			var block []Node
			block, genes = parseSequence(genes, true)
			out = append(out, BlockNode(block))
		}
	}
	return out, genes
}
