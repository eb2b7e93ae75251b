package push

import (
	"bytes"

	"github.com/cbarrick/evopush/stack"
)

// Builder constructs a State through a fluent, staged API: set max stack
// size, then set the program (or declare none), then optionally set initial
// values and named inputs, then Build. Each stage is its own Go type so that
// Build is simply not a method available until the required stages have run
// — Go has no phantom type parameters, but the same misuse-is-a-compile-error
// property is achieved by moving to a new named type at each stage rather
// than mutating one type's internal flags.
type Builder struct{}

// NewBuilder starts a fresh, uninitialized builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithMaxStackSize fixes the capacity shared by every stack in the state
// (including the exec stack) and advances the builder to the SizedBuilder
// stage.
func (Builder) WithMaxStackSize(maxSize int) *SizedBuilder {
	return &SizedBuilder{maxSize: maxSize}
}

// SizedBuilder is a Builder that has had its capacity fixed.
type SizedBuilder struct {
	maxSize int
}

// WithProgram sets the initial exec-stack program and advances the builder
// to the ReadyBuilder stage, which alone exposes Build.
func (b *SizedBuilder) WithProgram(program []Node) *ReadyBuilder {
	r := newReadyBuilder(b.maxSize)
	_ = r.exec.Extend(program)
	return r
}

// WithNoProgram declares that the state starts with an empty exec stack and
// advances the builder to the ReadyBuilder stage.
func (b *SizedBuilder) WithNoProgram() *ReadyBuilder {
	return newReadyBuilder(b.maxSize)
}

// ReadyBuilder is a Builder with size and program set; it is the only stage
// with a Build method.
type ReadyBuilder struct {
	maxSize int
	ints    *stack.Stack[int64]
	floats  *stack.Stack[float64]
	bools   *stack.Stack[bool]
	chars   *stack.Stack[rune]
	exec    *stack.Stack[Node]
	inputs  map[VariableName]Instruction
	limit   *int
}

func newReadyBuilder(maxSize int) *ReadyBuilder {
	return &ReadyBuilder{
		maxSize: maxSize,
		ints:    stack.New[int64](maxSize),
		floats:  stack.New[float64](maxSize),
		bools:   stack.New[bool](maxSize),
		chars:   stack.New[rune](maxSize),
		exec:    stack.New[Node](maxSize),
		inputs:  make(map[VariableName]Instruction),
	}
}

// WithIntValues seeds the int stack, bottom first (the last value given
// becomes the top).
func (b *ReadyBuilder) WithIntValues(values []int64) *ReadyBuilder {
	_ = b.ints.Extend(reverseCopy(values))
	return b
}

// WithFloatValues seeds the float stack, bottom first.
func (b *ReadyBuilder) WithFloatValues(values []float64) *ReadyBuilder {
	_ = b.floats.Extend(reverseCopy(values))
	return b
}

// WithBoolValues seeds the bool stack, bottom first.
func (b *ReadyBuilder) WithBoolValues(values []bool) *ReadyBuilder {
	_ = b.bools.Extend(reverseCopy(values))
	return b
}

// WithCharValues seeds the char stack, bottom first.
func (b *ReadyBuilder) WithCharValues(values []rune) *ReadyBuilder {
	_ = b.chars.Extend(reverseCopy(values))
	return b
}

// WithInput binds name to an instruction that pushes its value; InputVar(name)
// looks this up at run time.
func (b *ReadyBuilder) WithInput(name VariableName, push Instruction) *ReadyBuilder {
	b.inputs[name] = push
	return b
}

// WithStepLimit bounds the number of instructions the VM will dispatch
// before Run returns, regardless of whether the exec stack is empty.
func (b *ReadyBuilder) WithStepLimit(limit int) *ReadyBuilder {
	b.limit = &limit
	return b
}

// Build finalizes the state. The input map becomes immutable from this point
// on.
func (b *ReadyBuilder) Build() *State {
	inputs := make(map[VariableName]Instruction, len(b.inputs))
	for k, v := range b.inputs {
		inputs[k] = v
	}
	return &State{
		Ints:      b.ints,
		Floats:    b.floats,
		Bools:     b.bools,
		Chars:     b.chars,
		Exec:      b.exec,
		inputs:    inputs,
		stepLimit: b.limit,
		stdout:    new(bytes.Buffer),
	}
}

func reverseCopy[T any](vs []T) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}
