package push

import (
	"bytes"

	"github.com/cbarrick/evopush/stack"
)

// VariableName identifies a named input bound into a PushState, looked up by
// the InputVar instruction.
type VariableName string

// State is PushState: a product of typed stacks (int, float, bool, char, and
// exec), a map from input name to the instruction that pushes it, and a step
// counter/limit. It is the sole argument and result type threaded through
// instruction dispatch and the VM run loop.
//
// State is a struct of named stacks rather than a single heterogeneous
// Stack[Value] — the Go analogue of the capability-trait design described in
// the Push VM's design notes for languages without trait-based dispatch.
type State struct {
	Ints   *stack.Stack[int64]
	Floats *stack.Stack[float64]
	Bools  *stack.Stack[bool]
	Chars  *stack.Stack[rune]
	Exec   *stack.Stack[Node]

	inputs map[VariableName]Instruction

	instructionsExecuted int
	stepLimit            *int

	stdout *bytes.Buffer
}

// InstructionsExecuted returns the number of steps the VM has dispatched
// against this state so far.
func (s *State) InstructionsExecuted() int {
	return s.instructionsExecuted
}

// StepLimit returns the configured instruction step limit and whether one is
// set.
func (s *State) StepLimit() (int, bool) {
	if s.stepLimit == nil {
		return 0, false
	}
	return *s.stepLimit, true
}

// Stdout returns the accumulated output of Print/PrintLn instructions.
func (s *State) Stdout() string {
	if s.stdout == nil {
		return ""
	}
	return s.stdout.String()
}

// LookupInput resolves a named input to the instruction that pushes it. The
// input map is immutable after Build, so this is safe to call concurrently
// with other read-only access.
func (s *State) LookupInput(name VariableName) (Instruction, bool) {
	i, ok := s.inputs[name]
	return i, ok
}

// StackFor returns the concrete stack of type T held by s, or (nil, false) if
// T is not one of the supported stack element types (int64, float64, bool,
// rune, Node). This is the HasStack[T] capability from the spec, implemented
// as a runtime dispatch over s's known fields rather than a compile-time
// trait, since Go generics cannot specialize a function body per type
// parameter.
func StackFor[T any](s *State) (*stack.Stack[T], bool) {
	var zero T
	switch any(zero).(type) {
	case int64:
		st, ok := any(s.Ints).(*stack.Stack[T])
		return st, ok
	case float64:
		st, ok := any(s.Floats).(*stack.Stack[T])
		return st, ok
	case bool:
		st, ok := any(s.Bools).(*stack.Stack[T])
		return st, ok
	case rune:
		st, ok := any(s.Chars).(*stack.Stack[T])
		return st, ok
	case Node:
		st, ok := any(s.Exec).(*stack.Stack[T])
		return st, ok
	default:
		return nil, false
	}
}

// WithPush pushes v onto T's stack. It is a convenience for callers (tests,
// input-binding instructions) that know the overflow case is a programmer
// error rather than a recoverable condition; it panics on overflow, matching
// the "fatal on overflow" contract for with_push in the spec.
func WithPush[T any](s *State, v T) {
	st, ok := StackFor[T](s)
	if !ok {
		panic("push: unsupported stack element type")
	}
	if err := st.Push(v); err != nil {
		panic(err)
	}
}

// WithReplace pops k items from T's stack and pushes v. It panics on
// underflow, matching the spec's "fatal on underflow" contract for
// with_replace.
func WithReplace[T any](s *State, k int, v T) {
	st, ok := StackFor[T](s)
	if !ok {
		panic("push: unsupported stack element type")
	}
	if _, err := st.PopN(k); err != nil {
		panic(err)
	}
	if err := st.Push(v); err != nil {
		panic(err)
	}
}
