package push

import "github.com/pkg/errors"

// Instruction is a pure function over a State: it dispatches by mutating the
// stacks it reads and writes, after checking every precondition its failure
// modes require, so that a failed Perform leaves the state exactly as it
// found it (the Go analogue of "take ownership, return the original state").
//
// NumOpens declares how many nested exec blocks the Plushy parser should
// consume immediately following this instruction: 0 for almost everything,
// 1 for Exec.When, Exec.Unless and Exec.Dup, 2 for Exec.IfElse.
type Instruction interface {
	Perform(s *State) error
	NumOpens() int
	String() string
}

// Error categories. Underflow and recoverable numeric Overflow leave state
// untouched; Fatal errors (stack-full-on-a-non-source-stack, I/O failure, a
// missing input name) stop the run.
var (
	// ErrUnderflow means a source stack lacked the depth an instruction
	// needed. Recoverable: the instruction is skipped, state unchanged.
	ErrUnderflow = errors.New("push: stack underflow")

	// ErrFatalOverflow means an instruction would push onto a full stack
	// that is not one of its own source stacks. Fatal: the run stops.
	ErrFatalOverflow = errors.New("push: fatal stack overflow")

	// ErrNumericOverflow means checked arithmetic would wrap. Recoverable:
	// operands remain on the stack.
	ErrNumericOverflow = errors.New("push: numeric overflow")

	// ErrInputNotFound means InputVar named an input that was never bound
	// via the builder's WithInput. Fatal.
	ErrInputNotFound = errors.New("push: input name not found")
)

// underflow builds a named, wrapped ErrUnderflow.
func underflow(op string) error {
	return errors.Wrapf(ErrUnderflow, "%s", op)
}

// fatalOverflow builds a named, wrapped ErrFatalOverflow.
func fatalOverflow(op string) error {
	return errors.Wrapf(ErrFatalOverflow, "%s", op)
}

// numericOverflow builds a named, wrapped ErrNumericOverflow.
func numericOverflow(op string) error {
	return errors.Wrapf(ErrNumericOverflow, "%s", op)
}

// pushInstruction pushes a fixed, precomputed value onto T's stack. It
// implements the `Push(value)` PushInstruction variant from the spec.
type pushInstruction[T any] struct {
	value T
	name  string
}

// PushValue returns an instruction that pushes a fixed value of type T.
func PushValue[T any](name string, v T) Instruction {
	return pushInstruction[T]{value: v, name: name}
}

func (p pushInstruction[T]) NumOpens() int { return 0 }
func (p pushInstruction[T]) String() string {
	return p.name
}

func (p pushInstruction[T]) Perform(s *State) error {
	st, ok := StackFor[T](s)
	if !ok {
		return fatalOverflow(p.name + ": unsupported type")
	}
	if st.IsFull() {
		return fatalOverflow(p.name)
	}
	return st.Push(p.value)
}

// inputVar looks up a named input in the state's input map and performs the
// instruction bound to it.
type inputVar struct {
	name VariableName
}

// InputVar returns an instruction that performs the push instruction bound
// to name via the builder's WithInput. Failure to find the binding is fatal.
func InputVar(name VariableName) Instruction {
	return inputVar{name: name}
}

func (i inputVar) NumOpens() int { return 0 }
func (i inputVar) String() string {
	return "InputVar(" + string(i.name) + ")"
}

func (i inputVar) Perform(s *State) error {
	instr, ok := s.LookupInput(i.name)
	if !ok {
		return errors.Wrapf(ErrInputNotFound, "%s", i.name)
	}
	return instr.Perform(s)
}
