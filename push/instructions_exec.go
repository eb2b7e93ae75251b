package push

// Exec control-flow instructions. These are the only instructions with
// num_opens() > 0: the Plushy parser consumes that many trailing blocks and
// places them as Block nodes immediately following the instruction, so at
// run time the blocks in question are already sitting on top of the exec
// stack, right below the control instruction itself.

// ExecWhen pops a bool; if true, the block now on top of the exec stack is
// left to run next. If false, that block is discarded too. If no block is
// present, nothing is discarded beyond the bool itself.
func ExecWhen() Instruction { return execWhen{} }

type execWhen struct{}

func (execWhen) NumOpens() int  { return 1 }
func (execWhen) String() string { return "Exec.When" }

func (execWhen) Perform(s *State) error {
	b, err := s.Bools.Pop()
	if err != nil {
		return underflow("Exec.When")
	}
	if !b && !s.Exec.IsEmpty() {
		_, _ = s.Exec.Pop()
	}
	return nil
}

// ExecUnless is the mirror image of ExecWhen: it discards the block when the
// popped bool is true.
func ExecUnless() Instruction { return execUnless{} }

type execUnless struct{}

func (execUnless) NumOpens() int  { return 1 }
func (execUnless) String() string { return "Exec.Unless" }

func (execUnless) Perform(s *State) error {
	b, err := s.Bools.Pop()
	if err != nil {
		return underflow("Exec.Unless")
	}
	if b && !s.Exec.IsEmpty() {
		_, _ = s.Exec.Pop()
	}
	return nil
}

// ExecIfElse pops a bool and keeps the "then" block (top of exec) iff the
// bool is true, otherwise the "else" block (second from top); the other
// block is discarded. It degrades gracefully rather than erroring: with only
// one block queued it behaves like ExecWhen, with no bool it discards the
// top block, and with no blocks it only discards the bool (if any). It never
// returns an error.
func ExecIfElse() Instruction { return execIfElse{} }

type execIfElse struct{}

func (execIfElse) NumOpens() int  { return 2 }
func (execIfElse) String() string { return "Exec.IfElse" }

func (execIfElse) Perform(s *State) error {
	hasBool := !s.Bools.IsEmpty()
	var b bool
	if hasBool {
		b, _ = s.Bools.Top()
	}

	switch s.Exec.Len() {
	case 0:
		if hasBool {
			_, _ = s.Bools.Pop()
		}
		return nil

	case 1:
		if !hasBool {
			_, _ = s.Exec.Pop()
			return nil
		}
		_, _ = s.Bools.Pop()
		if !b {
			_, _ = s.Exec.Pop()
		}
		return nil

	default:
		if !hasBool {
			_, _ = s.Exec.Pop()
			return nil
		}
		_, _ = s.Bools.Pop()
		blocks, _ := s.Exec.PopN(2) // [then, else], top first
		then, els := blocks[0], blocks[1]
		if b {
			_ = s.Exec.Push(then)
		} else {
			_ = s.Exec.Push(els)
		}
		return nil
	}
}

// ExecNoop does nothing.
func ExecNoop() Instruction { return execNoop{} }

type execNoop struct{}

func (execNoop) NumOpens() int     { return 0 }
func (execNoop) String() string    { return "Exec.Noop" }
func (execNoop) Perform(*State) error { return nil }

// ExecDup duplicates the block now on top of the exec stack, so that it
// executes twice in sequence. If the exec stack is empty there is nothing to
// duplicate and this is a no-op.
func ExecDup() Instruction { return execDup{} }

type execDup struct{}

func (execDup) NumOpens() int  { return 1 }
func (execDup) String() string { return "Exec.Dup" }

func (execDup) Perform(s *State) error {
	if s.Exec.IsEmpty() {
		return nil
	}
	top, _ := s.Exec.Top()
	if s.Exec.IsFull() {
		return fatalOverflow("Exec.Dup")
	}
	return s.Exec.Push(top)
}

// The remaining exec instructions are the common per-stack-type ops applied
// to the exec stack itself (opens=0, unlike the control-flow instructions
// above).

func ExecPop() Instruction        { return popInstr[Node]{"Exec"} }
func ExecSwap() Instruction       { return swapInstr[Node]{"Exec"} }
func ExecRot() Instruction        { return rotInstr[Node]{"Exec"} }
func ExecIsEmpty() Instruction    { return isEmptyInstr[Node]{"Exec"} }
func ExecStackDepth() Instruction { return stackDepthInstr[Node]{"Exec"} }
