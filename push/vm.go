package push

// Run executes s to completion: pop the top of the exec stack, dispatch it,
// bump the step counter, and repeat until the exec stack is empty or the
// step limit is reached. A Block is never itself "performed" — unfurling it
// onto the exec stack (so its first child becomes the new top) counts as one
// step, exactly like dispatching a bare instruction.
//
// Run returns the terminal state (even on error, so callers can inspect the
// stacks a run left behind) and the first error encountered, if any.
// Recoverable errors (Underflow, numeric Overflow) are returned to the
// caller rather than silently swallowed — this library's policy is "stop on
// error" per the propagation rules in the spec — but they do not corrupt
// state, since every instruction leaves state untouched on a recoverable
// failure.
func Run(s *State) (*State, error) {
	for {
		if s.Exec.IsEmpty() {
			return s, nil
		}
		if limit, ok := s.StepLimit(); ok && s.instructionsExecuted >= limit {
			return s, nil
		}

		node, err := s.Exec.Pop()
		if err != nil {
			// The emptiness check above makes this unreachable in
			// practice, but Pop's own transactionality means there is
			// nothing to undo either way.
			return s, nil
		}

		if node.IsBlock() {
			if err := s.Exec.Extend(node.Children()); err != nil {
				return s, err
			}
		} else {
			instr, _ := node.Instruction()
			if err := instr.Perform(s); err != nil {
				return s, err
			}
		}

		s.instructionsExecuted++
	}
}
