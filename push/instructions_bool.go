package push

// binaryBool implements a binary bool instruction.
type binaryBool struct {
	name string
	op   func(a, b bool) bool
}

func (b binaryBool) NumOpens() int  { return 0 }
func (b binaryBool) String() string { return b.name }

func (b binaryBool) Perform(s *State) error {
	st, _ := StackFor[bool](s)
	vals, err := st.TopN(2)
	if err != nil {
		return underflow(b.name)
	}
	result := b.op(vals[1], vals[0])
	if _, err := st.PopN(2); err != nil {
		return underflow(b.name)
	}
	return st.Push(result)
}

// BoolAnd pops two bools and pushes their conjunction.
func BoolAnd() Instruction { return binaryBool{"Bool.And", func(a, b bool) bool { return a && b }} }

// BoolOr pops two bools and pushes their disjunction.
func BoolOr() Instruction { return binaryBool{"Bool.Or", func(a, b bool) bool { return a || b }} }

// BoolXor pops two bools and pushes their exclusive-or.
func BoolXor() Instruction { return binaryBool{"Bool.Xor", func(a, b bool) bool { return a != b }} }

// BoolEqual pops two bools and pushes whether they are equal.
func BoolEqual() Instruction { return binaryBool{"Bool.Equal", func(a, b bool) bool { return a == b }} }

// BoolNotEqual pops two bools and pushes whether they differ.
func BoolNotEqual() Instruction {
	return binaryBool{"Bool.NotEqual", func(a, b bool) bool { return a != b }}
}

// BoolNot pops a bool and pushes its negation.
func BoolNot() Instruction { return boolNot{} }

type boolNot struct{}

func (boolNot) NumOpens() int  { return 0 }
func (boolNot) String() string { return "Bool.Not" }

func (boolNot) Perform(s *State) error {
	st, _ := StackFor[bool](s)
	top, err := st.Top()
	if err != nil {
		return underflow("Bool.Not")
	}
	if _, err := st.Pop(); err != nil {
		return underflow("Bool.Not")
	}
	return st.Push(!top)
}
