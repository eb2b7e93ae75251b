package push

import "fmt"

// printInstr pops one T and writes its display form to the state's stdout
// buffer, optionally followed by a newline. A write failure (the in-memory
// buffer never actually fails) is fatal, matching the spec's I/O-failure
// rule for Print/PrintLn.
type printInstr[T any] struct {
	label   string
	newline bool
}

func (p printInstr[T]) NumOpens() int { return 0 }
func (p printInstr[T]) String() string {
	if p.newline {
		return p.label + ".PrintLn"
	}
	return p.label + ".Print"
}

func (p printInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	top, err := st.Top()
	if err != nil {
		return underflow(p.String())
	}
	if _, err := st.Pop(); err != nil {
		return underflow(p.String())
	}
	text := fmt.Sprint(top)
	if p.newline {
		text += "\n"
	}
	if _, err := s.stdout.WriteString(text); err != nil {
		return fatalOverflow(p.String() + ": sink write failed: " + err.Error())
	}
	return nil
}

func IntPrint() Instruction     { return printInstr[int64]{label: "Int"} }
func IntPrintLn() Instruction   { return printInstr[int64]{label: "Int", newline: true} }
func FloatPrint() Instruction   { return printInstr[float64]{label: "Float"} }
func FloatPrintLn() Instruction { return printInstr[float64]{label: "Float", newline: true} }
func BoolPrint() Instruction    { return printInstr[bool]{label: "Bool"} }
func BoolPrintLn() Instruction  { return printInstr[bool]{label: "Bool", newline: true} }
func CharPrint() Instruction    { return printInstr[rune]{label: "Char"} }
func CharPrintLn() Instruction  { return printInstr[rune]{label: "Char", newline: true} }
