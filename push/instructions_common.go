package push

import "math"

// The instructions in this file are the "stack common ops" from the spec:
// Dup, Pop, Swap, Rot, IsEmpty, StackDepth, generalized over every stack
// element type T via StackFor[T]. Each constructor below binds T and a
// human-readable label, producing a concrete Instruction value.

type dupInstr[T any] struct{ label string }

func (d dupInstr[T]) NumOpens() int  { return 0 }
func (d dupInstr[T]) String() string { return d.label + ".Dup" }

func (d dupInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	top, err := st.Top()
	if err != nil {
		return underflow(d.String())
	}
	if st.IsFull() {
		return fatalOverflow(d.String())
	}
	return st.Push(top)
}

type popInstr[T any] struct{ label string }

func (p popInstr[T]) NumOpens() int  { return 0 }
func (p popInstr[T]) String() string { return p.label + ".Pop" }

func (p popInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	_, err := st.Pop()
	if err != nil {
		return underflow(p.String())
	}
	return nil
}

type swapInstr[T any] struct{ label string }

func (sw swapInstr[T]) NumOpens() int  { return 0 }
func (sw swapInstr[T]) String() string { return sw.label + ".Swap" }

func (sw swapInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	vals, err := st.PopN(2)
	if err != nil {
		return underflow(sw.String())
	}
	_ = st.Push(vals[0])
	_ = st.Push(vals[1])
	return nil
}

type rotInstr[T any] struct{ label string }

func (r rotInstr[T]) NumOpens() int  { return 0 }
func (r rotInstr[T]) String() string { return r.label + ".Rot" }

// Rot pulls the third item to the top: [a,b,c] (c on top) -> [b,c,a].
func (r rotInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	vals, err := st.PopN(3) // vals = [c, b, a] (top first)
	if err != nil {
		return underflow(r.String())
	}
	c, b, a := vals[0], vals[1], vals[2]
	_ = st.Push(b)
	_ = st.Push(c)
	_ = st.Push(a)
	return nil
}

type isEmptyInstr[T any] struct{ label string }

func (e isEmptyInstr[T]) NumOpens() int  { return 0 }
func (e isEmptyInstr[T]) String() string { return e.label + ".IsEmpty" }

func (e isEmptyInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	bools, _ := StackFor[bool](s)
	if bools.IsFull() {
		return fatalOverflow(e.String())
	}
	return bools.Push(st.IsEmpty())
}

type stackDepthInstr[T any] struct{ label string }

func (d stackDepthInstr[T]) NumOpens() int  { return 0 }
func (d stackDepthInstr[T]) String() string { return d.label + ".StackDepth" }

func (d stackDepthInstr[T]) Perform(s *State) error {
	st, _ := StackFor[T](s)
	ints, _ := StackFor[int64](s)
	if ints.IsFull() {
		return fatalOverflow(d.String())
	}
	depth := int64(st.Len())
	if st.Len() > math.MaxInt64 {
		depth = math.MaxInt64
	}
	return ints.Push(depth)
}

// Constructors, one family per supported element type.

func IntDup() Instruction        { return dupInstr[int64]{"Int"} }
func IntPop() Instruction        { return popInstr[int64]{"Int"} }
func IntSwap() Instruction       { return swapInstr[int64]{"Int"} }
func IntRot() Instruction        { return rotInstr[int64]{"Int"} }
func IntIsEmpty() Instruction    { return isEmptyInstr[int64]{"Int"} }
func IntStackDepth() Instruction { return stackDepthInstr[int64]{"Int"} }

func FloatDup() Instruction        { return dupInstr[float64]{"Float"} }
func FloatPop() Instruction        { return popInstr[float64]{"Float"} }
func FloatSwap() Instruction       { return swapInstr[float64]{"Float"} }
func FloatRot() Instruction        { return rotInstr[float64]{"Float"} }
func FloatIsEmpty() Instruction    { return isEmptyInstr[float64]{"Float"} }
func FloatStackDepth() Instruction { return stackDepthInstr[float64]{"Float"} }

func BoolDup() Instruction        { return dupInstr[bool]{"Bool"} }
func BoolPop() Instruction        { return popInstr[bool]{"Bool"} }
func BoolSwap() Instruction       { return swapInstr[bool]{"Bool"} }
func BoolRot() Instruction        { return rotInstr[bool]{"Bool"} }
func BoolIsEmpty() Instruction    { return isEmptyInstr[bool]{"Bool"} }
func BoolStackDepth() Instruction { return stackDepthInstr[bool]{"Bool"} }

func CharDup() Instruction        { return dupInstr[rune]{"Char"} }
func CharPop() Instruction        { return popInstr[rune]{"Char"} }
func CharSwap() Instruction       { return swapInstr[rune]{"Char"} }
func CharRot() Instruction        { return rotInstr[rune]{"Char"} }
func CharIsEmpty() Instruction    { return isEmptyInstr[rune]{"Char"} }
func CharStackDepth() Instruction { return stackDepthInstr[rune]{"Char"} }
