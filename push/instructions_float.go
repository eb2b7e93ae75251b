package push

import "math"

// binaryFloat implements a binary float64 instruction. Float arithmetic is
// not checked for overflow — IEEE 754 saturates to ±Inf rather than
// trapping, so there is no recoverable Overflow case for this stack type.
type binaryFloat struct {
	name string
	op   func(a, b float64) float64
}

func (b binaryFloat) NumOpens() int  { return 0 }
func (b binaryFloat) String() string { return b.name }

func (b binaryFloat) Perform(s *State) error {
	st, _ := StackFor[float64](s)
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

// FloatAdd pops two floats and pushes their sum.
func FloatAdd() Instruction { return binaryFloat{"Float.Add", func(a, b float64) float64 { return a + b }} }

// FloatSubtract pops two floats and pushes their difference.
func FloatSubtract() Instruction {
	return binaryFloat{"Float.Subtract", func(a, b float64) float64 { return a - b }}
}

// FloatMultiply pops two floats and pushes their product.
func FloatMultiply() Instruction {
	return binaryFloat{"Float.Multiply", func(a, b float64) float64 { return a * b }}
}

// FloatProtectedDivide pops two floats and pushes a/b, or 1 if b is zero.
func FloatProtectedDivide() Instruction {
	return binaryFloat{"Float.ProtectedDivide", func(a, b float64) float64 {
		if b == 0 {
			return 1
		}
		return a / b
	}}
}

// FloatMod pops two floats and pushes math.Mod(a, b), or 0 if b is zero.
func FloatMod() Instruction {
	return binaryFloat{"Float.Mod", func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		return math.Mod(a, b)
	}}
}

// FloatPower pops two floats (base, then exponent) and pushes base**exponent.
func FloatPower() Instruction {
	return binaryFloat{"Float.Power", func(base, exp float64) float64 { return math.Pow(base, exp) }}
}

// FloatMin pops two floats and pushes the smaller.
func FloatMin() Instruction { return binaryFloat{"Float.Min", math.Min} }

// FloatMax pops two floats and pushes the larger.
func FloatMax() Instruction { return binaryFloat{"Float.Max", math.Max} }

// unaryFloat implements a unary float64 instruction.
type unaryFloat struct {
	name string
	op   func(a float64) float64
}

func (u unaryFloat) NumOpens() int  { return 0 }
func (u unaryFloat) String() string { return u.name }

func (u unaryFloat) Perform(s *State) error {
	st, _ := StackFor[float64](s)
	top, err := st.Top()
	if err != nil {
		return underflow(u.name)
	}
	if _, err := st.Pop(); err != nil {
		return underflow(u.name)
	}
	return st.Push(u.op(top))
}

// FloatInc pops a float and pushes its increment.
func FloatInc() Instruction { return unaryFloat{"Float.Inc", func(a float64) float64 { return a + 1 }} }

// FloatDec pops a float and pushes its decrement.
func FloatDec() Instruction { return unaryFloat{"Float.Dec", func(a float64) float64 { return a - 1 }} }

// FloatNegate pops a float and pushes its negation.
func FloatNegate() Instruction { return unaryFloat{"Float.Negate", func(a float64) float64 { return -a }} }

// FloatSquare pops a float and pushes its square.
func FloatSquare() Instruction {
	return unaryFloat{"Float.Square", func(a float64) float64 { return a * a }}
}

// FloatAbs pops a float and pushes its absolute value.
func FloatAbs() Instruction { return unaryFloat{"Float.Abs", math.Abs} }

// floatComparison pops two floats and pushes a bool.
type floatComparison struct {
	name string
	op   func(a, b float64) bool
}

func (c floatComparison) NumOpens() int  { return 0 }
func (c floatComparison) String() string { return c.name }

func (c floatComparison) Perform(s *State) error {
	floats, _ := StackFor[float64](s)
	bools, _ := StackFor[bool](s)

	vals, err := floats.TopN(2)
	if err != nil {
		return underflow(c.name)
	}
	if bools.IsFull() {
		return fatalOverflow(c.name)
	}
	result := c.op(vals[1], vals[0])
	if _, err := floats.PopN(2); err != nil {
		return underflow(c.name)
	}
	return bools.Push(result)
}

// FloatEqual pops two floats and pushes whether they are equal.
func FloatEqual() Instruction {
	return floatComparison{"Float.Equal", func(a, b float64) bool { return a == b }}
}

// FloatNotEqual pops two floats and pushes whether they differ.
func FloatNotEqual() Instruction {
	return floatComparison{"Float.NotEqual", func(a, b float64) bool { return a != b }}
}

// FloatLessThan pops two floats and pushes a < b.
func FloatLessThan() Instruction {
	return floatComparison{"Float.LessThan", func(a, b float64) bool { return a < b }}
}

// FloatLessThanEqual pops two floats and pushes a <= b.
func FloatLessThanEqual() Instruction {
	return floatComparison{"Float.LessThanEqual", func(a, b float64) bool { return a <= b }}
}

// FloatGreaterThan pops two floats and pushes a > b.
func FloatGreaterThan() Instruction {
	return floatComparison{"Float.GreaterThan", func(a, b float64) bool { return a > b }}
}

// FloatGreaterThanEqual pops two floats and pushes a >= b.
func FloatGreaterThanEqual() Instruction {
	return floatComparison{"Float.GreaterThanEqual", func(a, b float64) bool { return a >= b }}
}

// FloatFromInt pops an int and pushes its float64 conversion.
func FloatFromInt() Instruction { return intToFloatInstr{"Float.FromInt"} }

type intToFloatInstr struct{ name string }

func (f intToFloatInstr) NumOpens() int  { return 0 }
func (f intToFloatInstr) String() string { return f.name }

func (f intToFloatInstr) Perform(s *State) error {
	ints, _ := StackFor[int64](s)
	floats, _ := StackFor[float64](s)
	top, err := ints.Top()
	if err != nil {
		return underflow(f.name)
	}
	if floats.IsFull() {
		return fatalOverflow(f.name)
	}
	if _, err := ints.Pop(); err != nil {
		return underflow(f.name)
	}
	return floats.Push(float64(top))
}
