package push

import "math"

// checkedAddInt64 returns a+b and true, or false if the result would
// overflow int64.
func checkedAddInt64(a, b int64) (int64, bool) {
	r := a + b
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return r, true
}

// checkedSubInt64 returns a-b and true, or false if the result would
// overflow int64.
func checkedSubInt64(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

// checkedMulInt64 returns a*b and true, or false if the result would
// overflow int64.
func checkedMulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	if b == math.MinInt64 && a == -1 {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// binaryInt implements a checked binary int64 instruction: pop b then a
// (a below b on the stack, matching the spec's pop-order for comparisons and
// arithmetic), apply op, and push the result. If op reports overflow, the
// stack is left untouched.
type binaryInt struct {
	name string
	op   func(a, b int64) (int64, bool)
}

func (b binaryInt) NumOpens() int  { return 0 }
func (b binaryInt) String() string { return b.name }

func (b binaryInt) Perform(s *State) error {
	st, _ := StackFor[int64](s)
	vals, err := st.TopN(2)
	if err != nil {
		return underflow(b.name)
	}
	top, second := vals[0], vals[1]
	result, ok := b.op(second, top)
	if !ok {
		return numericOverflow(b.name)
	}
	if _, err := st.PopN(2); err != nil {
		return underflow(b.name)
	}
	return st.Push(result)
}

// IntAdd pops two ints and pushes their checked sum.
func IntAdd() Instruction { return binaryInt{"Int.Add", checkedAddInt64} }

// IntSubtract pops two ints and pushes their checked difference.
func IntSubtract() Instruction { return binaryInt{"Int.Subtract", checkedSubInt64} }

// IntMultiply pops two ints and pushes their checked product.
func IntMultiply() Instruction { return binaryInt{"Int.Multiply", checkedMulInt64} }

// IntProtectedDivide pops two ints and pushes a/b, or 1 if b is zero.
func IntProtectedDivide() Instruction {
	return binaryInt{"Int.ProtectedDivide", func(a, b int64) (int64, bool) {
		if b == 0 {
			return 1, true
		}
		if a == math.MinInt64 && b == -1 {
			return 0, false
		}
		return a / b, true
	}}
}

// IntMod pops two ints and pushes a%b, or 0 if b is zero.
func IntMod() Instruction {
	return binaryInt{"Int.Mod", func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, true
		}
		if a == math.MinInt64 && b == -1 {
			return 0, true
		}
		return a % b, true
	}}
}

// IntPower pops two ints (base, then exponent) and pushes base**exponent,
// checked. A negative exponent is protected to yield 1.
func IntPower() Instruction {
	return binaryInt{"Int.Power", func(base, exp int64) (int64, bool) {
		if exp < 0 {
			return 1, true
		}
		result := int64(1)
		for i := int64(0); i < exp; i++ {
			var ok bool
			result, ok = checkedMulInt64(result, base)
			if !ok {
				return 0, false
			}
		}
		return result, true
	}}
}

// IntMin pops two ints and pushes the smaller.
func IntMin() Instruction {
	return binaryInt{"Int.Min", func(a, b int64) (int64, bool) {
		if a < b {
			return a, true
		}
		return b, true
	}}
}

// IntMax pops two ints and pushes the larger.
func IntMax() Instruction {
	return binaryInt{"Int.Max", func(a, b int64) (int64, bool) {
		if a > b {
			return a, true
		}
		return b, true
	}}
}

// unaryInt implements a checked unary int64 instruction.
type unaryInt struct {
	name string
	op   func(a int64) (int64, bool)
}

func (u unaryInt) NumOpens() int  { return 0 }
func (u unaryInt) String() string { return u.name }

func (u unaryInt) Perform(s *State) error {
	st, _ := StackFor[int64](s)
	top, err := st.Top()
	if err != nil {
		return underflow(u.name)
	}
	result, ok := u.op(top)
	if !ok {
		return numericOverflow(u.name)
	}
	if _, err := st.Pop(); err != nil {
		return underflow(u.name)
	}
	return st.Push(result)
}

// IntInc pops an int and pushes its checked increment.
func IntInc() Instruction {
	return unaryInt{"Int.Inc", func(a int64) (int64, bool) { return checkedAddInt64(a, 1) }}
}

// IntDec pops an int and pushes its checked decrement.
func IntDec() Instruction {
	return unaryInt{"Int.Dec", func(a int64) (int64, bool) { return checkedSubInt64(a, 1) }}
}

// IntNegate pops an int and pushes its checked negation.
func IntNegate() Instruction {
	return unaryInt{"Int.Negate", func(a int64) (int64, bool) {
		if a == math.MinInt64 {
			return 0, false
		}
		return -a, true
	}}
}

// IntSquare pops an int and pushes its checked square.
func IntSquare() Instruction {
	return unaryInt{"Int.Square", func(a int64) (int64, bool) { return checkedMulInt64(a, a) }}
}

// IntAbs pops an int and pushes its absolute value, saturating MinInt64 to
// MaxInt64 rather than overflowing.
func IntAbs() Instruction {
	return unaryInt{"Int.Abs", func(a int64) (int64, bool) {
		if a == math.MinInt64 {
			return math.MaxInt64, true
		}
		if a < 0 {
			return -a, true
		}
		return a, true
	}}
}

// intComparison pops two ints and pushes a bool.
type intComparison struct {
	name string
	op   func(a, b int64) bool
}

func (c intComparison) NumOpens() int  { return 0 }
func (c intComparison) String() string { return c.name }

func (c intComparison) Perform(s *State) error {
	ints, _ := StackFor[int64](s)
	bools, _ := StackFor[bool](s)

	vals, err := ints.TopN(2)
	if err != nil {
		return underflow(c.name)
	}
	if bools.IsFull() {
		return fatalOverflow(c.name)
	}
	result := c.op(vals[1], vals[0])
	if _, err := ints.PopN(2); err != nil {
		return underflow(c.name)
	}
	return bools.Push(result)
}

// IntEqual pops two ints and pushes whether they are equal.
func IntEqual() Instruction {
	return intComparison{"Int.Equal", func(a, b int64) bool { return a == b }}
}

// IntNotEqual pops two ints and pushes whether they differ.
func IntNotEqual() Instruction {
	return intComparison{"Int.NotEqual", func(a, b int64) bool { return a != b }}
}

// IntLessThan pops two ints and pushes a < b.
func IntLessThan() Instruction {
	return intComparison{"Int.LessThan", func(a, b int64) bool { return a < b }}
}

// IntLessThanEqual pops two ints and pushes a <= b.
func IntLessThanEqual() Instruction {
	return intComparison{"Int.LessThanEqual", func(a, b int64) bool { return a <= b }}
}

// IntGreaterThan pops two ints and pushes a > b.
func IntGreaterThan() Instruction {
	return intComparison{"Int.GreaterThan", func(a, b int64) bool { return a > b }}
}

// IntGreaterThanEqual pops two ints and pushes a >= b.
func IntGreaterThanEqual() Instruction {
	return intComparison{"Int.GreaterThanEqual", func(a, b int64) bool { return a >= b }}
}

// IntFromFloat pops a float and pushes its truncation towards zero as an int.
func IntFromFloat() Instruction {
	return floatToIntInstr{"Int.FromFloat"}
}

type floatToIntInstr struct{ name string }

func (f floatToIntInstr) NumOpens() int  { return 0 }
func (f floatToIntInstr) String() string { return f.name }

func (f floatToIntInstr) Perform(s *State) error {
	floats, _ := StackFor[float64](s)
	ints, _ := StackFor[int64](s)
	top, err := floats.Top()
	if err != nil {
		return underflow(f.name)
	}
	if ints.IsFull() {
		return fatalOverflow(f.name)
	}
	if _, err := floats.Pop(); err != nil {
		return underflow(f.name)
	}
	return ints.Push(int64(top))
}
