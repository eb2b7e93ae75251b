package push

import "unicode"

// remEuclid128 mirrors Rust's i64::rem_euclid(128): the result is always in
// [0, 128), even for negative inputs.
func remEuclid128(v int64) int64 {
	r := v % 128
	if r < 0 {
		r += 128
	}
	return r
}

// CharFromInt pops an int and pushes the ASCII char at value.rem_euclid(128).
// It never fails except on source underflow.
func CharFromInt() Instruction { return charFromInt{} }

type charFromInt struct{}

func (charFromInt) NumOpens() int  { return 0 }
func (charFromInt) String() string { return "Char.FromInt" }

func (charFromInt) Perform(s *State) error {
	ints, _ := StackFor[int64](s)
	chars, _ := StackFor[rune](s)
	top, err := ints.Top()
	if err != nil {
		return underflow("Char.FromInt")
	}
	if chars.IsFull() {
		return fatalOverflow("Char.FromInt")
	}
	if _, err := ints.Pop(); err != nil {
		return underflow("Char.FromInt")
	}
	return chars.Push(rune(remEuclid128(top)))
}

// CharFromFloat pops a float, truncates towards zero, and pushes the ASCII
// char at value.rem_euclid(128).
func CharFromFloat() Instruction { return charFromFloat{} }

type charFromFloat struct{}

func (charFromFloat) NumOpens() int  { return 0 }
func (charFromFloat) String() string { return "Char.FromFloat" }

func (charFromFloat) Perform(s *State) error {
	floats, _ := StackFor[float64](s)
	chars, _ := StackFor[rune](s)
	top, err := floats.Top()
	if err != nil {
		return underflow("Char.FromFloat")
	}
	if chars.IsFull() {
		return fatalOverflow("Char.FromFloat")
	}
	if _, err := floats.Pop(); err != nil {
		return underflow("Char.FromFloat")
	}
	return chars.Push(rune(remEuclid128(int64(top))))
}

// charPredicate pops a char and pushes a bool computed by pred.
type charPredicate struct {
	name string
	pred func(rune) bool
}

func (c charPredicate) NumOpens() int  { return 0 }
func (c charPredicate) String() string { return c.name }

func (c charPredicate) Perform(s *State) error {
	chars, _ := StackFor[rune](s)
	bools, _ := StackFor[bool](s)
	top, err := chars.Top()
	if err != nil {
		return underflow(c.name)
	}
	if bools.IsFull() {
		return fatalOverflow(c.name)
	}
	if _, err := chars.Pop(); err != nil {
		return underflow(c.name)
	}
	return bools.Push(c.pred(top))
}

// CharIsAlphabetic pops a char and pushes whether it is an ASCII letter.
func CharIsAlphabetic() Instruction {
	return charPredicate{"Char.IsAlphabetic", func(r rune) bool { return unicode.IsLetter(r) && r < unicode.MaxASCII }}
}

// CharIsAsciiDigit pops a char and pushes whether it is an ASCII digit.
func CharIsAsciiDigit() Instruction {
	return charPredicate{"Char.IsAsciiDigit", func(r rune) bool { return r >= '0' && r <= '9' }}
}

// CharToAsciiLowercase pops a char and pushes its ASCII-lowercased form.
func CharToAsciiLowercase() Instruction { return charToLower{} }

type charToLower struct{}

func (charToLower) NumOpens() int  { return 0 }
func (charToLower) String() string { return "Char.ToAsciiLowercase" }

func (charToLower) Perform(s *State) error {
	chars, _ := StackFor[rune](s)
	top, err := chars.Top()
	if err != nil {
		return underflow("Char.ToAsciiLowercase")
	}
	if _, err := chars.Pop(); err != nil {
		return underflow("Char.ToAsciiLowercase")
	}
	if top >= 'A' && top <= 'Z' {
		top = top - 'A' + 'a'
	}
	return chars.Push(top)
}
