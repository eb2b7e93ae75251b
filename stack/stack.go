// Package stack implements the bounded, transactional LIFO that backs every
// typed stack in the Push VM (the int, float, bool, char, and exec stacks).
//
// A Stack[T] never partially mutates on a failed operation: any call that
// would fail checks its precondition before touching the underlying slice.
package stack

import "github.com/pkg/errors"

// ErrOverflow is returned when an operation would grow a stack past its
// configured capacity.
var ErrOverflow = errors.New("stack: overflow")

// ErrUnderflow is returned when an operation requests more elements than a
// stack currently holds.
var ErrUnderflow = errors.New("stack: underflow")

// Stack is a bounded LIFO over a single element type T. The zero value is not
// usable; construct one with New or NewWithCapacity.
type Stack[T any] struct {
	data    []T
	maxSize int
}

// New returns an empty stack with the given maximum size.
func New[T any](maxSize int) *Stack[T] {
	return &Stack[T]{maxSize: maxSize}
}

// NewWithCapacity returns an empty stack with the given maximum size and a
// pre-allocated backing array, which is an allocation hint only and has no
// effect on behavior.
func NewWithCapacity[T any](maxSize, capHint int) *Stack[T] {
	if capHint > maxSize {
		capHint = maxSize
	}
	if capHint < 0 {
		capHint = 0
	}
	return &Stack[T]{data: make([]T, 0, capHint), maxSize: maxSize}
}

// Len returns the number of elements currently on the stack.
func (s *Stack[T]) Len() int {
	return len(s.data)
}

// MaxSize returns the configured capacity of the stack.
func (s *Stack[T]) MaxSize() int {
	return s.maxSize
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// IsFull reports whether the stack is at capacity.
func (s *Stack[T]) IsFull() bool {
	return len(s.data) >= s.maxSize
}

// SetMaxSize changes the capacity of the stack. It fails with ErrOverflow,
// leaving the stack unchanged, if the current length exceeds m.
func (s *Stack[T]) SetMaxSize(m int) error {
	if len(s.data) > m {
		return errors.Wrapf(ErrOverflow, "set max size %d with %d elements present", m, len(s.data))
	}
	s.maxSize = m
	return nil
}

// Push places v on top of the stack. It fails with ErrOverflow, leaving the
// stack unchanged, iff the stack is full.
func (s *Stack[T]) Push(v T) error {
	if len(s.data) >= s.maxSize {
		return errors.Wrap(ErrOverflow, "push")
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top of the stack. It fails with ErrUnderflow,
// leaving the stack unchanged, iff the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, errors.Wrap(ErrUnderflow, "pop")
	}
	top := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return top, nil
}

// Top returns a copy of the top of the stack without removing it. It fails
// with ErrUnderflow iff the stack is empty.
func (s *Stack[T]) Top() (T, error) {
	var zero T
	if len(s.data) == 0 {
		return zero, errors.Wrap(ErrUnderflow, "top")
	}
	return s.data[len(s.data)-1], nil
}

// PopN removes and returns the top k elements in pop order (the former top is
// first). It fails with ErrUnderflow iff len < k and never partially
// consumes the stack on failure.
func (s *Stack[T]) PopN(k int) ([]T, error) {
	if k < 0 || len(s.data) < k {
		return nil, errors.Wrapf(ErrUnderflow, "pop %d of %d", k, len(s.data))
	}
	out := make([]T, k)
	base := len(s.data) - k
	for i := 0; i < k; i++ {
		out[i] = s.data[len(s.data)-1-i]
	}
	s.data = s.data[:base]
	return out, nil
}

// TopN returns the top k elements in top-first order without removing them.
// It fails with ErrUnderflow iff len < k.
func (s *Stack[T]) TopN(k int) ([]T, error) {
	if k < 0 || len(s.data) < k {
		return nil, errors.Wrapf(ErrUnderflow, "top %d of %d", k, len(s.data))
	}
	out := make([]T, k)
	for i := 0; i < k; i++ {
		out[i] = s.data[len(s.data)-1-i]
	}
	return out, nil
}

// DiscardFromTop drops the top n elements. It fails with ErrUnderflow, and
// leaves the stack unchanged, iff n > Len().
func (s *Stack[T]) DiscardFromTop(n int) error {
	if n < 0 || n > len(s.data) {
		return errors.Wrapf(ErrUnderflow, "discard %d of %d", n, len(s.data))
	}
	s.data = s.data[:len(s.data)-n]
	return nil
}

// Extend pushes every element of vs so that the first element of vs becomes
// the new top of the stack. The full length of vs is checked against the
// remaining capacity before any element is pushed: either every element is
// pushed or none are.
//
// This mirrors the Push VM's rule for unfurling a Block onto the exec stack:
// the first child of the block must end up on top.
func (s *Stack[T]) Extend(vs []T) error {
	if len(vs) > s.maxSize-len(s.data) {
		return errors.Wrapf(ErrOverflow, "extend by %d with %d of %d remaining", len(vs), s.maxSize-len(s.data), s.maxSize)
	}
	for i := len(vs) - 1; i >= 0; i-- {
		s.data = append(s.data, vs[i])
	}
	return nil
}

// Values returns a copy of the stack's contents, bottom first. It is
// intended for testing and printing; mutating the result has no effect on
// the stack.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// Clone returns a deep copy of the stack (the element slice is copied; the
// elements themselves are not).
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{data: append([]T(nil), s.data...), maxSize: s.maxSize}
}
