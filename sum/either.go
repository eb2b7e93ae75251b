// Package sum provides a small generic error-sum type used to compose the
// error types of combined operators and selectors without losing the
// identity of the originating failure.
package sum

import "fmt"

// Either is a two-variant error sum: exactly one of First or Second is set.
// operator.Recombine reports its failures as an Either wrapping the
// original error. operator.Then and the WeightedPair selector do not use
// Either; they return their child's error unchanged.
type Either[A, B error] struct {
	first  A
	second B
	isLeft bool
}

// First constructs an Either holding a First-variant error.
func First[A, B error](err A) Either[A, B] {
	return Either[A, B]{first: err, isLeft: true}
}

// Second constructs an Either holding a Second-variant error.
func Second[A, B error](err B) Either[A, B] {
	return Either[A, B]{second: err, isLeft: false}
}

// IsFirst reports whether the First variant is set.
func (e Either[A, B]) IsFirst() bool {
	return e.isLeft
}

// Unwrap exposes the held error to errors.As/errors.Is via the standard
// library's error-tree protocol.
func (e Either[A, B]) Unwrap() error {
	if e.isLeft {
		return e.first
	}
	return e.second
}

// Error implements the error interface.
func (e Either[A, B]) Error() string {
	if e.isLeft {
		return fmt.Sprintf("first: %s", e.first.Error())
	}
	return fmt.Sprintf("second: %s", e.second.Error())
}
