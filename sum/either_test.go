package sum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbarrick/evopush/sum"
)

type errA struct{}

func (errA) Error() string { return "errA" }

type errB struct{}

func (errB) Error() string { return "errB" }

func TestEitherVariants(t *testing.T) {
	e := sum.First[errA, errB](errA{})
	assert.True(t, e.IsFirst())
	assert.True(t, errors.As(e.Unwrap(), &errA{}))

	f := sum.Second[errA, errB](errB{})
	assert.False(t, f.IsFirst())
	assert.True(t, errors.As(f.Unwrap(), &errB{}))
}
