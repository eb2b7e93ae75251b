package individual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cbarrick/evopush/individual"
)

func TestNewSumsCasesIntoTotal(t *testing.T) {
	ind := individual.New[string, int64]("genome", []int64{1, 2, 3})
	assert.Equal(t, int64(6), ind.Results.Total)
	assert.Equal(t, 3, ind.Results.Len())
}

func TestLessComparesTotalsOnly(t *testing.T) {
	a := individual.New[string, int64]("a", []int64{1})
	b := individual.New[string, int64]("b", []int64{5})
	assert.True(t, individual.Less(a, b))
	assert.False(t, individual.Less(b, a))
}
