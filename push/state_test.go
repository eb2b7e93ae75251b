package push_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick/evopush/push"
)

func TestBuilderStages(t *testing.T) {
	state := push.NewBuilder().
		WithMaxStackSize(64).
		WithNoProgram().
		WithIntValues([]int64{1, 2, 3}).
		WithInput("x", push.PushValue[int64]("x-push", 42)).
		Build()

	top, err := state.Ints.Top()
	require.NoError(t, err)
	assert.Equal(t, int64(3), top)

	instr, ok := state.LookupInput("x")
	require.True(t, ok)
	require.NoError(t, instr.Perform(state))
	top, err = state.Ints.Top()
	require.NoError(t, err)
	assert.Equal(t, int64(42), top)
}

func TestBuilderWithProgram(t *testing.T) {
	program := push.Parse([]push.Gene{
		push.InstructionGene(push.IntAdd()),
	})
	state := push.NewBuilder().WithMaxStackSize(16).WithProgram(program).Build()
	assert.Equal(t, 1, state.Exec.Len())
}

func TestStackForUnsupportedType(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().Build()
	_, ok := push.StackFor[string](state)
	assert.False(t, ok)
}

func TestWithPushAndReplace(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().Build()
	push.WithPush[int64](state, 10)
	push.WithPush[int64](state, 20)
	push.WithReplace[int64](state, 2, 30)

	top, err := state.Ints.Top()
	require.NoError(t, err)
	assert.Equal(t, int64(30), top)
	assert.Equal(t, 1, state.Ints.Len())
}

func TestInputNotFoundIsFatal(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().Build()
	err := push.InputVar("missing").Perform(state)
	assert.ErrorIs(t, err, push.ErrInputNotFound)
}
