package push_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick/evopush/push"
)

func runProgram(t *testing.T, maxStack int, stepLimit *int, genes []push.Gene) *push.State {
	t.Helper()
	program := push.Parse(genes)
	b := push.NewBuilder().WithMaxStackSize(maxStack)
	ready := b.WithProgram(program)
	if stepLimit != nil {
		ready = ready.WithStepLimit(*stepLimit)
	}
	state := ready.Build()
	final, err := push.Run(state)
	require.NoError(t, err)
	return final
}

// S4: Int stack [MAX, 1], Add -> recoverable Overflow{op:Add}; stack
// unchanged.
func TestAddOverflowRecoverable(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().
		WithIntValues([]int64{math.MaxInt64, 1}).Build()
	before := state.Ints.Values()

	err := push.IntAdd().Perform(state)
	assert.ErrorIs(t, err, push.ErrNumericOverflow)
	assert.Equal(t, before, state.Ints.Values())
}

// S5: Int stack [7, 0], ProtectedDivide -> stack [1].
func TestProtectedDivideByZero(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().
		WithIntValues([]int64{7, 0}).Build()

	require.NoError(t, push.IntProtectedDivide().Perform(state))
	assert.Equal(t, []int64{1}, state.Ints.Values())
}

// Property 12: Abs(MinInt64) -> MaxInt64, not a panic/overflow.
func TestAbsSaturates(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().
		WithIntValues([]int64{math.MinInt64}).Build()

	require.NoError(t, push.IntAbs().Perform(state))
	assert.Equal(t, []int64{math.MaxInt64}, state.Ints.Values())
}

// Property 10: after run_to_completion with limit L, instructions_executed <= L.
func TestStepLimit(t *testing.T) {
	var genes []push.Gene
	for i := 0; i < 100; i++ {
		genes = append(genes, push.InstructionGene(push.ExecNoop()))
	}
	limit := 10
	state := runProgram(t, 128, &limit, genes)
	assert.LessOrEqual(t, state.InstructionsExecuted(), limit)
	assert.Equal(t, limit, state.InstructionsExecuted())
	assert.False(t, state.Exec.IsEmpty())
}

// Exec-stack block expansion: a 2-element block unfurls with its first child
// on top.
func TestBlockExpansionTwoElements(t *testing.T) {
	genes := []push.Gene{
		push.InstructionGene(push.ExecWhen()),
		push.InstructionGene(push.PushValue[int64]("one", 1)),
		push.InstructionGene(push.PushValue[int64]("two", 2)),
		push.CloseGene(),
	}
	state := push.NewBuilder().WithMaxStackSize(16).WithNoProgram().
		WithBoolValues([]bool{true}).Build()
	require.NoError(t, state.Exec.Extend(push.Parse(genes)))

	final, err := push.Run(state)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, final.Ints.Values())
}

// Exec-stack block expansion with three elements, confirming push order is
// preserved end to end.
func TestBlockExpansionThreeElements(t *testing.T) {
	genes := []push.Gene{
		push.InstructionGene(push.PushValue[int64]("a", 1)),
		push.InstructionGene(push.PushValue[int64]("b", 2)),
		push.InstructionGene(push.PushValue[int64]("c", 3)),
	}
	state := runProgram(t, 16, nil, genes)
	assert.Equal(t, []int64{1, 2, 3}, state.Ints.Values())
}

func TestRunEmptyExecReturnsImmediately(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().Build()
	final, err := push.Run(state)
	require.NoError(t, err)
	assert.Equal(t, 0, final.InstructionsExecuted())
}

func TestIfElseDegradesToWhenWithOneBlock(t *testing.T) {
	// Built by hand rather than parsed: Parse always gives IfElse two
	// blocks, so only a hand-built program leaves exactly one block queued.
	program := []push.Node{
		push.InstructionNode(push.ExecIfElse()),
		push.BlockNode([]push.Node{push.InstructionNode(push.PushValue[int64]("v", 9))}),
	}
	state := push.NewBuilder().WithMaxStackSize(16).WithNoProgram().
		WithBoolValues([]bool{true}).Build()
	require.NoError(t, state.Exec.Extend(program))
	final, err := push.Run(state)
	require.NoError(t, err)
	assert.Equal(t, []int64{9}, final.Ints.Values())
}

func TestIfElseDiscardsTopBlockWithNoBool(t *testing.T) {
	genes := []push.Gene{
		push.InstructionGene(push.ExecIfElse()),
		push.InstructionGene(push.PushValue[int64]("then", 1)),
		push.CloseGene(),
		push.InstructionGene(push.PushValue[int64]("els", 2)),
		push.CloseGene(),
	}
	state := push.NewBuilder().WithMaxStackSize(16).WithNoProgram().Build()
	require.NoError(t, state.Exec.Extend(push.Parse(genes)))
	final, err := push.Run(state)
	require.NoError(t, err)
	// "then" block was discarded (no bool); "else" block still runs.
	assert.Equal(t, []int64{2}, final.Ints.Values())
}

func TestPrintWritesStdout(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().
		WithIntValues([]int64{7}).Build()
	require.NoError(t, push.IntPrintLn().Perform(state))
	assert.Equal(t, "7\n", state.Stdout())
}

func TestCharFromIntWraps(t *testing.T) {
	state := push.NewBuilder().WithMaxStackSize(8).WithNoProgram().
		WithIntValues([]int64{-1}).Build()
	require.NoError(t, push.CharFromInt().Perform(state))
	top, err := state.Chars.Top()
	require.NoError(t, err)
	assert.Equal(t, rune(127), top)
}
