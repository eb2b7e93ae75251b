package stack_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbarrick/evopush/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.New[int](3)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	assert.Equal(t, 2, s.Len())

	top, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
	assert.Equal(t, 1, s.Len())
}

func TestPushOverflow(t *testing.T) {
	s := stack.New[int](1)
	require.NoError(t, s.Push(1))
	snapshot := s.Clone()

	err := s.Push(2)
	assert.ErrorIs(t, err, stack.ErrOverflow)
	if diff := cmp.Diff(snapshot.Values(), s.Values()); diff != "" {
		t.Errorf("stack mutated on failed push (-want +got):\n%s", diff)
	}
}

func TestPopUnderflow(t *testing.T) {
	s := stack.New[int](3)
	require.NoError(t, s.Push(1))
	snapshot := s.Clone()

	_, err := s.Pop()
	require.NoError(t, err)
	_, err = s.Pop()
	assert.ErrorIs(t, err, stack.ErrUnderflow)

	// The second pop failed only because we over-drained; re-verify the
	// transactional property directly against a fresh underflow case.
	s2 := stack.New[int](3)
	require.NoError(t, s2.Push(1))
	_, err = s2.PopN(5)
	assert.ErrorIs(t, err, stack.ErrUnderflow)
	if diff := cmp.Diff(snapshot.Values(), s2.Values()); diff != "" {
		t.Errorf("stack mutated on failed pop_n (-want +got):\n%s", diff)
	}
}

func TestPopNOrder(t *testing.T) {
	s := stack.New[int](5)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	top3, err := s.PopN(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, top3)
	assert.True(t, s.IsEmpty())
}

func TestPopNUnderflowTransactional(t *testing.T) {
	s := stack.New[int](5)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	before := s.Values()

	_, err := s.PopN(3)
	assert.ErrorIs(t, err, stack.ErrUnderflow)
	assert.Equal(t, before, s.Values())
}

func TestTopNDoesNotMutate(t *testing.T) {
	s := stack.New[int](5)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	before := s.Values()
	top2, err := s.TopN(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, top2)
	assert.Equal(t, before, s.Values())
}

func TestDiscardFromTop(t *testing.T) {
	s := stack.New[int](5)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	require.NoError(t, s.DiscardFromTop(2))
	assert.Equal(t, []int{1}, s.Values())

	err := s.DiscardFromTop(5)
	assert.ErrorIs(t, err, stack.ErrUnderflow)
}

func TestExtendFirstBecomesTop(t *testing.T) {
	s := stack.New[int](5)
	require.NoError(t, s.Push(0))
	require.NoError(t, s.Extend([]int{1, 2, 3}))
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, 1, top)
	assert.Equal(t, []int{0, 3, 2, 1}, s.Values())
}

func TestExtendOverflowTransactional(t *testing.T) {
	s := stack.New[int](3)
	require.NoError(t, s.Push(1))
	before := s.Values()

	err := s.Extend([]int{1, 2, 3})
	assert.ErrorIs(t, err, stack.ErrOverflow)
	assert.Equal(t, before, s.Values())
}

func TestSetMaxSizeOverflow(t *testing.T) {
	s := stack.New[int](5)
	for _, v := range []int{1, 2, 3} {
		require.NoError(t, s.Push(v))
	}
	err := s.SetMaxSize(2)
	assert.ErrorIs(t, err, stack.ErrOverflow)
	assert.Equal(t, 5, s.MaxSize())

	require.NoError(t, s.SetMaxSize(3))
	assert.Equal(t, 3, s.MaxSize())
}

func TestSizeBoundInvariant(t *testing.T) {
	s := stack.New[int](4)
	for i := 0; i < 10; i++ {
		_ = s.Push(i)
		assert.LessOrEqual(t, s.Len(), s.MaxSize())
	}
}
