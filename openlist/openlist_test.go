package openlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jpsplus/openlist"
)

func TestTierADrainsBeforeTierB(t *testing.T) {
	l := openlist.New()

	require.NoError(t, l.PushTierB(openlist.Entry{Index: 1, Cost: 5}))
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 2, Cost: 100}))

	e, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(2), e.Index, "Tier A must be drained before Tier B regardless of cost")

	e, ok = l.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(1), e.Index)

	_, ok = l.Pop()
	assert.False(t, ok)
}

func TestTierAIsLIFO(t *testing.T) {
	l := openlist.New()
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 1}))
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 2}))
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 3}))

	for _, want := range []int32{3, 2, 1} {
		e, ok := l.Pop()
		require.True(t, ok)
		assert.Equal(t, want, e.Index)
	}
}

func TestTierBPopsMinimumCost(t *testing.T) {
	l := openlist.New()
	require.NoError(t, l.PushTierB(openlist.Entry{Index: 1, Cost: 30}))
	require.NoError(t, l.PushTierB(openlist.Entry{Index: 2, Cost: 10}))
	require.NoError(t, l.PushTierB(openlist.Entry{Index: 3, Cost: 20}))

	e, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(2), e.Index)

	e, ok = l.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(3), e.Index)

	e, ok = l.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(1), e.Index)
}

func TestPushOutOfCapacity(t *testing.T) {
	l := openlist.New(openlist.WithTierACapacity(1), openlist.WithTierBCapacity(1))
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 1}))
	assert.ErrorIs(t, l.PushTierA(openlist.Entry{Index: 2}), openlist.ErrOutOfCapacity)

	require.NoError(t, l.PushTierB(openlist.Entry{Index: 1}))
	assert.ErrorIs(t, l.PushTierB(openlist.Entry{Index: 2}), openlist.ErrOutOfCapacity)
}

func TestResetReusesCapacity(t *testing.T) {
	l := openlist.New(openlist.WithTierACapacity(1))
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 1}))
	l.Reset()
	assert.True(t, l.Empty())
	require.NoError(t, l.PushTierA(openlist.Entry{Index: 2}))
	e, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, int32(2), e.Index)
}

func TestWithCapacityPanicsOnNonPositive(t *testing.T) {
	assert.Panics(t, func() { openlist.WithTierACapacity(0) })
	assert.Panics(t, func() { openlist.WithTierBCapacity(-1) })
}
