package fixture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
)

// TestNewTracker_Identity verifies that every tracker carries a fresh
// non-zero instance identity and the declared element count.
func TestNewTracker_Identity(t *testing.T) {
	a := fixture.NewTracker(3)
	b := fixture.NewTracker(0)

	require.NotZero(t, a.ID())
	require.NotZero(t, b.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 0, b.Len())
}

// TestTracker_Guard verifies foreign-position detection.
func TestTracker_Guard(t *testing.T) {
	trk := fixture.NewTracker(2)
	other := fixture.NewTracker(2)

	assert.NotPanics(t, func() { trk.Guard(core.Position{Owner: trk.ID(), Offset: 1}) })
	require.PanicsWithValue(t, core.PanicForeignPosition, func() {
		trk.Guard(core.Position{Owner: other.ID(), Offset: 1})
	})
}

// TestTracker_GuardElement verifies the bounds check on element
// positions: the end sentinel and anything past it are rejected.
func TestTracker_GuardElement(t *testing.T) {
	trk := fixture.NewTracker(2)

	assert.NotPanics(t, func() { trk.GuardElement(core.Position{Owner: trk.ID(), Offset: 0}) })
	assert.NotPanics(t, func() { trk.GuardElement(core.Position{Owner: trk.ID(), Offset: 1}) })
	require.PanicsWithValue(t, core.PanicPositionRange, func() {
		trk.GuardElement(core.Position{Owner: trk.ID(), Offset: 2})
	})
	require.PanicsWithValue(t, core.PanicPositionRange, func() {
		trk.GuardElement(core.Position{Owner: trk.ID(), Offset: -1})
	})
}

// TestTracker_Reset verifies that Reset zeroes the traversal counters but
// keeps identity and one-shot consumption state.
func TestTracker_Reset(t *testing.T) {
	m := fixture.NewMinimal(1, 2, 3)
	trk := m.Tracker()
	_ = drain[int](m)
	require.NotZero(t, trk.NextCalls)

	id := trk.ID()
	trk.Consumed = true
	trk.Reset()

	assert.Zero(t, trk.StartCalls)
	assert.Zero(t, trk.NextCalls)
	assert.Zero(t, trk.AtCalls)
	assert.Zero(t, trk.SetCalls)
	assert.Equal(t, id, trk.ID())
	assert.True(t, trk.Consumed, "reset must not revive a consumed source")
}
