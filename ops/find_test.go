package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// TestFind_DefaultShortCircuits verifies the scan stops at the first
// match and never looks behind it.
func TestFind_DefaultShortCircuits(t *testing.T) {
	m := fixture.NewMinimal(10, 20, 30, 40)
	eqCalls := 0
	eq := func(a, b int) bool { eqCalls++; return a == b }

	p, ok := ops.Find(m, 30, eq)
	assert.True(t, ok)
	assert.Equal(t, 3, eqCalls)
	assert.Equal(t, 3, m.Tracker().AtCalls)
	assert.Equal(t, 2, m.Tracker().NextCalls)
	assert.Equal(t, 30, m.At(p))
}

// TestFind_DefaultMissScansAll verifies a miss costs one full scan and
// answers with the end sentinel.
func TestFind_DefaultMissScansAll(t *testing.T) {
	m := fixture.NewMinimal(10, 20, 30, 40)
	eqCalls := 0
	eq := func(a, b int) bool { eqCalls++; return a == b }

	p, ok := ops.Find(m, 99, eq)
	assert.False(t, ok)
	assert.Equal(t, 4, eqCalls)
	assert.Equal(t, m.End(), p)
}

// TestFind_DefaultFirstMatch verifies duplicates resolve to the
// earliest occurrence.
func TestFind_DefaultFirstMatch(t *testing.T) {
	m := fixture.NewMinimal(1, 2, 2, 3)

	p, ok := ops.Find(m, 2, eqInt)
	assert.True(t, ok)
	assert.Equal(t, pos[int](m, 1), p)
}

// TestFind_OverrideUsesBuckets verifies a Finder answers from its
// structure: one hash, one bucket probe, zero positional traffic, and
// the caller's equality goes unused.
func TestFind_OverrideUsesBuckets(t *testing.T) {
	set := mustHashSet(t, 10, 20, 30)
	set.ResetCounters()
	callerEqCalls := 0
	callerEq := func(a, b int) bool { callerEqCalls++; return a == b }

	p, ok := ops.Find(set, 20, callerEq)
	assert.True(t, ok)
	assert.Equal(t, 1, set.FindCalls)
	assert.Equal(t, 1, set.HashCalls)
	assert.Equal(t, 1, set.EqCalls)
	assert.Zero(t, callerEqCalls)
	assert.Zero(t, set.Tracker().NextCalls)
	assert.Equal(t, 20, set.At(p))
}

// TestFind_OverrideEmptySet verifies the empty set answers the miss
// without touching hash or equality.
func TestFind_OverrideEmptySet(t *testing.T) {
	set := mustHashSet(t)
	set.ResetCounters()

	p, ok := ops.Find[int](set, 7, eqInt)
	assert.False(t, ok)
	assert.Equal(t, 1, set.FindCalls)
	assert.Zero(t, set.HashCalls)
	assert.Zero(t, set.EqCalls)
	assert.Equal(t, set.End(), p)
}

// TestContains_ResolvesThroughFind verifies Contains rides the same
// resolution as Find on both paths.
func TestContains_ResolvesThroughFind(t *testing.T) {
	set := mustHashSet(t, 4, 5)
	set.ResetCounters()
	assert.True(t, ops.Contains(set, 5, eqInt))
	assert.Equal(t, 1, set.FindCalls)

	m := fixture.NewMinimal(4, 5)
	assert.False(t, ops.Contains(m, 6, eqInt))
	assert.Equal(t, 2, m.Tracker().AtCalls)
}
