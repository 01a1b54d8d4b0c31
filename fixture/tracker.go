// This file implements the per-instance state tracker shared by every
// fixture: identity stamping, traversal counters, and the consumption
// state of one-shot sources.

package fixture

import (
	"github.com/katalvlaran/seqcheck/core"
)

// Tracker is the bookkeeping record owned by one fixture instance.
//
// The fixture's own contract methods bump the counters; algorithms only
// ever see the container interface and cannot reach the tracker, so the
// counts are a trustworthy record of how an algorithm actually traversed.
// Scenarios read them to prove claims like "the default walked exactly
// once" or "the override never touched a position".
//
// Counters are strictly per instance. Fixtures used by different
// scenarios share nothing, which keeps parallel scenario execution free
// of cross-talk.
type Tracker struct {
	id    core.InstanceID
	count int

	// StartCalls counts Start invocations on the owning fixture.
	StartCalls int

	// NextCalls counts successor steps taken on the owning fixture.
	NextCalls int

	// AtCalls counts element reads on the owning fixture.
	AtCalls int

	// SetCalls counts single-element writes on the owning fixture.
	// Always zero for read-only fixtures.
	SetCalls int

	// Consumed reports whether the destructive traversal method of a
	// one-shot fixture has been called. Stays false for restartable
	// fixtures.
	Consumed bool

	// Drained reports whether a one-shot fixture has yielded its last
	// element. Stays false for restartable fixtures.
	Drained bool
}

// NewTracker returns a tracker over count elements stamped with a fresh
// process-unique instance identity.
// Complexity: O(1)
func NewTracker(count int) *Tracker {
	return &Tracker{id: core.NextInstanceID(), count: count}
}

// ID returns the instance identity stamped onto every minted position.
func (t *Tracker) ID() core.InstanceID { return t.id }

// Len returns the element count the tracker was built over.
func (t *Tracker) Len() int { return t.count }

// Reset zeroes the traversal counters. Identity, element count, and
// one-shot consumption state survive: a scenario may reset between a
// setup walk and the measured call, but a reset never revives a drained
// source.
func (t *Tracker) Reset() {
	t.StartCalls, t.NextCalls, t.AtCalls, t.SetCalls = 0, 0, 0, 0
}

// Guard panics with the foreign-position diagnostic unless p was minted
// by the tracked instance.
func (t *Tracker) Guard(p core.Position) {
	if p.Owner != t.id {
		panic(core.PanicForeignPosition)
	}
}

// GuardElement panics unless p is a valid element position of the tracked
// instance: minted by it and strictly before the end sentinel.
func (t *Tracker) GuardElement(p core.Position) {
	t.Guard(p)
	if p.Offset < 0 || p.Offset >= t.count {
		panic(core.PanicPositionRange)
	}
}

// pos mints the position with the given offset under the tracked
// identity.
func (t *Tracker) pos(i int) core.Position {
	return core.Position{Owner: t.id, Offset: i}
}
