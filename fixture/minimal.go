// This file implements Minimal, the bare fixture: the full container
// contract and nothing else, so every algorithm run against it lands on a
// default implementation.

package fixture

import "github.com/katalvlaran/seqcheck/core"

// Minimal is a slice-backed read-only container implementing exactly the
// minimal contract. It declares no capability, so every operation
// resolves to its default algorithm, and the tracker records how hard
// that default worked.
type Minimal[E any] struct {
	trk   *Tracker
	elems []E
}

// NewMinimal returns a Minimal over its own copy of elems.
// Complexity: O(n)
func NewMinimal[E any](elems ...E) *Minimal[E] {
	return &Minimal[E]{
		trk:   NewTracker(len(elems)),
		elems: append([]E(nil), elems...),
	}
}

// Tracker returns the bookkeeping record of this instance.
func (m *Minimal[E]) Tracker() *Tracker { return m.trk }

// Snapshot returns a deep copy of the current elements, detached from the
// fixture, for unchanged-after-call assertions.
// Complexity: O(n)
func (m *Minimal[E]) Snapshot() []E { return append([]E(nil), m.elems...) }

// Start returns the position of the first element, or End() when empty.
// Complexity: O(1)
func (m *Minimal[E]) Start() core.Position {
	m.trk.StartCalls++

	return m.trk.pos(0)
}

// End returns the one-past-the-last sentinel position.
// Complexity: O(1)
func (m *Minimal[E]) End() core.Position { return m.trk.pos(len(m.elems)) }

// Next returns the successor of p.
// Complexity: O(1)
func (m *Minimal[E]) Next(p core.Position) core.Position {
	m.trk.GuardElement(p)
	m.trk.NextCalls++

	return m.trk.pos(p.Offset + 1)
}

// At returns the element at p.
// Complexity: O(1)
func (m *Minimal[E]) At(p core.Position) E {
	m.trk.GuardElement(p)
	m.trk.AtCalls++

	return m.elems[p.Offset]
}

// Compile-time contract check.
var _ core.Container[int] = (*Minimal[int])(nil)
