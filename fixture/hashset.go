// This file implements HashSet, the bucketed membership fixture with
// instrumented hash and equality functions.

package fixture

import "github.com/katalvlaran/seqcheck/core"

// HashSet is a hash-bucketed membership fixture.
//
// Construction deduplicates elements under the injected hash and
// equality; traversal visits survivors in first-insertion order.
// FindFirst answers from the single bucket the injected hash selects and
// matches with the injected equality. The caller's eq goes unused: a
// hashed container can only answer membership under the equality its
// buckets were built with.
//
// HashCalls and EqCalls count every invocation of the injected functions,
// construction included; call ResetCounters right after construction so a
// scenario measures only its own calls.
type HashSet[E any] struct {
	trk     *Tracker
	hash    func(E) uint64
	eq      func(a, b E) bool
	order   []E
	buckets map[uint64][]int // indexes into order, insertion-ordered

	// HashCalls counts invocations of the injected hash function.
	HashCalls int

	// EqCalls counts invocations of the injected equality function.
	EqCalls int

	// FindCalls counts FindFirst dispatches.
	FindCalls int

	// CountCalls counts Count dispatches.
	CountCalls int
}

// NewHashSet returns a HashSet of elems deduplicated under hash and eq.
// Both functions are required; equal elements must hash alike.
// Complexity: O(n) expected
func NewHashSet[E any](hash func(E) uint64, eq func(a, b E) bool, elems ...E) (*HashSet[E], error) {
	if hash == nil {
		return nil, ErrNilHash
	}
	if eq == nil {
		return nil, ErrNilEquality
	}

	s := &HashSet[E]{hash: hash, eq: eq, buckets: make(map[uint64][]int)}
	for _, e := range elems {
		s.insert(e)
	}
	s.trk = NewTracker(len(s.order))

	return s, nil
}

// insert adds e unless an equal element is already present.
func (s *HashSet[E]) insert(e E) {
	h := s.hashOf(e)
	for _, i := range s.buckets[h] {
		if s.equal(s.order[i], e) {
			return
		}
	}
	s.buckets[h] = append(s.buckets[h], len(s.order))
	s.order = append(s.order, e)
}

// hashOf applies the injected hash and counts the call.
func (s *HashSet[E]) hashOf(e E) uint64 {
	s.HashCalls++

	return s.hash(e)
}

// equal applies the injected equality and counts the call.
func (s *HashSet[E]) equal(a, b E) bool {
	s.EqCalls++

	return s.eq(a, b)
}

// ResetCounters zeroes the hash, equality, and dispatch counters.
func (s *HashSet[E]) ResetCounters() {
	s.HashCalls, s.EqCalls, s.FindCalls, s.CountCalls = 0, 0, 0, 0
}

// Tracker returns the bookkeeping record of this instance.
func (s *HashSet[E]) Tracker() *Tracker { return s.trk }

// Snapshot returns a deep copy of the elements in traversal order.
// Complexity: O(n)
func (s *HashSet[E]) Snapshot() []E { return append([]E(nil), s.order...) }

// Start returns the position of the first element, or End() when empty.
// Complexity: O(1)
func (s *HashSet[E]) Start() core.Position {
	s.trk.StartCalls++

	return s.trk.pos(0)
}

// End returns the one-past-the-last sentinel position.
// Complexity: O(1)
func (s *HashSet[E]) End() core.Position { return s.trk.pos(len(s.order)) }

// Next returns the successor of p.
// Complexity: O(1)
func (s *HashSet[E]) Next(p core.Position) core.Position {
	s.trk.GuardElement(p)
	s.trk.NextCalls++

	return s.trk.pos(p.Offset + 1)
}

// At returns the element at p.
// Complexity: O(1)
func (s *HashSet[E]) At(p core.Position) E {
	s.trk.GuardElement(p)
	s.trk.AtCalls++

	return s.order[p.Offset]
}

// Count returns the exact element count without traversal.
// Complexity: O(1)
func (s *HashSet[E]) Count() int {
	s.CountCalls++

	return len(s.order)
}

// FindFirst returns the position of the element equal to target under the
// set's injected equality. An empty set answers without touching hash or
// equality at all.
// Complexity: O(1) expected
func (s *HashSet[E]) FindFirst(target E, _ func(a, b E) bool) (core.Position, bool) {
	s.FindCalls++
	if len(s.order) == 0 {
		return s.End(), false
	}

	for _, i := range s.buckets[s.hashOf(target)] {
		if s.equal(s.order[i], target) {
			return s.trk.pos(i), true
		}
	}

	return s.End(), false
}

// Compile-time contract checks.
var (
	_ core.Container[int] = (*HashSet[int])(nil)
	_ core.Counter        = (*HashSet[int])(nil)
	_ core.Finder[int]    = (*HashSet[int])(nil)
)
