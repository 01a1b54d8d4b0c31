// This file registers the membership-search scenario family: the
// short-circuiting default scan, hash-backed Finder overrides, and the
// Contains wrapper.

package conformance

import (
	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// registerSearch adds the Find and Contains scenarios.
func registerSearch(s *check.Suite) {
	// The default scan stops at the first match: elements behind the match
	// are never read and the equality never fires again.
	registerPair(s, "search/find/default-short-circuit",
		func(t *check.T) {
			m := fixture.NewMinimal(10, 20, 30, 40)
			eqCalls := 0
			eq := func(a, b int) bool { eqCalls++; return a == b }
			pos, ok := ops.Find(m, 30, eq)
			check.Equal(t, true, ok)
			check.Equal(t, 3, eqCalls)
			check.Equal(t, 3, m.Tracker().AtCalls)
			check.Equal(t, 2, m.Tracker().NextCalls)
			check.Equal(t, 2, stepsTo[int](m, pos))
			check.Equal(t, 30, m.At(pos))
		},
		func(t *check.T) {
			m := fixture.NewMinimal(10, 20, 30, 40)
			var c core.Container[int] = m
			eqCalls := 0
			eq := func(a, b int) bool { eqCalls++; return a == b }
			pos, ok := ops.Find(c, 30, eq)
			check.Equal(t, true, ok)
			check.Equal(t, 3, eqCalls)
			check.Equal(t, 2, m.Tracker().NextCalls)
			check.Equal(t, 30, m.At(pos))
		})

	// A miss costs one full scan and answers with the end sentinel.
	s.MustRegister("search/find/default-not-found", func(t *check.T) {
		m := fixture.NewMinimal(10, 20, 30, 40)
		eqCalls := 0
		eq := func(a, b int) bool { eqCalls++; return a == b }
		pos, ok := ops.Find(m, 99, eq)
		check.Equal(t, false, ok)
		check.Equal(t, 4, eqCalls)
		check.Equal(t, 4, m.Tracker().NextCalls)
		check.Equal(t, m.End(), pos)
	})

	// Duplicates resolve to the earliest occurrence.
	s.MustRegister("search/find/default-first-match", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 2, 3)
		eqCalls := 0
		eq := func(a, b int) bool { eqCalls++; return a == b }
		pos, ok := ops.Find(m, 2, eq)
		check.Equal(t, true, ok)
		check.Equal(t, 2, eqCalls)
		check.Equal(t, 1, stepsTo[int](m, pos))
	})

	// A Finder override answers from its buckets: one hash, one bucket
	// probe, no positional scan, and the caller's equality is ignored in
	// favor of the equality the buckets were built with.
	registerPair(s, "search/find/override",
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 10, 20, 30)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			set.ResetCounters()
			callerEqCalls := 0
			callerEq := func(a, b int) bool { callerEqCalls++; return a == b }
			pos, ok := ops.Find(set, 20, callerEq)
			check.Equal(t, true, ok)
			check.Equal(t, 1, set.FindCalls)
			check.Equal(t, 1, set.HashCalls)
			check.Equal(t, 1, set.EqCalls)
			check.Equal(t, 0, callerEqCalls)
			check.Equal(t, 0, set.Tracker().StartCalls)
			check.Equal(t, 0, set.Tracker().NextCalls)
			check.Equal(t, 20, set.At(pos))
		},
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 10, 20, 30)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			set.ResetCounters()
			var c core.Container[int] = set
			callerEqCalls := 0
			callerEq := func(a, b int) bool { callerEqCalls++; return a == b }
			pos, ok := ops.Find(c, 20, callerEq)
			check.Equal(t, true, ok)
			check.Equal(t, 1, set.FindCalls)
			check.Equal(t, 0, callerEqCalls)
			check.Equal(t, 0, set.Tracker().NextCalls)
			check.Equal(t, 20, set.At(pos))
		})

	// An empty set answers the miss without hashing anything at all.
	s.MustRegister("search/find/override-empty", func(t *check.T) {
		set, err := fixture.NewHashSet(identHash, intEq)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		set.ResetCounters()
		pos, ok := ops.Find[int](set, 7, intEq)
		check.Equal(t, false, ok)
		check.Equal(t, 1, set.FindCalls)
		check.Equal(t, 0, set.HashCalls)
		check.Equal(t, 0, set.EqCalls)
		check.Equal(t, set.End(), pos)
	})

	// Colliding elements share a bucket; the probe walks that bucket in
	// insertion order under the set's own equality.
	s.MustRegister("search/find/bucket-collisions", func(t *check.T) {
		oddHash := func(e int) uint64 { return uint64(e % 2) }
		set, err := fixture.NewHashSet(oddHash, intEq, 1, 3, 5)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		set.ResetCounters()
		pos, ok := ops.Find[int](set, 5, intEq)
		check.Equal(t, true, ok)
		check.Equal(t, 1, set.FindCalls)
		check.Equal(t, 1, set.HashCalls)
		check.Equal(t, 3, set.EqCalls)
		check.Equal(t, 5, set.At(pos))
	})

	// Construction deduplicates under the injected equality.
	s.MustRegister("search/find/duplicate-insert", func(t *check.T) {
		set, err := fixture.NewHashSet(identHash, intEq, 1, 2, 1)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		check.Equal(t, 2, ops.Count[int](set))
		check.Equal(t, []int{1, 2}, ops.Collect[int](set))
	})

	// Contains resolves through Find: overrides are honored and the
	// default costs one scan.
	registerPair(s, "search/contains/resolves-like-find",
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 4, 5)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			set.ResetCounters()
			check.Equal(t, true, ops.Contains(set, 5, intEq))
			check.Equal(t, 1, set.FindCalls)

			m := fixture.NewMinimal(4, 5)
			eqCalls := 0
			eq := func(a, b int) bool { eqCalls++; return a == b }
			check.Equal(t, false, ops.Contains(m, 6, eq))
			check.Equal(t, 2, eqCalls)
		},
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 4, 5)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			set.ResetCounters()
			var c core.Container[int] = set
			check.Equal(t, true, ops.Contains(c, 5, intEq))
			check.Equal(t, 1, set.FindCalls)
		})
}
