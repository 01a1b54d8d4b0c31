// This file registers the sizing and estimate scenario families: exact
// counting, emptiness checks, first-element access, and declared size
// estimates, each proved against the fixtures' traversal counters.

package conformance

import (
	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// registerSizing adds the Count, IsEmpty, and First scenarios.
func registerSizing(s *check.Suite) {
	// The capability-less default counts by walking: one Start, one Next
	// per element, and no element reads at all.
	registerPair(s, "sizing/count/default-walk",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4)
			check.Equal(t, 4, ops.Count[int](m))
			check.Equal(t, 1, m.Tracker().StartCalls)
			check.Equal(t, 4, m.Tracker().NextCalls)
			check.Equal(t, 0, m.Tracker().AtCalls)
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4)
			var c core.Container[int] = m
			check.Equal(t, 4, ops.Count(c))
			check.Equal(t, 1, m.Tracker().StartCalls)
			check.Equal(t, 4, m.Tracker().NextCalls)
			check.Equal(t, 0, m.Tracker().AtCalls)
		})

	s.MustRegister("sizing/count/empty", func(t *check.T) {
		m := fixture.NewMinimal[int]()
		check.Equal(t, 0, ops.Count[int](m))
		check.Equal(t, 1, m.Tracker().StartCalls)
		check.Equal(t, 0, m.Tracker().NextCalls)
	})

	// A Counter override answers in place of the walk: one dispatch, zero
	// positional traffic.
	registerPair(s, "sizing/count/override",
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 5, 6, 7)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			set.ResetCounters()
			check.Equal(t, 3, ops.Count[int](set))
			check.Equal(t, 1, set.CountCalls)
			check.Equal(t, 0, set.Tracker().StartCalls)
			check.Equal(t, 0, set.Tracker().NextCalls)
			check.Equal(t, 0, set.Tracker().AtCalls)
		},
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 5, 6, 7)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			set.ResetCounters()
			var c core.Container[int] = set
			check.Equal(t, 3, ops.Count(c))
			check.Equal(t, 1, set.CountCalls)
			check.Equal(t, 0, set.Tracker().StartCalls)
			check.Equal(t, 0, set.Tracker().NextCalls)
		})

	// The emptiness default compares bounds and must not fall back to
	// counting, so a populated container sees no Next at all.
	registerPair(s, "sizing/is-empty/default-never-counts",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			check.Equal(t, false, ops.IsEmpty[int](m))
			check.Equal(t, 1, m.Tracker().StartCalls)
			check.Equal(t, 0, m.Tracker().NextCalls)
			check.Equal(t, 0, m.Tracker().AtCalls)
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			var c core.Container[int] = m
			check.Equal(t, false, ops.IsEmpty(c))
			check.Equal(t, 1, m.Tracker().StartCalls)
			check.Equal(t, 0, m.Tracker().NextCalls)
		})

	s.MustRegister("sizing/is-empty/empty", func(t *check.T) {
		m := fixture.NewMinimal[int]()
		check.Equal(t, true, ops.IsEmpty[int](m))
		check.Equal(t, 0, m.Tracker().NextCalls)
	})

	// The first-element default reads exactly one element and never steps.
	registerPair(s, "sizing/first/default",
		func(t *check.T) {
			m := fixture.NewMinimal(9, 8)
			first, ok := ops.First[int](m)
			check.Equal(t, true, ok)
			check.Equal(t, 9, first)
			check.Equal(t, 1, m.Tracker().AtCalls)
			check.Equal(t, 0, m.Tracker().NextCalls)
		},
		func(t *check.T) {
			m := fixture.NewMinimal(9, 8)
			var c core.Container[int] = m
			first, ok := ops.First(c)
			check.Equal(t, true, ok)
			check.Equal(t, 9, first)
			check.Equal(t, 1, m.Tracker().AtCalls)
			check.Equal(t, 0, m.Tracker().NextCalls)
		})

	s.MustRegister("sizing/first/empty", func(t *check.T) {
		m := fixture.NewMinimal[int]()
		first, ok := ops.First[int](m)
		check.Equal(t, false, ok)
		check.Equal(t, 0, first)
		check.Equal(t, 0, m.Tracker().AtCalls)
	})
}

// registerEstimates adds the underestimated-count scenarios. The contract
// under test is face-value reporting: whatever the container declares
// reaches the consumer untouched, and the capability-less default is 0.
func registerEstimates(s *check.Suite) {
	s.MustRegister("estimates/precise", func(t *check.T) {
		c, err := fixture.NewCounted(fixture.EstimatePrecise, 1, 2, 3, 4, 5, 6, 7)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		check.Equal(t, 7, ops.UnderestimatedCount[int](c))
		check.Equal(t, 1, c.EstimateCalls)
		check.Equal(t, 0, c.Tracker().StartCalls)
	})

	s.MustRegister("estimates/half", func(t *check.T) {
		c, err := fixture.NewCounted(fixture.EstimateHalf, 1, 2, 3, 4, 5, 6, 7)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		check.Equal(t, 3, ops.UnderestimatedCount[int](c))
		check.Equal(t, 1, c.EstimateCalls)
	})

	// A literal estimate is reported as declared whether the container is
	// smaller or larger than the literal.
	registerPair(s, "estimates/literal-regardless-of-size",
		func(t *check.T) {
			small, err := fixture.NewCountedLiteral(5, 1, 2)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			large, err := fixture.NewCountedLiteral(5, 1, 2, 3, 4, 5, 6, 7, 8, 9)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			check.Equal(t, 5, ops.UnderestimatedCount[int](small))
			check.Equal(t, 5, ops.UnderestimatedCount[int](large))
		},
		func(t *check.T) {
			small, err := fixture.NewCountedLiteral(5, 1, 2)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			large, err := fixture.NewCountedLiteral(5, 1, 2, 3, 4, 5, 6, 7, 8, 9)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			var a core.Container[int] = small
			var b core.Container[int] = large
			check.Equal(t, 5, ops.UnderestimatedCount(a))
			check.Equal(t, 5, ops.UnderestimatedCount(b))
		})

	// Without the capability the only certifiable lower bound is zero, and
	// deriving it must not cost any traversal.
	s.MustRegister("estimates/default-zero", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 3)
		check.Equal(t, 0, ops.UnderestimatedCount[int](m))
		check.Equal(t, 0, m.Tracker().StartCalls)
		check.Equal(t, 0, m.Tracker().NextCalls)
	})

	// A one-shot source reports what is left, not what it started with.
	s.MustRegister("estimates/one-shot-remaining", func(t *check.T) {
		o := fixture.NewOneShot(1, 2, 3)
		check.Equal(t, 3, o.UnderestimatedCount())

		for range o.Elements() {
			break
		}
		check.Equal(t, 2, o.Remaining())
		check.Equal(t, 2, o.UnderestimatedCount())
		check.Equal(t, true, o.Tracker().Consumed)
		check.Equal(t, false, o.Tracker().Drained)
	})
}
