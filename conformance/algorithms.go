// This file registers the transformation and iteration scenario families:
// Map and Filter dispatch, estimate-driven preallocation, restartable and
// one-shot traversal, and nested-source flattening.

package conformance

import (
	"iter"
	"strconv"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// registerAlgorithms adds the Map and Filter scenarios, including the
// estimate-driven preallocation contract.
func registerAlgorithms(s *check.Suite) {
	// The default maps by one positional walk: the transform runs exactly
	// once per element and the source is left untouched.
	registerPair(s, "algorithms/map/default-exact-calls",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4, 5)
			calls := 0
			got := ops.Map(m, func(e int) int { calls++; return e * 10 })
			check.Equal(t, []int{10, 20, 30, 40, 50}, got)
			check.Equal(t, 5, calls)
			check.Equal(t, []int{1, 2, 3, 4, 5}, m.Snapshot())
			check.Equal(t, 1, m.Tracker().StartCalls)
			check.Equal(t, 5, m.Tracker().NextCalls)
			check.Equal(t, 5, m.Tracker().AtCalls)
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4, 5)
			var c core.Container[int] = m
			calls := 0
			got := ops.Map(c, func(e int) int { calls++; return e * 10 })
			check.Equal(t, []int{10, 20, 30, 40, 50}, got)
			check.Equal(t, 5, calls)
			check.Equal(t, 5, m.Tracker().AtCalls)
		})

	s.MustRegister("algorithms/map/empty", func(t *check.T) {
		m := fixture.NewMinimal[int]()
		calls := 0
		got := ops.Map(m, func(e int) int { calls++; return e })
		check.Equal(t, []int{}, got)
		check.Equal(t, 0, calls)
	})

	// A Mapper override replaces the walk entirely.
	registerPair(s, "algorithms/map/override",
		func(t *check.T) {
			cm := fixture.NewCustomMap(1, 2, 3)
			got := ops.Map(cm, func(e int) int { return e * 2 })
			check.Equal(t, []int{2, 4, 6}, got)
			check.Equal(t, 1, cm.MapCalls)
			check.Equal(t, 0, cm.Tracker().StartCalls)
			check.Equal(t, 0, cm.Tracker().NextCalls)
			check.Equal(t, 0, cm.Tracker().AtCalls)
		},
		func(t *check.T) {
			cm := fixture.NewCustomMap(1, 2, 3)
			var c core.Container[int] = cm
			got := ops.Map(c, func(e int) int { return e * 2 })
			check.Equal(t, []int{2, 4, 6}, got)
			check.Equal(t, 1, cm.MapCalls)
			check.Equal(t, 0, cm.Tracker().NextCalls)
		})

	// A same-type Mapper does not answer requests for another result type;
	// those land on the default walk.
	s.MustRegister("algorithms/map/type-change-fallback", func(t *check.T) {
		cm := fixture.NewCustomMap(1, 2, 3)
		got := ops.Map(cm, strconv.Itoa)
		check.Equal(t, []string{"1", "2", "3"}, got)
		check.Equal(t, 0, cm.MapCalls)
		check.Equal(t, 3, cm.Tracker().NextCalls)
		check.Equal(t, 3, cm.Tracker().AtCalls)
	})

	registerPair(s, "algorithms/filter/default-exact-calls",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4, 5, 6)
			calls := 0
			even := func(e int) bool { calls++; return e%2 == 0 }
			check.Equal(t, []int{2, 4, 6}, ops.Filter(m, even))
			check.Equal(t, 6, calls)
			check.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Snapshot())
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4, 5, 6)
			var c core.Container[int] = m
			calls := 0
			even := func(e int) bool { calls++; return e%2 == 0 }
			check.Equal(t, []int{2, 4, 6}, ops.Filter(c, even))
			check.Equal(t, 6, calls)
		})

	s.MustRegister("algorithms/filter/none-kept", func(t *check.T) {
		m := fixture.NewMinimal(1, 3, 5)
		got := ops.Filter(m, func(e int) bool { return e%2 == 0 })
		check.Equal(t, []int{}, got, cmpopts.EquateEmpty())
	})

	registerPair(s, "algorithms/filter/override",
		func(t *check.T) {
			cf := fixture.NewCustomFilter(1, 2, 3, 4)
			got := ops.Filter(cf, func(e int) bool { return e%2 == 1 })
			check.Equal(t, []int{1, 3}, got)
			check.Equal(t, 1, cf.FilterCalls)
			check.Equal(t, 0, cf.Tracker().NextCalls)
			check.Equal(t, 0, cf.Tracker().AtCalls)
		},
		func(t *check.T) {
			cf := fixture.NewCustomFilter(1, 2, 3, 4)
			var c core.Container[int] = cf
			got := ops.Filter(c, func(e int) bool { return e%2 == 1 })
			check.Equal(t, []int{1, 3}, got)
			check.Equal(t, 1, cf.FilterCalls)
		})

	// Identity transform and keep-all predicate must reproduce the
	// container exactly.
	s.MustRegister("algorithms/algebra/identity-roundtrip", func(t *check.T) {
		m := fixture.NewMinimal(3, 1, 2)
		check.Equal(t, ops.Collect[int](m), ops.Map(m, func(e int) int { return e }))
		check.Equal(t, m.Snapshot(), ops.Filter(m, func(int) bool { return true }))
	})

	// A truthful estimate keeps the default's result capacity within twice
	// the element count.
	s.MustRegister("algorithms/map/prealloc-honest", func(t *check.T) {
		precise, err := fixture.NewCounted(fixture.EstimatePrecise, 1, 2, 3, 4, 5, 6, 7, 8)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		got := ops.Map(precise, func(e int) int { return e + 1 })
		check.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9}, got)
		check.LessOrEqual(t, cap(got), 8)
		check.Equal(t, 1, precise.EstimateCalls)

		half, err := fixture.NewCounted(fixture.EstimateHalf, 1, 2, 3, 4, 5, 6)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		got = ops.Map(half, func(e int) int { return e + 1 })
		check.Equal(t, []int{2, 3, 4, 5, 6, 7}, got)
		check.LessOrEqual(t, cap(got), 12)
		check.Equal(t, 1, half.EstimateCalls)
	})

	// A declared estimate is trusted at face value: a literal larger than
	// the true count shows through as the exact allocation, never second-
	// guessed against the real size.
	registerPair(s, "algorithms/map/estimate-trusted",
		func(t *check.T) {
			lit, err := fixture.NewCountedLiteral(10, 1, 2, 3)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			got := ops.Map(lit, func(e int) int { return e * 2 })
			check.Equal(t, []int{2, 4, 6}, got)
			check.Equal(t, 10, cap(got))
			check.Equal(t, 1, lit.EstimateCalls)
		},
		func(t *check.T) {
			lit, err := fixture.NewCountedLiteral(10, 1, 2, 3)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			var c core.Container[int] = lit
			got := ops.Map(c, func(e int) int { return e * 2 })
			check.Equal(t, []int{2, 4, 6}, got)
			check.Equal(t, 10, cap(got))
			check.Equal(t, 1, lit.EstimateCalls)
		})

	s.MustRegister("algorithms/collect/estimate-trusted", func(t *check.T) {
		lit, err := fixture.NewCountedLiteral(10, 7, 8, 9)
		if !check.True(t, err == nil, "constructor failed: %v", err) {
			return
		}
		got := ops.Collect[int](lit)
		check.Equal(t, []int{7, 8, 9}, got)
		check.Equal(t, 10, cap(got))
		check.Equal(t, 1, lit.EstimateCalls)
	})
}

// registerIteration adds the element-sequence scenarios: restartable
// defaults, single-dispatch overrides, one-shot consumption, and
// flattening of nested sources.
func registerIteration(s *check.Suite) {
	// The positional fallback restarts on every range.
	registerPair(s, "iteration/elements/default-restartable",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			seq := ops.Elements[int](m)
			check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
			check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
			check.Equal(t, 2, m.Tracker().StartCalls)
			check.Equal(t, 6, m.Tracker().NextCalls)
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			var c core.Container[int] = m
			seq := ops.Elements(c)
			check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
			check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
			check.Equal(t, 6, m.Tracker().NextCalls)
		})

	// A native iterator is dispatched once; ranging the returned sequence
	// again restarts it without another dispatch and without positions.
	registerPair(s, "iteration/elements/override-single-dispatch",
		func(t *check.T) {
			ci := fixture.NewCustomIter(4, 5, 6)
			seq := ops.Elements[int](ci)
			check.Equal(t, []int{4, 5, 6}, drainSeq(seq))
			check.Equal(t, []int{4, 5, 6}, drainSeq(seq))
			check.Equal(t, 1, ci.IterCalls)
			check.Equal(t, 0, ci.Tracker().StartCalls)
			check.Equal(t, 0, ci.Tracker().NextCalls)
		},
		func(t *check.T) {
			ci := fixture.NewCustomIter(4, 5, 6)
			var c core.Container[int] = ci
			seq := ops.Elements(c)
			check.Equal(t, []int{4, 5, 6}, drainSeq(seq))
			check.Equal(t, 1, ci.IterCalls)
			check.Equal(t, 0, ci.Tracker().NextCalls)
		})

	s.MustRegister("iteration/collect/equals-traversal", func(t *check.T) {
		ci := fixture.NewCustomIter(1, 2)
		check.Equal(t, drainSeq(ops.Elements[int](ci)), ops.Collect[int](ci))
	})

	// Draining a one-shot source is destructive and total.
	s.MustRegister("iteration/one-shot/consume", func(t *check.T) {
		o := fixture.NewOneShot(1, 2, 3)
		check.Equal(t, []int{1, 2, 3}, drainSeq(o.Elements()))
		check.Equal(t, true, o.Drained())
		check.Equal(t, []int{}, drainSeq(o.Elements()))
		check.Equal(t, true, o.Tracker().Consumed)
		check.Equal(t, true, o.Tracker().Drained)
	})

	// An abandoned traversal resumes where it stopped, never restarts.
	s.MustRegister("iteration/one-shot/partial-resume", func(t *check.T) {
		o := fixture.NewOneShot(1, 2, 3)
		taken := []int{}
		for e := range o.Elements() {
			taken = append(taken, e)

			break
		}
		check.Equal(t, []int{1}, taken)
		check.Equal(t, 2, o.Remaining())
		check.Equal(t, []int{2, 3}, drainSeq(o.Elements()))
	})

	// Flattening is lazy until ranged and restartable over restartable
	// parts.
	s.MustRegister("iteration/flatten/lazy-restartable", func(t *check.T) {
		inner1 := fixture.NewMinimal(1, 2)
		inner2 := fixture.NewMinimal(3)
		outer := fixture.NewMinimal[core.Container[int]](inner1, inner2)

		seq := ops.Flatten[int](outer)
		check.Equal(t, 0, inner1.Tracker().StartCalls)

		check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
		check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
		check.Equal(t, 2, inner1.Tracker().StartCalls)
		check.Equal(t, 2, inner2.Tracker().StartCalls)
	})

	// An early break stops mid-inner and never touches the inners behind
	// it.
	s.MustRegister("iteration/flatten/early-break", func(t *check.T) {
		inner1 := fixture.NewMinimal(1, 2)
		inner2 := fixture.NewMinimal(3, 4)
		outer := fixture.NewMinimal[core.Container[int]](inner1, inner2)

		got := []int{}
		for e := range ops.Flatten[int](outer) {
			got = append(got, e)

			break
		}
		check.Equal(t, []int{1}, got)
		check.Equal(t, 0, inner2.Tracker().StartCalls)
	})

	// Raw sequences carry no restartability promise: one-shot inners are
	// consumed on first contact and stay empty afterwards.
	s.MustRegister("iteration/flatten/one-shot-inners", func(t *check.T) {
		o1 := fixture.NewOneShot(1, 2)
		o2 := fixture.NewOneShot(3)
		outer := fixture.NewMinimal[iter.Seq[int]](o1.Elements(), o2.Elements())

		seq := ops.FlattenSeqs[int](outer)
		check.Equal(t, []int{1, 2, 3}, drainSeq(seq))
		check.Equal(t, true, o1.Drained())
		check.Equal(t, true, o2.Drained())
		check.Equal(t, []int{}, drainSeq(seq))
	})
}
