// This file implements the container-law battery and registers it over
// every positional fixture at both call sites.

package conformance

import (
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/dispatch"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// CheckContainer runs the container-law battery against c, whose
// contents must equal want in order.
//
// C is the call-site flavor: instantiate with the concrete fixture type
// for a static run and with core.Container[E] for an erased run; both
// instantiations must pass identically for any law-abiding container.
// The laws: bound agreement on emptiness, positional traversal in
// declared order, multipass stability, the size trio, collect equality,
// and whole-range extraction identity with self-similar re-extraction.
func CheckContainer[C core.Container[E], E any](t *check.T, c C, want []E) {
	if len(want) == 0 {
		check.True(t, c.Start() == c.End(), "Start() must equal End() on an empty container")
	} else {
		check.True(t, c.Start() != c.End(), "Start() must differ from End() on a non-empty container")
	}

	walk := func() []E {
		out := []E{}
		for p := c.Start(); p != c.End(); p = c.Next(p) {
			out = append(out, c.At(p))
		}

		return out
	}
	check.Equal(t, want, walk(), cmpopts.EquateEmpty())
	check.Equal(t, want, walk(), cmpopts.EquateEmpty())

	check.Equal(t, len(want), ops.Count[E](c))
	check.Equal(t, len(want) == 0, ops.IsEmpty[E](c))

	first, ok := ops.First[E](c)
	check.Equal(t, len(want) > 0, ok)
	if ok && len(want) > 0 {
		check.Equal(t, want[0], first)
	}

	check.Equal(t, want, ops.Collect[E](c), cmpopts.EquateEmpty())

	whole := ops.RangeExtract[E](c, c.Start(), c.End())
	check.Equal(t, want, ops.Collect[E](whole), cmpopts.EquateEmpty())

	again := ops.RangeExtract[E](whole, whole.Start(), whole.End())
	check.Equal(t, whole.Start(), again.Start())
	check.Equal(t, whole.End(), again.End())
	check.True(t, whole.Base() == again.Base(), "re-extraction must stay on the root base")
}

// registerLaws adds the law battery for every positional fixture, plus a
// view and a logged wrapper, in both call-site flavors.
func registerLaws(s *check.Suite) {
	registerPair(s, "laws/minimal-empty",
		func(t *check.T) {
			CheckContainer(t, fixture.NewMinimal[int](), []int{})
		},
		func(t *check.T) {
			var c core.Container[int] = fixture.NewMinimal[int]()
			CheckContainer(t, c, []int{})
		})

	registerPair(s, "laws/minimal",
		func(t *check.T) {
			CheckContainer(t, fixture.NewMinimal(7, 8, 9), []int{7, 8, 9})
		},
		func(t *check.T) {
			var c core.Container[int] = fixture.NewMinimal(7, 8, 9)
			CheckContainer(t, c, []int{7, 8, 9})
		})

	registerPair(s, "laws/mutable",
		func(t *check.T) {
			CheckContainer(t, fixture.NewMutable(4, 5, 6), []int{4, 5, 6})
		},
		func(t *check.T) {
			var c core.Container[int] = fixture.NewMutable(4, 5, 6)
			CheckContainer(t, c, []int{4, 5, 6})
		})

	registerPair(s, "laws/counted",
		func(t *check.T) {
			c, err := fixture.NewCounted(fixture.EstimatePrecise, 1, 2, 3)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			CheckContainer(t, c, []int{1, 2, 3})
		},
		func(t *check.T) {
			counted, err := fixture.NewCounted(fixture.EstimatePrecise, 1, 2, 3)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			var c core.Container[int] = counted
			CheckContainer(t, c, []int{1, 2, 3})
		})

	// Traversal order of a hash set is first-insertion order.
	registerPair(s, "laws/hashset",
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 3, 1, 2)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			CheckContainer(t, set, []int{3, 1, 2})
		},
		func(t *check.T) {
			set, err := fixture.NewHashSet(identHash, intEq, 3, 1, 2)
			if !check.True(t, err == nil, "constructor failed: %v", err) {
				return
			}
			var c core.Container[int] = set
			CheckContainer(t, c, []int{3, 1, 2})
		})

	registerPair(s, "laws/view",
		func(t *check.T) {
			m := fixture.NewMinimal(0, 1, 2, 3, 4, 5)
			v := ops.RangeExtract[int](m, posAt[int](m, 1), posAt[int](m, 4))
			CheckContainer(t, v, []int{1, 2, 3})
		},
		func(t *check.T) {
			m := fixture.NewMinimal(0, 1, 2, 3, 4, 5)
			var c core.Container[int] = ops.RangeExtract[int](m, posAt[int](m, 1), posAt[int](m, 4))
			CheckContainer(t, c, []int{1, 2, 3})
		})

	// Wrapping must not bend any law.
	registerPair(s, "laws/logged-wrapper",
		func(t *check.T) {
			CheckContainer(t, dispatch.Wrap[int](fixture.NewMinimal(7, 8, 9)), []int{7, 8, 9})
		},
		func(t *check.T) {
			var c core.Container[int] = dispatch.Wrap[int](fixture.NewMinimal(7, 8, 9))
			CheckContainer(t, c, []int{7, 8, 9})
		})
}

// identHash hashes an int to itself, keeping hash-set buckets
// predictable in scenarios.
func identHash(e int) uint64 { return uint64(e) }

// intEq is plain int equality.
func intEq(a, b int) bool { return a == b }
