// This file registers the slicing and splitting scenario families:
// range extraction, the prefix and suffix views, and separator
// splitting in all its option combinations.

package conformance

import (
	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// registerSlicing adds the RangeExtract, PrefixUpTo, PrefixThrough, and
// SuffixFrom scenarios.
func registerSlicing(s *check.Suite) {
	// A sub-range view shares the base's positions unchanged: the view's
	// bounds are the requested positions themselves, and a view position
	// works against the base.
	registerPair(s, "slicing/extract/sub-range",
		func(t *check.T) {
			m := fixture.NewMinimal(0, 1, 2, 3, 4, 5)
			from, to := posAt[int](m, 1), posAt[int](m, 4)
			v := ops.RangeExtract[int](m, from, to)
			check.Equal(t, []int{1, 2, 3}, ops.Collect[int](v))
			check.Equal(t, from, v.Start())
			check.Equal(t, to, v.End())
			check.Equal(t, 1, m.At(v.Start()))
		},
		func(t *check.T) {
			m := fixture.NewMinimal(0, 1, 2, 3, 4, 5)
			var c core.Container[int] = m
			from, to := posAt(c, 1), posAt(c, 4)
			v := ops.RangeExtract(c, from, to)
			check.Equal(t, []int{1, 2, 3}, ops.Collect[int](v))
			check.Equal(t, from, v.Start())
			check.Equal(t, 1, m.At(v.Start()))
		})

	// Extraction is self-similar: a view of a view stays a view of the
	// root base, identical to the equivalent direct extraction.
	s.MustRegister("slicing/extract/self-similar", func(t *check.T) {
		m := fixture.NewMinimal(0, 1, 2, 3, 4, 5)
		v := ops.RangeExtract[int](m, posAt[int](m, 1), posAt[int](m, 4))
		sub := ops.RangeExtract[int](v, v.Next(v.Start()), v.End())
		check.Equal(t, []int{2, 3}, ops.Collect[int](sub))
		check.True(t, sub.Base() == v.Base(), "nested extraction must rebase onto the root")

		direct := ops.RangeExtract[int](m, posAt[int](m, 2), posAt[int](m, 4))
		check.Equal(t, direct.Start(), sub.Start())
		check.Equal(t, direct.End(), sub.End())
	})

	registerPair(s, "slicing/prefix-up-to",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4)
			check.Equal(t, []int{1, 2}, ops.Collect[int](ops.PrefixUpTo[int](m, posAt[int](m, 2))))
			check.Equal(t, []int{}, ops.Collect[int](ops.PrefixUpTo[int](m, m.Start())))
			check.Equal(t, []int{1, 2, 3, 4}, ops.Collect[int](ops.PrefixUpTo[int](m, m.End())))
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 2, 3, 4)
			var c core.Container[int] = m
			check.Equal(t, []int{1, 2}, ops.Collect[int](ops.PrefixUpTo(c, posAt(c, 2))))
			check.Equal(t, []int{}, ops.Collect[int](ops.PrefixUpTo(c, c.Start())))
			check.Equal(t, []int{1, 2, 3, 4}, ops.Collect[int](ops.PrefixUpTo(c, c.End())))
		})

	// The inclusive prefix contains the element at the given position.
	s.MustRegister("slicing/prefix-through", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 3, 4)
		check.Equal(t, []int{1, 2, 3}, ops.Collect[int](ops.PrefixThrough[int](m, posAt[int](m, 2))))
		check.Equal(t, []int{1, 2, 3, 4}, ops.Collect[int](ops.PrefixThrough[int](m, posAt[int](m, 3))))
	})

	s.MustRegister("slicing/suffix-from", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 3, 4, 5)
		check.Equal(t, []int{3, 4, 5}, ops.Collect[int](ops.SuffixFrom[int](m, posAt[int](m, 2))))
		check.Equal(t, []int{1, 2, 3, 4, 5}, ops.Collect[int](ops.SuffixFrom[int](m, m.Start())))
		check.Equal(t, []int{}, ops.Collect[int](ops.SuffixFrom[int](m, m.End())))
	})
}

// registerSplitting adds the separator-splitting scenarios.
func registerSplitting(s *check.Suite) {
	isZero := func(e int) bool { return e == 0 }

	// Separators are consumed: every element is classified exactly once
	// and no fragment contains a separator.
	registerPair(s, "splitting/separators-consumed",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 0, 2, 0, 3)
			sepCalls := 0
			isSep := func(e int) bool { sepCalls++; return e == 0 }
			frags := ops.Split(m, isSep)
			check.Equal(t, [][]int{{1}, {2}, {3}}, fragElems(frags))
			check.Equal(t, 5, sepCalls)
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 0, 2, 0, 3)
			var c core.Container[int] = m
			sepCalls := 0
			isSep := func(e int) bool { sepCalls++; return e == 0 }
			frags := ops.Split(c, isSep)
			check.Equal(t, [][]int{{1}, {2}, {3}}, fragElems(frags))
			check.Equal(t, 5, sepCalls)
		})

	// Leading, trailing, and doubled separators contribute empty
	// fragments when asked for.
	s.MustRegister("splitting/keep-empty", func(t *check.T) {
		m := fixture.NewMinimal(0, 1, 0)
		frags := ops.Split(m, isZero, ops.WithKeepEmpty())
		check.Equal(t, [][]int{{}, {1}, {}}, fragElems(frags))
	})

	s.MustRegister("splitting/omit-empty-default", func(t *check.T) {
		m := fixture.NewMinimal(0, 1, 0)
		frags := ops.Split(m, isZero)
		check.Equal(t, [][]int{{1}}, fragElems(frags))
	})

	// Once the cut limit is reached the remainder, separators included,
	// becomes the final fragment.
	registerPair(s, "splitting/max-splits-remainder",
		func(t *check.T) {
			m := fixture.NewMinimal(1, 0, 2, 0, 3, 0, 4)
			frags := ops.Split(m, isZero, ops.WithMaxSplits(2))
			check.Equal(t, [][]int{{1}, {2}, {3, 0, 4}}, fragElems(frags))
		},
		func(t *check.T) {
			m := fixture.NewMinimal(1, 0, 2, 0, 3, 0, 4)
			var c core.Container[int] = m
			frags := ops.Split(c, isZero, ops.WithMaxSplits(2))
			check.Equal(t, [][]int{{1}, {2}, {3, 0, 4}}, fragElems(frags))
		})

	s.MustRegister("splitting/max-splits-zero", func(t *check.T) {
		m := fixture.NewMinimal(1, 0, 2)
		frags := ops.Split(m, isZero, ops.WithMaxSplits(0))
		check.Equal(t, [][]int{{1, 0, 2}}, fragElems(frags))
	})

	// A kept empty fragment counts against the cut limit like any other
	// fragment; an omitted one does not.
	s.MustRegister("splitting/max-splits-keep-empty", func(t *check.T) {
		m := fixture.NewMinimal(0, 0, 1)
		frags := ops.Split(m, isZero, ops.WithMaxSplits(1), ops.WithKeepEmpty())
		check.Equal(t, [][]int{{}, {0, 1}}, fragElems(frags))
	})

	s.MustRegister("splitting/no-separators", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 3)
		sepCalls := 0
		isSep := func(e int) bool { sepCalls++; return e == 0 }
		frags := ops.Split(m, isSep)
		check.Equal(t, [][]int{{1, 2, 3}}, fragElems(frags))
		check.Equal(t, 3, sepCalls)
	})

	s.MustRegister("splitting/all-separators", func(t *check.T) {
		frags := ops.Split(fixture.NewMinimal(0, 0), isZero)
		check.Equal(t, 0, len(frags))

		kept := ops.Split(fixture.NewMinimal(0, 0), isZero, ops.WithKeepEmpty())
		check.Equal(t, [][]int{{}, {}, {}}, fragElems(kept))
	})

	s.MustRegister("splitting/empty-container", func(t *check.T) {
		frags := ops.Split(fixture.NewMinimal[int](), isZero)
		check.Equal(t, 0, len(frags))

		kept := ops.Split(fixture.NewMinimal[int](), isZero, ops.WithKeepEmpty())
		check.Equal(t, [][]int{{}}, fragElems(kept))
	})
}
