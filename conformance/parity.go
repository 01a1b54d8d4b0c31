// This file registers the parity scenario family, one scenario per
// logged dispatch point. Each scenario performs the same operation
// twice over identical bases, once through a statically typed wrapper
// and once through a type-erased one, and requires identical results,
// identical dispatch logs, and the expected default-or-override
// classification. The override half repeats the run over bases that
// customize every point.

package conformance

import (
	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/dispatch"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// overrideAll customizes every logged capability over an embedded
// Mutable, counting each time dispatch reaches one of its overrides.
// The override bodies delegate to the operations over the plain
// embedded fixture, so their results match the defaults exactly and
// parity comparisons stay meaningful.
type overrideAll struct {
	*fixture.Mutable[int]

	calls map[dispatch.Point]int
}

// newOverrideAll returns an overrideAll over its own copy of elems.
func newOverrideAll(elems ...int) *overrideAll {
	return &overrideAll{
		Mutable: fixture.NewMutable(elems...),
		calls:   make(map[dispatch.Point]int),
	}
}

func (o *overrideAll) Count() int {
	o.calls[dispatch.PointCount]++

	return ops.Count[int](o.Mutable)
}

func (o *overrideAll) IsEmpty() bool {
	o.calls[dispatch.PointIsEmpty]++

	return ops.IsEmpty[int](o.Mutable)
}

func (o *overrideAll) First() (int, bool) {
	o.calls[dispatch.PointFirst]++

	return ops.First[int](o.Mutable)
}

func (o *overrideAll) FindFirst(target int, eq func(a, b int) bool) (core.Position, bool) {
	o.calls[dispatch.PointFind]++

	return ops.Find[int](o.Mutable, target, eq)
}

func (o *overrideAll) SplitBy(isSep func(int) bool, maxSplits int, keepEmpty bool) []core.View[int] {
	o.calls[dispatch.PointSplit]++

	return ops.SplitBy[int](o.Mutable, isSep, maxSplits, keepEmpty)
}

func (o *overrideAll) PrefixUpTo(p core.Position) core.View[int] {
	o.calls[dispatch.PointPrefixUpTo]++

	return ops.PrefixUpTo[int](o.Mutable, p)
}

func (o *overrideAll) PrefixThrough(p core.Position) core.View[int] {
	o.calls[dispatch.PointPrefixThrough]++

	return ops.PrefixThrough[int](o.Mutable, p)
}

func (o *overrideAll) SuffixFrom(p core.Position) core.View[int] {
	o.calls[dispatch.PointSuffixFrom]++

	return ops.SuffixFrom[int](o.Mutable, p)
}

func (o *overrideAll) ReadRange(from, to core.Position) []int {
	o.calls[dispatch.PointRangeGet]++

	return ops.ReadRange[int](o.Mutable, from, to)
}

func (o *overrideAll) WriteRange(from, to core.Position, repl []int) {
	o.calls[dispatch.PointRangeSet]++
	ops.WriteRange[int](o.Mutable, from, to, repl)
}

func (o *overrideAll) WithContiguous(fn func(block []int)) bool {
	o.calls[dispatch.PointBulkAccess]++

	return ops.WithContiguous[int](o.Mutable, fn)
}

// Compile-time capability checks.
var (
	_ core.Container[int]    = (*overrideAll)(nil)
	_ core.Counter           = (*overrideAll)(nil)
	_ core.EmptyChecker      = (*overrideAll)(nil)
	_ core.Firster[int]      = (*overrideAll)(nil)
	_ core.Finder[int]       = (*overrideAll)(nil)
	_ core.Splitter[int]     = (*overrideAll)(nil)
	_ core.Slicer[int]       = (*overrideAll)(nil)
	_ core.RangeGetter[int]  = (*overrideAll)(nil)
	_ core.RangeSetter[int]  = (*overrideAll)(nil)
	_ core.BulkAccessor[int] = (*overrideAll)(nil)
)

// Base constructors for the two parity phases. Every base holds the
// same four elements so results are comparable across phases too.
func minimalBase() core.Container[int] { return fixture.NewMinimal(1, 2, 3, 4) }

func mutableBase() core.Container[int] { return fixture.NewMutable(1, 2, 3, 4) }

func overrideBase() core.Container[int] { return newOverrideAll(1, 2, 3, 4) }

// runParity performs one phase of a parity scenario: wrap two fresh
// bases, run the operation through the static wrapper and through an
// erased view of the other, then require identical result digests,
// identical logs, exactly one hit on the expected point, and the
// expected classification. In the override phase the base's own call
// counter must show exactly one dispatch.
func runParity(
	t *check.T,
	p dispatch.Point,
	newBase func() core.Container[int],
	wantOverride bool,
	static func(w *dispatch.Logged[int]) any,
	erased func(c core.Container[int]) any,
) {
	ws := dispatch.Wrap[int](newBase())
	we := dispatch.Wrap[int](newBase())
	var ec core.Container[int] = we

	check.Equal(t, static(ws), erased(ec))
	check.Equal(t, ws.Log().Counts(), we.Log().Counts())
	check.True(t, ws.Log().Only(p), "static site: stray points in %v", ws.Log().Counts())
	check.True(t, we.Log().Only(p), "erased site: stray points in %v", we.Log().Counts())

	for _, log := range []*dispatch.Log{ws.Log(), we.Log()} {
		if wantOverride {
			check.Equal(t, 1, log.Overrides(p))
			check.Equal(t, 0, log.Defaults(p))
		} else {
			check.Equal(t, 1, log.Defaults(p))
			check.Equal(t, 0, log.Overrides(p))
		}
	}

	if !wantOverride {
		return
	}
	for _, w := range []*dispatch.Logged[int]{ws, we} {
		oa, ok := w.Base().(*overrideAll)
		if !check.True(t, ok, "override phase expects an overrideAll base, got %T", w.Base()) {
			continue
		}
		check.Equal(t, 1, oa.calls[p])
	}
}

func parityCount(t *check.T) {
	static := func(w *dispatch.Logged[int]) any { return ops.Count[int](w) }
	erased := func(c core.Container[int]) any { return ops.Count(c) }
	runParity(t, dispatch.PointCount, minimalBase, false, static, erased)
	runParity(t, dispatch.PointCount, overrideBase, true, static, erased)
}

func parityIsEmpty(t *check.T) {
	static := func(w *dispatch.Logged[int]) any { return ops.IsEmpty[int](w) }
	erased := func(c core.Container[int]) any { return ops.IsEmpty(c) }
	runParity(t, dispatch.PointIsEmpty, minimalBase, false, static, erased)
	runParity(t, dispatch.PointIsEmpty, overrideBase, true, static, erased)
}

func parityFirst(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		v, ok := ops.First[int](w)

		return []any{v, ok}
	}
	erased := func(c core.Container[int]) any {
		v, ok := ops.First(c)

		return []any{v, ok}
	}
	runParity(t, dispatch.PointFirst, minimalBase, false, static, erased)
	runParity(t, dispatch.PointFirst, overrideBase, true, static, erased)
}

func parityFind(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		pos, ok := ops.Find[int](w, 3, intEq)

		return []any{ok, stepsTo[int](w, pos)}
	}
	erased := func(c core.Container[int]) any {
		pos, ok := ops.Find(c, 3, intEq)

		return []any{ok, stepsTo(c, pos)}
	}
	runParity(t, dispatch.PointFind, minimalBase, false, static, erased)
	runParity(t, dispatch.PointFind, overrideBase, true, static, erased)
}

func paritySplit(t *check.T) {
	isSep := func(e int) bool { return e == 2 }
	static := func(w *dispatch.Logged[int]) any {
		return fragElems(ops.SplitBy[int](w, isSep, -1, false))
	}
	erased := func(c core.Container[int]) any {
		return fragElems(ops.SplitBy(c, isSep, -1, false))
	}
	runParity(t, dispatch.PointSplit, minimalBase, false, static, erased)
	runParity(t, dispatch.PointSplit, overrideBase, true, static, erased)
}

func parityPrefixUpTo(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		return ops.Collect[int](ops.PrefixUpTo[int](w, posAt[int](w, 2)))
	}
	erased := func(c core.Container[int]) any {
		return ops.Collect[int](ops.PrefixUpTo(c, posAt(c, 2)))
	}
	runParity(t, dispatch.PointPrefixUpTo, minimalBase, false, static, erased)
	runParity(t, dispatch.PointPrefixUpTo, overrideBase, true, static, erased)
}

func parityPrefixThrough(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		return ops.Collect[int](ops.PrefixThrough[int](w, posAt[int](w, 1)))
	}
	erased := func(c core.Container[int]) any {
		return ops.Collect[int](ops.PrefixThrough(c, posAt(c, 1)))
	}
	runParity(t, dispatch.PointPrefixThrough, minimalBase, false, static, erased)
	runParity(t, dispatch.PointPrefixThrough, overrideBase, true, static, erased)
}

func paritySuffixFrom(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		return ops.Collect[int](ops.SuffixFrom[int](w, posAt[int](w, 2)))
	}
	erased := func(c core.Container[int]) any {
		return ops.Collect[int](ops.SuffixFrom(c, posAt(c, 2)))
	}
	runParity(t, dispatch.PointSuffixFrom, minimalBase, false, static, erased)
	runParity(t, dispatch.PointSuffixFrom, overrideBase, true, static, erased)
}

func parityRangeGet(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		return ops.ReadRange[int](w, posAt[int](w, 1), posAt[int](w, 3))
	}
	erased := func(c core.Container[int]) any {
		return ops.ReadRange(c, posAt(c, 1), posAt(c, 3))
	}
	runParity(t, dispatch.PointRangeGet, minimalBase, false, static, erased)
	runParity(t, dispatch.PointRangeGet, overrideBase, true, static, erased)
}

func parityRangeSet(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		ops.WriteRange[int](w, posAt[int](w, 1), posAt[int](w, 3), []int{8, 9})

		return ops.Collect[int](w)
	}
	erased := func(c core.Container[int]) any {
		ops.WriteRange(c, posAt(c, 1), posAt(c, 3), []int{8, 9})

		return ops.Collect(c)
	}
	runParity(t, dispatch.PointRangeSet, mutableBase, false, static, erased)
	runParity(t, dispatch.PointRangeSet, overrideBase, true, static, erased)
}

func parityBulkAccess(t *check.T) {
	static := func(w *dispatch.Logged[int]) any {
		var got []int
		ok := ops.WithContiguous[int](w, func(block []int) {
			got = append([]int(nil), block...)
		})

		return []any{ok, got}
	}
	erased := func(c core.Container[int]) any {
		var got []int
		ok := ops.WithContiguous(c, func(block []int) {
			got = append([]int(nil), block...)
		})

		return []any{ok, got}
	}
	runParity(t, dispatch.PointBulkAccess, minimalBase, false, static, erased)
	runParity(t, dispatch.PointBulkAccess, overrideBase, true, static, erased)
}

// registerParity adds one scenario per logged point. Registering
// through Points() keeps the family mechanically complete: a point
// without a body registers nil and fails suite construction loudly.
func registerParity(s *check.Suite) {
	bodies := map[dispatch.Point]check.Body{
		dispatch.PointCount:         parityCount,
		dispatch.PointIsEmpty:       parityIsEmpty,
		dispatch.PointFirst:         parityFirst,
		dispatch.PointFind:          parityFind,
		dispatch.PointSplit:         paritySplit,
		dispatch.PointPrefixThrough: parityPrefixThrough,
		dispatch.PointPrefixUpTo:    parityPrefixUpTo,
		dispatch.PointSuffixFrom:    paritySuffixFrom,
		dispatch.PointRangeGet:      parityRangeGet,
		dispatch.PointRangeSet:      parityRangeSet,
		dispatch.PointBulkAccess:    parityBulkAccess,
	}
	for _, p := range dispatch.Points() {
		s.MustRegister("parity/"+p.String(), bodies[p])
	}
}
