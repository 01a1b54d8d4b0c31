package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/dispatch"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// eqInt is the equality used by search scenarios in this file.
func eqInt(a, b int) bool { return a == b }

// viewElems collects a view's elements for content comparison.
func viewElems(v core.View[int]) []int { return ops.Collect[int](v) }

// allCaps overrides every logged customization point, so each hit on a
// wrapped instance must classify as an override. Every override body
// bumps its named counter, proving resolution reached the base's own
// implementation rather than a default.
type allCaps struct {
	*fixture.Mutable[int]

	ran map[string]int
}

func newAllCaps(elems ...int) *allCaps {
	return &allCaps{Mutable: fixture.NewMutable(elems...), ran: map[string]int{}}
}

func (a *allCaps) Count() int {
	a.ran["count"]++

	return len(a.Mutable.Snapshot())
}

func (a *allCaps) IsEmpty() bool {
	a.ran["isEmpty"]++

	return len(a.Mutable.Snapshot()) == 0
}

func (a *allCaps) First() (int, bool) {
	a.ran["first"]++
	s := a.Mutable.Snapshot()
	if len(s) == 0 {
		return 0, false
	}

	return s[0], true
}

func (a *allCaps) FindFirst(target int, eq func(x, y int) bool) (core.Position, bool) {
	a.ran["find"]++
	for i, v := range a.Mutable.Snapshot() {
		if eq(v, target) {
			return a.Mutable.Advance(a.Mutable.Start(), i), true
		}
	}

	return a.Mutable.End(), false
}

func (a *allCaps) SplitBy(isSep func(int) bool, maxSplits int, keepEmpty bool) []core.View[int] {
	a.ran["split"]++

	return ops.SplitBy[int](a.Mutable, isSep, maxSplits, keepEmpty)
}

func (a *allCaps) PrefixUpTo(p core.Position) core.View[int] {
	a.ran["prefixUpTo"]++

	return core.NewView[int](a.Mutable, a.Mutable.Start(), p)
}

func (a *allCaps) PrefixThrough(p core.Position) core.View[int] {
	a.ran["prefixThrough"]++

	return core.NewView[int](a.Mutable, a.Mutable.Start(), a.Mutable.Next(p))
}

func (a *allCaps) SuffixFrom(p core.Position) core.View[int] {
	a.ran["suffixFrom"]++

	return core.NewView[int](a.Mutable, p, a.Mutable.End())
}

func (a *allCaps) ReadRange(from, to core.Position) []int {
	a.ran["rangeGet"]++

	return ops.ReadRange[int](a.Mutable, from, to)
}

func (a *allCaps) WriteRange(from, to core.Position, repl []int) {
	a.ran["rangeSet"]++
	ops.WriteRange[int](a.Mutable, from, to, repl)
}

func (a *allCaps) WithContiguous(fn func(block []int)) bool {
	a.ran["bulkAccess"]++

	return a.Mutable.WithContiguous(fn)
}

// Compile-time check: allCaps really covers every logged capability.
var (
	_ core.Container[int]    = (*allCaps)(nil)
	_ core.Counter           = (*allCaps)(nil)
	_ core.EmptyChecker      = (*allCaps)(nil)
	_ core.Firster[int]      = (*allCaps)(nil)
	_ core.Finder[int]       = (*allCaps)(nil)
	_ core.Splitter[int]     = (*allCaps)(nil)
	_ core.Slicer[int]       = (*allCaps)(nil)
	_ core.RangeGetter[int]  = (*allCaps)(nil)
	_ core.RangeSetter[int]  = (*allCaps)(nil)
	_ core.BulkAccessor[int] = (*allCaps)(nil)
)

// TestWrap_NilContainer verifies wrapping nil fails fast with the stable
// diagnostic.
func TestWrap_NilContainer(t *testing.T) {
	assert.PanicsWithValue(t, dispatch.PanicNilContainer, func() {
		dispatch.Wrap[int](nil)
	})
}

// TestLogged_Accessors verifies Base returns the wrapped instance itself
// and Log returns a stable pointer into the wrapper.
func TestLogged_Accessors(t *testing.T) {
	m := fixture.NewMinimal(1, 2, 3)
	w := dispatch.Wrap[int](m)

	assert.Same(t, m, w.Base())
	assert.Same(t, w.Log(), w.Log())
}

// TestLogged_DefaultsOnMinimal drives every logged point that a read-only
// capability-free base can serve and verifies each records exactly one
// default hit with the default's result.
func TestLogged_DefaultsOnMinimal(t *testing.T) {
	w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3, 4))

	assert.Equal(t, 4, ops.Count[int](w))
	assert.False(t, ops.IsEmpty[int](w))

	first, ok := ops.First[int](w)
	require.True(t, ok)
	assert.Equal(t, 1, first)

	pos, ok := ops.Find[int](w, 3, eqInt)
	require.True(t, ok)
	assert.Equal(t, 3, w.At(pos))

	frags := ops.SplitBy[int](w, func(e int) bool { return e == 2 }, -1, false)
	require.Len(t, frags, 2)
	assert.Equal(t, []int{1}, viewElems(frags[0]))
	assert.Equal(t, []int{3, 4}, viewElems(frags[1]))

	p2 := w.Next(w.Next(w.Start()))
	assert.Equal(t, []int{1, 2}, viewElems(ops.PrefixUpTo[int](w, p2)))
	assert.Equal(t, []int{1, 2, 3}, viewElems(ops.PrefixThrough[int](w, p2)))
	assert.Equal(t, []int{3, 4}, viewElems(ops.SuffixFrom[int](w, p2)))

	assert.Equal(t, []int{1, 2}, ops.ReadRange[int](w, w.Start(), p2))

	called := false
	assert.False(t, ops.WithContiguous[int](w, func([]int) { called = true }))
	assert.False(t, called, "the minimal contract exposes no contiguous block")

	log := w.Log()
	hit := []dispatch.Point{
		dispatch.PointCount, dispatch.PointIsEmpty, dispatch.PointFirst,
		dispatch.PointFind, dispatch.PointSplit, dispatch.PointPrefixUpTo,
		dispatch.PointPrefixThrough, dispatch.PointSuffixFrom,
		dispatch.PointRangeGet, dispatch.PointBulkAccess,
	}
	for _, p := range hit {
		assert.Equal(t, 1, log.Defaults(p), p.String())
		assert.Zero(t, log.Overrides(p), p.String())
	}
	assert.Zero(t, log.Hits(dispatch.PointRangeSet))
	assert.Equal(t, len(hit), log.Total())
}

// TestLogged_OverridesOnAllCaps drives every logged point against a base
// overriding all of them and verifies each hit classifies as an override,
// each override body runs exactly once, and results stay correct.
func TestLogged_OverridesOnAllCaps(t *testing.T) {
	base := newAllCaps(1, 2, 3, 4)
	w := dispatch.Wrap[int](base)

	assert.Equal(t, 4, ops.Count[int](w))
	assert.False(t, ops.IsEmpty[int](w))

	first, ok := ops.First[int](w)
	require.True(t, ok)
	assert.Equal(t, 1, first)

	pos, ok := ops.Find[int](w, 3, eqInt)
	require.True(t, ok)
	assert.Equal(t, 3, w.At(pos))

	frags := ops.SplitBy[int](w, func(e int) bool { return e == 2 }, -1, false)
	require.Len(t, frags, 2)
	assert.Equal(t, []int{1}, viewElems(frags[0]))
	assert.Equal(t, []int{3, 4}, viewElems(frags[1]))

	p2 := w.Next(w.Next(w.Start()))
	assert.Equal(t, []int{1, 2}, viewElems(ops.PrefixUpTo[int](w, p2)))
	assert.Equal(t, []int{1, 2, 3}, viewElems(ops.PrefixThrough[int](w, p2)))
	assert.Equal(t, []int{3, 4}, viewElems(ops.SuffixFrom[int](w, p2)))

	assert.Equal(t, []int{1, 2}, ops.ReadRange[int](w, w.Start(), p2))

	ops.WriteRange[int](w, w.Start(), p2, []int{9, 8})
	assert.Equal(t, []int{9, 8, 3, 4}, base.Snapshot())

	var block []int
	require.True(t, ops.WithContiguous[int](w, func(b []int) {
		block = append([]int(nil), b...)
	}))
	assert.Equal(t, []int{9, 8, 3, 4}, block)

	log := w.Log()
	for _, p := range dispatch.Points() {
		assert.Equal(t, 1, log.Overrides(p), p.String())
		assert.Zero(t, log.Defaults(p), p.String())
	}
	assert.Equal(t, 11, log.Total())

	want := map[string]int{
		"count": 1, "isEmpty": 1, "first": 1, "find": 1, "split": 1,
		"prefixUpTo": 1, "prefixThrough": 1, "suffixFrom": 1,
		"rangeGet": 1, "rangeSet": 1, "bulkAccess": 1,
	}
	assert.Equal(t, want, base.ran, "every override body must run exactly once")
}

// TestLogged_RangeSetDefault verifies the element-wise write default
// records one range-subscript-set hit and lands the writes on the base.
func TestLogged_RangeSetDefault(t *testing.T) {
	mu := fixture.NewMutable(5, 6, 7)
	w := dispatch.Wrap[int](mu)

	from := w.Start()
	to := w.Next(w.Next(from))
	ops.WriteRange[int](w, from, to, []int{1, 2})

	assert.Equal(t, []int{1, 2, 7}, mu.Snapshot())
	assert.Equal(t, 2, mu.Tracker().SetCalls)
	assert.Equal(t, 1, w.Log().Defaults(dispatch.PointRangeSet))
	assert.Zero(t, w.Log().Overrides(dispatch.PointRangeSet))
	assert.True(t, w.Log().Only(dispatch.PointRangeSet))
}

// TestLogged_RangeSetReadOnly verifies a write through the wrapper onto a
// read-only base still records its hit before failing.
func TestLogged_RangeSetReadOnly(t *testing.T) {
	w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3))

	assert.PanicsWithValue(t, core.PanicReadOnly, func() {
		ops.WriteRange[int](w, w.Start(), w.End(), nil)
	})
	assert.Equal(t, 1, w.Log().Hits(dispatch.PointRangeSet))
	assert.Equal(t, 1, w.Log().Defaults(dispatch.PointRangeSet))
}

// TestLogged_NoDoubleCount verifies one externally observable call counts
// at exactly one point, even when its default is composed from other
// operations below the log.
func TestLogged_NoDoubleCount(t *testing.T) {
	t.Run("isEmpty never counts", func(t *testing.T) {
		w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3))
		assert.False(t, ops.IsEmpty[int](w))
		assert.True(t, w.Log().Only(dispatch.PointIsEmpty))
		assert.Zero(t, w.Log().Hits(dispatch.PointCount))
	})

	t.Run("prefix-through extracts below the log", func(t *testing.T) {
		w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3))
		_ = ops.PrefixThrough[int](w, w.Start())
		assert.True(t, w.Log().Only(dispatch.PointPrefixThrough))
		assert.Equal(t, 1, w.Log().Total())
	})

	t.Run("contains resolves through the search point", func(t *testing.T) {
		w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3))
		assert.True(t, ops.Contains[int](w, 2, eqInt))
		assert.True(t, w.Log().Only(dispatch.PointFind))
		assert.Equal(t, 1, w.Log().Total())
	})

	t.Run("split fragments extract below the log", func(t *testing.T) {
		w := dispatch.Wrap[int](fixture.NewMinimal(1, 0, 2, 0, 3))
		frags := ops.SplitBy[int](w, func(e int) bool { return e == 0 }, -1, false)
		require.Len(t, frags, 3)
		assert.True(t, w.Log().Only(dispatch.PointSplit))
		assert.Equal(t, 1, w.Log().Total())
	})
}

// TestLogged_UncountedStructural verifies the minimal contract and the
// structural capabilities flow through the wrapper without leaving a
// trace in the log, with results identical to the unwrapped base.
func TestLogged_UncountedStructural(t *testing.T) {
	mu := fixture.NewMutable(1, 2, 3, 4)
	w := dispatch.Wrap[int](mu)

	// Minimal contract.
	p := w.Start()
	assert.Equal(t, 1, w.At(p))
	p = w.Next(p)
	assert.Equal(t, 2, w.At(p))
	assert.Equal(t, mu.End(), w.End())

	// Traversal, estimation, transformation, filtering.
	assert.Equal(t, []int{1, 2, 3, 4}, ops.Collect[int](w))
	assert.Zero(t, ops.UnderestimatedCount[int](w))
	assert.Equal(t, []int{2, 4, 6, 8}, ops.Map[int, int](w, func(e int) int { return 2 * e }))
	assert.Equal(t, []int{1, 3}, ops.Filter[int](w, func(e int) bool { return e%2 == 1 }))

	// Plain extraction sits directly over the base.
	v := ops.RangeExtract[int](w, w.Start(), w.End())
	assert.Same(t, mu, v.Base())
	assert.Equal(t, []int{1, 2, 3, 4}, viewElems(v))

	// Position arithmetic through the base's random access.
	p2 := ops.Advance[int](w, w.Start(), 2)
	assert.Equal(t, 3, w.At(p2))
	assert.Equal(t, 2, ops.Distance[int](w, w.Start(), p2))
	back := ops.Advance[int](w, p2, -1)
	assert.Equal(t, 2, w.At(back))

	// Element writes.
	w.SetAt(w.Start(), 9)
	assert.Equal(t, []int{9, 2, 3, 4}, mu.Snapshot())

	assert.Zero(t, w.Log().Total(), "structural traffic must not be logged")
}

// TestLogged_EstimatePassThrough verifies a base estimate override is
// honored through the wrapper, uncounted.
func TestLogged_EstimatePassThrough(t *testing.T) {
	c, err := fixture.NewCounted(fixture.EstimateHalf, 1, 2, 3, 4, 5, 6)
	require.NoError(t, err)

	w := dispatch.Wrap[int](c)
	assert.Equal(t, 3, ops.UnderestimatedCount[int](w))
	assert.Equal(t, 1, c.EstimateCalls)
	assert.Zero(t, w.Log().Total())
}

// TestLogged_SetAtReadOnly verifies single-element writes through the
// wrapper fail on a read-only base the same way a direct capability probe
// concludes, still without touching the log.
func TestLogged_SetAtReadOnly(t *testing.T) {
	w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3))

	assert.PanicsWithValue(t, core.PanicReadOnly, func() {
		w.SetAt(w.Start(), 9)
	})
	assert.Zero(t, w.Log().Total())
}

// TestLogged_PositionTransparency verifies the wrapper mints no positions
// of its own: positions cross the wrapper boundary in both directions.
func TestLogged_PositionTransparency(t *testing.T) {
	m := fixture.NewMinimal(10, 20, 30)
	w := dispatch.Wrap[int](m)

	assert.Equal(t, m.Start(), w.Start())
	assert.Equal(t, m.End(), w.End())

	fromWrapper := w.Next(w.Start())
	assert.Equal(t, 20, m.At(fromWrapper))

	fromBase := m.Next(m.Start())
	assert.Equal(t, 20, w.At(fromBase))
}

// TestLogged_ResultTransparency verifies operations produce identical
// results wrapped and unwrapped over equal contents.
func TestLogged_ResultTransparency(t *testing.T) {
	plain := fixture.NewMinimal(3, 1, 4, 1, 5)
	w := dispatch.Wrap[int](fixture.NewMinimal(3, 1, 4, 1, 5))

	assert.Equal(t, ops.Count[int](plain), ops.Count[int](w))
	assert.Equal(t, ops.Collect[int](plain), ops.Collect[int](w))

	_, plainOK := ops.Find[int](plain, 4, eqInt)
	_, wrapOK := ops.Find[int](w, 4, eqInt)
	assert.Equal(t, plainOK, wrapOK)

	sep := func(e int) bool { return e == 1 }
	pf := ops.SplitBy[int](plain, sep, -1, true)
	wf := ops.SplitBy[int](w, sep, -1, true)
	require.Equal(t, len(pf), len(wf))
	for i := range pf {
		assert.Equal(t, viewElems(pf[i]), viewElems(wf[i]))
	}
}
