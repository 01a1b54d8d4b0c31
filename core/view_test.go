package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqcheck/core"
)

// intBox is a minimal slice-backed container used to exercise View without
// pulling in the fixture package.
type intBox struct {
	id    core.InstanceID
	elems []int
}

func newIntBox(elems ...int) *intBox {
	return &intBox{id: core.NextInstanceID(), elems: elems}
}

func (b *intBox) Start() core.Position { return core.Position{Owner: b.id, Offset: 0} }

func (b *intBox) End() core.Position { return core.Position{Owner: b.id, Offset: len(b.elems)} }

func (b *intBox) Next(p core.Position) core.Position {
	b.mustOwn(p)
	if p.Offset < 0 || p.Offset >= len(b.elems) {
		panic(core.PanicPositionRange)
	}

	return core.Position{Owner: b.id, Offset: p.Offset + 1}
}

func (b *intBox) At(p core.Position) int {
	b.mustOwn(p)
	if p.Offset < 0 || p.Offset >= len(b.elems) {
		panic(core.PanicPositionRange)
	}

	return b.elems[p.Offset]
}

func (b *intBox) mustOwn(p core.Position) {
	if p.Owner != b.id {
		panic(core.PanicForeignPosition)
	}
}

// walk drains a container by the positional protocol.
func walk[E any](c core.Container[E]) []E {
	var out []E
	for p := c.Start(); p != c.End(); p = c.Next(p) {
		out = append(out, c.At(p))
	}

	return out
}

// TestNewView_FullRange verifies that a view over the full range visits the
// same elements as the base.
func TestNewView_FullRange(t *testing.T) {
	box := newIntBox(10, 20, 30)
	v := core.NewView[int](box, box.Start(), box.End())

	assert.Equal(t, []int{10, 20, 30}, walk[int](v))
	assert.Equal(t, box.Start(), v.Start())
	assert.Equal(t, box.End(), v.End())
}

// TestNewView_SubRange verifies that interior bounds narrow the walk.
func TestNewView_SubRange(t *testing.T) {
	box := newIntBox(1, 2, 3, 4, 5)
	from := box.Next(box.Start())        // position of 2
	to := box.Next(box.Next(from))       // position of 4 (excluded bound)
	v := core.NewView[int](box, from, to)

	assert.Equal(t, []int{2, 3}, walk[int](v))
}

// TestNewView_Empty verifies that from == to yields an empty view.
func TestNewView_Empty(t *testing.T) {
	box := newIntBox(1, 2, 3)
	p := box.Next(box.Start())
	v := core.NewView[int](box, p, p)

	assert.Equal(t, v.Start(), v.End())
	assert.Empty(t, walk[int](v))
}

// TestNewView_Flattens verifies that a view of a view is rebased onto the
// root container rather than stacking indirection.
func TestNewView_Flattens(t *testing.T) {
	box := newIntBox(1, 2, 3, 4)
	outer := core.NewView[int](box, box.Start(), box.End())
	inner := core.NewView[int](outer, outer.Start(), outer.End())

	var base core.Container[int] = box
	require.Same(t, base, inner.Base())
	assert.Equal(t, []int{1, 2, 3, 4}, walk[int](inner))
}

// TestNewView_Validation verifies the construction diagnostics.
func TestNewView_Validation(t *testing.T) {
	box := newIntBox(1, 2, 3)
	other := newIntBox(9)

	require.PanicsWithValue(t, core.PanicNilBase, func() {
		core.NewView[int](nil, box.Start(), box.End())
	})
	require.PanicsWithValue(t, core.PanicForeignPosition, func() {
		core.NewView[int](box, box.Start(), other.End())
	})
	require.PanicsWithValue(t, core.PanicInvertedRange, func() {
		core.NewView[int](box, box.End(), box.Start())
	})
}

// TestView_BoundsEnforced verifies that a view rejects positions that are
// valid in the base but lie outside the view's own range.
func TestView_BoundsEnforced(t *testing.T) {
	box := newIntBox(1, 2, 3, 4)
	to := box.Next(box.Next(box.Start()))       // view covers first two elements
	v := core.NewView[int](box, box.Start(), to)
	outside := box.Next(to) // valid base position, past the view

	require.PanicsWithValue(t, core.PanicPositionRange, func() { _ = v.At(to) })
	require.PanicsWithValue(t, core.PanicPositionRange, func() { _ = v.At(outside) })
	require.PanicsWithValue(t, core.PanicPositionRange, func() { _ = v.Next(to) })
}

// TestView_ForeignPositionRejected verifies cross-instance detection.
func TestView_ForeignPositionRejected(t *testing.T) {
	box := newIntBox(1, 2, 3)
	other := newIntBox(1, 2, 3)
	v := core.NewView[int](box, box.Start(), box.End())

	require.PanicsWithValue(t, core.PanicForeignPosition, func() { _ = v.At(other.Start()) })
	require.PanicsWithValue(t, core.PanicForeignPosition, func() { _ = v.Next(other.Start()) })
}

// TestView_ExtractRange_SelfSimilar verifies that re-extracting the full
// range of a view reproduces the view instead of nesting.
func TestView_ExtractRange_SelfSimilar(t *testing.T) {
	box := newIntBox(1, 2, 3, 4, 5)
	from := box.Next(box.Start())
	to := box.Next(box.Next(box.Next(from)))
	v := core.NewView[int](box, from, to)

	again := v.ExtractRange(v.Start(), v.End())
	assert.Equal(t, v, again)

	var base core.Container[int] = box
	require.Same(t, base, again.Base())
}

// TestView_ExtractRange_Narrows verifies interior re-extraction.
func TestView_ExtractRange_Narrows(t *testing.T) {
	box := newIntBox(1, 2, 3, 4, 5)
	v := core.NewView[int](box, box.Start(), box.End())
	from := box.Next(box.Start())
	to := box.Next(box.Next(from))

	assert.Equal(t, []int{2, 3}, walk[int](v.ExtractRange(from, to)))
}

// TestView_ExtractRange_Validation verifies the extraction diagnostics.
func TestView_ExtractRange_Validation(t *testing.T) {
	box := newIntBox(1, 2, 3, 4)
	mid := box.Next(box.Start())
	v := core.NewView[int](box, mid, box.End())
	other := newIntBox(9)

	require.PanicsWithValue(t, core.PanicForeignPosition, func() {
		v.ExtractRange(other.Start(), other.End())
	})
	require.PanicsWithValue(t, core.PanicInvertedRange, func() {
		v.ExtractRange(v.End(), v.Start())
	})
	// box.Start() precedes the view's own lower bound.
	require.PanicsWithValue(t, core.PanicPositionRange, func() {
		v.ExtractRange(box.Start(), v.End())
	})
}
