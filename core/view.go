// This file declares View, the lightweight sub-range type returned by the
// slicing and splitting operations.
//
// A View does not copy elements. It references the base container, shares
// its positions unchanged, and narrows the walkable range to [from, to).
// Views of views are flattened at construction, so extraction is
// self-similar: re-extracting the full range of a view yields a view with
// the same base and the same bounds.

package core

// View is a read-only sub-range [from, to) of a base container.
//
// View implements Container[E] itself, so every algorithm that accepts a
// container accepts a view. Positions inside the view are positions of the
// base: no translation happens, and a position obtained from the view can
// be used against the base and vice versa.
//
// The zero View is invalid; construct views with NewView or through the
// slicing operations.
type View[E any] struct {
	// base is the container the view narrows. Never a View itself:
	// NewView rebases nested views onto their root base.
	base Container[E]

	// from is the first position of the view, to its one-past-the-last
	// sentinel. Both are positions of base.
	from, to Position
}

// NewView returns the view of base restricted to [from, to).
//
// Both bounds must be positions of base with from not after to; base must
// be non-nil. When base is itself a View, the new view is rebased onto the
// root container so that nesting never accumulates indirection.
// Complexity: O(1)
func NewView[E any](base Container[E], from, to Position) View[E] {
	if base == nil {
		panic(PanicNilBase)
	}
	if from.Owner != to.Owner {
		panic(PanicForeignPosition)
	}
	if to.Offset < from.Offset {
		panic(PanicInvertedRange)
	}
	// Rebase nested views onto the root. Bounds stay valid because views
	// share the base's positions unchanged.
	if inner, ok := any(base).(View[E]); ok {
		base = inner.base
	}

	return View[E]{base: base, from: from, to: to}
}

// Base returns the container the view was carved from. For views of views
// this is the root container, never an intermediate view.
func (v View[E]) Base() Container[E] { return v.base }

// Start returns the first position of the view, or End() when the view is
// empty.
// Complexity: O(1)
func (v View[E]) Start() Position { return v.from }

// End returns the one-past-the-last sentinel of the view.
// Complexity: O(1)
func (v View[E]) End() Position { return v.to }

// Next returns the successor of p within the view. Positions at or past the
// view's End() are rejected even when they are valid in the base.
// Complexity: O(1) plus the base's Next cost
func (v View[E]) Next(p Position) Position {
	v.mustContain(p)

	return v.base.Next(p)
}

// At returns the element at p. Positions at or past the view's End() are
// rejected even when they are valid in the base.
// Complexity: O(1) plus the base's At cost
func (v View[E]) At(p Position) E {
	v.mustContain(p)

	return v.base.At(p)
}

// ExtractRange returns the view of base elements in [from, to), which must
// lie within this view's own bounds. The result references the same base as
// v: extracting the full range [Start(), End()) reproduces v exactly.
// Complexity: O(1)
func (v View[E]) ExtractRange(from, to Position) View[E] {
	if from.Owner != v.from.Owner || to.Owner != v.to.Owner {
		panic(PanicForeignPosition)
	}
	if to.Offset < from.Offset {
		panic(PanicInvertedRange)
	}
	if from.Offset < v.from.Offset || to.Offset > v.to.Offset {
		panic(PanicPositionRange)
	}

	return View[E]{base: v.base, from: from, to: to}
}

// mustContain panics unless p is a valid element position of the view.
func (v View[E]) mustContain(p Position) {
	if p.Owner != v.from.Owner {
		panic(PanicForeignPosition)
	}
	if p.Offset < v.from.Offset || p.Offset >= v.to.Offset {
		panic(PanicPositionRange)
	}
}

// Compile-time contract checks.
var (
	_ Container[int]      = View[int]{}
	_ RangeExtractor[int] = View[int]{}
)
