// This file implements Logged, the observability wrapper. Every counted
// shim follows one rule: classify against the base container's dynamic
// type, record, then forward to the operation on the base. Forwarding to
// the base rather than to the wrapper keeps resolution identical to the
// unwrapped case and keeps composed defaults from double-counting.

package dispatch

import (
	"iter"

	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/ops"
)

// PanicNilContainer reports an attempt to wrap a nil container.
const PanicNilContainer = "dispatch: cannot wrap a nil container"

// Logged wraps a container and records how each logged customization
// point resolves against the wrapped container's dynamic type.
//
// The wrapper is position-transparent: it mints no positions of its own,
// so positions obtained through it belong to the base and may be used
// against base and wrapper interchangeably.
type Logged[E any] struct {
	base core.Container[E]
	log  Log
}

// Wrap returns a Logged wrapper around base with an empty log.
// Wrapping nil is fatal with PanicNilContainer.
func Wrap[E any](base core.Container[E]) *Logged[E] {
	if base == nil {
		panic(PanicNilContainer)
	}

	return &Logged[E]{base: base}
}

// Base returns the wrapped container.
func (w *Logged[E]) Base() core.Container[E] { return w.base }

// Log returns the live resolution log of this wrapper.
func (w *Logged[E]) Log() *Log { return &w.log }

// Minimal contract, uncounted. Traversal is the substrate every default
// runs on; counting it would drown the signal of the points above it.

// Start returns the base container's first position.
func (w *Logged[E]) Start() core.Position { return w.base.Start() }

// End returns the base container's one-past-the-last position.
func (w *Logged[E]) End() core.Position { return w.base.End() }

// Next returns the successor of p in the base container.
func (w *Logged[E]) Next(p core.Position) core.Position { return w.base.Next(p) }

// At returns the base container's element at p.
func (w *Logged[E]) At(p core.Position) E { return w.base.At(p) }

// Logged points. Each shim counts one hit, classifies it by whether the
// base's own override will handle it, and resolves through ops against
// the base.

// Count returns the element count, logged at PointCount.
func (w *Logged[E]) Count() int {
	_, over := w.base.(core.Counter)
	w.log.record(PointCount, over)

	return ops.Count(w.base)
}

// IsEmpty reports emptiness, logged at PointIsEmpty.
func (w *Logged[E]) IsEmpty() bool {
	_, over := w.base.(core.EmptyChecker)
	w.log.record(PointIsEmpty, over)

	return ops.IsEmpty(w.base)
}

// First returns the first element, logged at PointFirst.
func (w *Logged[E]) First() (E, bool) {
	_, over := w.base.(core.Firster[E])
	w.log.record(PointFirst, over)

	return ops.First(w.base)
}

// FindFirst searches for target, logged at PointFind.
func (w *Logged[E]) FindFirst(target E, eq func(a, b E) bool) (core.Position, bool) {
	_, over := w.base.(core.Finder[E])
	w.log.record(PointFind, over)

	return ops.Find(w.base, target, eq)
}

// SplitBy splits at separators, logged at PointSplit.
func (w *Logged[E]) SplitBy(isSep func(E) bool, maxSplits int, keepEmpty bool) []core.View[E] {
	_, over := w.base.(core.Splitter[E])
	w.log.record(PointSplit, over)

	return ops.SplitBy(w.base, isSep, maxSplits, keepEmpty)
}

// PrefixUpTo extracts the exclusive prefix, logged at PointPrefixUpTo.
func (w *Logged[E]) PrefixUpTo(p core.Position) core.View[E] {
	_, over := w.base.(core.Slicer[E])
	w.log.record(PointPrefixUpTo, over)

	return ops.PrefixUpTo(w.base, p)
}

// PrefixThrough extracts the inclusive prefix, logged at
// PointPrefixThrough.
func (w *Logged[E]) PrefixThrough(p core.Position) core.View[E] {
	_, over := w.base.(core.Slicer[E])
	w.log.record(PointPrefixThrough, over)

	return ops.PrefixThrough(w.base, p)
}

// SuffixFrom extracts the suffix, logged at PointSuffixFrom.
func (w *Logged[E]) SuffixFrom(p core.Position) core.View[E] {
	_, over := w.base.(core.Slicer[E])
	w.log.record(PointSuffixFrom, over)

	return ops.SuffixFrom(w.base, p)
}

// ReadRange reads a range snapshot, logged at PointRangeGet.
func (w *Logged[E]) ReadRange(from, to core.Position) []E {
	_, over := w.base.(core.RangeGetter[E])
	w.log.record(PointRangeGet, over)

	return ops.ReadRange(w.base, from, to)
}

// WriteRange replaces a range, logged at PointRangeSet. A base with
// neither bulk nor element writes fails with core.PanicReadOnly, after
// the hit is recorded.
func (w *Logged[E]) WriteRange(from, to core.Position, repl []E) {
	_, over := w.base.(core.RangeSetter[E])
	w.log.record(PointRangeSet, over)

	ops.WriteRange(w.base, from, to, repl)
}

// WithContiguous exposes contiguous storage, logged at PointBulkAccess.
func (w *Logged[E]) WithContiguous(fn func(block []E)) bool {
	_, over := w.base.(core.BulkAccessor[E])
	w.log.record(PointBulkAccess, over)

	return ops.WithContiguous(w.base, fn)
}

// Structural capabilities, uncounted. The wrapper's method set is fixed,
// so each pass-through re-resolves through ops against the base; a base
// without the capability gets exactly the default it would get
// unwrapped.

// UnderestimatedCount forwards the size lower bound.
func (w *Logged[E]) UnderestimatedCount() int {
	return ops.UnderestimatedCount(w.base)
}

// Elements forwards the native element sequence.
func (w *Logged[E]) Elements() iter.Seq[E] {
	return ops.Elements(w.base)
}

// MapElements forwards same-type transformation.
func (w *Logged[E]) MapElements(transform func(E) E) []E {
	return ops.Map(w.base, transform)
}

// FilterElements forwards predicate filtering.
func (w *Logged[E]) FilterElements(keep func(E) bool) []E {
	return ops.Filter(w.base, keep)
}

// ExtractRange forwards plain range extraction. The resulting view sits
// directly over the base, outside the log.
func (w *Logged[E]) ExtractRange(from, to core.Position) core.View[E] {
	return ops.RangeExtract(w.base, from, to)
}

// Advance forwards position arithmetic.
func (w *Logged[E]) Advance(p core.Position, delta int) core.Position {
	return ops.Advance(w.base, p, delta)
}

// Distance forwards position measurement.
func (w *Logged[E]) Distance(from, to core.Position) int {
	return ops.Distance(w.base, from, to)
}

// SetAt forwards a single-element write, or fails with core.PanicReadOnly
// when the base accepts none, exactly as a direct capability probe on the
// base would conclude.
func (w *Logged[E]) SetAt(p core.Position, v E) {
	set, ok := w.base.(core.Setter[E])
	if !ok {
		panic(core.PanicReadOnly)
	}
	set.SetAt(p, v)
}

// Compile-time capability surface of the wrapper.
var (
	_ core.Container[int]      = (*Logged[int])(nil)
	_ core.Counter             = (*Logged[int])(nil)
	_ core.EmptyChecker        = (*Logged[int])(nil)
	_ core.Firster[int]        = (*Logged[int])(nil)
	_ core.Finder[int]         = (*Logged[int])(nil)
	_ core.Splitter[int]       = (*Logged[int])(nil)
	_ core.Slicer[int]         = (*Logged[int])(nil)
	_ core.RangeExtractor[int] = (*Logged[int])(nil)
	_ core.RangeGetter[int]    = (*Logged[int])(nil)
	_ core.RangeSetter[int]    = (*Logged[int])(nil)
	_ core.BulkAccessor[int]   = (*Logged[int])(nil)
	_ core.RandomAccessor      = (*Logged[int])(nil)
	_ core.Setter[int]         = (*Logged[int])(nil)
	_ core.Iterable[int]       = (*Logged[int])(nil)
	_ core.CountEstimator      = (*Logged[int])(nil)
	_ core.Mapper[int, int]    = (*Logged[int])(nil)
	_ core.Filterer[int]       = (*Logged[int])(nil)
)
