// This file declares the Container contract and every optional capability
// interface that algorithms in ops probe for.
//
// Design rule: capabilities are discovered with a type assertion against the
// dynamic type, never against the static one. A concrete container and an
// erased Container[E] interface value holding it therefore resolve every
// capability identically.

package core

import "iter"

// Container is the minimal position-based container contract over element
// type E. Implementations must satisfy three laws:
//
//  1. Start() == End() exactly when the container is empty.
//  2. Repeatedly applying Next from Start() reaches End() in finitely many
//     steps, visiting each element position exactly once in order.
//  3. Next and At reject End() and any position minted by another instance
//     with PanicPositionRange and PanicForeignPosition respectively.
type Container[E any] interface {
	// Start returns the position of the first element, or End() when the
	// container is empty.
	Start() Position

	// End returns the one-past-the-last sentinel position. End is a valid
	// range bound but never a valid element position.
	End() Position

	// Next returns the successor of p. Passing End() or a foreign position
	// is fatal.
	Next(p Position) Position

	// At returns the element stored at p. Passing End() or a foreign
	// position is fatal.
	At(p Position) E
}

// Counter is implemented by containers that know their exact element count
// without traversal.
type Counter interface {
	// Count returns the exact number of elements.
	Count() int
}

// EmptyChecker is implemented by containers with a constant-time emptiness
// test. Absent this capability, algorithms compare Start() == End() and
// never fall back to counting.
type EmptyChecker interface {
	// IsEmpty reports whether the container holds no elements.
	IsEmpty() bool
}

// Firster is implemented by containers that can produce their first element
// directly.
type Firster[E any] interface {
	// First returns the first element and true, or the zero value and false
	// when the container is empty.
	First() (E, bool)
}

// Finder is implemented by containers with a membership-search strategy
// better than the linear walk, such as hash or tree lookup.
//
// An indexed implementation may answer under the equality its structure
// was built with instead of eq; callers must then supply an eq consistent
// with that structure, or scan linearly themselves.
type Finder[E any] interface {
	// FindFirst returns the position of the first element equal to target,
	// or (End(), false) when no element matches.
	FindFirst(target E, eq func(a, b E) bool) (Position, bool)
}

// Splitter is implemented by containers with a custom separator-splitting
// strategy.
//
// maxSplits < 0 means unlimited. With keepEmpty false, empty fragments are
// omitted from the result. Once maxSplits fragments have been produced, the
// remainder of the container, separators included, forms the final fragment.
type Splitter[E any] interface {
	// SplitBy cuts the container at every element matching isSep and
	// returns the fragments as views in order.
	SplitBy(isSep func(E) bool, maxSplits int, keepEmpty bool) []View[E]
}

// Slicer is implemented by containers with custom prefix and suffix
// extraction. All three operations accept End() as the bound.
type Slicer[E any] interface {
	// PrefixUpTo returns the view of elements strictly before p.
	PrefixUpTo(p Position) View[E]

	// PrefixThrough returns the view of elements up to and including p.
	// Passing End() is fatal: there is no element at End() to include.
	PrefixThrough(p Position) View[E]

	// SuffixFrom returns the view of elements from p to the end.
	SuffixFrom(p Position) View[E]
}

// RangeExtractor is implemented by containers with a custom sub-range view
// strategy. Extraction must be self-similar: extracting the full range
// [Start(), End()) of an extracted view yields that same view, not a view
// of a view.
type RangeExtractor[E any] interface {
	// ExtractRange returns the live view of elements in [from, to).
	ExtractRange(from, to Position) View[E]
}

// RangeGetter is implemented by containers with a custom bulk range read.
// The returned slice is a detached snapshot: the caller owns it, and later
// container mutations must not show through.
type RangeGetter[E any] interface {
	// ReadRange returns a fresh slice of the elements in [from, to).
	ReadRange(from, to Position) []E
}

// RangeSetter is implemented by containers with a custom bulk range write.
//
// The replacement must have exactly as many elements as the target range.
// Implementations must validate the length before writing anything and fail
// with PanicReplaceSmaller or PanicReplaceLarger on mismatch, leaving the
// container untouched.
type RangeSetter[E any] interface {
	// WriteRange replaces the elements in [from, to) with repl.
	WriteRange(from, to Position, repl []E)
}

// BulkAccessor is implemented by containers whose elements occupy a single
// contiguous block of memory that can be borrowed for the duration of a
// call.
type BulkAccessor[E any] interface {
	// WithContiguous calls fn with the live backing storage and returns
	// true, or returns false without calling fn when no contiguous block
	// is available. The slice must not be retained past the call.
	WithContiguous(fn func(block []E)) bool
}

// RandomAccessor is implemented by containers with O(1) position arithmetic.
type RandomAccessor interface {
	// Advance returns the position delta successor steps after p.
	// Negative deltas step backwards. Landing outside [Start(), End()] is
	// fatal.
	Advance(p Position, delta int) Position

	// Distance returns the number of successor steps from `from` to `to`.
	// Negative when `to` precedes `from`.
	Distance(from, to Position) int
}

// Setter is implemented by mutable containers supporting single-element
// writes in place.
type Setter[E any] interface {
	// SetAt replaces the element at p with v. Passing End() or a foreign
	// position is fatal.
	SetAt(p Position, v E)
}

// Iterable is implemented by containers with a native element sequence,
// including one-shot sources that cannot be traversed positionally more
// than once.
type Iterable[E any] interface {
	// Elements returns the element sequence in container order.
	Elements() iter.Seq[E]
}

// CountEstimator is implemented by containers that can cheaply bound their
// size from below. The estimate steers slice preallocation and must never
// exceed the true count; 0 is always a correct answer.
type CountEstimator interface {
	// UnderestimatedCount returns a lower bound on the element count.
	UnderestimatedCount() int
}

// Mapper is implemented by containers with a custom element transformation
// strategy producing result type R. A container typically implements
// Mapper[E, E]; transformations to any other result type fall back to the
// default algorithm.
type Mapper[E, R any] interface {
	// MapElements applies transform to every element in order and returns
	// the results.
	MapElements(transform func(E) R) []R
}

// Filterer is implemented by containers with a custom predicate-filtering
// strategy.
type Filterer[E any] interface {
	// FilterElements returns the elements satisfying keep, in order.
	FilterElements(keep func(E) bool) []E
}
