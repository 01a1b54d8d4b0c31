// This file implements the traversal and transformation operations:
// Elements, Collect, Map, and Filter.

package ops

import (
	"iter"

	"github.com/katalvlaran/seqcheck/core"
)

// Elements returns the element sequence of c in container order.
//
// Resolution: core.Iterable override when the dynamic type provides one;
// otherwise a positional walk. The positional fallback is restartable:
// each range over the returned sequence walks Start()..End() afresh. A
// native override may be one-shot, in which case only the first traversal
// yields elements.
// Complexity: O(n) per traversal.
func Elements[E any](c core.Container[E]) iter.Seq[E] {
	if it, ok := c.(core.Iterable[E]); ok {
		return it.Elements()
	}

	return func(yield func(E) bool) {
		for p := c.Start(); p != c.End(); p = c.Next(p) {
			if !yield(c.At(p)) {
				return
			}
		}
	}
}

// Collect drains c into a fresh slice.
//
// The slice is preallocated from UnderestimatedCount and grown by append,
// and the container is traversed exactly once through Elements.
// Complexity: O(n).
func Collect[E any](c core.Container[E]) []E {
	out := make([]E, 0, UnderestimatedCount(c))
	for e := range Elements(c) {
		out = append(out, e)
	}

	return out
}

// Map applies transform to every element of c in order and returns the
// results.
//
// Resolution: core.Mapper[E, R] override when the dynamic type provides a
// transformation to exactly the requested result type; otherwise a single
// traversal through Elements with append into a slice preallocated from
// UnderestimatedCount. For a truthful lower bound the default's result
// capacity never exceeds twice the element count.
// Complexity: O(n) plus n transform calls.
func Map[E, R any](c core.Container[E], transform func(E) R) []R {
	if m, ok := c.(core.Mapper[E, R]); ok {
		return m.MapElements(transform)
	}

	out := make([]R, 0, UnderestimatedCount(c))
	for e := range Elements(c) {
		out = append(out, transform(e))
	}

	return out
}

// Filter returns the elements of c satisfying keep, in order.
//
// Resolution: core.Filterer override when present; otherwise a single
// eager traversal through Elements. The default does not preallocate: the
// kept count bears no relation to any size estimate.
// Complexity: O(n) plus n keep calls.
func Filter[E any](c core.Container[E], keep func(E) bool) []E {
	if f, ok := c.(core.Filterer[E]); ok {
		return f.FilterElements(keep)
	}

	var out []E
	for e := range Elements(c) {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
