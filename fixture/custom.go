// This file implements the single-override fixtures CustomMap,
// CustomFilter, and CustomIter. Each supplies exactly one algorithm
// customization and counts every time dispatch reaches it; everything
// else stays on the default path.

package fixture

import (
	"iter"

	"github.com/katalvlaran/seqcheck/core"
)

// CustomMap is a container overriding same-type mapping.
//
// The override iterates the backing slice directly, so a dispatched call
// leaves the tracker's positional counters untouched: MapCalls == 1 with
// zero Next/At traffic proves the override ran instead of the default
// walk. Mapping to any other result type still falls to the default.
type CustomMap[E any] struct {
	Minimal[E]

	// MapCalls counts MapElements invocations.
	MapCalls int
}

// NewCustomMap returns a CustomMap over its own copy of elems.
// Complexity: O(n)
func NewCustomMap[E any](elems ...E) *CustomMap[E] {
	return &CustomMap[E]{Minimal: *NewMinimal(elems...)}
}

// MapElements applies transform to every element in encounter order,
// exactly once per element.
// Complexity: O(n) plus n transform calls
func (c *CustomMap[E]) MapElements(transform func(E) E) []E {
	c.MapCalls++
	out := make([]E, len(c.elems))
	for i, e := range c.elems {
		out[i] = transform(e)
	}

	return out
}

// CustomFilter is a container overriding predicate filtering. As with
// CustomMap, the override reads the backing slice directly and leaves
// the tracker's positional counters untouched.
type CustomFilter[E any] struct {
	Minimal[E]

	// FilterCalls counts FilterElements invocations.
	FilterCalls int
}

// NewCustomFilter returns a CustomFilter over its own copy of elems.
// Complexity: O(n)
func NewCustomFilter[E any](elems ...E) *CustomFilter[E] {
	return &CustomFilter[E]{Minimal: *NewMinimal(elems...)}
}

// FilterElements returns the elements satisfying keep in encounter order,
// testing each element exactly once.
// Complexity: O(n) plus n keep calls
func (c *CustomFilter[E]) FilterElements(keep func(E) bool) []E {
	c.FilterCalls++
	var out []E
	for _, e := range c.elems {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// CustomIter is a container overriding native iteration with a
// restartable sequence over the backing slice.
type CustomIter[E any] struct {
	Minimal[E]

	// IterCalls counts Elements invocations. Ranging over one returned
	// sequence several times restarts it without another dispatch.
	IterCalls int
}

// NewCustomIter returns a CustomIter over its own copy of elems.
// Complexity: O(n)
func NewCustomIter[E any](elems ...E) *CustomIter[E] {
	return &CustomIter[E]{Minimal: *NewMinimal(elems...)}
}

// Elements returns the restartable element sequence in encounter order.
func (c *CustomIter[E]) Elements() iter.Seq[E] {
	c.IterCalls++

	return func(yield func(E) bool) {
		for _, e := range c.elems {
			if !yield(e) {
				return
			}
		}
	}
}

// Compile-time contract checks.
var (
	_ core.Container[int]   = (*CustomMap[int])(nil)
	_ core.Mapper[int, int] = (*CustomMap[int])(nil)
	_ core.Container[int]   = (*CustomFilter[int])(nil)
	_ core.Filterer[int]    = (*CustomFilter[int])(nil)
	_ core.Container[int]   = (*CustomIter[int])(nil)
	_ core.Iterable[int]    = (*CustomIter[int])(nil)
)
