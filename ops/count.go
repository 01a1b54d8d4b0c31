// This file implements the size and first-element operations: Count,
// IsEmpty, First, and UnderestimatedCount.

package ops

import (
	"github.com/katalvlaran/seqcheck/core"
)

// Count returns the number of elements in c.
//
// Resolution: core.Counter override when the dynamic type provides one;
// otherwise a full positional walk. The default never consults IsEmpty, so
// a Counter-less container pays exactly one traversal and zero emptiness
// probes.
// Complexity: O(1) with an override, O(n) without.
func Count[E any](c core.Container[E]) int {
	if ctr, ok := c.(core.Counter); ok {
		return ctr.Count()
	}

	n := 0
	for p := c.Start(); p != c.End(); p = c.Next(p) {
		n++
	}

	return n
}

// IsEmpty reports whether c holds no elements.
//
// Resolution: core.EmptyChecker override when present; otherwise the
// Start() == End() comparison. The default never counts: emptiness of an
// unbounded or expensive container must not cost a traversal.
// Complexity: O(1).
func IsEmpty[E any](c core.Container[E]) bool {
	if ec, ok := c.(core.EmptyChecker); ok {
		return ec.IsEmpty()
	}

	return c.Start() == c.End()
}

// First returns the first element of c and true, or the zero value and
// false when c is empty.
//
// Resolution: core.Firster override when present; otherwise At(Start())
// guarded by the Start() == End() comparison.
// Complexity: O(1).
func First[E any](c core.Container[E]) (E, bool) {
	if f, ok := c.(core.Firster[E]); ok {
		return f.First()
	}

	p := c.Start()
	if p == c.End() {
		var zero E

		return zero, false
	}

	return c.At(p), true
}

// UnderestimatedCount returns a lower bound on the element count of c.
//
// Resolution: core.CountEstimator override when present; otherwise 0,
// which is the only bound the minimal contract can certify without
// traversing. Callers use the bound for slice preallocation and must
// tolerate any value not exceeding the true count.
// Complexity: O(1).
func UnderestimatedCount[E any](c core.Container[E]) int {
	if est, ok := c.(core.CountEstimator); ok {
		return est.UnderestimatedCount()
	}

	return 0
}
