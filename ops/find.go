// This file implements membership search: Find and Contains.

package ops

import (
	"github.com/katalvlaran/seqcheck/core"
)

// Find returns the position of the first element of c equal to target
// under eq, or (End(), false) when no element matches.
//
// Resolution: core.Finder override when the dynamic type provides one,
// letting hash- or tree-backed containers answer without a walk; otherwise
// a positional scan that stops at the first match.
// Complexity: override-defined with a Finder, O(n) worst case without.
func Find[E any](c core.Container[E], target E, eq func(a, b E) bool) (core.Position, bool) {
	if f, ok := c.(core.Finder[E]); ok {
		return f.FindFirst(target, eq)
	}

	for p := c.Start(); p != c.End(); p = c.Next(p) {
		if eq(c.At(p), target) {
			return p, true
		}
	}

	return c.End(), false
}

// Contains reports whether c holds an element equal to target under eq.
// It resolves through Find, so a Finder override is honored here too.
// Complexity: same as Find.
func Contains[E any](c core.Container[E], target E, eq func(a, b E) bool) bool {
	_, ok := Find(c, target, eq)

	return ok
}
