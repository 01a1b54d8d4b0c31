// This file implements flattening of nested sources: Flatten for
// containers of containers and FlattenSeqs for containers of raw
// sequences.

package ops

import (
	"iter"

	"github.com/katalvlaran/seqcheck/core"
)

// Flatten returns the concatenated element sequence of a container of
// containers.
//
// The returned sequence is lazy and restartable: nothing is traversed
// until it is ranged over, an early break stops mid-inner without touching
// the remaining inners, and every new range restarts from the first outer
// element, provided outer and its inners are themselves restartable.
// Inner containers resolve their own capabilities through Elements, so a
// one-shot inner keeps its one-shot nature.
// Complexity: O(total elements) per traversal.
func Flatten[E any](outer core.Container[core.Container[E]]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for inner := range Elements(outer) {
			for e := range Elements(inner) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// FlattenSeqs returns the concatenated element sequence of a container of
// raw iter.Seq values.
//
// Unlike Flatten, the inners here carry no restartability promise: a
// one-shot inner sequence is consumed the first time it is reached, and a
// second traversal of the result observes it empty. Callers that need
// repeatable results must hold restartable sequences.
// Complexity: O(total elements) per traversal.
func FlattenSeqs[E any](outer core.Container[iter.Seq[E]]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for inner := range Elements(outer) {
			for e := range inner {
				if !yield(e) {
					return
				}
			}
		}
	}
}
