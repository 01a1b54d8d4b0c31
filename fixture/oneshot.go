// This file implements OneShot, the forward-only destructive stream.

package fixture

import (
	"iter"

	"github.com/katalvlaran/seqcheck/core"
)

// OneShot is a forward-only stream of elements, deliberately not a
// container: it mints no positions and supports no second pass.
//
// The stream is a two-state machine. While fresh, Elements yields from a
// shared cursor, so an abandoned traversal resumes where it stopped
// rather than starting over. Once the last element is out the stream is
// exhausted, and every further traversal deterministically yields
// nothing: never stale elements, never an error. Algorithms that need
// more than one pass must collect first or use a restartable source such
// as CustomIter.
type OneShot[E any] struct {
	trk    *Tracker
	elems  []E
	cursor int
}

// NewOneShot returns a fresh OneShot over its own copy of elems.
// Complexity: O(n)
func NewOneShot[E any](elems ...E) *OneShot[E] {
	return &OneShot[E]{
		trk:   NewTracker(len(elems)),
		elems: append([]E(nil), elems...),
	}
}

// Tracker returns the bookkeeping record of this instance. Consumed is
// set by the first Elements call, Drained when the last element is out.
func (o *OneShot[E]) Tracker() *Tracker { return o.trk }

// Remaining returns the number of elements not yet yielded.
func (o *OneShot[E]) Remaining() int { return len(o.elems) - o.cursor }

// Drained reports whether the stream is exhausted.
func (o *OneShot[E]) Drained() bool { return o.cursor == len(o.elems) }

// UnderestimatedCount returns the remaining element count, an exact lower
// bound for whatever traversal comes next.
// Complexity: O(1)
func (o *OneShot[E]) UnderestimatedCount() int { return o.Remaining() }

// Elements returns the destructive element sequence. Every yielded
// element is consumed even when the caller breaks early; a drained
// stream yields nothing.
func (o *OneShot[E]) Elements() iter.Seq[E] {
	o.trk.Consumed = true

	return func(yield func(E) bool) {
		for o.cursor < len(o.elems) {
			e := o.elems[o.cursor]
			o.cursor++
			ok := yield(e)
			if o.cursor == len(o.elems) {
				o.trk.Drained = true
			}
			if !ok {
				return
			}
		}
		o.trk.Drained = true
	}
}

// Compile-time contract checks: a stream, not a container.
var (
	_ core.Iterable[int]  = (*OneShot[int])(nil)
	_ core.CountEstimator = (*OneShot[int])(nil)
)
