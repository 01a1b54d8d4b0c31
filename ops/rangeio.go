// This file implements bulk range access and position arithmetic:
// ReadRange, WriteRange, WithContiguous, Advance, and Distance.

package ops

import (
	"github.com/katalvlaran/seqcheck/core"
)

// Panic diagnostics for position arithmetic on containers without random
// access. Backward movement needs core.RandomAccessor; the minimal
// contract only walks forward.
const (
	// PanicNegativeDelta reports Advance with a negative delta on a
	// container that implements no random access.
	PanicNegativeDelta = "ops: Advance: negative delta requires random access"

	// PanicNegativeDistance reports Distance with to preceding from on a
	// container that implements no random access.
	PanicNegativeDistance = "ops: Distance: backward measurement requires random access"
)

// ReadRange returns a fresh slice of the elements of c in [from, to).
//
// The result is a detached snapshot: it shares no storage with c, and
// later container mutations do not show through.
//
// Resolution: core.RangeGetter override when present; otherwise a
// positional walk with append.
// Complexity: O(range length) without an override.
func ReadRange[E any](c core.Container[E], from, to core.Position) []E {
	if rg, ok := c.(core.RangeGetter[E]); ok {
		return rg.ReadRange(from, to)
	}

	if to.Before(from) {
		panic(core.PanicInvertedRange)
	}

	var out []E
	for p := from; p != to; p = c.Next(p) {
		out = append(out, c.At(p))
	}

	return out
}

// WriteRange replaces the elements of c in [from, to) with repl.
//
// The replacement must have exactly as many elements as the target range.
// The length is validated with a read-only walk before anything is
// written: on mismatch the operation fails with PanicReplaceSmaller or
// PanicReplaceLarger and the container is untouched.
//
// Resolution: core.RangeSetter override when present; otherwise a
// length-checked element-wise write through core.Setter. A container with
// neither capability is read-only and fails with PanicReadOnly.
// Complexity: O(range length) without an override.
func WriteRange[E any](c core.Container[E], from, to core.Position, repl []E) {
	if rs, ok := c.(core.RangeSetter[E]); ok {
		rs.WriteRange(from, to, repl)

		return
	}
	set, ok := c.(core.Setter[E])
	if !ok {
		panic(core.PanicReadOnly)
	}

	if to.Before(from) {
		panic(core.PanicInvertedRange)
	}

	// Measure the target range without touching elements.
	length := 0
	for p := from; p != to; p = c.Next(p) {
		length++
	}
	if len(repl) < length {
		panic(core.PanicReplaceSmaller)
	}
	if len(repl) > length {
		panic(core.PanicReplaceLarger)
	}

	p := from
	for _, v := range repl {
		set.SetAt(p, v)
		p = c.Next(p)
	}
}

// WithContiguous calls fn with the live contiguous backing storage of c
// and returns true, or returns false without calling fn when c exposes no
// contiguous block.
//
// Resolution: core.BulkAccessor override when present; the minimal
// contract has no storage notion, so the default always answers false.
// The borrowed slice must not be retained past the call.
// Complexity: O(1) plus fn.
func WithContiguous[E any](c core.Container[E], fn func(block []E)) bool {
	if ba, ok := c.(core.BulkAccessor[E]); ok {
		return ba.WithContiguous(fn)
	}

	return false
}

// Advance returns the position delta successor steps after p.
//
// Resolution: core.RandomAccessor override when present, allowing O(1)
// movement in either direction; otherwise a forward Next walk. Negative
// deltas without random access are fatal, and stepping past End() is
// rejected by the container's own Next validation.
// Complexity: O(1) with an override, O(delta) without.
func Advance[E any](c core.Container[E], p core.Position, delta int) core.Position {
	if ra, ok := c.(core.RandomAccessor); ok {
		return ra.Advance(p, delta)
	}

	if delta < 0 {
		panic(PanicNegativeDelta)
	}
	for i := 0; i < delta; i++ {
		p = c.Next(p)
	}

	return p
}

// Distance returns the number of successor steps from `from` to `to`.
//
// Resolution: core.RandomAccessor override when present, which may answer
// negative distances; otherwise a forward counting walk. A backward pair
// without random access is fatal.
// Complexity: O(1) with an override, O(distance) without.
func Distance[E any](c core.Container[E], from, to core.Position) int {
	if ra, ok := c.(core.RandomAccessor); ok {
		return ra.Distance(from, to)
	}

	if to.Before(from) {
		panic(PanicNegativeDistance)
	}

	n := 0
	for p := from; p != to; p = c.Next(p) {
		n++
	}

	return n
}
