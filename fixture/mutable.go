// This file implements Mutable, the random-access read-write fixture.

package fixture

import "github.com/katalvlaran/seqcheck/core"

// Mutable is a slice-backed random-access container with in-place element
// writes and contiguous-storage access.
//
// It deliberately carries no bulk range capability, so the default
// ReadRange and WriteRange algorithms run against it with only position
// arithmetic and SetAt supplied by the fixture. The backing storage never
// grows or shrinks, which is why a replacement of the wrong length must
// fail before a single element is touched.
type Mutable[E any] struct {
	Minimal[E]
}

// NewMutable returns a Mutable over its own copy of elems.
// Complexity: O(n)
func NewMutable[E any](elems ...E) *Mutable[E] {
	return &Mutable[E]{Minimal: *NewMinimal(elems...)}
}

// SetAt replaces the element at p with v. The write is visible to every
// later read; nothing is cached.
// Complexity: O(1)
func (m *Mutable[E]) SetAt(p core.Position, v E) {
	m.trk.GuardElement(p)
	m.trk.SetCalls++
	m.elems[p.Offset] = v
}

// Advance returns the position delta successor steps after p. Negative
// deltas step backwards. The result may be End() but never past it.
// Complexity: O(1)
func (m *Mutable[E]) Advance(p core.Position, delta int) core.Position {
	m.trk.Guard(p)
	i := p.Offset + delta
	if i < 0 || i > len(m.elems) {
		panic(core.PanicPositionRange)
	}

	return m.trk.pos(i)
}

// Distance returns the number of successor steps from `from` to `to`,
// negative when `to` precedes `from`.
// Complexity: O(1)
func (m *Mutable[E]) Distance(from, to core.Position) int {
	m.trk.Guard(from)
	m.trk.Guard(to)

	return to.Offset - from.Offset
}

// WithContiguous hands fn the live backing storage and returns true.
// Writes through the block are visible to every later read; the block
// must not be retained past the call.
func (m *Mutable[E]) WithContiguous(fn func(block []E)) bool {
	fn(m.elems)

	return true
}

// Compile-time contract checks.
var (
	_ core.Container[int]    = (*Mutable[int])(nil)
	_ core.Setter[int]       = (*Mutable[int])(nil)
	_ core.RandomAccessor    = (*Mutable[int])(nil)
	_ core.BulkAccessor[int] = (*Mutable[int])(nil)
)
