// This file declares InstanceID, Position, the NextInstanceID generator,
// and the stable panic diagnostics shared by containers and algorithms.
//
// Panics:
//
//	PanicForeignPosition - position minted by a different container instance.
//	PanicPositionRange   - position at or past the valid range.
//	PanicInvertedRange   - range upper bound precedes range lower bound.
//	PanicReadOnly        - element write attempted on a read-only container.
//	PanicReplaceSmaller  - range replacement shorter than the target range.
//	PanicReplaceLarger   - range replacement longer than the target range.
//	PanicNilBase         - View constructed over a nil base container.

package core

import (
	"sync/atomic"
)

// Stable panic diagnostics for contract misuse.
//
// These are constants, not errors: every one of them marks a programmer
// mistake that must surface immediately at the faulty call site. Tests match
// on the exact strings, so the texts are part of the public contract and
// must never change between releases.
const (
	// PanicForeignPosition reports a Position used against a container that
	// did not mint it.
	PanicForeignPosition = "core: position does not belong to this container"

	// PanicPositionRange reports a Position at or past End() where a valid
	// element position is required.
	PanicPositionRange = "core: position out of range"

	// PanicInvertedRange reports a (from, to) pair whose upper bound
	// precedes its lower bound along the successor chain.
	PanicInvertedRange = "core: range upper bound precedes lower bound"

	// PanicReadOnly reports an element write on a container that implements
	// no write capability.
	PanicReadOnly = "core: container does not support element writes"

	// PanicReplaceSmaller reports a range replacement with fewer elements
	// than the target range. The text is fixed by the range-write contract.
	PanicReplaceSmaller = "cannot replace a slice with a slice of smaller size"

	// PanicReplaceLarger reports a range replacement with more elements
	// than the target range. The text is fixed by the range-write contract.
	PanicReplaceLarger = "cannot replace a slice with a slice of larger size"

	// PanicNilBase reports a View constructed over a nil base container.
	PanicNilBase = "core: view base container is nil"
)

// InstanceID uniquely identifies one container instance for the lifetime of
// the process. Positions are stamped with the ID of the instance that minted
// them, which lets containers detect cross-instance position reuse.
type InstanceID uint64

// nextInstanceID is the atomic process-wide InstanceID generator.
var nextInstanceID uint64

// NextInstanceID returns a fresh process-unique InstanceID.
// IDs start at 1; the zero value marks "no owner" and is never issued.
// Complexity: O(1)
func NextInstanceID() InstanceID {
	return InstanceID(atomic.AddUint64(&nextInstanceID, 1))
}

// Position is an opaque cursor into one container instance.
//
// Positions are minted exclusively by the owning container (Start, End, Next,
// Advance) and are only meaningful to that instance. Two positions are equal
// exactly when both fields are equal, so == is the position comparison.
type Position struct {
	// Owner is the InstanceID of the container that minted this position.
	Owner InstanceID

	// Offset orders positions along the successor chain: Next must mint a
	// strictly larger Offset. Algorithms never interpret the value beyond
	// that ordering; containers are free to choose any strictly increasing
	// scheme (element index, byte offset, node rank, ...).
	Offset int
}

// Before reports whether p precedes q along the successor chain.
// Both positions must be minted by the same instance; comparing positions
// from different owners is a contract violation.
// Complexity: O(1)
func (p Position) Before(q Position) bool {
	if p.Owner != q.Owner {
		panic(PanicForeignPosition)
	}

	return p.Offset < q.Offset
}
