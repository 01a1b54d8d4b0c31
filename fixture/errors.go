// This file declares the sentinel errors returned by fixture constructors.
// Construction problems are recoverable and reported as errors; misuse of
// a built fixture panics with the stable core diagnostics instead.

package fixture

import "errors"

// ErrUnknownPolicy reports an estimate policy outside the set the called
// constructor accepts.
// Usage: if errors.Is(err, fixture.ErrUnknownPolicy) { ... }.
var ErrUnknownPolicy = errors.New("fixture: unknown estimate policy")

// ErrNegativeEstimate reports a negative literal estimate. An estimate is
// a lower bound on an element count; below zero it is meaningless.
// Usage: if errors.Is(err, fixture.ErrNegativeEstimate) { ... }.
var ErrNegativeEstimate = errors.New("fixture: negative literal estimate")

// ErrNilHash reports a HashSet constructed without a hash function.
// Usage: if errors.Is(err, fixture.ErrNilHash) { ... }.
var ErrNilHash = errors.New("fixture: nil hash function")

// ErrNilEquality reports a HashSet constructed without an equality
// function.
// Usage: if errors.Is(err, fixture.ErrNilEquality) { ... }.
var ErrNilEquality = errors.New("fixture: nil equality function")
