// This file implements Counted, the fixture with a declared size-estimate
// policy, and the policy type itself.

package fixture

import (
	"fmt"

	"github.com/katalvlaran/seqcheck/core"
)

// EstimatePolicy selects what a Counted fixture reports as its
// underestimated count.
type EstimatePolicy int

const (
	// EstimatePrecise reports the true element count.
	EstimatePrecise EstimatePolicy = iota

	// EstimateHalf reports half the true element count, rounded down.
	EstimateHalf

	// EstimateLiteral reports a fixed literal regardless of the true
	// element count. The literal may be deliberately wrong: consumers
	// must take the reported estimate at face value, never re-derive it.
	EstimateLiteral
)

// String returns the policy name used in scenario labels.
func (p EstimatePolicy) String() string {
	switch p {
	case EstimatePrecise:
		return "precise"
	case EstimateHalf:
		return "half"
	case EstimateLiteral:
		return "literal"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Counted is a read-only container whose single capability is a declared
// count estimate.
//
// Whatever the policy reports, even a deliberately wrong literal, must
// reach consumers untouched. The estimator answers from the backing
// storage it owns without a positional walk, so the tracker's traversal
// counters isolate the consumer's own walking from the estimate query.
// EstimateCalls records every query, proving the estimate was asked for
// rather than recomputed.
type Counted[E any] struct {
	Minimal[E]

	policy  EstimatePolicy
	literal int

	// EstimateCalls counts UnderestimatedCount invocations.
	EstimateCalls int
}

// NewCounted returns a Counted over its own copy of elems reporting under
// the given derived policy, EstimatePrecise or EstimateHalf. Literal
// reporting needs a value and therefore its own constructor,
// NewCountedLiteral.
func NewCounted[E any](policy EstimatePolicy, elems ...E) (*Counted[E], error) {
	switch policy {
	case EstimatePrecise, EstimateHalf:
		return &Counted[E]{Minimal: *NewMinimal(elems...), policy: policy}, nil
	case EstimateLiteral:
		return nil, fmt.Errorf("%w: EstimateLiteral requires NewCountedLiteral", ErrUnknownPolicy)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, policy)
	}
}

// NewCountedLiteral returns a Counted over its own copy of elems
// reporting the fixed literal regardless of the true element count.
// literal must be non-negative; it does not have to be truthful.
func NewCountedLiteral[E any](literal int, elems ...E) (*Counted[E], error) {
	if literal < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeEstimate, literal)
	}

	return &Counted[E]{
		Minimal: *NewMinimal(elems...),
		policy:  EstimateLiteral,
		literal: literal,
	}, nil
}

// Policy returns the declared estimate policy.
func (c *Counted[E]) Policy() EstimatePolicy { return c.policy }

// UnderestimatedCount reports under the declared policy and counts the
// query.
// Complexity: O(1)
func (c *Counted[E]) UnderestimatedCount() int {
	c.EstimateCalls++
	switch c.policy {
	case EstimateHalf:
		return len(c.elems) / 2
	case EstimateLiteral:
		return c.literal
	default:
		return len(c.elems)
	}
}

// Compile-time contract checks.
var (
	_ core.Container[int] = (*Counted[int])(nil)
	_ core.CountEstimator = (*Counted[int])(nil)
)
