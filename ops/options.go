// This file declares the functional options accepted by Split.
//
// Options validate eagerly: an invalid argument panics inside the With*
// constructor, at the call site that supplied it, not later inside the
// algorithm.

package ops

// PanicSplitLimit reports a negative limit passed to WithMaxSplits.
// Unlimited splitting is the default; it is requested by omitting the
// option, never by a negative limit.
const PanicSplitLimit = "ops: WithMaxSplits: limit must be non-negative"

// unlimitedSplits is the internal sentinel for "no cut limit".
const unlimitedSplits = -1

// splitConfig carries the resolved Split knobs.
type splitConfig struct {
	// maxSplits caps the number of cuts; negative means unlimited.
	maxSplits int

	// keepEmpty preserves empty fragments between adjacent separators and
	// at the ends.
	keepEmpty bool
}

// defaultSplitConfig returns the Split defaults: unlimited cuts, empty
// fragments omitted.
func defaultSplitConfig() splitConfig {
	return splitConfig{maxSplits: unlimitedSplits, keepEmpty: false}
}

// SplitOption configures a single Split call.
type SplitOption func(*splitConfig)

// WithMaxSplits caps the number of cuts at n. Once n fragments have been
// cut off, the remainder of the container, separators included, becomes
// the final fragment. n must be non-negative; n = 0 yields the whole
// container as a single fragment.
func WithMaxSplits(n int) SplitOption {
	if n < 0 {
		panic(PanicSplitLimit)
	}

	return func(cfg *splitConfig) { cfg.maxSplits = n }
}

// WithKeepEmpty preserves empty fragments: two adjacent separators, or a
// separator at either end, then contribute an empty view to the result.
func WithKeepEmpty() SplitOption {
	return func(cfg *splitConfig) { cfg.keepEmpty = true }
}
