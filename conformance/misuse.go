// This file registers the misuse scenario family: contract violations
// that must fail fast with their exact stable diagnostics. Every
// scenario here is expected-fatal; completing normally is the failure.

package conformance

import (
	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/dispatch"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// registerMisuse adds the expected-fatal scenarios.
func registerMisuse(s *check.Suite) {
	s.MustRegisterFatal("misuse/foreign-position", core.PanicForeignPosition,
		func(*check.T) {
			a := fixture.NewMinimal(1, 2)
			b := fixture.NewMinimal(1, 2)
			_ = b.At(a.Start())
		})

	s.MustRegisterFatal("misuse/next-past-end", core.PanicPositionRange,
		func(*check.T) {
			m := fixture.NewMinimal(1)
			_ = m.Next(m.End())
		})

	s.MustRegisterFatal("misuse/read-at-end", core.PanicPositionRange,
		func(*check.T) {
			m := fixture.NewMinimal(1)
			_ = m.At(m.End())
		})

	// The inclusive prefix has no element to include at End(); the
	// default inherits the container's own Next validation.
	s.MustRegisterFatal("misuse/prefix-through-end", core.PanicPositionRange,
		func(*check.T) {
			m := fixture.NewMinimal(1, 2)
			_ = ops.PrefixThrough[int](m, m.End())
		})

	s.MustRegisterFatal("misuse/inverted-range-read", core.PanicInvertedRange,
		func(*check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			_ = ops.ReadRange[int](m, posAt[int](m, 2), m.Start())
		})

	s.MustRegisterFatal("misuse/inverted-range-extract", core.PanicInvertedRange,
		func(*check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			_ = ops.RangeExtract[int](m, posAt[int](m, 2), m.Start())
		})

	s.MustRegisterFatal("misuse/advance-negative-forward-only", ops.PanicNegativeDelta,
		func(*check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			_ = ops.Advance[int](m, m.Start(), -1)
		})

	s.MustRegisterFatal("misuse/distance-backward-forward-only", ops.PanicNegativeDistance,
		func(*check.T) {
			m := fixture.NewMinimal(1, 2, 3)
			_ = ops.Distance[int](m, posAt[int](m, 2), m.Start())
		})

	// Option constructors validate eagerly, before any split runs.
	s.MustRegisterFatal("misuse/split-negative-limit", ops.PanicSplitLimit,
		func(*check.T) {
			_ = ops.WithMaxSplits(-3)
		})

	s.MustRegisterFatal("misuse/view-bounds-mixed-owners", core.PanicForeignPosition,
		func(*check.T) {
			a := fixture.NewMinimal(1)
			b := fixture.NewMinimal(1)
			_ = core.NewView[int](a, a.Start(), b.End())
		})

	s.MustRegisterFatal("misuse/view-nil-base", core.PanicNilBase,
		func(*check.T) {
			_ = core.NewView[int](nil, core.Position{}, core.Position{})
		})

	// A view rejects base positions outside its own bounds even when they
	// are valid in the base.
	s.MustRegisterFatal("misuse/view-position-outside-bounds", core.PanicPositionRange,
		func(*check.T) {
			m := fixture.NewMinimal(0, 1, 2, 3, 4)
			v := ops.RangeExtract[int](m, posAt[int](m, 1), posAt[int](m, 3))
			_ = v.At(posAt[int](m, 3))
		})

	s.MustRegisterFatal("misuse/wrap-nil-container", dispatch.PanicNilContainer,
		func(*check.T) {
			_ = dispatch.Wrap[int](nil)
		})

	// The replacement-length mismatches as whole-scenario outcomes; the
	// range-io family additionally proves the container stays untouched.
	s.MustRegisterFatal("misuse/replace-larger", core.PanicReplaceLarger,
		func(*check.T) {
			mu := fixture.NewMutable(1, 2, 3)
			ops.WriteRange[int](mu, mu.Start(), mu.End(), []int{1, 2, 3, 4})
		})

	s.MustRegisterFatal("misuse/replace-smaller", core.PanicReplaceSmaller,
		func(*check.T) {
			mu := fixture.NewMutable(1, 2, 3)
			ops.WriteRange[int](mu, mu.Start(), mu.End(), []int{1, 2})
		})
}
