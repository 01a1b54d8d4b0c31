// This file registers the range input and output scenario families:
// detached range reads, length-checked range writes, contiguous bulk
// access, and position arithmetic.

package conformance

import (
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// registerRangeIO adds the ReadRange, WriteRange, WithContiguous,
// Advance, and Distance scenarios.
func registerRangeIO(s *check.Suite) {
	// A range read is a detached snapshot: later writes to the container
	// do not show through, and a fresh read sees them.
	registerPair(s, "range-io/read/detached-snapshot",
		func(t *check.T) {
			mu := fixture.NewMutable(1, 2, 3, 4, 5)
			from, to := posAt[int](mu, 1), posAt[int](mu, 4)
			snap := ops.ReadRange[int](mu, from, to)
			check.Equal(t, []int{2, 3, 4}, snap)

			mu.SetAt(posAt[int](mu, 2), 99)
			check.Equal(t, []int{2, 3, 4}, snap)
			check.Equal(t, []int{2, 99, 4}, ops.ReadRange[int](mu, from, to))
		},
		func(t *check.T) {
			mu := fixture.NewMutable(1, 2, 3, 4, 5)
			var c core.Container[int] = mu
			from, to := posAt(c, 1), posAt(c, 4)
			snap := ops.ReadRange(c, from, to)
			check.Equal(t, []int{2, 3, 4}, snap)

			mu.SetAt(posAt(c, 2), 99)
			check.Equal(t, []int{2, 3, 4}, snap)
			check.Equal(t, []int{2, 99, 4}, ops.ReadRange(c, from, to))
		})

	s.MustRegister("range-io/read/whole-and-empty", func(t *check.T) {
		m := fixture.NewMinimal(7, 8, 9)
		check.Equal(t, m.Snapshot(), ops.ReadRange[int](m, m.Start(), m.End()))

		p := posAt[int](m, 1)
		check.Equal(t, []int{}, ops.ReadRange[int](m, p, p), cmpopts.EquateEmpty())
	})

	// An equal-length replacement lands element-wise through SetAt. The
	// scenario sorts a reversed run by writing the sorted prefix back.
	registerPair(s, "range-io/write/equal-length",
		func(t *check.T) {
			mu := fixture.NewMutable(5, 4, 3, 2, 1, 0, -1, -2, -3, -4)
			ops.WriteRange[int](mu, mu.Start(), posAt[int](mu, 5), []int{1, 2, 3, 4, 5})
			check.Equal(t, []int{1, 2, 3, 4, 5, 0, -1, -2, -3, -4}, ops.Collect[int](mu))
			check.Equal(t, 5, mu.Tracker().SetCalls)
		},
		func(t *check.T) {
			mu := fixture.NewMutable(5, 4, 3, 2, 1, 0, -1, -2, -3, -4)
			var c core.Container[int] = mu
			ops.WriteRange(c, c.Start(), posAt(c, 5), []int{1, 2, 3, 4, 5})
			check.Equal(t, []int{1, 2, 3, 4, 5, 0, -1, -2, -3, -4}, ops.Collect(c))
			check.Equal(t, 5, mu.Tracker().SetCalls)
		})

	// Length mismatches are validated before any element is touched: the
	// failed write leaves the container byte-for-byte unchanged.
	s.MustRegister("range-io/write/larger-rejected", func(t *check.T) {
		mu := fixture.NewMutable(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		before := mu.Snapshot()
		check.FatalMatches(t, core.PanicReplaceLarger, func() {
			ops.WriteRange[int](mu, posAt[int](mu, 2), posAt[int](mu, 5), []int{1, 2, 3, 4})
		})
		check.Equal(t, before, mu.Snapshot())
		check.Equal(t, 0, mu.Tracker().SetCalls)
	})

	s.MustRegister("range-io/write/smaller-rejected", func(t *check.T) {
		mu := fixture.NewMutable(1, 2, 3, 4, 5)
		before := mu.Snapshot()
		check.FatalMatches(t, core.PanicReplaceSmaller, func() {
			ops.WriteRange[int](mu, posAt[int](mu, 1), posAt[int](mu, 4), []int{8, 9})
		})
		check.Equal(t, before, mu.Snapshot())
		check.Equal(t, 0, mu.Tracker().SetCalls)
	})

	// A container with no write capability rejects every range write.
	s.MustRegister("range-io/write/read-only", func(t *check.T) {
		m := fixture.NewMinimal(1, 2)
		check.FatalMatches(t, core.PanicReadOnly, func() {
			ops.WriteRange[int](m, m.Start(), m.End(), []int{9, 9})
		})
		check.Equal(t, []int{1, 2}, m.Snapshot())
	})

	// Bulk access hands out the live storage: writes through the block
	// are visible to every later read.
	registerPair(s, "range-io/bulk/available-live",
		func(t *check.T) {
			mu := fixture.NewMutable(1, 2, 3)
			var seen []int
			ok := ops.WithContiguous[int](mu, func(block []int) {
				seen = append([]int(nil), block...)
				block[0] = 42
			})
			check.Equal(t, true, ok)
			check.Equal(t, []int{1, 2, 3}, seen)
			check.Equal(t, []int{42, 2, 3}, mu.Snapshot())
		},
		func(t *check.T) {
			mu := fixture.NewMutable(1, 2, 3)
			var c core.Container[int] = mu
			var seen []int
			ok := ops.WithContiguous(c, func(block []int) {
				seen = append([]int(nil), block...)
				block[0] = 42
			})
			check.Equal(t, true, ok)
			check.Equal(t, []int{1, 2, 3}, seen)
			check.Equal(t, []int{42, 2, 3}, mu.Snapshot())
		})

	// Without the capability the answer is false and the callback must
	// never fire.
	s.MustRegister("range-io/bulk/unavailable", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 3)
		ok := ops.WithContiguous[int](m, func([]int) {
			check.Unreachable(t)
		})
		check.Equal(t, false, ok)
	})

	// Random access moves in both directions and measures backwards.
	s.MustRegister("range-io/position/random-access", func(t *check.T) {
		mu := fixture.NewMutable(1, 2, 3, 4)
		p := ops.Advance[int](mu, mu.Start(), 3)
		check.Equal(t, 4, mu.At(p))

		back := ops.Advance[int](mu, p, -2)
		check.Equal(t, 2, mu.At(back))

		check.Equal(t, 3, ops.Distance[int](mu, mu.Start(), p))
		check.Equal(t, -2, ops.Distance[int](mu, p, back))
		check.Equal(t, mu.End(), ops.Advance[int](mu, mu.Start(), 4))
	})

	// The forward-only default steps once per unit of delta.
	s.MustRegister("range-io/position/forward-walk", func(t *check.T) {
		m := fixture.NewMinimal(1, 2, 3)
		p := ops.Advance[int](m, m.Start(), 2)
		check.Equal(t, 2, m.Tracker().NextCalls)
		check.Equal(t, 3, m.At(p))
		check.Equal(t, 2, ops.Distance[int](m, m.Start(), p))
	})
}
