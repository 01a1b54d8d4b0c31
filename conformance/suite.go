// This file assembles the battery and holds the small helpers the
// scenario families share.

package conformance

import (
	"iter"

	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/ops"
)

// NewSuite returns the complete resolution-rule battery on a fresh
// check.Suite. Options, such as check.WithLogger, pass through.
func NewSuite(opts ...check.SuiteOption) *check.Suite {
	s := check.NewSuite(opts...)

	registerLaws(s)
	registerSizing(s)
	registerEstimates(s)
	registerAlgorithms(s)
	registerIteration(s)
	registerSearch(s)
	registerSlicing(s)
	registerSplitting(s)
	registerRangeIO(s)
	registerMisuse(s)
	registerParity(s)

	return s
}

// registerPair adds one scenario per call-site flavor under the family
// name. The two bodies must assert the same behavior; only the static
// type of the container at the ops call may differ.
func registerPair(s *check.Suite, family string, static, erased check.Body) {
	s.MustRegister(family+"/"+Static.String(), static)
	s.MustRegister(family+"/"+Erased.String(), erased)
}

// posAt returns the position n successor steps after Start, by the
// positional protocol only.
func posAt[E any](c core.Container[E], n int) core.Position {
	p := c.Start()
	for i := 0; i < n; i++ {
		p = c.Next(p)
	}

	return p
}

// stepsTo returns how many successor steps separate Start from p.
func stepsTo[E any](c core.Container[E], p core.Position) int {
	n := 0
	for q := c.Start(); q != p; q = c.Next(q) {
		n++
	}

	return n
}

// drainSeq collects a sequence into a fresh slice.
func drainSeq[E any](seq iter.Seq[E]) []E {
	out := []E{}
	for e := range seq {
		out = append(out, e)
	}

	return out
}

// fragElems collects each fragment's elements for content comparison.
func fragElems(frags []core.View[int]) [][]int {
	out := make([][]int, len(frags))
	for i, f := range frags {
		out[i] = ops.Collect[int](f)
	}

	return out
}
