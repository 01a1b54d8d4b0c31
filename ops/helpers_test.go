package ops_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
)

// drain walks c by the positional protocol and returns the elements in
// encounter order.
func drain[E any](c core.Container[E]) []E {
	var out []E
	for p := c.Start(); p != c.End(); p = c.Next(p) {
		out = append(out, c.At(p))
	}

	return out
}

// seqSlice collects a sequence into a slice.
func seqSlice[E any](seq iter.Seq[E]) []E {
	var out []E
	for e := range seq {
		out = append(out, e)
	}

	return out
}

// contents drains every fragment view.
func contents(frags []core.View[int]) [][]int {
	out := make([][]int, 0, len(frags))
	for _, f := range frags {
		elems := drain[int](f)
		if elems == nil {
			elems = []int{}
		}
		out = append(out, elems)
	}

	return out
}

// pos returns the n-th element position of c.
func pos[E any](c core.Container[E], n int) core.Position {
	p := c.Start()
	for i := 0; i < n; i++ {
		p = c.Next(p)
	}

	return p
}

func hashIdent(e int) uint64 { return uint64(e) }

func eqInt(a, b int) bool { return a == b }

// mustHashSet builds an identity-hashed set of elems.
func mustHashSet(t *testing.T, elems ...int) *fixture.HashSet[int] {
	t.Helper()
	set, err := fixture.NewHashSet(hashIdent, eqInt, elems...)
	require.NoError(t, err)

	return set
}
