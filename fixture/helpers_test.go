package fixture_test

import (
	"github.com/katalvlaran/seqcheck/core"
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
