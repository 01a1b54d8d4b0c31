package ops_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/fixture"
	"github.com/katalvlaran/seqcheck/ops"
)

// ExampleMap demonstrates positional projection over a walk-only
// container. Each element is visited exactly once, in order.
func ExampleMap() {
	// Five celsius readings in a minimal, walk-only container.
	readings := fixture.NewMinimal(0, 10, 20, 30, 40)

	// Project to fahrenheit. The element type is unchanged, so a custom
	// Mapper would be honored here if readings carried one.
	fahrenheit := ops.Map(readings, func(c int) int { return c*9/5 + 32 })

	fmt.Println(fahrenheit)
	// Output:
	// [32 50 68 86 104]
}

// ExampleFind demonstrates first-match search with caller-supplied
// equality.
func ExampleFind() {
	ports := fixture.NewMinimal(8080, 8443, 9090)
	eq := func(a, b int) bool { return a == b }

	// The scan stops at the first match and hands back its position.
	if p, ok := ops.Find(ports, 8443, eq); ok {
		fmt.Println("found:", ports.At(p))
	}

	// A miss answers (End(), false); End() addresses no element.
	_, ok := ops.Find(ports, 6379, eq)
	fmt.Println("contains 6379:", ok)
	// Output:
	// found: 8443
	// contains 6379: false
}

// ExampleSplit demonstrates separator splitting with live views as
// fragments. Separators are consumed: they belong to no fragment.
func ExampleSplit() {
	// Zero-terminated runs: 1 2 | 3 | 4 5.
	c := fixture.NewMinimal(1, 2, 0, 3, 0, 4, 5)
	isZero := func(e int) bool { return e == 0 }

	for _, frag := range ops.Split(c, isZero) {
		fmt.Println(ops.Collect[int](frag))
	}
	// Output:
	// [1 2]
	// [3]
	// [4 5]
}

// ExampleSplit_maxSplits demonstrates the cut limit: once two fragments
// have been cut off, the remainder, separators included, becomes the
// final fragment.
func ExampleSplit_maxSplits() {
	c := fixture.NewMinimal(1, 0, 2, 0, 3, 0, 4)
	isZero := func(e int) bool { return e == 0 }

	for _, frag := range ops.Split(c, isZero, ops.WithMaxSplits(2)) {
		fmt.Println(ops.Collect[int](frag))
	}
	// Output:
	// [1]
	// [2]
	// [3 0 4]
}

// ExampleWriteRange demonstrates same-length range replacement through
// the write capability.
func ExampleWriteRange() {
	buf := fixture.NewMutable(9, 9, 9, 9, 9)

	// Replace the middle three elements; the length must match exactly,
	// and the length check runs before the first write.
	from := buf.Advance(buf.Start(), 1)
	to := buf.Advance(from, 3)
	ops.WriteRange(buf, from, to, []int{1, 2, 3})

	fmt.Println(buf.Snapshot())
	// Output:
	// [9 1 2 3 9]
}

// ExampleFlatten demonstrates lazy concatenation of nested containers.
func ExampleFlatten() {
	outer := fixture.NewMinimal[core.Container[int]](
		fixture.NewMinimal(1, 2),
		fixture.NewMinimal(3),
	)

	fmt.Println(slices.Collect(ops.Flatten[int](outer)))
	// Output:
	// [1 2 3]
}
