// Package dispatch makes dispatch resolution observable without changing
// it.
//
// Logged wraps any container and records, for each of the eleven logged
// customization points, how many times a call arrived there and whether
// it reached the base container's own override or fell through to the
// default algorithm:
//
//	count, isEmpty, first, membership-search, split, prefix-through,
//	prefix-up-to, suffix-from, range-subscript-get, range-subscript-set,
//	bulk-buffer-access
//
// Counting Rule:
//
// One externally observable invocation counts exactly one hit, at the
// point it entered through. The wrapper counts first and then forwards
// resolution to the base container, never to itself, so a default that
// happens to be composed of other operations runs below the log and
// cannot double-count. An emptiness check that compares bounds bumps
// isEmpty once and count not at all.
//
// Transparency:
//
// Wrapping must not change outcomes. The minimal contract forwards
// uncounted; the structural capabilities (estimation, native iteration,
// same-type mapping, filtering, plain extraction, random access, element
// writes) pass through uncounted; and every logged point produces the
// result the unwrapped container would have produced, because resolution
// still happens against the base's dynamic type. Any scenario that
// passes against a fixture passes identically against its wrapped form.
//
// Typical assertion shape:
//
//	w := dispatch.Wrap[int](fixture.NewMinimal(1, 2, 3))
//	_ = ops.Count[int](w)
//	// w.Log().Only(dispatch.PointCount) &&
//	// w.Log().Defaults(dispatch.PointCount) == 1
//
// The wrapper never owns the base or its storage; dropping the wrapper
// leaves the base untouched.
package dispatch
