// Package ops implements the default algorithm library over the core
// container contract, with run-time capability dispatch.
//
// Every operation follows the same resolution rule:
//
//  1. Probe the container's dynamic type for the matching capability
//     interface from core (one type assertion).
//  2. On success, delegate to the container's override.
//  3. Otherwise, run the documented default on the minimal contract
//     (Start / End / Next / At) alone.
//
// Because step 1 inspects the dynamic type, resolution is identical whether
// the caller holds the concrete container or an erased core.Container[E]
// value. There is exactly one code path per operation; static and erased
// call sites cannot diverge.
//
// Call-Site Flavors:
//
//	m := fixture.NewMinimal(1, 2, 3)
//
//	// static: concrete container, element type spelled at the call site
//	n := ops.Count[int](m)
//
//	// erased: interface value, full type inference
//	var c core.Container[int] = m
//	n = ops.Count(c)
//
// Operations:
//
//	Count, IsEmpty, First, UnderestimatedCount        // size & access
//	Elements, Collect, Map, Filter                    // traversal & transform
//	Find, Contains                                    // membership search
//	Flatten, FlattenSeqs                              // nested sources
//	RangeExtract, PrefixUpTo, PrefixThrough,
//	SuffixFrom, Split                                 // slicing
//	ReadRange, WriteRange, WithContiguous             // bulk range access
//	Advance, Distance                                 // position arithmetic
//
// Default-Algorithm Guarantees:
//
//   - IsEmpty compares Start() == End() and never counts.
//   - Count walks and counts and never consults IsEmpty.
//   - Map and Filter traverse their input exactly once.
//   - Map preallocates from UnderestimatedCount; for a truthful lower
//     bound the result capacity never exceeds twice the element count.
//   - Find stops at the first match.
//   - Split follows separator semantics exactly: maxSplits limits the
//     number of cuts, and once the limit is reached the remainder of the
//     container, separators included, becomes the final fragment.
//   - WriteRange validates the replacement length before writing anything.
//
// Failures:
//
// Operations report misuse by panicking with the stable diagnostics from
// core (foreign positions, out-of-range positions, inverted ranges,
// read-only writes, range-length mismatches). ops adds PanicNegativeDelta
// and PanicNegativeDistance for backward Advance and Distance on
// containers without random access, and PanicSplitLimit for a negative
// WithMaxSplits argument. No operation
// returns an error: every failure here is a programmer mistake, not a
// runtime condition.
package ops
