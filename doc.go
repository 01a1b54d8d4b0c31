// Package seqcheck is a verification harness for sequence-like, indexable
// containers: it pins down which implementation a generic call resolves to.
//
// 🚀 What is seqcheck?
//
//	A library that separates container algorithms with default implementations
//	from container types that may override them, and then proves the dispatch
//	contract both ways:
//		• core/        — the Container interface, opaque Positions, capability
//		                 interfaces (one per customization point), read-only Views
//		• ops/         — the Default Algorithm Library: map, filter, membership
//		                 search, flatten, split, prefix/suffix, range read/write
//		• fixture/     — deliberately inefficient synthetic containers with
//		                 per-instance trackers that expose every default path
//		• dispatch/    — a logging wrapper that records, per customization point,
//		                 whether a call reached an override or fell to a default
//		• check/       — assertion primitives and an isolated scenario suite
//		• conformance/ — the resolution-rule battery: every algorithm crossed
//		                 with static and type-erased call sites
//
// ✨ Why seqcheck?
//
//   - Dispatch parity – a custom override must win whether the call site knows
//     the concrete type or only the abstract interface; one code path, proven
//   - Honest defaults – each fallback algorithm documents its complexity and
//     side-effect contract, and the fixtures catch silent regressions
//   - Loud misuse – cross-container positions, inverted ranges and mismatched
//     range replacement fail immediately with stable diagnostics
//
// Quick sketch:
//
//	m := fixture.NewMinimal(1, 2, 3)
//	doubled := ops.Map(m, func(v int) int { return v * 2 })
//	// doubled == [2 4 6]; the transform ran exactly once per element.
//
// Dive into conformance/ for the full battery and docs for the dispatch rules.
//
//	go get github.com/katalvlaran/seqcheck
package seqcheck
