// Package fixture provides the synthetic containers every scenario runs
// against, plus the per-instance state tracker that makes algorithm
// behavior observable.
//
// Each fixture is deliberately simple and deliberately honest: it does
// exactly what its one capability promises and counts every time that
// capability is reached, so a scenario can prove not just "the result is
// right" but "the right implementation produced it, the right number of
// times, touching the elements the right number of times".
//
// Fixtures:
//
//	Minimal[E]      – the bare contract, no capability; every operation
//	                  resolves to its default algorithm
//	Mutable[E]      – random access, in-place writes, contiguous storage;
//	                  still no bulk range capability, so the default
//	                  ReadRange/WriteRange run against it
//	Counted[E]      – a declared count estimate: precise, half, or a fixed
//	                  literal taken at face value even when wrong
//	CustomMap[E]    – overrides same-type mapping, counts MapCalls
//	CustomFilter[E] – overrides filtering, counts FilterCalls
//	CustomIter[E]   – overrides iteration with a restartable sequence,
//	                  counts IterCalls
//	HashSet[E]      – bucketed membership and exact count overrides with
//	                  instrumented hash/equality functions
//	OneShot[E]      – a destructive forward-only stream, not a container;
//	                  once drained, every traversal yields nothing
//
// Tracker:
//
// Every positional fixture owns a Tracker carrying its InstanceID, element
// count, and traversal counters (Start/Next/At/Set). Only the fixture's own
// methods touch the tracker; algorithms cannot reach it through the
// container contract. Counters are per instance, with no shared state
// between fixtures, so scenarios may run concurrently; Reset rearms them
// between a setup walk and the measured call.
//
// Misuse:
//
// A position minted by one fixture and used against another panics with
// core.PanicForeignPosition; a position at or past End() where an element
// is required panics with core.PanicPositionRange. Construction problems
// (an unknown estimate policy, a negative literal, a missing hash or
// equality function) are ordinary errors checked with errors.Is.
package fixture
