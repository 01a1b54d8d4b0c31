// Package core defines the position-based container contract and the
// optional capability interfaces that containers may implement on top of it.
//
// The contract C over element type E is deliberately minimal:
//
//	Start() Position          // first position, or End() when empty
//	End() Position            // one-past-the-last sentinel
//	Next(p Position) Position // successor of p; fatal on End()
//	At(p Position) E          // element at p; fatal on End()
//
// Everything else (counting, searching, slicing, bulk range access) is an
// optional capability. A container advertises a capability by implementing
// the corresponding interface; algorithms in ops discover capabilities with
// a single type assertion and fall back to documented defaults otherwise:
//
//	if c, ok := any(c).(core.Counter); ok {
//	    return c.Count() // container-supplied override
//	}
//	// walk Start()..End() instead
//
// Because discovery happens at run time against the dynamic type, the same
// override is found whether the caller holds the concrete container type or
// an erased core.Container[E] interface value. Static and erased call sites
// resolve identically.
//
// Capability Interfaces:
//
//	Counter            – Count() int, exact element count
//	EmptyChecker       – IsEmpty() bool
//	Firster[E]         – First() (E, bool)
//	Finder[E]          – FindFirst(target, eq), membership search
//	Splitter[E]        – SplitBy(isSep, maxSplits, keepEmpty)
//	Slicer[E]          – PrefixUpTo / PrefixThrough / SuffixFrom
//	RangeExtractor[E]  – ExtractRange(from, to) View[E]
//	RangeGetter[E]     – ReadRange(from, to) []E, detached snapshot
//	RangeSetter[E]     – WriteRange(from, to, repl), length-checked
//	BulkAccessor[E]    – WithContiguous(fn), borrow backing storage
//	RandomAccessor     – Advance / Distance in O(1)
//	Setter[E]          – SetAt(p, v), single-element write
//	Iterable[E]        – Elements() iter.Seq[E]
//	CountEstimator     – UnderestimatedCount() int, lower bound only
//	Mapper[E, R]       – MapElements(transform) []R
//	Filterer[E]        – FilterElements(keep) []E
//
// Positions:
//
// A Position is an opaque cursor stamped with the InstanceID of the container
// that minted it. Containers must reject positions owned by another instance
// (PanicForeignPosition) and positions at or past End() where an element is
// required (PanicPositionRange). Offset must strictly increase along the
// successor chain; algorithms never interpret it, but View relies on its
// order for bounds checks.
//
// View:
//
// View[E] is a lightweight sub-range of a base container. It implements
// Container[E] itself, shares the base's positions unchanged, and flattens
// on re-extraction: a view of a view is a view of the root base.
//
// Panics:
//
//	PanicForeignPosition – position minted by a different instance
//	PanicPositionRange   – position at or past the valid range
//	PanicInvertedRange   – range upper bound precedes lower bound
//	PanicReadOnly        – element write on a read-only container
//	PanicReplaceSmaller  – range replacement shorter than the target range
//	PanicReplaceLarger   – range replacement longer than the target range
//	PanicNilBase         – View constructed over a nil base
//
// All panics are programmer errors, not runtime conditions: they indicate a
// misused contract, carry stable string diagnostics, and are never recovered
// by this module.
package core
