// This file implements the slicing operations: RangeExtract, the three
// prefix/suffix extractors, and separator splitting.

package ops

import (
	"github.com/katalvlaran/seqcheck/core"
)

// RangeExtract returns the live view of the elements of c in [from, to).
//
// Resolution: core.RangeExtractor override when present; otherwise a
// direct core.NewView over c. Either way extraction is self-similar:
// extracting the full range of a view reproduces that view, because views
// flatten onto their root base at construction.
// Complexity: O(1).
func RangeExtract[E any](c core.Container[E], from, to core.Position) core.View[E] {
	if rx, ok := c.(core.RangeExtractor[E]); ok {
		return rx.ExtractRange(from, to)
	}

	return core.NewView(c, from, to)
}

// PrefixUpTo returns the view of the elements of c strictly before p.
// Passing End() yields the whole container; passing Start() yields an
// empty view.
//
// Resolution: core.Slicer override when present; otherwise extraction of
// [Start(), p), which routes through a RangeExtractor override when the
// container has one.
// Complexity: O(1).
func PrefixUpTo[E any](c core.Container[E], p core.Position) core.View[E] {
	if s, ok := c.(core.Slicer[E]); ok {
		return s.PrefixUpTo(p)
	}

	return RangeExtract(c, c.Start(), p)
}

// PrefixThrough returns the view of the elements of c up to and including
// the element at p. Passing End() is fatal: there is no element at End()
// to include.
//
// Resolution: core.Slicer override when present; otherwise extraction of
// [Start(), Next(p)), inheriting Next's position validation.
// Complexity: O(1) plus the container's Next cost.
func PrefixThrough[E any](c core.Container[E], p core.Position) core.View[E] {
	if s, ok := c.(core.Slicer[E]); ok {
		return s.PrefixThrough(p)
	}

	return RangeExtract(c, c.Start(), c.Next(p))
}

// SuffixFrom returns the view of the elements of c from p to the end.
// Passing End() yields an empty view.
//
// Resolution: core.Slicer override when present; otherwise extraction of
// [p, End()).
// Complexity: O(1).
func SuffixFrom[E any](c core.Container[E], p core.Position) core.View[E] {
	if s, ok := c.(core.Slicer[E]); ok {
		return s.SuffixFrom(p)
	}

	return RangeExtract(c, p, c.End())
}

// Split cuts c at every element matching isSep and returns the fragments
// as views in order, configured by the options.
//
// Defaults: unlimited cuts, empty fragments omitted. See SplitBy for the
// exact separator semantics; Split only translates options into SplitBy
// parameters.
func Split[E any](c core.Container[E], isSep func(E) bool, opts ...SplitOption) []core.View[E] {
	cfg := defaultSplitConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return SplitBy(c, isSep, cfg.maxSplits, cfg.keepEmpty)
}

// SplitBy is the raw-parameter form of Split, mirroring the core.Splitter
// capability signature. maxSplits < 0 means unlimited; maxSplits = 0
// yields the whole container as one fragment; keepEmpty preserves empty
// fragments.
//
// Resolution: core.Splitter override when the dynamic type provides one;
// otherwise a single positional walk with these guarantees:
//
//   - A fragment ends at each separator; the separator itself belongs to
//     no fragment.
//   - Once maxSplits fragments have been cut off, scanning stops and the
//     remainder of the container, separators included, becomes the final
//     fragment.
//   - The trailing fragment after the last separator is always produced,
//     subject to the keepEmpty rule like every other fragment.
//
// Complexity: O(n) plus n isSep calls without an override.
func SplitBy[E any](c core.Container[E], isSep func(E) bool, maxSplits int, keepEmpty bool) []core.View[E] {
	if s, ok := c.(core.Splitter[E]); ok {
		return s.SplitBy(isSep, maxSplits, keepEmpty)
	}

	var frags []core.View[E]
	start := c.Start()
	end := c.End()

	// emit appends the fragment [start, to) unless it is empty and empty
	// fragments are being omitted. Fragments extract through RangeExtract
	// so a RangeExtractor override shapes them too. Reports whether it
	// appended.
	emit := func(to core.Position) bool {
		if start == to && !keepEmpty {
			return false
		}
		frags = append(frags, RangeExtract(c, start, to))

		return true
	}

	if maxSplits == 0 || start == end {
		emit(end)

		return frags
	}

	for p := start; p != end; {
		if !isSep(c.At(p)) {
			p = c.Next(p)

			continue
		}
		cut := emit(p)
		p = c.Next(p)
		start = p
		if cut && maxSplits > 0 && len(frags) == maxSplits {
			break
		}
	}

	if start != end || keepEmpty {
		frags = append(frags, RangeExtract(c, start, end))
	}

	return frags
}
