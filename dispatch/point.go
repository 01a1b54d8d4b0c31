// This file enumerates the logged customization points. Each Point
// identifies one operation whose resolution (override versus default)
// the Logged wrapper records; the set and its names are stable so that
// scenario tables and log assertions can refer to them by value.

package dispatch

import "fmt"

// Point identifies one logged customization point on a wrapped
// container.
type Point int

const (
	// PointCount is the element-count query.
	PointCount Point = iota
	// PointIsEmpty is the emptiness query.
	PointIsEmpty
	// PointFirst is the first-element query.
	PointFirst
	// PointFind is the membership search for an equal element.
	PointFind
	// PointSplit is separator splitting.
	PointSplit
	// PointPrefixThrough is the inclusive prefix extraction.
	PointPrefixThrough
	// PointPrefixUpTo is the exclusive prefix extraction.
	PointPrefixUpTo
	// PointSuffixFrom is the inclusive suffix extraction.
	PointSuffixFrom
	// PointRangeGet is the reading range subscript.
	PointRangeGet
	// PointRangeSet is the writing range subscript.
	PointRangeSet
	// PointBulkAccess is the contiguous-buffer fast path.
	PointBulkAccess

	// numPoints sizes the per-point counter arrays.
	numPoints = int(PointBulkAccess) + 1
)

// pointNames maps each Point to its stable display name.
var pointNames = [numPoints]string{
	PointCount:         "count",
	PointIsEmpty:       "isEmpty",
	PointFirst:         "first",
	PointFind:          "membership-search",
	PointSplit:         "split",
	PointPrefixThrough: "prefix-through",
	PointPrefixUpTo:    "prefix-up-to",
	PointSuffixFrom:    "suffix-from",
	PointRangeGet:      "range-subscript-get",
	PointRangeSet:      "range-subscript-set",
	PointBulkAccess:    "bulk-buffer-access",
}

// String returns the stable name of the point, or "point(N)" for values
// outside the enumerated set.
func (p Point) String() string {
	if p < 0 || int(p) >= numPoints {
		return fmt.Sprintf("point(%d)", int(p))
	}

	return pointNames[p]
}

// Points returns every logged point in declaration order. The returned
// slice is fresh on each call; callers may reorder or trim it freely.
func Points() []Point {
	all := make([]Point, numPoints)
	for i := range all {
		all[i] = Point(i)
	}

	return all
}
