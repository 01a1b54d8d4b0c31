// This file implements the per-point resolution log. A Log keeps two
// counters per customization point, one for calls that reached the base
// container's override and one for calls that fell through to the
// default algorithm; their sum is the hit count of the point.

package dispatch

// Log accumulates resolution counts for one wrapped container.
//
// The zero value is an empty log. A Log is not safe for concurrent use;
// wrap a separate container per goroutine instead of sharing one.
type Log struct {
	overrides [numPoints]int
	defaults  [numPoints]int
}

// record notes one hit at p, classified by whether the base container's
// own override handled it.
func (l *Log) record(p Point, override bool) {
	if override {
		l.overrides[p]++
		return
	}
	l.defaults[p]++
}

// Hits returns how many calls arrived at p, regardless of how they
// resolved.
func (l *Log) Hits(p Point) int {
	return l.overrides[p] + l.defaults[p]
}

// Overrides returns how many calls at p resolved to the base
// container's own implementation.
func (l *Log) Overrides(p Point) int {
	return l.overrides[p]
}

// Defaults returns how many calls at p fell through to the default
// algorithm.
func (l *Log) Defaults(p Point) int {
	return l.defaults[p]
}

// Total returns the number of hits across all points.
func (l *Log) Total() int {
	total := 0
	for i := range l.overrides {
		total += l.overrides[i] + l.defaults[i]
	}

	return total
}

// Only reports whether the log holds at least one hit and every hit
// landed on p. It is the usual assertion after driving a single
// operation through a wrapper.
func (l *Log) Only(p Point) bool {
	return l.Hits(p) > 0 && l.Total() == l.Hits(p)
}

// Counts returns the nonzero hit counts keyed by point. The map is a
// snapshot; mutating it does not touch the log.
func (l *Log) Counts() map[Point]int {
	counts := make(map[Point]int)
	for i := 0; i < numPoints; i++ {
		if n := l.Hits(Point(i)); n > 0 {
			counts[Point(i)] = n
		}
	}

	return counts
}

// Reset zeroes every counter, keeping the log attached to its wrapper.
func (l *Log) Reset() {
	l.overrides = [numPoints]int{}
	l.defaults = [numPoints]int{}
}
