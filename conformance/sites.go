// This file declares the call-site vocabulary scenario names are built
// from.

package conformance

import "fmt"

// Site names the call-site flavor a scenario drives an operation from.
// The two flavors must resolve every customization point identically;
// the battery registers most behavior under both.
type Site int

const (
	// Static marks call sites that hold the concrete container type and
	// spell the element type at the call, as in ops.Count[int](m).
	Static Site = iota

	// Erased marks call sites that hold only a core.Container interface
	// value and leave the element type to inference, as in ops.Count(c).
	Erased
)

// String returns the site label used in scenario names, or "site(N)" for
// values outside the enumerated set.
func (s Site) String() string {
	switch s {
	case Static:
		return "static"
	case Erased:
		return "erased"
	default:
		return fmt.Sprintf("site(%d)", int(s))
	}
}

// Sites returns both call-site flavors in declaration order.
func Sites() []Site {
	return []Site{Static, Erased}
}
