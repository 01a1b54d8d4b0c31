// This file implements the assertion primitives over T. Mismatches
// record a failure and report false; only contract-misuse diagnostics
// coming out of the code under test panic, and FatalMatches is the
// primitive that captures those.

package check

import (
	"cmp"
	"fmt"

	gocmp "github.com/google/go-cmp/cmp"
)

// UnreachableMessage is the failure text recorded when a code path that
// must never run was reached. Scenarios match on it verbatim.
const UnreachableMessage = "unreachable code was reached"

// Equal records a failure unless got equals want under go-cmp, with any
// options applied. The failure carries the full diff. Reports whether
// the values were equal.
func Equal[V any](t *T, want, got V, opts ...gocmp.Option) bool {
	diff := gocmp.Diff(want, got, opts...)
	if diff == "" {
		return true
	}
	t.Failf("mismatch (-want +got):\n%s", diff)

	return false
}

// NotEqual records a failure when got equals unwanted under go-cmp, with
// any options applied. Reports whether the values differed.
func NotEqual[V any](t *T, unwanted, got V, opts ...gocmp.Option) bool {
	if !gocmp.Equal(unwanted, got, opts...) {
		return true
	}
	t.Failf("values are equal, both %+v", got)

	return false
}

// True records a formatted failure unless cond holds. Reports cond.
func True(t *T, cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	t.Failf(format, args...)

	return false
}

// Less records a failure unless a < b. Reports whether it held.
func Less[O cmp.Ordered](t *T, a, b O) bool {
	if a < b {
		return true
	}
	t.Failf("want %v < %v", a, b)

	return false
}

// LessOrEqual records a failure unless a <= b. Reports whether it held.
func LessOrEqual[O cmp.Ordered](t *T, a, b O) bool {
	if a <= b {
		return true
	}
	t.Failf("want %v <= %v", a, b)

	return false
}

// Unreachable records the stable UnreachableMessage failure. Place it on
// paths the code under test must never take, such as a callback that
// must not fire.
func Unreachable(t *T) {
	t.Failf(UnreachableMessage)
}

// FatalMatches runs body, which must fail with exactly the want
// diagnostic. A body that returns normally or fails with any other text
// records a failure. Reports whether the diagnostic matched.
func FatalMatches(t *T, want string, body func()) bool {
	diag, panicked := capture(body)
	if !panicked {
		t.Failf("expected fatal %q, but the body returned normally", want)

		return false
	}
	if diag != want {
		t.Failf("fatal diagnostic mismatch: want %q, got %q", want, diag)

		return false
	}

	return true
}

// capture runs body under recover and returns the panic value formatted
// with %v, plus whether body panicked at all.
func capture(body func()) (diag string, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			diag = fmt.Sprintf("%v", r)
			panicked = true
		}
	}()
	body()

	return "", false
}
