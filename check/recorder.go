// This file implements T, the per-scenario failure recorder.

package check

import "fmt"

// T records the failures of one scenario in the order they occurred.
//
// Unlike testing.T, a mismatch never stops the scenario: assertions
// record and return, so a single run reports every divergence. A T is
// bound to one scenario and is not safe for concurrent use.
type T struct {
	name     string
	failures []string
}

// NewT returns a fresh recorder for the named scenario.
func NewT(name string) *T {
	return &T{name: name}
}

// Name returns the scenario name the recorder is bound to.
func (t *T) Name() string { return t.name }

// Failf records one formatted failure message.
func (t *T) Failf(format string, args ...any) {
	t.failures = append(t.failures, fmt.Sprintf(format, args...))
}

// Failed reports whether at least one failure has been recorded.
func (t *T) Failed() bool { return len(t.failures) > 0 }

// Failures returns a copy of the recorded messages in record order.
func (t *T) Failures() []string {
	return append([]string(nil), t.failures...)
}
