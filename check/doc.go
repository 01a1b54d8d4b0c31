// Package check provides the assertion primitives and the scenario suite
// the conformance battery runs on.
//
// The package splits verification into two layers:
//
//   - T, a per-scenario recorder. Assertion mismatches record a failure
//     message and let the scenario continue, so one run reports every
//     divergence instead of the first.
//   - Suite, a named-scenario registry with isolated execution. A
//     scenario either passes as a whole or carries its ordered failure
//     list; an unexpected panic fails that scenario without aborting the
//     rest of the suite.
//
// Contract misuse inside a scenario stays fatal: the diagnostics are
// panics, and the runner only converts them into failures. Scenarios
// that must end in such a diagnostic are registered with RegisterFatal
// and pass only when the panic text matches verbatim; FatalMatches does
// the same for a single call inside a regular scenario.
//
// Equality assertions diff through go-cmp, so failure messages show the
// exact divergence. Suites log scenario lifecycle through zap; the
// default logger is a nop, WithLogger swaps it.
//
// Typical wiring:
//
//	s := check.NewSuite()
//	s.MustRegister("count/empty", func(t *check.T) {
//	    check.Equal(t, 0, ops.Count[int](fixture.NewMinimal[int]()))
//	})
//	for _, r := range s.Run() {
//	    // r.Name, r.Passed(), r.Failures
//	}
//
// Inside go test, Suite.RunT bridges every scenario to a subtest.
package check
