// Package conformance is the resolution-rule battery: the scenarios that
// hold the dispatch contract to account.
//
// The contract under test has two halves. A container that supplies its
// own implementation of an operation must be the one invoked, whether
// the call site holds the concrete type or only the abstract
// core.Container interface. A container that supplies none must fall
// back to exactly one documented default algorithm, with the documented
// traversal cost and side effects, which the fixture trackers make
// countable.
//
// NewSuite assembles the full battery onto a check.Suite:
//
//   - container laws for every positional fixture at both call sites
//   - size, emptiness, first-element, and estimate-policy scenarios
//   - transformation, filtering, iteration, and flattening scenarios
//     with exact call counts and unchanged-source assertions
//   - membership search with short-circuit and hash-override counting
//   - slicing, splitting, and range read/write scenarios, including the
//     expected-fatal replacement-length cases
//   - contract-misuse scenarios registered as expected fatals
//   - one cross-context parity scenario per logged customization point,
//     comparing a static and an erased run log for log equality
//
// Scenario names are slash-separated with the family first. Scenarios
// that run once per call site end in the Site vocabulary: "static" for
// call sites that spell the concrete fixture type, "erased" for call
// sites holding only a core.Container value.
// Every scenario constructs its own fixtures, so suites may run
// concurrently; the conformance tests do exactly that.
//
// Run the battery under go test with:
//
//	conformance.NewSuite().RunT(t)
//
// or headlessly with NewSuite().Run() and inspect the results.
package conformance
