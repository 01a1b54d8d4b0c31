// This file declares the sentinel errors returned by scenario
// registration. Registration problems are recoverable and reported as
// errors; everything that goes wrong while a scenario runs is recorded
// on its result instead.

package check

import "errors"

// ErrEmptyScenarioName reports registration under an empty name. Names
// key results and subtests, so a blank one would make failures
// unaddressable.
// Usage: if errors.Is(err, check.ErrEmptyScenarioName) { ... }.
var ErrEmptyScenarioName = errors.New("check: empty scenario name")

// ErrNilScenarioBody reports registration of a scenario without a body.
// Usage: if errors.Is(err, check.ErrNilScenarioBody) { ... }.
var ErrNilScenarioBody = errors.New("check: nil scenario body")

// ErrDuplicateScenario reports a second registration under a name the
// suite already holds.
// Usage: if errors.Is(err, check.ErrDuplicateScenario) { ... }.
var ErrDuplicateScenario = errors.New("check: duplicate scenario name")
