// This file implements the scenario suite: registration, isolated
// execution, result collection, and the go test bridge.

package check

import (
	"fmt"
	"testing"

	"go.uber.org/zap"
)

// Body is the code of one scenario, run against a fresh recorder.
type Body func(t *T)

// scenario is one registered entry. wantFatal is empty for regular
// scenarios; expected-fatal scenarios carry the exact diagnostic text.
type scenario struct {
	name      string
	body      Body
	wantFatal string
}

// Result is the outcome of one scenario run.
type Result struct {
	// Name is the scenario name as registered.
	Name string

	// Failures holds the recorded failure messages in record order,
	// empty on success.
	Failures []string
}

// Passed reports whether the scenario recorded no failures.
func (r Result) Passed() bool { return len(r.Failures) == 0 }

// SuiteOption configures a Suite at construction.
type SuiteOption func(*Suite)

// WithLogger routes scenario lifecycle logging to logger. A nil logger
// keeps the default nop.
func WithLogger(logger *zap.Logger) SuiteOption {
	return func(s *Suite) {
		if logger != nil {
			s.log = logger
		}
	}
}

// Suite is an ordered registry of named scenarios with isolated
// execution.
//
// Register all scenarios first, then call Run or RunT; the zero set runs
// as an empty suite. A Suite is not safe for concurrent registration,
// but distinct scenarios share no state and may be run from the results
// of one Run call in any order.
type Suite struct {
	log       *zap.Logger
	scenarios []scenario
	names     map[string]struct{}
}

// NewSuite returns an empty suite. Lifecycle logging defaults to a nop
// logger; pass WithLogger to see it.
func NewSuite(opts ...SuiteOption) *Suite {
	s := &Suite{
		log:   zap.NewNop(),
		names: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register adds a scenario that passes when its body records no
// failures and panics nowhere.
func (s *Suite) Register(name string, body Body) error {
	return s.add(name, body, "")
}

// RegisterFatal adds a scenario that passes only when its body fails
// with exactly the wantDiagnostic panic text. Returning normally or
// failing with any other diagnostic fails the scenario.
func (s *Suite) RegisterFatal(name, wantDiagnostic string, body Body) error {
	return s.add(name, body, wantDiagnostic)
}

// MustRegister is Register for static scenario tables; registration
// errors are programmer mistakes and panic.
func (s *Suite) MustRegister(name string, body Body) {
	if err := s.Register(name, body); err != nil {
		panic(err)
	}
}

// MustRegisterFatal is RegisterFatal for static scenario tables.
func (s *Suite) MustRegisterFatal(name, wantDiagnostic string, body Body) {
	if err := s.RegisterFatal(name, wantDiagnostic, body); err != nil {
		panic(err)
	}
}

// add validates and appends one scenario.
func (s *Suite) add(name string, body Body, wantFatal string) error {
	if name == "" {
		return ErrEmptyScenarioName
	}
	if body == nil {
		return fmt.Errorf("%w: %s", ErrNilScenarioBody, name)
	}
	if _, dup := s.names[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateScenario, name)
	}

	s.names[name] = struct{}{}
	s.scenarios = append(s.scenarios, scenario{name: name, body: body, wantFatal: wantFatal})

	return nil
}

// Len returns the number of registered scenarios.
func (s *Suite) Len() int { return len(s.scenarios) }

// Names returns the scenario names in registration order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.scenarios))
	for i, sc := range s.scenarios {
		names[i] = sc.name
	}

	return names
}

// Run executes every scenario in registration order and returns one
// Result per scenario. Failures never stop the run.
func (s *Suite) Run() []Result {
	s.log.Info("suite run starting", zap.Int("scenarios", len(s.scenarios)))

	results := make([]Result, 0, len(s.scenarios))
	failed := 0
	for _, sc := range s.scenarios {
		res := s.runOne(sc)
		if !res.Passed() {
			failed++
		}
		results = append(results, res)
	}

	s.log.Info("suite run finished",
		zap.Int("scenarios", len(s.scenarios)),
		zap.Int("failed", failed))

	return results
}

// RunT executes every scenario as a subtest of t, reporting each
// recorded failure through t.Error so go test attributes them to the
// scenario's subtest.
func (s *Suite) RunT(t *testing.T) {
	t.Helper()
	for _, sc := range s.scenarios {
		t.Run(sc.name, func(t *testing.T) {
			for _, failure := range s.runOne(sc).Failures {
				t.Error(failure)
			}
		})
	}
}

// runOne executes a single scenario in isolation: a fresh recorder, a
// recover barrier, and the expected-fatal comparison when one was
// registered.
func (s *Suite) runOne(sc scenario) Result {
	s.log.Debug("scenario starting", zap.String("scenario", sc.name))

	rec := NewT(sc.name)
	diag, panicked := capture(func() { sc.body(rec) })

	switch {
	case sc.wantFatal == "" && panicked:
		rec.Failf("unexpected fatal: %s", diag)
	case sc.wantFatal != "" && !panicked:
		rec.Failf("expected fatal %q, but the scenario completed normally", sc.wantFatal)
	case sc.wantFatal != "" && diag != sc.wantFatal:
		rec.Failf("fatal diagnostic mismatch: want %q, got %q", sc.wantFatal, diag)
	}

	res := Result{Name: sc.name, Failures: rec.Failures()}
	if res.Passed() {
		s.log.Debug("scenario passed", zap.String("scenario", sc.name))
	} else {
		s.log.Warn("scenario failed",
			zap.String("scenario", sc.name),
			zap.Strings("failures", res.Failures))
	}

	return res
}
