// This file verifies the assembled battery: every scenario passes,
// every dispatch point is covered, runs are isolated under concurrency,
// and the exported container-law battery works at both call sites.

package conformance_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqcheck/check"
	"github.com/katalvlaran/seqcheck/conformance"
	"github.com/katalvlaran/seqcheck/core"
	"github.com/katalvlaran/seqcheck/dispatch"
	"github.com/katalvlaran/seqcheck/fixture"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestSuite_RunT executes the full battery as subtests, one per
// scenario, so a regression is attributed to its scenario name.
func TestSuite_RunT(t *testing.T) {
	conformance.NewSuite().RunT(t)
}

// TestSuite_AllScenariosPass runs the battery standalone and requires a
// clean sheet, with every registered scenario accounted for.
func TestSuite_AllScenariosPass(t *testing.T) {
	s := conformance.NewSuite()
	results := s.Run()

	require.Len(t, results, s.Len())
	for _, res := range results {
		assert.Empty(t, res.Failures, "scenario %s", res.Name)
	}
}

// TestSuite_CoversEveryPoint verifies the battery carries a parity
// scenario for every logged dispatch point.
func TestSuite_CoversEveryPoint(t *testing.T) {
	names := make(map[string]struct{})
	for _, name := range conformance.NewSuite().Names() {
		names[name] = struct{}{}
	}

	for _, p := range dispatch.Points() {
		assert.Contains(t, names, "parity/"+p.String())
	}
}

// TestSuite_ParallelIsolation runs several full batteries concurrently.
// Fixtures are per-scenario and suites share nothing, so every run must
// come back clean.
func TestSuite_ParallelIsolation(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for _, res := range conformance.NewSuite().Run() {
				if !res.Passed() {
					return fmt.Errorf("scenario %s failed: %v", res.Name, res.Failures)
				}
			}

			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestSuite_LogsCleanRun wires a real logger through the battery and
// verifies the run summary reports zero failed scenarios.
func TestSuite_LogsCleanRun(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	_ = conformance.NewSuite(check.WithLogger(zap.New(obs))).Run()

	finished := logs.FilterMessage("suite run finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(0), finished[0].ContextMap()["failed"])
}

// TestCheckContainer_BothSites runs the law battery over a concrete
// fixture and over the same fixture behind the container interface.
func TestCheckContainer_BothSites(t *testing.T) {
	rec := check.NewT("laws")

	conformance.CheckContainer(rec, fixture.NewMinimal(1, 2, 3), []int{1, 2, 3})

	var c core.Container[int] = fixture.NewMinimal(1, 2, 3)
	conformance.CheckContainer(rec, c, []int{1, 2, 3})

	assert.False(t, rec.Failed(), "failures: %v", rec.Failures())
}

// TestCheckContainer_CatchesViolation feeds the battery a wrong
// expectation and requires it to record the mismatch.
func TestCheckContainer_CatchesViolation(t *testing.T) {
	rec := check.NewT("laws")
	conformance.CheckContainer(rec, fixture.NewMinimal(1, 2, 3), []int{1, 2, 9})

	assert.True(t, rec.Failed())
	assert.NotEmpty(t, rec.Failures())
}

// TestSite_Labels verifies the call-site names used in scenario paths.
func TestSite_Labels(t *testing.T) {
	assert.Equal(t, "static", conformance.Static.String())
	assert.Equal(t, "erased", conformance.Erased.String())
	assert.Equal(t, "site(9)", conformance.Site(9).String())
	assert.Equal(t, []conformance.Site{conformance.Static, conformance.Erased}, conformance.Sites())
}
