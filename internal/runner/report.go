package runner

import (
	"time"

	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/testparser"
)

// ServiceResult holds the outcome of one service's test run.
type ServiceResult struct {
	Name     string // service identifier
	Title    string // display label used in summaries
	Passed   bool   // exit code zero
	Count    int    // tests counted toward the aggregate total
	Counts   testparser.TestCounts
	Duration time.Duration
	LogPath  string // transient log location, empty once removed
}

// Report accumulates results across the whole run. Results keeps the
// order services were executed in, and FailedServices preserves that
// same order for the failing subset.
type Report struct {
	TotalPassed    int
	TotalFailed    int
	FailedServices []string
	Results        []ServiceResult
	TotalDuration  time.Duration
}

// Add records one service result into the aggregate.
func (r *Report) Add(res ServiceResult) {
	r.Results = append(r.Results, res)
	r.TotalDuration += res.Duration
	if res.Passed {
		r.TotalPassed += res.Count
	} else {
		r.TotalFailed += res.Count
		r.FailedServices = append(r.FailedServices, res.Title)
	}
}

// Ok reports whether every service passed.
func (r *Report) Ok() bool {
	return len(r.FailedServices) == 0
}

// ExitCode maps the aggregate outcome to a process exit code.
func (r *Report) ExitCode() int {
	if r.Ok() {
		return errors.ExitSuccess
	}
	return errors.ExitRuntimeError
}
