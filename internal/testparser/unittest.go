package testparser

import "regexp"

// Static regexes for Python unittest output parsing.
var (
	unittestRanRegex  = regexp.MustCompile(`Ran (\d+) tests? in`)
	unittestFailRegex = regexp.MustCompile(`failures=(\d+)`)
	unittestErrRegex  = regexp.MustCompile(`errors=(\d+)`)
	unittestSkipRegex = regexp.MustCompile(`skipped=(\d+)`)
)

// UnittestParser parses Python unittest output.
type UnittestParser struct{}

// Name returns the parser name.
func (p *UnittestParser) Name() string {
	return "unittest"
}

// Parse extracts test counts from unittest output.
// unittest ends its run with lines like:
//
//	Ran 12 tests in 0.034s
//	OK
//
// or, on failure:
//
//	Ran 12 tests in 0.034s
//	FAILED (failures=2, errors=1)
func (p *UnittestParser) Parse(output string) TestCounts {
	counts := TestCounts{}

	total, ok := lastCount(unittestRanRegex, output)
	if !ok {
		return counts
	}
	counts.Parsed = true
	counts.Total = total

	// Failures and errors both count as failed runs.
	if n, ok := lastCount(unittestFailRegex, output); ok {
		counts.Failed += n
	}
	if n, ok := lastCount(unittestErrRegex, output); ok {
		counts.Failed += n
	}
	if n, ok := lastCount(unittestSkipRegex, output); ok {
		counts.Skipped = n
	}

	counts.Passed = counts.Total - counts.Failed - counts.Skipped
	if counts.Passed < 0 {
		counts.Passed = 0
	}

	return counts
}
