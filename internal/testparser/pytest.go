package testparser

import (
	"regexp"
	"strconv"
	"strings"
)

// Static regexes for pytest output parsing.
// Compiled once at package init for performance.
var (
	pytestPassedRegex  = regexp.MustCompile(`(\d+) passed`)
	pytestFailedRegex  = regexp.MustCompile(`(\d+) failed`)
	pytestSkippedRegex = regexp.MustCompile(`(\d+) skipped`)
	pytestFailedLine   = regexp.MustCompile(`(?m)^FAILED\s+(\S+)(?:\s+-\s+(.*))?$`)
)

// PytestParser parses Python pytest output.
type PytestParser struct{}

// Name returns the parser name.
func (p *PytestParser) Name() string {
	return "pytest"
}

// Parse extracts test counts from pytest output.
// pytest outputs summary lines like:
//
//	======= 47 passed in 0.12s =======
//	======= 45 passed, 2 failed in 0.12s =======
//	======= 30 passed, 0 failed, 3 skipped in 0.12s =======
//
// Counts are taken from the LAST matching occurrence: test bodies may
// print arbitrary text (including "N passed"), and the summary line is
// always the final one pytest emits.
func (p *PytestParser) Parse(output string) TestCounts {
	counts := TestCounts{}

	if n, ok := lastCount(pytestPassedRegex, output); ok {
		counts.Passed = n
		counts.Parsed = true
	}

	if n, ok := lastCount(pytestFailedRegex, output); ok {
		counts.Failed = n
		counts.Parsed = true
	}

	if n, ok := lastCount(pytestSkippedRegex, output); ok {
		counts.Skipped = n
		counts.Parsed = true
	}

	if counts.Parsed {
		counts.Total = counts.Passed + counts.Failed + counts.Skipped
	}

	if counts.Failed > 0 {
		counts.FailedTests = extractFailedTests(output)
	}

	return counts
}

// lastCount returns the integer captured by the last match of re in output.
func lastCount(re *regexp.Regexp, output string) (int, bool) {
	matches := re.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return 0, false
	}
	last := matches[len(matches)-1]
	if len(last) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(last[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// extractFailedTests collects failed test identifiers from the short
// test summary section pytest prints with --tb=short:
//
//	FAILED test_payment.py::test_refund - AssertionError: expected 'refunded'
func extractFailedTests(output string) []FailedTest {
	var failed []FailedTest
	for _, match := range pytestFailedLine.FindAllStringSubmatch(output, -1) {
		ft := FailedTest{Name: match[1]}
		if len(match) > 2 {
			ft.Reason = truncateReason(strings.TrimSpace(match[2]))
		}
		failed = append(failed, ft)
	}
	return failed
}

// truncateReason shortens long failure reasons. 80 chars is a common
// terminal width that keeps failure reasons readable in summary output
// without excessive wrapping.
func truncateReason(reason string) string {
	const maxLen = 80
	if len(reason) > maxLen {
		return reason[:maxLen-3] + "..."
	}
	return reason
}
