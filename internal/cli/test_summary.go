package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/output"
	"github.com/ecomdemo/shopctl/internal/testparser"
)

// cmdTestSummary parses a saved test log (or stdin with "-") and prints
// the counts without rerunning anything. Useful with test --keep-logs.
func cmdTestSummary(out *output.Writer, args []string) int {
	if wantsHelp(args) {
		printTestSummaryHelp(out)
		return errors.ExitSuccess
	}

	if len(args) != 1 {
		out.ErrorPrefix("test-summary requires exactly one argument: a log file or - for stdin")
		return errors.ExitConfigError
	}

	data, err := readLogInput(args[0])
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}

	parser := testparser.NewRegistry().GetParser("pytest")
	counts := parser.Parse(string(data))

	printTestCounts(out, counts)

	if counts.Failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

func readLogInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return data, nil
}

func printTestCounts(out *output.Writer, counts testparser.TestCounts) {
	out.SummaryHeader("Test Summary")

	if !counts.Parsed {
		out.Warning("no test summary found in input")
		return
	}

	out.SummaryPassed("Passed", fmt.Sprintf("%d", counts.Passed))
	out.SummaryFailed("Failed", fmt.Sprintf("%d", counts.Failed))
	if counts.Skipped > 0 {
		out.SummaryItem("Skipped", fmt.Sprintf("%d", counts.Skipped))
	}
	out.SummaryItem("Total", fmt.Sprintf("%d", counts.Total))

	if len(counts.FailedTests) > 0 {
		out.Println("")
		out.SummarySectionLabel("Failed Tests:")
		for _, ft := range counts.FailedTests {
			out.SummaryAction(ft.Name, false, "", ft.Reason)
		}
	}
}
