// Package runner executes each service's test suite and aggregates results.
//
// The runner is deliberately the opposite of the installer: it never stops
// early. Every service gets its turn even when an earlier one fails, and
// the summary reports the whole picture at the end.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	harnesserrors "github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/output"
	"github.com/ecomdemo/shopctl/internal/service"
	"github.com/ecomdemo/shopctl/internal/testparser"
)

// LogFileName is the transient per-service test log. It is written while
// the suite runs and removed afterwards unless --keep-logs is given.
const LogFileName = "test_output.log"

// TestExecutor runs one test suite and returns its combined output.
// passed reflects the process exit code; err is reserved for failures to
// launch the process at all.
type TestExecutor interface {
	RunTests(ctx context.Context, dir string, args []string, stream io.Writer) (out string, passed bool, err error)
}

// PytestExecutor runs suites through "python -m pytest" so the
// interpreter selection follows the directory's pyenv pin.
type PytestExecutor struct{}

// RunTests executes pytest in dir and captures its combined output while
// also streaming it to stream (if non-nil).
func (e *PytestExecutor) RunTests(ctx context.Context, dir string, args []string, stream io.Writer) (string, bool, error) {
	cmd := exec.CommandContext(ctx, "python", args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var buf bytes.Buffer
	var w io.Writer = &buf
	if stream != nil {
		w = io.MultiWriter(&buf, stream)
	}
	cmd.Stdout = w
	cmd.Stderr = w

	err := cmd.Run()
	if err == nil {
		return buf.String(), true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The suite ran and reported failures. Not a launch error.
		return buf.String(), false, nil
	}
	return buf.String(), false, fmt.Errorf("failed to run pytest: %w", err)
}

// Options controls a test run.
type Options struct {
	KeepLogs bool     // keep per-service log files after the run
	Pattern  string   // test file pattern passed to pytest
	Args     []string // extra arguments appended after the pattern
}

// Runner drives the per-service test loop.
type Runner struct {
	root     string
	out      *output.Writer
	executor TestExecutor
	parsers  *testparser.Registry
	opts     Options
}

// New creates a test runner rooted at the project directory.
func New(root string, executor TestExecutor, out *output.Writer, opts Options) *Runner {
	return &Runner{
		root:     root,
		out:      out,
		executor: executor,
		parsers:  testparser.NewRegistry(),
		opts:     opts,
	}
}

// RunAll runs every service's suite in catalog order and returns the
// aggregate report. A failing service never aborts the loop; only a
// cancelled context or a launch failure does.
func (r *Runner) RunAll(ctx context.Context, services []service.Service) (*Report, error) {
	report := &Report{}

	for _, svc := range services {
		if err := ctx.Err(); err != nil {
			return report, harnesserrors.Wrap(err, "test run interrupted")
		}

		res, err := r.runService(ctx, svc)
		if err != nil {
			return report, err
		}
		report.Add(res)

		if res.Passed {
			r.out.ServiceSuccess(svc.Name, fmt.Sprintf("%d passed", res.Count))
		} else {
			r.out.ServiceFailed(svc.Name, "tests", fmt.Errorf("%d failed", res.Count))
		}
	}

	return report, nil
}

func (r *Runner) runService(ctx context.Context, svc service.Service) (ServiceResult, error) {
	r.out.ServiceStart(svc.Name, "tests")
	dir := svc.Dir(r.root)
	logPath := filepath.Join(dir, LogFileName)

	args := r.testArgs()
	r.out.Verbose("Running: python %s (in %s)", strings.Join(args, " "), dir)

	start := time.Now()
	out, passed, err := r.executor.RunTests(ctx, dir, args, r.streamWriter())
	elapsed := time.Since(start)
	if err != nil {
		return ServiceResult{}, harnesserrors.ServiceErrorWrap(svc.Name, "pytest", err)
	}

	if werr := os.WriteFile(logPath, []byte(out), 0o644); werr != nil {
		r.out.Warning("could not write %s for %s: %v", LogFileName, svc.Name, werr)
		logPath = ""
	}

	counts := r.parseCounts(svc, out)
	res := ServiceResult{
		Name:     svc.Name,
		Title:    svc.Title,
		Passed:   passed,
		Count:    countOrDefault(counts, passed),
		Counts:   counts,
		Duration: elapsed,
		LogPath:  logPath,
	}

	if !r.opts.KeepLogs && logPath != "" {
		removeTransientLog(logPath)
		res.LogPath = ""
	}

	return res, nil
}

// testArgs builds the pytest invocation for one run.
func (r *Runner) testArgs() []string {
	args := []string{"-m", "pytest"}
	if r.opts.Pattern != "" {
		args = append(args, r.opts.Pattern)
	}
	return append(args, r.opts.Args...)
}

// parseCounts picks the parser registered for the service's runner.
// An unknown runner falls through to pytest so the run still produces
// usable counts.
func (r *Runner) parseCounts(svc service.Service, out string) testparser.TestCounts {
	parser := r.parsers.GetParser(svc.Runner)
	if parser == nil {
		parser = r.parsers.GetParser("pytest")
	}
	return parser.Parse(out)
}

// countOrDefault resolves the tests counted toward the aggregate. When
// the output yielded no parseable summary, a passing suite counts as 0
// and a failing suite counts as 1, so a crash before any test ran still
// registers as a failure.
func countOrDefault(counts testparser.TestCounts, passed bool) int {
	if passed {
		if counts.Parsed {
			return counts.Passed
		}
		return 0
	}
	if counts.Parsed && counts.Failed > 0 {
		return counts.Failed
	}
	return 1
}

// removeTransientLog deletes the per-service log, tolerating a log that
// was already removed.
func removeTransientLog(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// Best effort only. A stale log is an annoyance, not a failure.
		fmt.Fprintf(os.Stderr, "warning: could not remove %s: %v\n", path, err)
	}
}

// streamWriter returns the writer for live pytest output, or nil when
// quiet mode suppresses it.
func (r *Runner) streamWriter() io.Writer {
	if r.out.Quiet() {
		return nil
	}
	return os.Stdout
}

// PrintSummary writes the colorized aggregate summary.
func PrintSummary(w *output.Writer, report *Report) {
	w.SummaryHeader("Test Summary")
	w.SummaryItem("Services", fmt.Sprintf("%d", len(report.Results)))
	w.SummaryPassed("Total passed", fmt.Sprintf("%d", report.TotalPassed))
	w.SummaryFailed("Total failed", fmt.Sprintf("%d", report.TotalFailed))
	w.SummaryItem("Duration", output.FormatDuration(report.TotalDuration))

	w.Println("")
	w.SummarySectionLabel("Services:")
	for _, res := range report.Results {
		detail := ""
		if !res.Passed {
			detail = fmt.Sprintf("%d failed", res.Count)
		}
		w.SummaryAction(res.Title, res.Passed, output.FormatDuration(res.Duration), detail)
	}

	if report.Ok() {
		w.FinalSuccess("All tests passed (%d total)", report.TotalPassed)
		return
	}

	w.Println("")
	w.SummarySectionLabel("Failed Services:")
	for _, name := range report.FailedServices {
		w.CheckFail(name, "")
	}
	w.FinalFailure("%d service(s) failed", len(report.FailedServices))
}
