// Package integration exercises shopctl end to end against temp projects.
package integration

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecomdemo/shopctl/internal/cli"
	"github.com/ecomdemo/shopctl/internal/output"
	"github.com/ecomdemo/shopctl/internal/project"
	"github.com/ecomdemo/shopctl/internal/runner"
)

const demoConfig = `{
  "project": {
    "name": "shop-demo",
    "description": "E-commerce demo services"
  },
  "services": [
    {"name": "payment-gateway", "title": "Payment Gateway Service", "port": 5001},
    {"name": "ml-fraud-detection", "title": "ML Fraud Detection Service", "port": 5002},
    {"name": "inventory-api", "title": "Inventory API Service", "port": 5003},
    {"name": "analytics-processor", "title": "Analytics Processor Service", "port": 5004}
  ]
}`

var demoDirs = []string{"payment-gateway", "ml-fraud-detection", "inventory-api", "analytics-processor"}

func newDemoProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".shopctl"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".shopctl", "config.json"), []byte(demoConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, dir := range demoDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestLoadDemoProject(t *testing.T) {
	t.Parallel()

	root := newDemoProject(t)
	proj, err := project.LoadProjectFrom(root)
	if err != nil {
		t.Fatalf("LoadProjectFrom: %v", err)
	}
	if proj.Config.Project.Name != "shop-demo" {
		t.Errorf("project name = %q", proj.Config.Project.Name)
	}
	if got := proj.Services.Names(); strings.Join(got, ",") != strings.Join(demoDirs, ",") {
		t.Errorf("service order = %v", got)
	}
}

// scriptedExecutor serves canned pytest output per service directory.
type scriptedExecutor struct {
	outputs map[string]string
	passing map[string]bool
}

func (s *scriptedExecutor) RunTests(ctx context.Context, dir string, args []string, stream io.Writer) (string, bool, error) {
	name := filepath.Base(dir)
	return s.outputs[name], s.passing[name], nil
}

func TestFullTestRun(t *testing.T) {
	t.Parallel()

	root := newDemoProject(t)
	proj, err := project.LoadProjectFrom(root)
	if err != nil {
		t.Fatal(err)
	}

	exec := &scriptedExecutor{
		outputs: map[string]string{
			"payment-gateway":     "===== 8 passed in 0.21s =====",
			"ml-fraud-detection":  "===== 9 passed in 0.43s =====",
			"inventory-api":       "===== 3 failed, 9 passed in 0.37s =====",
			"analytics-processor": "===== 15 passed in 0.52s =====",
		},
		passing: map[string]bool{
			"payment-gateway":     true,
			"ml-fraud-detection":  true,
			"inventory-api":       false,
			"analytics-processor": true,
		},
	}

	var buf bytes.Buffer
	out := output.NewWithWriters(&buf, &buf, false)
	out.SetQuiet(true)

	r := runner.New(root, exec, out, runner.Options{
		Pattern: proj.Config.Tests.Pattern,
		Args:    proj.Config.Tests.Args,
	})
	report, err := r.RunAll(context.Background(), proj.Services.All())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	if report.TotalPassed != 32 {
		t.Errorf("TotalPassed = %d, want 32", report.TotalPassed)
	}
	if report.TotalFailed != 3 {
		t.Errorf("TotalFailed = %d, want 3", report.TotalFailed)
	}
	if len(report.FailedServices) != 1 || report.FailedServices[0] != "Inventory API Service" {
		t.Errorf("FailedServices = %v", report.FailedServices)
	}
	if report.ExitCode() != 1 {
		t.Errorf("ExitCode = %d, want 1", report.ExitCode())
	}

	// Summary rendering mentions the failing service.
	out.SetQuiet(false)
	runner.PrintSummary(out, report)
	if !strings.Contains(buf.String(), "Inventory API Service") {
		t.Errorf("summary missing failed service:\n%s", buf.String())
	}
}

func TestComposeGeneration(t *testing.T) {
	t.Parallel()

	root := newDemoProject(t)
	proj, err := project.LoadProjectFrom(root)
	if err != nil {
		t.Fatal(err)
	}

	cf := runner.GenerateComposeFile(proj.Services.All())
	if err := runner.ValidateComposeFile(cf); err != nil {
		t.Fatalf("ValidateComposeFile: %v", err)
	}

	path := filepath.Join(root, "docker-compose.yml")
	if err := runner.WriteComposeFile(cf, path); err != nil {
		t.Fatalf("WriteComposeFile: %v", err)
	}

	parsed, err := runner.ParseComposeFile(path)
	if err != nil {
		t.Fatalf("ParseComposeFile: %v", err)
	}
	if len(parsed.Services) != 4 {
		t.Errorf("services = %d, want 4", len(parsed.Services))
	}
	if got := parsed.Services["analytics-processor"].Ports[0]; got != "5004:5004" {
		t.Errorf("analytics port = %q", got)
	}
}

func TestConfigValidateCommand(t *testing.T) {
	root := newDemoProject(t)
	chdir(t, root)

	if code := cli.Run([]string{"config", "validate"}); code != 0 {
		t.Errorf("config validate exit = %d, want 0", code)
	}
	if code := cli.Run([]string{"services"}); code != 0 {
		t.Errorf("services exit = %d, want 0", code)
	}
}

func TestTestSummaryCommand(t *testing.T) {
	root := newDemoProject(t)
	chdir(t, root)

	logPath := filepath.Join(root, "run.log")
	log := "FAILED test_stock.py::test_reserve - KeyError: 'sku'\n===== 1 failed, 11 passed in 0.33s =====\n"
	if err := os.WriteFile(logPath, []byte(log), 0o644); err != nil {
		t.Fatal(err)
	}

	if code := cli.Run([]string{"test-summary", logPath}); code != 1 {
		t.Errorf("failing log exit = %d, want 1", code)
	}

	passPath := filepath.Join(root, "pass.log")
	if err := os.WriteFile(passPath, []byte("===== 12 passed in 0.20s =====\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := cli.Run([]string{"test-summary", passPath}); code != 0 {
		t.Errorf("passing log exit = %d, want 0", code)
	}
}
