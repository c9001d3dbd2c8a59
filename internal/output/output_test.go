package output

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestWriter(color bool) (*Writer, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	return NewWithWriters(&out, &errBuf, color), &out, &errBuf
}

func TestQuietSuppressesInfo(t *testing.T) {
	t.Parallel()

	w, out, _ := newTestWriter(false)
	w.SetQuiet(true)
	w.Info("hidden")
	w.ServiceStart("payment-gateway", "tests")
	if out.Len() != 0 {
		t.Errorf("quiet output = %q", out.String())
	}

	w.SetQuiet(false)
	w.Info("visible")
	if !strings.Contains(out.String(), "visible") {
		t.Errorf("output = %q", out.String())
	}
}

func TestVerboseGating(t *testing.T) {
	t.Parallel()

	w, out, _ := newTestWriter(false)
	w.Verbose("hidden")
	if out.Len() != 0 {
		t.Errorf("output = %q", out.String())
	}
	w.SetVerbose(true)
	w.Verbose("shown")
	if !strings.Contains(out.String(), "shown") {
		t.Errorf("output = %q", out.String())
	}
}

func TestColorGating(t *testing.T) {
	t.Parallel()

	w, out, _ := newTestWriter(true)
	w.Success("done")
	if !strings.Contains(out.String(), "\033[32m") {
		t.Errorf("colored output missing ANSI: %q", out.String())
	}

	w2, out2, _ := newTestWriter(false)
	w2.Success("done")
	if strings.Contains(out2.String(), "\033[") {
		t.Errorf("plain output has ANSI: %q", out2.String())
	}
}

func TestWarningGoesToStderr(t *testing.T) {
	t.Parallel()

	w, out, errBuf := newTestWriter(false)
	w.Warning("unknown field %q (ignored)", "colour")
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if got := errBuf.String(); got != "warning: unknown field \"colour\" (ignored)\n" {
		t.Errorf("stderr = %q", got)
	}

	wc, _, errc := newTestWriter(true)
	wc.Warning("low disk")
	if !strings.Contains(errc.String(), "\033[33m") {
		t.Errorf("colored warning missing ANSI: %q", errc.String())
	}
}

func TestAction(t *testing.T) {
	t.Parallel()

	w, out, _ := newTestWriter(false)
	w.Action("Generating compose file for %d services", 4)
	if got := out.String(); got != "Generating compose file for 4 services\n" {
		t.Errorf("output = %q", got)
	}

	wc, outc, _ := newTestWriter(true)
	wc.Action("working")
	if !strings.Contains(outc.String(), "\033[36m") {
		t.Errorf("colored action missing ANSI: %q", outc.String())
	}
}

func TestErrorPrefixGoesToStderr(t *testing.T) {
	t.Parallel()

	w, out, errBuf := newTestWriter(false)
	w.ErrorPrefix("boom")
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if got := errBuf.String(); got != "shopctl: boom\n" {
		t.Errorf("stderr = %q", got)
	}
}

func TestServiceFailedAlwaysPrints(t *testing.T) {
	t.Parallel()

	// Failures must be visible even in quiet mode.
	w, _, errBuf := newTestWriter(false)
	w.SetQuiet(true)
	w.ServiceFailed("inventory-api", "tests", errTest("3 failed"))
	if !strings.Contains(errBuf.String(), "inventory-api") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestSummaryOutput(t *testing.T) {
	t.Parallel()

	w, out, _ := newTestWriter(false)
	w.SummaryHeader("Test Summary")
	w.SummaryPassed("Total passed", "44")
	w.SummaryFailed("Total failed", "0")
	w.SummaryAction("Payment Gateway Service", true, "1.2s", "")
	w.SummaryAction("Inventory API Service", false, "0.8s", "3 failed")

	s := out.String()
	for _, want := range []string{"=== Test Summary ===", "Total passed: 44", "Payment Gateway Service", "x Inventory API Service", "(3 failed)"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q in %q", want, s)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestColorPlaceholders(t *testing.T) {
	t.Parallel()

	w, _, _ := newTestWriter(true)
	got := w.colorPlaceholders("install <service>")
	if !strings.Contains(got, colorPlaceholder+"<service>") {
		t.Errorf("placeholders not colored: %q", got)
	}

	// No placeholder, no change.
	if w.colorPlaceholders("plain text") != "plain text" {
		t.Error("plain text should pass through")
	}
}
