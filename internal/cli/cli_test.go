package cli

import (
	"reflect"
	"testing"
)

func TestParseGlobalFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		quiet    bool
		verbose  bool
		wantRest []string
	}{
		{
			name:     "no flags",
			args:     []string{"test"},
			wantRest: []string{"test"},
		},
		{
			name:     "quiet short",
			args:     []string{"-q", "test"},
			quiet:    true,
			wantRest: []string{"test"},
		},
		{
			name:     "verbose long after command",
			args:     []string{"install", "--verbose"},
			verbose:  true,
			wantRest: []string{"install"},
		},
		{
			name:     "both with service args",
			args:     []string{"--quiet", "test", "payment-gateway", "-v"},
			quiet:    true,
			verbose:  true,
			wantRest: []string{"test", "payment-gateway"},
		},
		{
			name:     "empty",
			args:     nil,
			wantRest: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, rest := parseGlobalFlags(tt.args)
			if flags.quiet != tt.quiet || flags.verbose != tt.verbose {
				t.Errorf("flags = %+v", flags)
			}
			if !reflect.DeepEqual(rest, tt.wantRest) {
				t.Errorf("rest = %v, want %v", rest, tt.wantRest)
			}
		})
	}
}

func TestWantsHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"-h"}, true},
		{[]string{"--help"}, true},
		{[]string{"help"}, true},
		{[]string{"payment-gateway", "--help"}, true},
		{[]string{"payment-gateway"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := wantsHelp(tt.args); got != tt.want {
			t.Errorf("wantsHelp(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	// Not parallel: Run writes to os.Stdout.
	if code := Run([]string{"help"}); code != 0 {
		t.Errorf("help exit = %d", code)
	}
	if code := Run([]string{"version"}); code != 0 {
		t.Errorf("version exit = %d", code)
	}
	if code := Run(nil); code != 0 {
		t.Errorf("bare invocation exit = %d", code)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if code := Run([]string{"frobnicate"}); code != 2 {
		t.Errorf("unknown command exit = %d, want 2", code)
	}
}

func TestRunTestUnknownFlag(t *testing.T) {
	if code := Run([]string{"test", "--parallel"}); code != 2 {
		t.Errorf("unknown flag exit = %d, want 2", code)
	}
}
