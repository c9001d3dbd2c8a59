// Package cli implements the shopctl command line interface.
package cli

import (
	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/output"
)

// Version is the shopctl version, overridable at build time via ldflags.
var Version = "0.3.0"

// globalFlags holds flags accepted before the command name.
type globalFlags struct {
	quiet   bool
	verbose bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	out := output.New()

	flags, rest := parseGlobalFlags(args)
	out.SetQuiet(flags.quiet)
	out.SetVerbose(flags.verbose)

	if len(rest) == 0 {
		printHelp(out)
		return errors.ExitSuccess
	}

	command := rest[0]
	cmdArgs := rest[1:]

	switch command {
	case "help", "-h", "--help":
		printHelp(out)
		return errors.ExitSuccess
	case "version", "--version":
		out.Println("shopctl %s", Version)
		return errors.ExitSuccess
	case "install":
		return cmdInstall(out, cmdArgs)
	case "test":
		return cmdTest(out, cmdArgs)
	case "services":
		return cmdServices(out, cmdArgs)
	case "doctor":
		return cmdDoctor(out, cmdArgs)
	case "compose":
		return cmdCompose(out, cmdArgs)
	case "test-summary":
		return cmdTestSummary(out, cmdArgs)
	case "config":
		return cmdConfig(out, cmdArgs)
	default:
		out.ErrorPrefix("unknown command: %s", command)
		out.Errorln("Run 'shopctl help' for usage.")
		return errors.ExitConfigError
	}
}

// parseGlobalFlags extracts -q/--quiet and -v/--verbose from anywhere in
// the argument list; everything else passes through in order.
func parseGlobalFlags(args []string) (globalFlags, []string) {
	var flags globalFlags
	var rest []string
	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			flags.quiet = true
		case "-v", "--verbose":
			flags.verbose = true
		default:
			rest = append(rest, arg)
		}
	}
	return flags, rest
}

// wantsHelp reports whether a command's arguments ask for its help text.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" || arg == "help" {
			return true
		}
	}
	return false
}
