package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ecomdemo/shopctl/internal/config"
	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/installer"
	"github.com/ecomdemo/shopctl/internal/output"
	"github.com/ecomdemo/shopctl/internal/pip"
	"github.com/ecomdemo/shopctl/internal/project"
	"github.com/ecomdemo/shopctl/internal/pyenv"
	"github.com/ecomdemo/shopctl/internal/runner"
	"github.com/ecomdemo/shopctl/internal/service"
)

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadProject loads the project and surfaces configuration warnings.
func loadProject(out *output.Writer) (*project.Project, error) {
	proj, err := project.LoadProject()
	if err != nil {
		return nil, err
	}
	for _, w := range proj.Warnings {
		out.Warning("%s", w)
	}
	return proj, nil
}

// selectServices resolves positional service names against the catalog,
// preserving catalog order. With no names, all services are selected.
func selectServices(proj *project.Project, names []string) ([]service.Service, error) {
	if len(names) == 0 {
		return proj.Services.All(), nil
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := proj.Services.Get(name); !ok {
			return nil, errors.NotFound("service", name)
		}
		requested[name] = true
	}

	var selected []service.Service
	for _, svc := range proj.Services.All() {
		if requested[svc.Name] {
			selected = append(selected, svc)
		}
	}
	return selected, nil
}

// cmdInstall sets up Python versions and dependencies for all services.
func cmdInstall(out *output.Writer, args []string) int {
	if wantsHelp(args) {
		printInstallHelp(out)
		return errors.ExitSuccess
	}

	if err := pyenv.Ensure(); err != nil {
		out.ErrorPrefix("%v", err)
		pyenv.PrintInstallInstructions(out)
		return errors.GetExitCode(err)
	}

	proj, err := loadProject(out)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	services, err := selectServices(proj, args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	versions := pyenv.NewExecutor()
	packages := pip.NewInstaller()
	inst := installer.New(proj.Root, versions, packages, out)

	if err := inst.InstallAll(ctx, services); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

// cmdTest runs every service's test suite and prints the aggregate summary.
func cmdTest(out *output.Writer, args []string) int {
	if wantsHelp(args) {
		printTestHelp(out)
		return errors.ExitSuccess
	}

	var keepLogs bool
	var names []string
	for _, arg := range args {
		switch arg {
		case "--keep-logs":
			keepLogs = true
		default:
			if strings.HasPrefix(arg, "-") {
				out.ErrorPrefix("unknown flag: %s", arg)
				return errors.ExitConfigError
			}
			names = append(names, arg)
		}
	}

	proj, err := loadProject(out)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	services, err := selectServices(proj, names)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	opts := runner.Options{
		KeepLogs: keepLogs,
		Pattern:  proj.Config.Tests.Pattern,
		Args:     proj.Config.Tests.Args,
	}
	r := runner.New(proj.Root, &runner.PytestExecutor{}, out, opts)

	report, err := r.RunAll(ctx, services)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	runner.PrintSummary(out, report)
	return report.ExitCode()
}

// cmdServices lists the configured services in execution order.
func cmdServices(out *output.Writer, args []string) int {
	if wantsHelp(args) {
		printServicesHelp(out)
		return errors.ExitSuccess
	}

	proj, err := loadProject(out)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	titler := cases.Title(language.English)
	out.Section(titler.String("configured services"))
	for _, svc := range proj.Services.All() {
		out.Println("")
		out.Println("  %s (%s)", svc.Title, svc.Name)
		out.StepDetail("directory: %s", svc.Directory)
		out.StepDetail("python:    %s", svc.Python)
		out.StepDetail("port:      %d", svc.Port)
		out.StepDetail("runner:    %s", svc.Runner)
		if len(svc.Requirements) > 0 {
			out.StepDetail("packages:  %s", strings.Join(svc.Requirements, ", "))
		}
	}
	return errors.ExitSuccess
}

// cmdCompose generates a docker-compose file from the service catalog.
func cmdCompose(out *output.Writer, args []string) int {
	if wantsHelp(args) {
		printComposeHelp(out)
		return errors.ExitSuccess
	}

	outputPath := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 >= len(args) {
				out.ErrorPrefix("%s requires a file argument", args[i])
				return errors.ExitConfigError
			}
			i++
			outputPath = args[i]
		default:
			out.ErrorPrefix("unknown argument: %s", args[i])
			return errors.ExitConfigError
		}
	}

	proj, err := loadProject(out)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if outputPath == "" {
		name := config.DefaultDockerComposeFile
		if proj.Config.Docker != nil && proj.Config.Docker.ComposeFile != "" {
			name = proj.Config.Docker.ComposeFile
		}
		outputPath = filepath.Join(proj.Root, name)
	}

	out.Action("Generating compose file for %d services", proj.Services.Len())
	cf := runner.GenerateComposeFile(proj.Services.All())
	if err := runner.ValidateComposeFile(cf); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	if err := runner.WriteComposeFile(cf, outputPath); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}

	out.ValidationSuccess("Wrote %s (%d services)", outputPath, proj.Services.Len())
	return errors.ExitSuccess
}

// cmdConfig handles configuration subcommands.
func cmdConfig(out *output.Writer, args []string) int {
	if len(args) == 0 || wantsHelp(args) {
		printConfigHelp(out)
		return errors.ExitSuccess
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate(out)
	default:
		out.ErrorPrefix("unknown config subcommand: %s", args[0])
		return errors.ExitConfigError
	}
}

func cmdConfigValidate(out *output.Writer) int {
	root, err := project.FindRoot()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	configPath := filepath.Join(root, project.ConfigDirName, project.ConfigFileName)
	cfg, warnings, err := config.LoadAndValidate(configPath)
	for _, w := range warnings {
		out.Warning("%s", w)
	}
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.ValidationSuccess("%s is valid (%d services)", configPath, len(cfg.Services))
	return errors.ExitSuccess
}
