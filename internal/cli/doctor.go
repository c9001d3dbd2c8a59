package cli

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/output"
	"github.com/ecomdemo/shopctl/internal/project"
	"github.com/ecomdemo/shopctl/internal/pyenv"
)

// cmdDoctor checks that the environment can run install and test.
// It never modifies anything; it only reports.
func cmdDoctor(out *output.Writer, args []string) int {
	if wantsHelp(args) {
		printDoctorHelp(out)
		return errors.ExitSuccess
	}

	out.Section("Environment")
	healthy := true

	status := pyenv.Check()
	if status.Installed {
		version := status.Version
		if version == "" {
			version = "unknown version"
		}
		out.CheckPass("pyenv", fmt.Sprintf("%s (%s)", version, status.Path))
	} else {
		out.CheckFail("pyenv", "not installed")
		healthy = false
	}

	if path, err := exec.LookPath("docker"); err == nil {
		out.CheckPass("docker", path)
	} else {
		out.CheckFail("docker", "not installed (compose files cannot be run)")
	}

	out.Section("Project")

	proj, err := project.LoadProject()
	if err != nil {
		out.CheckFail("config", err.Error())
		out.Println("")
		out.Hint("Run shopctl from inside a project with a .shopctl/config.json file.")
		return errors.ExitEnvironmentError
	}
	out.CheckPass("config", proj.ConfigPath())
	for _, w := range proj.Warnings {
		out.Warning("%s", w)
	}

	// Per-service checks: directory presence is validated at load time,
	// so what remains is the interpreter and the local pin.
	if status.Installed {
		versions := pyenv.NewExecutor()
		installed, err := versions.Versions(context.Background())
		if err != nil {
			out.CheckFail("python versions", err.Error())
			healthy = false
		} else {
			have := make(map[string]bool, len(installed))
			for _, v := range installed {
				have[v] = true
			}
			for _, svc := range proj.Services.All() {
				if !have[svc.Python] {
					out.CheckFail(svc.Name, "Python "+svc.Python+" not installed (run: shopctl install)")
					healthy = false
					continue
				}
				pin, err := versions.LocalVersion(svc.Dir(proj.Root))
				switch {
				case err != nil:
					out.CheckFail(svc.Name, "cannot read version pin: "+err.Error())
					healthy = false
				case pin == "":
					out.CheckFail(svc.Name, "no .python-version pin (run: shopctl install)")
					healthy = false
				case pin != svc.Python:
					out.CheckFail(svc.Name, fmt.Sprintf("pinned to %s, expected %s", pin, svc.Python))
					healthy = false
				default:
					out.CheckPass(svc.Name, "Python "+svc.Python)
				}
			}
		}
	}

	out.Println("")
	if !healthy {
		out.FinalFailure("Some checks failed")
		return errors.ExitEnvironmentError
	}
	out.FinalSuccess("All checks passed")
	return errors.ExitSuccess
}
