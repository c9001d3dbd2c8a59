package pyenv

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/output"
)

// Status represents the pyenv installation status.
type Status struct {
	Installed bool
	Version   string
	Path      string
}

// Check checks if pyenv is installed and returns its status.
func Check() Status {
	path, err := exec.LookPath("pyenv")
	if err != nil {
		return Status{Installed: false}
	}

	// Get version
	cmd := exec.Command("pyenv", "--version")
	out, err := cmd.Output()
	if err != nil {
		return Status{Installed: true, Path: path}
	}

	version := strings.TrimSpace(string(out))
	// Version output is like "pyenv 2.3.36"
	parts := strings.Fields(version)
	if len(parts) > 1 {
		version = parts[1]
	}

	return Status{
		Installed: true,
		Version:   version,
		Path:      path,
	}
}

// Ensure returns nil if pyenv is available, an environment error otherwise.
// Missing pyenv is environment-fatal: nothing else can proceed without it.
func Ensure() error {
	if Check().Installed {
		return nil
	}
	return errors.Environment("pyenv is not installed. Install it from https://github.com/pyenv/pyenv")
}

// PrintInstallInstructions prints instructions for installing pyenv.
func PrintInstallInstructions(w *output.Writer) {
	w.Println("pyenv is not installed.")
	w.Println("")
	w.Println("To install pyenv, run:")
	w.Println("")
	switch runtime.GOOS {
	case "darwin":
		w.Println("  brew install pyenv")
		w.Println("  # or")
		w.Println("  curl https://pyenv.run | bash")
	default:
		w.Println("  curl https://pyenv.run | bash")
	}
	w.Println("")
	w.Println("Then add it to your shell:")
	w.Println("")
	w.Println(`  echo 'eval "$(pyenv init -)"' >> ~/.bashrc`)
	w.Println("")
	w.Println("For more information, visit: https://github.com/pyenv/pyenv")
}
