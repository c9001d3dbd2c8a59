// Package pip installs Python packages into a service's pinned interpreter.
package pip

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RequirementsFile is the conventional pip requirements file name.
const RequirementsFile = "requirements.txt"

// Installer runs pip through the interpreter resolved by the local pin.
// Invoking "python -m pip" rather than a bare "pip" guarantees the
// packages land in the pyenv-selected interpreter for the directory.
type Installer struct {
	verbose bool
}

// NewInstaller creates a new pip installer.
func NewInstaller() *Installer {
	return &Installer{}
}

// SetVerbose enables verbose output.
func (i *Installer) SetVerbose(v bool) {
	i.verbose = v
}

// InstallPackages installs pinned packages (name==version) in dir.
func (i *Installer) InstallPackages(ctx context.Context, dir string, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	return i.run(ctx, dir, buildInstallArgs(packages))
}

// InstallRequirementsFile installs from requirements.txt in dir.
func (i *Installer) InstallRequirementsFile(ctx context.Context, dir string) error {
	return i.run(ctx, dir, []string{"-m", "pip", "install", "-r", RequirementsFile})
}

// HasRequirementsFile reports whether dir contains a requirements.txt.
func (i *Installer) HasRequirementsFile(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, RequirementsFile))
	return err == nil && !info.IsDir()
}

// buildInstallArgs assembles the python arguments for a pip install.
func buildInstallArgs(packages []string) []string {
	args := []string{"-m", "pip", "install"}
	return append(args, packages...)
}

func (i *Installer) run(ctx context.Context, dir string, args []string) error {
	cmd := exec.CommandContext(ctx, "python", args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if i.verbose {
		fmt.Printf("Running: python %v (in %s)\n", args, dir)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pip install failed: %w", err)
	}
	return nil
}
