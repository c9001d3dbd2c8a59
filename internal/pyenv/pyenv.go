// Package pyenv wraps the pyenv version manager.
//
// shopctl never manages Python versions itself; it shells out to pyenv for
// listing installed versions, installing missing ones, and writing the
// project-local .python-version pin.
package pyenv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// LocalPinFile is the file pyenv writes when pinning a local version.
const LocalPinFile = ".python-version"

// Executor handles pyenv command execution.
type Executor struct {
	verbose bool
}

// NewExecutor creates a new pyenv executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// SetVerbose enables verbose output.
func (e *Executor) SetVerbose(v bool) {
	e.verbose = v
}

// Versions returns the Python versions pyenv has installed.
func (e *Executor) Versions(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "pyenv", "versions", "--bare")
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if e.verbose {
		fmt.Println("Running: pyenv versions --bare")
	}

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pyenv versions failed: %w (stderr: %s)", err, stderr.String())
	}

	return parseVersions(stdout.String()), nil
}

// parseVersions extracts version identifiers from pyenv versions --bare output.
// Separated for testability without calling pyenv.
func parseVersions(output string) []string {
	var versions []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Virtualenv entries look like "3.10.13/envs/demo"; only the
		// base interpreter version matters here.
		if idx := strings.Index(line, "/"); idx != -1 {
			line = line[:idx]
		}
		versions = append(versions, line)
	}
	return versions
}

// HasVersion reports whether the given Python version is installed.
func (e *Executor) HasVersion(ctx context.Context, version string) (bool, error) {
	versions, err := e.Versions(ctx)
	if err != nil {
		return false, err
	}
	for _, v := range versions {
		if v == version {
			return true, nil
		}
	}
	return false, nil
}

// InstallVersion installs a Python version via pyenv.
// The -s flag makes the install a no-op if the version already exists,
// so re-running is safe.
func (e *Executor) InstallVersion(ctx context.Context, version string) error {
	cmd := exec.CommandContext(ctx, "pyenv", "install", "-s", version)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if e.verbose {
		fmt.Printf("Running: pyenv install -s %s\n", version)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pyenv install %s failed: %w", version, err)
	}
	return nil
}

// PinLocal writes the local version pin for a directory (pyenv local).
func (e *Executor) PinLocal(ctx context.Context, dir, version string) error {
	cmd := exec.CommandContext(ctx, "pyenv", "local", version)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if e.verbose {
		fmt.Printf("Running: pyenv local %s (in %s)\n", version, dir)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pyenv local %s failed: %w", version, err)
	}
	return nil
}

// LocalVersion reads the .python-version pin in a directory.
// Returns an empty string if no pin exists.
func (e *Executor) LocalVersion(dir string) (string, error) {
	data, err := os.ReadFile(dir + string(os.PathSeparator) + LocalPinFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
