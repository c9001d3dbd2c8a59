// Package installer prepares the Python environment for every service.
//
// Unlike the test run, installation is fail-fast: a broken environment in
// one service makes later steps meaningless, so the first failure aborts
// the whole sequence.
package installer

import (
	"context"
	"time"

	"github.com/ecomdemo/shopctl/internal/errors"
	"github.com/ecomdemo/shopctl/internal/output"
	"github.com/ecomdemo/shopctl/internal/service"
)

// VersionManager abstracts the pyenv operations the installer needs.
type VersionManager interface {
	HasVersion(ctx context.Context, version string) (bool, error)
	InstallVersion(ctx context.Context, version string) error
	PinLocal(ctx context.Context, dir, version string) error
}

// PackageInstaller abstracts the pip operations the installer needs.
type PackageInstaller interface {
	InstallPackages(ctx context.Context, dir string, packages []string) error
	InstallRequirementsFile(ctx context.Context, dir string) error
	HasRequirementsFile(dir string) bool
}

// Installer sets up each service's interpreter and dependencies in order.
type Installer struct {
	root     string
	versions VersionManager
	packages PackageInstaller
	out      *output.Writer
}

// New creates an installer rooted at the project directory.
func New(root string, versions VersionManager, packages PackageInstaller, out *output.Writer) *Installer {
	return &Installer{
		root:     root,
		versions: versions,
		packages: packages,
		out:      out,
	}
}

// InstallAll prepares every service in catalog order, stopping at the
// first failure.
func (i *Installer) InstallAll(ctx context.Context, services []service.Service) error {
	start := time.Now()

	for _, svc := range services {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "installation interrupted")
		}
		if err := i.installService(ctx, svc); err != nil {
			return err
		}
	}

	i.out.FinalSuccess("All dependencies installed in %s", output.FormatDuration(time.Since(start)))
	return nil
}

func (i *Installer) installService(ctx context.Context, svc service.Service) error {
	i.out.Section("Setting up " + svc.Title)
	dir := svc.Dir(i.root)

	if err := i.ensureVersion(ctx, svc); err != nil {
		return err
	}

	i.out.Step(2, "Pinning Python %s", svc.Python)
	if err := i.versions.PinLocal(ctx, dir, svc.Python); err != nil {
		return errors.ServiceErrorWrap(svc.Name, "pin", err)
	}

	return i.installDependencies(ctx, svc, dir)
}

// ensureVersion installs the service's interpreter if pyenv does not
// already have it.
func (i *Installer) ensureVersion(ctx context.Context, svc service.Service) error {
	has, err := i.versions.HasVersion(ctx, svc.Python)
	if err != nil {
		return errors.ServiceErrorWrap(svc.Name, "version-check", err)
	}
	if has {
		i.out.Step(1, "Python %s already installed", svc.Python)
		return nil
	}

	i.out.Step(1, "Installing Python %s", svc.Python)
	if err := i.versions.InstallVersion(ctx, svc.Python); err != nil {
		return errors.ServiceErrorWrap(svc.Name, "python-install", err)
	}
	return nil
}

// installDependencies prefers the explicit pinned package list; a
// requirements.txt in the service directory is the fallback.
func (i *Installer) installDependencies(ctx context.Context, svc service.Service, dir string) error {
	switch {
	case len(svc.Requirements) > 0:
		i.out.Step(3, "Installing %d packages", len(svc.Requirements))
		for _, pkg := range svc.Requirements {
			i.out.StepDetail("%s", pkg)
		}
		if err := i.packages.InstallPackages(ctx, dir, svc.Requirements); err != nil {
			return errors.ServiceErrorWrap(svc.Name, "pip-install", err)
		}
	case i.packages.HasRequirementsFile(dir):
		i.out.Step(3, "Installing from requirements.txt")
		if err := i.packages.InstallRequirementsFile(ctx, dir); err != nil {
			return errors.ServiceErrorWrap(svc.Name, "pip-install", err)
		}
	default:
		i.out.Info("No dependencies declared for %s, skipping", svc.Name)
	}
	return nil
}
