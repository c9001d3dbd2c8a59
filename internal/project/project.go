package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ecomdemo/shopctl/internal/config"
	"github.com/ecomdemo/shopctl/internal/service"
)

// Project represents a loaded shopctl project.
type Project struct {
	Root     string
	Config   *config.Config
	Services *service.Catalog
	Warnings []string
}

// LoadProject finds and loads a project from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, ConfigDirName, ConfigFileName)

	cfg, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	catalog, err := service.NewCatalog(cfg)
	if err != nil {
		return nil, err
	}

	// Validate service directories exist
	for _, svc := range catalog.All() {
		if err := validateServiceDirectory(svc.Dir(root), svc.Name); err != nil {
			return nil, err
		}
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Services: catalog,
		Warnings: warnings,
	}, nil
}

// ConfigPath returns the full path to the project configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, ConfigDirName, ConfigFileName)
}

// ServiceDirectory returns the absolute path to a service's directory.
func (p *Project) ServiceDirectory(name string) (string, error) {
	svc, ok := p.Services.Get(name)
	if !ok {
		return "", fmt.Errorf("service %q not found", name)
	}
	return svc.Dir(p.Root), nil
}

// validateServiceDirectory checks that a service directory exists.
func validateServiceDirectory(dir, name string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("service %q: directory %s does not exist", name, dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("service %q: %s is not a directory", name, dir)
	}
	return nil
}
