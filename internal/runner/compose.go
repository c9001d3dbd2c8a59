package runner

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ecomdemo/shopctl/internal/service"
)

// ComposeService is one service entry in a generated docker-compose file.
type ComposeService struct {
	Image      string   `yaml:"image"`
	WorkingDir string   `yaml:"working_dir,omitempty"`
	Volumes    []string `yaml:"volumes,omitempty"`
	Ports      []string `yaml:"ports,omitempty"`
	Command    string   `yaml:"command,omitempty"`
	DependsOn  []string `yaml:"depends_on,omitempty"`
}

// ComposeFile is a minimal docker-compose model, enough to stand the
// demo services up side by side.
type ComposeFile struct {
	Services map[string]ComposeService `yaml:"services"`
}

// GenerateComposeFile builds a compose model for the catalog. Each
// service mounts its own directory and exposes its declared port.
func GenerateComposeFile(services []service.Service) *ComposeFile {
	cf := &ComposeFile{
		Services: make(map[string]ComposeService, len(services)),
	}

	for _, svc := range services {
		entry := ComposeService{
			Image:      fmt.Sprintf("python:%s-slim", majorMinor(svc.Python)),
			WorkingDir: "/app",
			Volumes:    []string{fmt.Sprintf("./%s:/app", svc.Directory)},
			Command:    "sh -c 'pip install -r requirements.txt && python app.py'",
		}
		if svc.Port > 0 {
			entry.Ports = []string{fmt.Sprintf("%d:%d", svc.Port, svc.Port)}
		}
		cf.Services[svc.Name] = entry
	}

	return cf
}

// WriteComposeFile marshals the compose model to path.
func WriteComposeFile(cf *ComposeFile, path string) error {
	data, err := yaml.Marshal(cf)
	if err != nil {
		return fmt.Errorf("failed to marshal compose file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ParseComposeFile reads an existing compose file from path.
func ParseComposeFile(path string) (*ComposeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cf ComposeFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cf, nil
}

// ValidateComposeFile checks the model for the mistakes that bite in
// practice: duplicate host ports and dependencies on unknown services.
func ValidateComposeFile(cf *ComposeFile) error {
	seen := make(map[string]string)
	for name, svc := range cf.Services {
		for _, port := range svc.Ports {
			host := port
			if idx := strings.Index(port, ":"); idx != -1 {
				host = port[:idx]
			}
			if other, dup := seen[host]; dup {
				return fmt.Errorf("host port %s used by both %s and %s", host, other, name)
			}
			seen[host] = name
		}
		for _, dep := range svc.DependsOn {
			if _, ok := cf.Services[dep]; !ok {
				return fmt.Errorf("service %s depends on unknown service %s", name, dep)
			}
		}
	}
	return nil
}

// majorMinor trims a full version like "3.10.13" to "3.10" for image tags.
func majorMinor(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) >= 2 {
		return parts[0] + "." + parts[1]
	}
	return version
}
