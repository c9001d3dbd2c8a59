// Package config provides configuration loading and validation for config.json.
package config

// Config represents the complete config.json configuration.
type Config struct {
	Project  ProjectConfig   `json:"project"`
	Python   *PythonConfig   `json:"python,omitempty"`
	Services []ServiceConfig `json:"services,omitempty"`
	Tests    *TestsConfig    `json:"tests,omitempty"`
	Docker   *DockerConfig   `json:"docker,omitempty"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	Repository  string `json:"repository,omitempty"`
	License     string `json:"license,omitempty"`
}

// PythonConfig configures the Python runtime defaults.
type PythonConfig struct {
	// DefaultVersion is used for services that do not pin their own version.
	DefaultVersion string `json:"default_version,omitempty"`
}

// ServiceConfig defines one managed service. Services are declared as an
// ordered array: install and test runs visit them in exactly this order.
type ServiceConfig struct {
	Name         string   `json:"name"`
	Title        string   `json:"title,omitempty"`
	Directory    string   `json:"directory,omitempty"`
	Python       string   `json:"python,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Port         int      `json:"port,omitempty"`
	Runner       string   `json:"runner,omitempty"`
}

// TestsConfig configures how service test suites are invoked.
type TestsConfig struct {
	Pattern string   `json:"pattern,omitempty"`
	Args    []string `json:"args,omitempty"`
}

// DockerConfig configures docker-compose generation.
type DockerConfig struct {
	ComposeFile string `json:"compose_file,omitempty"`
}
