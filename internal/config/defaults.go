package config

// Default configuration values.
const (
	DefaultPythonVersion     = "3.10.13"
	DefaultTestsPattern      = "test_*.py"
	DefaultRunner            = "pytest"
	DefaultDockerComposeFile = "docker-compose.yml"
)

// DefaultTestArgs are the pytest arguments used when the config does not
// override them: verbose output with short tracebacks.
func DefaultTestArgs() []string {
	return []string{"-v", "--tb=short"}
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyPythonDefaults(cfg)
	applyServiceDefaults(cfg)
	applyTestsDefaults(cfg)
	applyDockerDefaults(cfg)
}

func applyPythonDefaults(cfg *Config) {
	if cfg.Python == nil {
		cfg.Python = &PythonConfig{}
	}
	if cfg.Python.DefaultVersion == "" {
		cfg.Python.DefaultVersion = DefaultPythonVersion
	}
}

func applyServiceDefaults(cfg *Config) {
	for i, svc := range cfg.Services {
		// Default directory is the service name
		if svc.Directory == "" {
			svc.Directory = svc.Name
		}
		// Default title is the service name
		if svc.Title == "" {
			svc.Title = svc.Name
		}
		if svc.Python == "" {
			svc.Python = cfg.Python.DefaultVersion
		}
		if svc.Runner == "" {
			svc.Runner = DefaultRunner
		}
		cfg.Services[i] = svc
	}
}

func applyTestsDefaults(cfg *Config) {
	if cfg.Tests == nil {
		cfg.Tests = &TestsConfig{}
	}
	if cfg.Tests.Pattern == "" {
		cfg.Tests.Pattern = DefaultTestsPattern
	}
	if len(cfg.Tests.Args) == 0 {
		cfg.Tests.Args = DefaultTestArgs()
	}
}

func applyDockerDefaults(cfg *Config) {
	if cfg.Docker == nil {
		return // Docker is optional
	}
	if cfg.Docker.ComposeFile == "" {
		cfg.Docker.ComposeFile = DefaultDockerComposeFile
	}
}
