package config

import (
	"fmt"
	"regexp"
)

// Validation patterns.
var (
	// Project name: must start with lowercase letter, may contain lowercase, digits, hyphens.
	// Hyphens must not be consecutive or trailing.
	projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

	// Service name: lowercase letters, digits, and hyphens.
	serviceNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

	// Python version: major.minor or major.minor.patch.
	pythonVersionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
// Note: warnings are reserved for future use (deprecated fields, migration hints, etc.)
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateProject(cfg); err != nil {
		return nil, err
	}

	if err := validateServices(cfg); err != nil {
		return nil, err
	}

	return nil, nil
}

func validateProject(cfg *Config) error {
	return ValidateProjectName(cfg.Project.Name)
}

func validateServices(cfg *Config) error {
	seen := make(map[string]bool)
	for i, svc := range cfg.Services {
		field := fmt.Sprintf("services[%d]", i)

		if svc.Name == "" {
			return &ValidationError{Field: field + ".name", Message: "is required"}
		}
		if !serviceNamePattern.MatchString(svc.Name) {
			return &ValidationError{
				Field:   field + ".name",
				Message: "service name must match pattern ^[a-z][a-z0-9-]*$ (lowercase letters, digits, hyphens)",
			}
		}
		if seen[svc.Name] {
			return &ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("duplicate service name %q", svc.Name),
			}
		}
		seen[svc.Name] = true

		if svc.Python != "" && !pythonVersionPattern.MatchString(svc.Python) {
			return &ValidationError{
				Field:   field + ".python",
				Message: fmt.Sprintf("invalid Python version %q (expected major.minor or major.minor.patch)", svc.Python),
			}
		}

		if svc.Port != 0 && (svc.Port < 1 || svc.Port > 65535) {
			return &ValidationError{
				Field:   field + ".port",
				Message: fmt.Sprintf("port %d out of range [1-65535]", svc.Port),
			}
		}
	}
	return nil
}

// ValidateProjectName checks if a project name is valid.
// Returns a ValidationError if the name is empty, too long (>128 chars),
// or doesn't match the required pattern.
func ValidateProjectName(name string) error {
	if name == "" {
		return &ValidationError{Field: "project.name", Message: "is required"}
	}
	if len(name) > 128 {
		return &ValidationError{Field: "project.name", Message: "must be 128 characters or less"}
	}
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "project.name",
			Message: "must match pattern ^[a-z][a-z0-9]*(-[a-z0-9]+)*$ (lowercase letters, digits, non-consecutive hyphens)",
		}
	}
	return nil
}
