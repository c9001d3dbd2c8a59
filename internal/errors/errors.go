// Package errors provides structured error types and exit codes for shopctl.
package errors

import (
	"fmt"
)

// Exit codes used by all shopctl commands.
const (
	ExitSuccess          = 0 // Success
	ExitRuntimeError     = 1 // Runtime error (test failures, command failed, etc.)
	ExitConfigError      = 2 // Configuration error (invalid config, bad flags, etc.)
	ExitEnvironmentError = 3 // Environment error (pyenv missing, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// HarnessError is the base error type for shopctl.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Service string // Service name if applicable
	Step    string // Installer/runner step if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	if e.Service != "" && e.Step != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Service, e.Step, e.Message)
	}
	if e.Service != "" {
		return fmt.Sprintf("[%s] %s", e.Service, e.Message)
	}
	return e.Message
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *HarnessError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: fmt.Sprintf(format, args...),
	}
}

// Environment creates a new environment error.
func Environment(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// ServiceErrorWrap creates an error for a specific service and step
// that wraps an underlying cause.
func ServiceErrorWrap(service, step string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Service: service,
		Step:    step,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *HarnessError {
	return &HarnessError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if he, ok := err.(*HarnessError); ok {
		return he.ExitCode()
	}
	return ExitRuntimeError
}
