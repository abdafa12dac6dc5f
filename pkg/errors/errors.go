// Package errors provides custom error types for the preftune launcher.
// These errors enable programmatic error checking (validation failures vs
// unmet preconditions vs trainer process failures) and carry enough context
// to produce the usage messages the CLI prints before exiting.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the preftune launcher.
var (
	// ErrInvalidInput indicates that a provided argument was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrPrecondition indicates that a required on-disk artifact is missing
	ErrPrecondition = errors.New("precondition not satisfied")

	// ErrTrainerFailed indicates that the external trainer exited non-zero
	ErrTrainerFailed = errors.New("trainer failed")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ValidationError represents a validation failure on a positional argument.
// Allowed, when set, lists the accepted values and is included in the
// message so the CLI can fail with the supported-values list.
type ValidationError struct {
	Field   string
	Value   any
	Allowed []string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" && e.Value != nil {
		msg = fmt.Sprintf("unsupported value %q", e.Value)
	}
	if len(e.Allowed) > 0 {
		msg = fmt.Sprintf("%s (supported: %s)", msg, strings.Join(e.Allowed, ", "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, msg)
	}
	return fmt.Sprintf("validation failed: %s", msg)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, allowed []string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Allowed: allowed}
}

// PreconditionError reports a missing on-disk dependency, such as the SFT
// output directory when the skip token is passed.
type PreconditionError struct {
	Path    string
	Message string
}

// Error implements the error interface
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Path)
}

// Is implements errors.Is support
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(path, message string) *PreconditionError {
	return &PreconditionError{Path: path, Message: message}
}

// ProcessError represents a failed external trainer invocation. It keeps
// the child's exit code so the launcher can propagate it.
type ProcessError struct {
	Command  string
	RunName  string
	ExitCode int
	Err      error
}

// Error implements the error interface
func (e *ProcessError) Error() string {
	if e.RunName != "" {
		return fmt.Sprintf("%s failed for run %s (exit %d): %v", e.Command, e.RunName, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("%s failed (exit %d): %v", e.Command, e.ExitCode, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ProcessError) Is(target error) bool {
	return target == ErrTrainerFailed
}

// NewProcessError creates a new ProcessError
func NewProcessError(command, runName string, exitCode int, err error) *ProcessError {
	return &ProcessError{
		Command:  command,
		RunName:  runName,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsPrecondition checks if an error is an unmet precondition
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}

// IsTrainerFailure checks if an error came from the external trainer
func IsTrainerFailure(err error) bool {
	return errors.Is(err, ErrTrainerFailed)
}

// ExitCode returns the exit code carried by a ProcessError, or fallback.
func ExitCode(err error, fallback int) int {
	var pe *ProcessError
	if errors.As(err, &pe) {
		return pe.ExitCode
	}
	return fallback
}
