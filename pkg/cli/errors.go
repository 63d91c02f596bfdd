package cli

import (
	"errors"
	"fmt"

	attrErrors "mercator-hq/attrq/pkg/attr/errors"
)

// Process exit codes.
const (
	ExitOK    = 0
	ExitMiss  = 1
	ExitError = 2
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// MissError reports a query that found nothing. It is not a failure of the
// command itself; ExitCode maps it to ExitMiss. It unwraps to a query
// *errors.Error carrying the suggestion.
type MissError struct {
	Operation  string
	Path       string
	Suggestion string
	Err        *attrErrors.Error
}

func (e *MissError) Error() string {
	msg := fmt.Sprintf("%s: no match for %q", e.Operation, e.Path)
	if e.Suggestion != "" {
		msg += " (" + e.Suggestion + ")"
	}
	return msg
}

func (e *MissError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// NewMissError creates a new MissError.
func NewMissError(operation, path, suggestion string) *MissError {
	return &MissError{
		Operation:  operation,
		Path:       path,
		Suggestion: suggestion,
		Err:        attrErrors.NewQueryError(path, suggestion),
	}
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var miss *MissError
	if errors.As(err, &miss) {
		return ExitMiss
	}
	return ExitError
}
