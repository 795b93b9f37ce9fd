package cli

import "fmt"

// ConfigError reports an invalid or missing configuration value. Field is
// the dotted path of the offending key, e.g. "telemetry.metrics.path".
type ConfigError struct {
	Field   string
	Message string
}

// NewConfigError builds a ConfigError for the given field.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError wraps a failure from a named command so callers can tell
// which subcommand produced it.
type CommandError struct {
	Command string
	Err     error
}

// NewCommandError wraps err as a failure of the named command.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
