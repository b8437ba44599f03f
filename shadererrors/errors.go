// Package shadererrors provides structured error types for shadergen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to tell a failed compiler run apart from an
// invalid configuration.
//
// # Error Categories
//
//   - CommandError: the external shader compiler could not be started or exited non-zero
//   - ConfigError: invalid configuration, manifest or input options
//
// # Usage with errors.As
//
//	_, err := generator.GenerateWithOptions(ctx, generator.WithFilenames("shader.vert"))
//	if err != nil {
//	    var cmdErr *shadererrors.CommandError
//	    if errors.As(err, &cmdErr) {
//	        fmt.Fprintf(os.Stderr, "%s failed:\n%s", cmdErr.Filename, cmdErr.Output)
//	    }
//	}
package shadererrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrCommand indicates an external command failed.
	ErrCommand = errors.New("command failed")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// CommandError represents a failed run of the external shader compiler.
// This covers a missing executable as well as a non-zero exit status.
type CommandError struct {
	// Command is the executable that was run
	Command string
	// Args are the arguments passed to Command
	Args []string
	// Filename is the shader source the command was compiling
	Filename string
	// ExitCode is the process exit status, or -1 if the process never started
	ExitCode int
	// Output is the combined stdout and stderr of the command
	Output []byte
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CommandError) Error() string {
	msg := "command failed"
	if e.Filename != "" {
		msg += " compiling " + e.Filename
	}
	if e.Command != "" {
		msg += ": " + strings.Join(append([]string{e.Command}, e.Args...), " ")
	}
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" (exit status %d)", e.ExitCode)
	}
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		msg += ": " + out
	} else if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommand
}

// ConfigError represents an invalid configuration or input.
// This includes a blank compiler string, blank shader filenames and
// malformed manifests.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
