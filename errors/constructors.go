package errors

import (
	"fmt"
	"os/exec"
)

// InvalidPath creates an error for a configured build directory that does not exist
func InvalidPath(path string) *LaunchError {
	return New(ErrCodeInvalidPath, fmt.Sprintf("configured build directory does not exist: %s", path)).
		WithDetail("path", path)
}

// ExpressionInvalid creates an error for a build-directory expression that failed to evaluate
func ExpressionInvalid(expr string, err error) *LaunchError {
	return Wrap(err, ErrCodeExpressionInvalid, fmt.Sprintf("build directory expression failed to evaluate: %s", expr)).
		WithDetail("expression", expr)
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *LaunchError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *LaunchError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// DebuggerNotFound creates an error for a debugger label missing from the table
func DebuggerNotFound(label string) *LaunchError {
	return New(ErrCodeDebuggerNotFound, fmt.Sprintf("debugger '%s' is not configured", label)).
		WithDetail("debugger", label)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *LaunchError {
	launchErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		launchErr = launchErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return launchErr
}
