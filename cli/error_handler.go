package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/launch/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidPath:
		if launchErr, ok := err.(*errors.LaunchError); ok {
			fmt.Fprintf(os.Stderr, "❌ Build directory '%s' does not exist\n", launchErr.Details["path"])
			fmt.Fprintf(os.Stderr, "Fix the build_dir setting in launch.yml or remove it to fall back to the project root.\n")
		}
		return err

	case errors.ErrCodeExpressionInvalid:
		if launchErr, ok := err.(*errors.LaunchError); ok {
			fmt.Fprintf(os.Stderr, "❌ Build directory expression failed: %s\n", launchErr.Details["expression"])
		}
		return err

	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a launch.yml in your project root.\n")
		return err

	case errors.ErrCodeDebuggerNotFound:
		if launchErr, ok := err.(*errors.LaunchError); ok {
			fmt.Fprintf(os.Stderr, "❌ Debugger '%s' is not configured\n", launchErr.Details["debugger"])
			fmt.Fprintf(os.Stderr, "Run 'launch debuggers' to see the available entries.\n")
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if launchErr, ok := err.(*errors.LaunchError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", launchErr.ToJSON())
			}
		}
		return err
	}
}
