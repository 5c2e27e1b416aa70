package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/jstrick/dojo/internal/logger"
)

// Sentinel errors for the action layer. The TUI and CLI match on these with
// errors.Is and display a message instead of crashing the session.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrAlreadyEnded     = errors.New("session has already ended")
	ErrInvalidStatus    = errors.New("status must be 'pass' or 'fail'")
	ErrInvalidDate      = errors.New("date must be a valid YYYY-MM-DD date")
	ErrInvalidIntensity = errors.New("intensity must be between 1 and 10")
	ErrPromptNotFound   = errors.New("prompt not found")
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
