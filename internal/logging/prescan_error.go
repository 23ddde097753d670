package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ErrorType represents different types of pre-scan errors
type ErrorType string

const (
	// ErrorTypeInvalidArguments represents invalid command line argument errors
	ErrorTypeInvalidArguments ErrorType = "invalid_arguments"
	// ErrorTypeLogFileOpen represents log file opening failures
	ErrorTypeLogFileOpen ErrorType = "log_file_open_failed"
	// ErrorTypeUserInterrupted represents user interruption
	ErrorTypeUserInterrupted ErrorType = "user_interrupted"
	// ErrorTypeSystemError represents system errors
	ErrorTypeSystemError ErrorType = "system_error"
)

// PreScanError represents an error that occurs before the dependency scan starts
type PreScanError struct {
	Type      ErrorType
	Message   string
	Component string
	RunID     string
	Err       error // Wrapped error for better error context preservation
}

// Error implements the error interface
func (e *PreScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v (component: %s, run_id: %s)", e.Type, e.Message, e.Err, e.Component, e.RunID)
	}
	return fmt.Sprintf("%s: %s (component: %s, run_id: %s)", e.Type, e.Message, e.Component, e.RunID)
}

// Is implements error wrapping for errors.Is
func (e *PreScanError) Is(target error) bool {
	_, ok := target.(*PreScanError)
	return ok
}

// As implements error wrapping for errors.As
func (e *PreScanError) As(target any) bool {
	if preScanErr, ok := target.(**PreScanError); ok {
		*preScanErr = e
		return true
	}
	return false
}

// Unwrap implements error wrapping for errors.Unwrap
func (e *PreScanError) Unwrap() error {
	return e.Err
}

// HandlePreScanError reports a pre-scan failure on stderr and through the
// default logger when one is configured.
func HandlePreScanError(errorType ErrorType, errorMsg, component, runID string) {
	// Build stderr output atomically to prevent interleaved output
	var stderrBuilder strings.Builder
	fmt.Fprintf(&stderrBuilder, "Error: %s\n", errorType)
	if component != "" {
		fmt.Fprintf(&stderrBuilder, "  Component: %s\n", component)
	}
	fmt.Fprintf(&stderrBuilder, "  Details: %s\n", errorMsg)
	if runID != "" {
		fmt.Fprintf(&stderrBuilder, "  Run ID: %s\n", runID)
	}
	fmt.Fprint(os.Stderr, stderrBuilder.String())

	// Try to log through slog if available
	if logger := slog.Default(); logger != nil {
		slog.Error("Pre-scan error occurred",
			"error_type", string(errorType),
			"error_message", errorMsg,
			"component", component,
			"run_id", runID,
		)
	}
}
