// Package errors provides structured error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for failures surfaced to the calling agent.
const (
	CodeInvalidParams       = "INVALID_PARAMS"
	CodeUnknownOperation    = "UNKNOWN_OPERATION"
	CodeExternalToolFailure = "EXTERNAL_TOOL_FAILURE"
	CodeNotebookFileMissing = "NOTEBOOK_FILE_MISSING"
	CodeConfiguration       = "CONFIGURATION_ERROR"
	CodeInternal            = "INTERNAL_ERROR"
)

// Error is a coded error surfaced to the caller as a structured failure.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// Error returns the formatted error string including the code.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Code extracts the error code from err's chain, or empty string if err
// carries no coded error.
func Code(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// InvalidParams reports a required argument missing or empty at the boundary.
func InvalidParams(message string) *Error {
	return &Error{Code: CodeInvalidParams, Message: message}
}

// InvalidParamsf is InvalidParams with formatting.
func InvalidParamsf(format string, args ...any) *Error {
	return InvalidParams(fmt.Sprintf(format, args...))
}

// UnknownOperation reports a requested tool name not present in the registry.
func UnknownOperation(name string) *Error {
	return &Error{Code: CodeUnknownOperation, Message: fmt.Sprintf("unknown tool: %s", name)}
}

// ExternalTool reports that the kaggle CLI exited non-zero or could not be
// started. The original message is preserved, never parsed further.
func ExternalTool(message string, cause error) *Error {
	return &Error{Code: CodeExternalToolFailure, Message: message, Cause: cause}
}

// NotebookFileMissing reports a pull that produced no notebook file.
func NotebookFileMissing(message string) *Error {
	return &Error{Code: CodeNotebookFileMissing, Message: message}
}

// Configuration reports a fatal startup configuration problem.
func Configuration(message string, cause error) *Error {
	return &Error{Code: CodeConfiguration, Message: message, Cause: cause}
}

// Internal reports an unexpected local failure (filesystem, encoding).
func Internal(message string, cause error) *Error {
	return &Error{Code: CodeInternal, Message: message, Cause: cause}
}

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// New creates a new error using fmt.Errorf.
func New(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
