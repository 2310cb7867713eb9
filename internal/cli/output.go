package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/roach88/staffroll/internal/roster"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Operation failure (not found, duplicate, invalid input, failed scenarios)
	ExitCommandError = 2 // Command error (bad flags, unreadable config, storage unreachable)
)

// Error codes reported in CLI output.
const (
	CodeDuplicate    = "E_DUPLICATE"
	CodeNotFound     = "E_NOT_FOUND"
	CodeFormat       = "E_FORMAT"
	CodeStorage      = "E_STORAGE"
	CodeInvalid      = "E_INVALID"
	CodeNameMismatch = "E_NAME_MISMATCH"
	CodeInternal     = "E_INTERNAL"
)

// Messages shown for operation outcomes.
const (
	MsgInserted     = "Employee inserted successfully!"
	MsgUpdated      = "Employee updated successfully!"
	MsgDeleted      = "Employee deleted successfully!"
	MsgNotFound     = "Employee not found."
	MsgDuplicate    = "An employee with this ID already exists."
	MsgNameMismatch = "Employee name doesn't match the provided ID."
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// reported is set when the error was already written through an
	// OutputFormatter, so Execute does not print it twice.
	reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E_NOT_FOUND", "E_DUPLICATE", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	fmt.Fprintln(f.Writer, data)
	return nil
}

// Done reports a completed operation: msg in text mode, data in JSON mode.
func (f *OutputFormatter) Done(msg string, data interface{}) error {
	if f.Format == "json" {
		return f.Success(data)
	}
	successColor.Fprintln(f.Writer, msg)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	errorColor.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// describeError maps a roster error to its output code, exit code and
// user-facing message. details carries the full error text when the message
// is a fixed phrase.
func describeError(err error) (code string, exit int, message string, details interface{}) {
	switch roster.Kind(err) {
	case roster.KindDuplicateKey:
		return CodeDuplicate, ExitFailure, MsgDuplicate, err.Error()
	case roster.KindNotFound:
		return CodeNotFound, ExitFailure, MsgNotFound, err.Error()
	case roster.KindNameMismatch:
		return CodeNameMismatch, ExitFailure, MsgNameMismatch, err.Error()
	case roster.KindInvalidFormat:
		return CodeFormat, ExitFailure, err.Error(), nil
	case roster.KindInvalidInput:
		return CodeInvalid, ExitFailure, err.Error(), nil
	case roster.KindStorage:
		return CodeStorage, ExitCommandError, err.Error(), nil
	default:
		return CodeInternal, ExitFailure, err.Error(), nil
	}
}

// reportError writes err through f and returns the ExitError the command
// should return.
func reportError(f *OutputFormatter, err error) error {
	code, exit, message, details := describeError(err)
	if werr := f.Error(code, message, details); werr != nil {
		return WrapExitError(ExitCommandError, "failed to write output", werr)
	}
	return &ExitError{Code: exit, Message: message, Err: err, reported: true}
}
