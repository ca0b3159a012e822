package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates the built-in example check failed.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorInput    = 5   // Indicates an unreadable or malformed input file.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ParseError reports a malformed instruction line. Cause identifies which
// part of the line was rejected and is matched with errors.Is.
type ParseError struct {
	// Line is the 1-based line number in the input, or 0 when unknown.
	Line int
	// Text is the offending line as read.
	Text string
	// Cause is the underlying parse failure.
	Cause error
}

// maxErrorText bounds how much of the offending line an error message quotes.
const maxErrorText = 40

// Error returns a message naming the line and the cause. Long lines are
// quoted up to maxErrorText bytes.
func (e ParseError) Error() string {
	text := e.Text
	if len(text) > maxErrorText {
		text = text[:maxErrorText] + "..."
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %q: %v", e.Line, text, e.Cause)
	}
	return fmt.Sprintf("%q: %v", text, e.Cause)
}

// Unwrap returns the underlying parse failure.
func (e ParseError) Unwrap() error { return e.Cause }

// InputError reports a failure to open or read the instruction file.
type InputError struct {
	// Path is the file that could not be read.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns a message naming the path and the I/O cause.
func (e InputError) Error() string {
	return fmt.Sprintf("reading input %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O error.
func (e InputError) Unwrap() error { return e.Cause }

// SelfCheckError reports that a counter disagreed with the known result of
// the built-in example. When it is returned the core logic is considered
// broken and no result on real input may be reported.
type SelfCheckError struct {
	// Counter is the name of the counter that failed.
	Counter string
	// Want is the expected count for the example.
	Want int
	// Got is the count the counter produced.
	Got int
}

// Error returns a message describing the mismatch.
func (e SelfCheckError) Error() string {
	return fmt.Sprintf("self-check failed for %s: expected %d, got %d", e.Counter, e.Want, e.Got)
}

// MismatchError reports that two counters measuring the same quantity
// disagreed on the same input.
type MismatchError struct {
	// Quantity names what both counters measure.
	Quantity string
	// Reference and Candidate name the two counters.
	Reference, Candidate string
	// Want is the reference count; Got is the candidate's.
	Want, Got int
}

// Error returns a message naming both counters and their counts.
func (e MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch: %s counted %d, %s counted %d", e.Quantity, e.Reference, e.Want, e.Candidate, e.Got)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies the ANSI sequences used when printing a diagnosis.
// A nil ColorProvider prints without color.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		configErr     ConfigError
		validationErr ValidationError
		parseErr      ParseError
		inputErr      InputError
		selfCheckErr  SelfCheckError
		mismatchErr   MismatchError
	)
	switch {
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &selfCheckErr), errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	case errors.As(err, &parseErr), errors.As(err, &inputErr):
		return ExitErrorInput
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleError prints a one-line diagnosis of err to out and returns the
// matching exit code. A nil err prints nothing and returns ExitSuccess.
//
// Parameters:
//   - err: The error to report.
//   - out: The writer for the diagnosis.
//   - colors: Color sequences, or nil for plain output.
//
// Returns:
//   - int: The exit code for err.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	red, yellow, reset := "", "", ""
	if colors != nil {
		red, yellow, reset = colors.Red(), colors.Yellow(), colors.Reset()
	}

	code := ExitCode(err)
	switch code {
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s (%v)\n", yellow, reset, err)
	case ExitErrorMismatch:
		var selfCheckErr SelfCheckError
		if errors.As(err, &selfCheckErr) {
			fmt.Fprintf(out, "%sStatus: Self-check failed.%s %v\n", red, reset, err)
			fmt.Fprintf(out, "Refusing to report results on real input.\n")
		} else {
			fmt.Fprintf(out, "%sStatus: CRITICAL ERROR!%s %v\n", red, reset, err)
		}
	case ExitErrorInput:
		fmt.Fprintf(out, "%sStatus: Invalid input.%s %v\n", red, reset, err)
	case ExitErrorConfig:
		fmt.Fprintf(out, "%sStatus: Configuration error.%s %v\n", red, reset, err)
	default:
		fmt.Fprintf(out, "%sStatus: Failure.%s %v\n", red, reset, err)
	}
	return code
}
