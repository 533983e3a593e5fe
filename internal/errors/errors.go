package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Exit codes returned to the OS. Scripts branch on these, so the values are
// part of the CLI contract.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorInput    = 3 // input failed validation
	ExitErrorConfig   = 4
	ExitErrorCanceled = 130 // 128+SIGINT, the usual shell convention
)

// ConfigError reports flag or environment values the program cannot run
// with. It maps to ExitErrorConfig.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationKind classifies why an input was rejected.
type ValidationKind int

const (
	// NotANumber marks input that does not parse as an unsigned decimal
	// integer: empty text, letters, symbols, or a leading minus sign.
	NotANumber ValidationKind = iota
	// OutOfRange marks input that parsed but falls outside the accepted
	// interval.
	OutOfRange
)

// String returns the kind name for diagnostics and log fields.
func (k ValidationKind) String() string {
	switch k {
	case NotANumber:
		return "not_a_number"
	case OutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// ValidationError is an input rejection. It identifies the field, keeps the
// offending raw text for display, and classifies the rejection so the
// presentation layer can phrase it without re-parsing.
//
// Validation failures are user-correctable: they are reported, never treated
// as fatal, and callers keep their previous state.
type ValidationError struct {
	Field   string
	Input   string // raw text as entered, after trimming
	Kind    ValidationKind
	Message string // user-facing phrasing
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// NewNotANumber builds the ValidationError for input that failed to parse.
// The input should already be trimmed.
func NewNotANumber(field, input string) error {
	return ValidationError{
		Field:   field,
		Input:   input,
		Kind:    NotANumber,
		Message: "please enter a valid number",
	}
}

// NewOutOfRange builds the ValidationError for a parsed value beyond max.
func NewOutOfRange(field, input string, max uint64) error {
	return ValidationError{
		Field:   field,
		Input:   input,
		Kind:    OutOfRange,
		Message: fmt.Sprintf("number %s is too large: enter a value between 0 and %d", input, max),
	}
}

// IsValidationError reports whether err carries a ValidationError anywhere
// in its chain.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// CalculationError marks a failure while computing the sequence or its
// geometry. The cause stays reachable through Unwrap.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap exposes the cause to errors.Is and errors.As.
func (e CalculationError) Unwrap() error { return e.Cause }

// NewCalculationError wraps a cause in a CalculationError.
func NewCalculationError(cause error) error {
	return CalculationError{Cause: cause}
}

// TimeoutError reports an operation that ran past its deadline, named so
// the message can say which one.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError prefixes err with a formatted message, keeping the chain intact
// for errors.Is and errors.As. A nil err stays nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a cancellation or deadline error,
// wrapped or not.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
