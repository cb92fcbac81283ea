package clierr

import (
	"errors"
	"fmt"

	"github.com/bartekus/skillstub/internal/skill"
)

// Process exit codes. An orchestrator invoking the CLI branches on
// these the same way a library caller branches on skill.Status.
const (
	CodeOK      = 0
	CodeCLI     = 1 // flag/IO/usage errors, anything not status-shaped
	CodeFailure = 2 // at least one skill returned FAILURE
	CodeError   = 3 // at least one dispatch returned ERROR
)

type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

func (e *ExitError) ExitCode() int { return e.code }

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Newf is a formatted variant.
func Newf(code int, format string, args ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// FromStatus converts a dispatch outcome into the exit-code contract.
// SUCCESS maps to nil; ERROR dominates FAILURE when callers aggregate.
func FromStatus(status skill.Status, msg string) error {
	switch status {
	case skill.StatusFailure:
		return New(CodeFailure, msg)
	case skill.StatusError:
		return New(CodeError, msg)
	default:
		return nil
	}
}

// ExitCodeOf extracts an exit code from any error, defaulting to
// CodeCLI. Keeps main() dumb.
func ExitCodeOf(err error) int {
	if err == nil {
		return CodeOK
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return CodeCLI
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return CodeCLI
	}
	return code
}
