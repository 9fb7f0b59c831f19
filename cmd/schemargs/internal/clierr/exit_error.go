// Package clierr maps schemargs failures onto process exit codes.
package clierr

import (
	"errors"
	"fmt"

	"github.com/bartekus/schemargs/pkg/args"
)

// Exit codes returned by the schemargs binary.
const (
	ExitOK            = 0
	ExitGeneric       = 1
	ExitInvalidSchema = 2
	ExitInvalidArgs   = 3
	ExitVerifyFailed  = 4
	ExitConfig        = 5
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
	// Stable and user-facing; the code is not part of the message.
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
func Newf(code int, format string, a ...any) error {
	return &ExitError{code: normalize(code), msg: fmt.Sprintf(format, a...)}
}

// Wrap creates an ExitError that wraps an underlying cause.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}
	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// Wrapf is a formatted variant that wraps.
func Wrapf(code int, cause error, format string, a ...any) error {
	return Wrap(code, fmt.Sprintf(format, a...), cause)
}

// FromArgs classifies an error returned by package args: schema errors exit
// with ExitInvalidSchema, scan errors with ExitInvalidArgs. Other errors are
// returned unchanged.
func FromArgs(err error) error {
	var argsErr *args.Error
	if !errors.As(err, &argsErr) {
		return err
	}
	if argsErr.Code.IsSchemaError() {
		return Wrap(ExitInvalidSchema, "invalid schema", err)
	}
	return Wrap(ExitInvalidArgs, "invalid arguments", err)
}

// ExitCodeOf extracts an exit code from any error, defaulting to 1.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitGeneric
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return ExitGeneric
	}
	return code
}
