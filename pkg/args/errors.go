// SPDX-License-Identifier: AGPL-3.0-or-later

package args

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a compile or scan failure. ErrorCode values are
// themselves errors so they can be used as errors.Is targets.
type ErrorCode int

const (
	// ErrInvalidIdentifier: a schema element does not start with a letter.
	ErrInvalidIdentifier ErrorCode = iota + 1
	// ErrInvalidElementFormat: a schema element has an unknown type suffix.
	ErrInvalidElementFormat
	// ErrUnexpectedArgument: a flag character is not in the schema.
	ErrUnexpectedArgument
	// ErrMissingParameter: a flag that takes a parameter is the last token.
	ErrMissingParameter
	// ErrInvalidIntegerParameter: an integer flag's parameter is not a number.
	ErrInvalidIntegerParameter
)

var errorCodeNames = map[ErrorCode]string{
	ErrInvalidIdentifier:       "invalid_identifier",
	ErrInvalidElementFormat:    "invalid_element_format",
	ErrUnexpectedArgument:      "unexpected_argument",
	ErrMissingParameter:        "missing_parameter",
	ErrInvalidIntegerParameter: "invalid_integer_parameter",
}

// String returns the stable snake_case name of c.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("error_code_%d", int(c))
}

func (c ErrorCode) Error() string {
	return strings.ReplaceAll(c.String(), "_", " ")
}

// IsSchemaError reports whether c is raised while compiling a schema rather
// than while scanning arguments.
func (c ErrorCode) IsSchemaError() bool {
	return c == ErrInvalidIdentifier || c == ErrInvalidElementFormat
}

// ParseErrorCode is the inverse of ErrorCode.String.
func ParseErrorCode(name string) (ErrorCode, error) {
	for code, n := range errorCodeNames {
		if n == name {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown error code %q", name)
}

// Error describes why a schema could not be compiled or an argument vector
// could not be scanned.
type Error struct {
	Code ErrorCode
	// ID is the offending identifier or flag character.
	ID rune
	// Parameter holds the rejected type suffix (ErrInvalidElementFormat) or
	// parameter text (ErrInvalidIntegerParameter).
	Parameter string
	// Schema is the full schema text (ErrInvalidIdentifier).
	Schema string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrInvalidIdentifier:
		return fmt.Sprintf("bad character: %c in args format: %s", e.ID, e.Schema)
	case ErrInvalidElementFormat:
		return fmt.Sprintf("argument: %c has invalid format: %s", e.ID, e.Parameter)
	case ErrUnexpectedArgument:
		return fmt.Sprintf("argument -%c unexpected", e.ID)
	case ErrMissingParameter:
		return fmt.Sprintf("could not find parameter for -%c", e.ID)
	case ErrInvalidIntegerParameter:
		return fmt.Sprintf("argument -%c expects an integer but was %q", e.ID, e.Parameter)
	default:
		return fmt.Sprintf("%v: -%c", e.Code, e.ID)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrMissingParameter) and friends match on Code.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.Code
}
