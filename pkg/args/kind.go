// SPDX-License-Identifier: AGPL-3.0-or-later

package args

import (
	"fmt"
	"strconv"
)

// Kind is the value type a schema element binds its flag to.
type Kind int

const (
	Boolean Kind = iota + 1
	Integer
	String
)

// Type suffixes recognised in schema elements.
const (
	booleanSuffix = ""
	integerSuffix = "#"
	stringSuffix  = "*"
)

// kindForSuffix maps a schema element tail to its kind.
func kindForSuffix(suffix string) (Kind, bool) {
	switch suffix {
	case booleanSuffix:
		return Boolean, true
	case integerSuffix:
		return Integer, true
	case stringSuffix:
		return String, true
	}
	return 0, false
}

// RequiresParameter reports whether flags of this kind consume the next token.
func (k Kind) RequiresParameter() bool {
	switch k {
	case Integer, String:
		return true
	default:
		return false
	}
}

// Suffix returns the schema syntax for k.
func (k Kind) Suffix() string {
	switch k {
	case Integer:
		return integerSuffix
	case String:
		return stringSuffix
	default:
		return booleanSuffix
	}
}

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Integer:
		return "integer"
	case String:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// parse converts the parameter text of flag id into a value of kind k.
// Boolean flags ignore text.
func (k Kind) parse(id rune, text string) (Value, error) {
	switch k {
	case Integer:
		n, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return Value{}, &Error{Code: ErrInvalidIntegerParameter, ID: id, Parameter: text, Err: err}
		}
		return IntValue(int(n)), nil
	case String:
		return StringValue(text), nil
	default:
		return BoolValue(true), nil
	}
}

// Element is one compiled schema entry.
type Element struct {
	ID   rune
	Kind Kind
}

// String renders e back in schema syntax, e.g. "n#".
func (e Element) String() string {
	return string(e.ID) + e.Kind.Suffix()
}
