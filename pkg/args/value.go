// SPDX-License-Identifier: AGPL-3.0-or-later

package args

import "strconv"

// Value is a resolved flag value. Exactly one of the payloads is meaningful,
// selected by Kind; accessors for the other kinds return zero values.
type Value struct {
	kind Kind
	b    bool
	i    int
	s    string
}

func BoolValue(b bool) Value     { return Value{kind: Boolean, b: b} }
func IntValue(i int) Value       { return Value{kind: Integer, i: i} }
func StringValue(s string) Value { return Value{kind: String, s: s} }

// ZeroValue returns the default value reported for unset flags of kind k.
func ZeroValue(k Kind) Value {
	return Value{kind: k}
}

func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload, or false if v is not a Boolean.
func (v Value) Bool() bool {
	if v.kind != Boolean {
		return false
	}
	return v.b
}

// Int returns the integer payload, or 0 if v is not an Integer.
func (v Value) Int() int {
	if v.kind != Integer {
		return 0
	}
	return v.i
}

// Str returns the string payload, or "" if v is not a String.
func (v Value) Str() string {
	if v.kind != String {
		return ""
	}
	return v.s
}

// Any returns the payload as bool, int or string, or nil for an invalid Value.
func (v Value) Any() any {
	switch v.kind {
	case Boolean:
		return v.b
	case Integer:
		return v.i
	case String:
		return v.s
	default:
		return nil
	}
}

// String formats the payload as it would be written on a command line.
func (v Value) String() string {
	switch v.kind {
	case Boolean:
		return strconv.FormatBool(v.b)
	case Integer:
		return strconv.Itoa(v.i)
	case String:
		return v.s
	default:
		return ""
	}
}
