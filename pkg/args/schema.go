// SPDX-License-Identifier: AGPL-3.0-or-later

package args

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Schema maps single-character identifiers to the kind of value they take.
// A Schema is immutable once compiled and may be shared between goroutines.
type Schema struct {
	text     string
	elements map[rune]Element
	order    []rune
}

// Compile parses schemaText into a Schema. Elements are processed left to
// right and the first invalid one aborts compilation.
//
// Duplicate identifiers are not rejected: the last definition wins.
func Compile(schemaText string) (*Schema, error) {
	s := &Schema{
		text:     schemaText,
		elements: make(map[rune]Element),
	}
	for _, raw := range strings.Split(schemaText, ",") {
		element := strings.TrimSpace(raw)
		if element == "" {
			continue
		}
		e, err := compileElement(element, schemaText)
		if err != nil {
			return nil, err
		}
		if _, seen := s.elements[e.ID]; !seen {
			s.order = append(s.order, e.ID)
		}
		s.elements[e.ID] = e
	}
	return s, nil
}

// MustCompile is like Compile but panics if the schema is invalid.
func MustCompile(schemaText string) *Schema {
	s, err := Compile(schemaText)
	if err != nil {
		panic(`args: Compile(` + schemaText + `): ` + err.Error())
	}
	return s
}

func compileElement(element, schemaText string) (Element, error) {
	id, size := utf8.DecodeRuneInString(element)
	if !unicode.IsLetter(id) {
		return Element{}, &Error{Code: ErrInvalidIdentifier, ID: id, Schema: schemaText}
	}
	tail := element[size:]
	kind, ok := kindForSuffix(tail)
	if !ok {
		return Element{}, &Error{Code: ErrInvalidElementFormat, ID: id, Parameter: tail}
	}
	return Element{ID: id, Kind: kind}, nil
}

// Lookup returns the element bound to id.
func (s *Schema) Lookup(id rune) (Element, bool) {
	e, ok := s.elements[id]
	return e, ok
}

// Len returns the number of distinct identifiers in s.
func (s *Schema) Len() int {
	return len(s.order)
}

// Elements returns the compiled elements in the order their identifiers
// first appeared in the schema text.
func (s *Schema) Elements() []Element {
	out := make([]Element, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.elements[id])
	}
	return out
}

// String returns the schema text s was compiled from.
func (s *Schema) String() string {
	return s.text
}
