// SPDX-License-Identifier: AGPL-3.0-or-later

package args

import "strings"

const flagPrefix = "-"

// Parse compiles schemaText and scans argv against it.
func Parse(schemaText string, argv []string) (*Arguments, error) {
	s, err := Compile(schemaText)
	if err != nil {
		return nil, err
	}
	return s.Scan(argv)
}

// Scan parses argv against s. Tokens that do not start with "-" are ignored.
// Each character after the dash is a flag; flags that take a parameter consume
// the following tokens in order, so "-nbs 10 Foo" binds 10 to n and Foo to s.
//
// The first failure aborts the scan and no Arguments are returned.
func (s *Schema) Scan(argv []string) (*Arguments, error) {
	res := newArguments()
	for i := 0; i < len(argv); i++ {
		if !strings.HasPrefix(argv[i], flagPrefix) {
			continue
		}
		next, err := s.scanCluster(argv, i, res)
		if err != nil {
			return nil, err
		}
		i = next
	}
	return res, nil
}

// scanCluster expands the flag cluster at argv[i] and returns the index of
// the last token it consumed.
func (s *Schema) scanCluster(argv []string, i int, res *Arguments) (int, error) {
	for _, c := range argv[i][len(flagPrefix):] {
		e, ok := s.elements[c]
		if !ok {
			return i, &Error{Code: ErrUnexpectedArgument, ID: c}
		}

		var param string
		if e.Kind.RequiresParameter() {
			if i+1 >= len(argv) {
				return i, &Error{Code: ErrMissingParameter, ID: c}
			}
			i++
			param = argv[i]
		}

		v, err := e.Kind.parse(c, param)
		if err != nil {
			return i, err
		}
		res.set(c, v)
	}
	return i, nil
}
