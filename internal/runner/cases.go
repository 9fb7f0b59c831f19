package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/schemargs/pkg/args"
)

// CaseFile is a YAML document of conformance cases.
type CaseFile struct {
	Cases []Case `yaml:"cases"`
}

// Case scans Args against Schema and checks the outcome.
// Exactly one of Expect and Error describes the wanted outcome.
type Case struct {
	Name   string   `yaml:"name"`
	Schema string   `yaml:"schema"`
	Args   []string `yaml:"args"`
	Expect *Expect  `yaml:"expect,omitempty"`
	// Error is an error code name such as "missing_parameter".
	Error string `yaml:"error,omitempty"`
}

// Expect lists the flags that must be found and the textual value of
// selected flags. Flags not listed in Values are not checked.
type Expect struct {
	Found  []string          `yaml:"found"`
	Values map[string]string `yaml:"values"`
}

// LoadCases reads and validates a case file.
func LoadCases(path string) ([]Case, error) {
	f, err := os.Open(path) //nolint:gosec // path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("opening case file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cases, err := DecodeCases(f)
	if err != nil {
		return nil, fmt.Errorf("case file %s: %w", path, err)
	}
	return cases, nil
}

// DecodeCases parses and validates a case document.
func DecodeCases(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cf CaseFile
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding cases: %w", err)
	}

	seen := make(map[string]bool, len(cf.Cases))
	for i, c := range cf.Cases {
		if c.Name == "" {
			return nil, fmt.Errorf("case #%d has no name", i+1)
		}
		if strings.ContainsAny(c.Name, `/\`) || strings.Contains(c.Name, "..") {
			return nil, fmt.Errorf("case %q: name must not contain path separators", c.Name)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true

		if (c.Expect == nil) == (c.Error == "") {
			return nil, fmt.Errorf("case %q: exactly one of expect and error must be set", c.Name)
		}
		if c.Error != "" {
			if _, err := args.ParseErrorCode(c.Error); err != nil {
				return nil, fmt.Errorf("case %q: %w", c.Name, err)
			}
		}
	}
	return cf.Cases, nil
}

// Check runs the case and returns its result.
func (c Case) Check() CaseResult {
	res := CaseResult{Case: c.Name, Status: StatusPass}
	fail := func(format string, a ...any) CaseResult {
		res.Status = StatusFail
		res.Note = fmt.Sprintf(format, a...)
		return res
	}

	schema, err := args.Compile(c.Schema)
	var parsed *args.Arguments
	if err == nil {
		parsed, err = schema.Scan(c.Args)
	}
	if c.Error != "" {
		want, _ := args.ParseErrorCode(c.Error)
		if err == nil {
			return fail("expected %s, got success", want)
		}
		if !errors.Is(err, want) {
			return fail("expected %s, got: %v", want, err)
		}
		return res
	}
	if err != nil {
		return fail("unexpected error: %v", err)
	}

	found := make([]string, 0, parsed.Cardinality())
	for _, id := range parsed.Found() {
		found = append(found, string(id))
	}
	wantFound := append([]string(nil), c.Expect.Found...)
	sort.Strings(found)
	sort.Strings(wantFound)
	if strings.Join(found, ",") != strings.Join(wantFound, ",") {
		return fail("found [%s], want [%s]", strings.Join(found, ","), strings.Join(wantFound, ","))
	}

	keys := make([]string, 0, len(c.Expect.Values))
	for k := range c.Expect.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		want := c.Expect.Values[k]
		got := valueText(schema, parsed, k)
		if got != want {
			return fail("-%s = %q, want %q", k, got, want)
		}
	}
	return res
}

// valueText renders the value of flag key, using the schema's zero value
// when the flag was not supplied.
func valueText(schema *args.Schema, parsed *args.Arguments, key string) string {
	id := []rune(key)
	if len(id) != 1 {
		return ""
	}
	if v, ok := parsed.Value(id[0]); ok {
		return v.String()
	}
	if e, ok := schema.Lookup(id[0]); ok {
		return args.ZeroValue(e.Kind).String()
	}
	return ""
}
