// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog loads named schemas from a YAML file.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/schemargs/pkg/args"
)

// Catalog is a set of named schemas.
type Catalog struct {
	Schemas []Entry `yaml:"schemas"`

	byName map[string]*Entry
}

// Entry is one named schema with optional help text per flag.
type Entry struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Schema      string            `yaml:"schema"`
	Flags       map[string]string `yaml:"flags"`

	compiled *args.Schema
}

// Load reads and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // path chosen by the user
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses and validates a catalog document.
func Decode(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &Catalog{byName: map[string]*Entry{}}, nil
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

// index compiles every entry and checks names and flag help keys.
func (c *Catalog) index() error {
	c.byName = make(map[string]*Entry, len(c.Schemas))
	for i := range c.Schemas {
		e := &c.Schemas[i]
		if e.Name == "" {
			return fmt.Errorf("schema #%d has no name", i+1)
		}
		if _, dup := c.byName[e.Name]; dup {
			return fmt.Errorf("duplicate schema name %q", e.Name)
		}

		compiled, err := args.Compile(e.Schema)
		if err != nil {
			return fmt.Errorf("schema %q: %w", e.Name, err)
		}
		for key := range e.Flags {
			id, size := utf8.DecodeRuneInString(key)
			if size != len(key) || size == 0 {
				return fmt.Errorf("schema %q: flag help key %q must be a single character", e.Name, key)
			}
			if _, ok := compiled.Lookup(id); !ok {
				return fmt.Errorf("schema %q: help for -%c which is not in %q", e.Name, id, e.Schema)
			}
		}

		e.compiled = compiled
		c.byName[e.Name] = e
	}
	return nil
}

// Lookup returns the entry called name.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Names returns the schema names sorted lexicographically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compile returns the compiled schema. Entries obtained from a loaded
// Catalog are already compiled.
func (e *Entry) Compile() (*args.Schema, error) {
	if e.compiled != nil {
		return e.compiled, nil
	}
	return args.Compile(e.Schema)
}

// Help returns the help text for flag id, or "".
func (e *Entry) Help(id rune) string {
	return e.Flags[string(id)]
}
