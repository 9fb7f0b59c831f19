// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render formats scan results, schemas and errors for the CLI.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/schemargs/pkg/args"
)

// Row describes one schema element and the value it resolved to.
type Row struct {
	Flag  string `json:"flag" yaml:"flag"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
	Found bool   `json:"found" yaml:"found"`
}

// Report is the outcome of scanning an argument vector.
type Report struct {
	Schema string         `json:"schema" yaml:"schema"`
	Found  []string       `json:"found" yaml:"found"`
	Values map[string]any `json:"values" yaml:"values"`
	Rows   []Row          `json:"-" yaml:"-"`
}

// NewReport builds a report covering every element of schema. Values that
// were not supplied are reported as their zero value.
func NewReport(schema *args.Schema, parsed *args.Arguments) Report {
	r := Report{
		Schema: schema.String(),
		Found:  make([]string, 0, parsed.Cardinality()),
		Values: make(map[string]any, schema.Len()),
	}
	for _, id := range parsed.Found() {
		r.Found = append(r.Found, string(id))
	}
	for _, e := range schema.Elements() {
		v, found := parsed.Value(e.ID)
		if !found {
			v = args.ZeroValue(e.Kind)
		}
		r.Values[string(e.ID)] = v.Any()
		r.Rows = append(r.Rows, Row{
			Flag:  "-" + string(e.ID),
			Kind:  e.Kind.String(),
			Value: v.String(),
			Found: found,
		})
	}
	return r
}

// ElementRow describes one compiled schema element.
type ElementRow struct {
	Flag      string `json:"flag" yaml:"flag"`
	Kind      string `json:"kind" yaml:"kind"`
	Parameter bool   `json:"parameter" yaml:"parameter"`
	Help      string `json:"help,omitempty" yaml:"help,omitempty"`
}

// ElementRows lists the elements of schema. help may be nil.
func ElementRows(schema *args.Schema, help func(rune) string) []ElementRow {
	rows := make([]ElementRow, 0, schema.Len())
	for _, e := range schema.Elements() {
		row := ElementRow{
			Flag:      "-" + string(e.ID),
			Kind:      e.Kind.String(),
			Parameter: e.Kind.RequiresParameter(),
		}
		if help != nil {
			row.Help = help(e.ID)
		}
		rows = append(rows, row)
	}
	return rows
}

// ErrorReport is the machine-readable form of a compile or scan failure.
type ErrorReport struct {
	Code      string `json:"code" yaml:"code"`
	Flag      string `json:"flag,omitempty" yaml:"flag,omitempty"`
	Parameter string `json:"parameter,omitempty" yaml:"parameter,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

// NewErrorReport describes err. Errors that did not come from package args
// are reported with code "error".
func NewErrorReport(err error) ErrorReport {
	var argsErr *args.Error
	if !errors.As(err, &argsErr) {
		return ErrorReport{Code: "error", Message: err.Error()}
	}
	return ErrorReport{
		Code:      argsErr.Code.String(),
		Flag:      string(argsErr.ID),
		Parameter: argsErr.Parameter,
		Message:   argsErr.Error(),
	}
}

var (
	flagStyle  = lipgloss.NewStyle().Bold(true)
	kindStyle  = lipgloss.NewStyle().Faint(true)
	unsetStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// WriteReport writes r to w in the given format.
func WriteReport(w io.Writer, format string, r Report) error {
	switch format {
	case "text":
		for _, row := range r.Rows {
			value := strconv.Quote(row.Value)
			if row.Kind != args.String.String() {
				value = row.Value
			}
			if !row.Found {
				value = unsetStyle.Render(value + " (default)")
			}
			if _, err := fmt.Fprintf(w, "%s %s %s\n", flagStyle.Render(row.Flag), kindStyle.Render(row.Kind), value); err != nil {
				return err
			}
		}
		return nil
	case "table":
		rows := make([][]string, 0, len(r.Rows))
		for _, row := range r.Rows {
			rows = append(rows, []string{row.Flag, row.Kind, row.Value, strconv.FormatBool(row.Found)})
		}
		_, err := io.WriteString(w, Table([]string{"Flag", "Kind", "Value", "Found"}, rows))
		return err
	default:
		return encode(w, format, r)
	}
}

// WriteElements writes a schema listing to w in the given format.
func WriteElements(w io.Writer, format string, rows []ElementRow) error {
	switch format {
	case "text":
		for _, row := range rows {
			line := flagStyle.Render(row.Flag) + " " + kindStyle.Render(row.Kind)
			if row.Help != "" {
				line += "  " + row.Help
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case "table":
		cells := make([][]string, 0, len(rows))
		for _, row := range rows {
			cells = append(cells, []string{row.Flag, row.Kind, strconv.FormatBool(row.Parameter), row.Help})
		}
		_, err := io.WriteString(w, Table([]string{"Flag", "Kind", "Parameter", "Help"}, cells))
		return err
	default:
		return encode(w, format, rows)
	}
}

// WriteError writes an error report to w in the given format.
func WriteError(w io.Writer, format string, err error) error {
	r := NewErrorReport(err)
	switch format {
	case "json", "yaml":
		return encode(w, format, r)
	default:
		_, werr := fmt.Fprintf(w, "error [%s]: %s\n", r.Code, r.Message)
		return werr
	}
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// CatalogRow summarises one catalog entry.
type CatalogRow struct {
	Name        string `json:"name" yaml:"name"`
	Schema      string `json:"schema" yaml:"schema"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// WriteCatalog writes a catalog listing to w in the given format.
func WriteCatalog(w io.Writer, format string, rows []CatalogRow) error {
	switch format {
	case "text":
		for _, row := range rows {
			line := flagStyle.Render(row.Name) + " " + strconv.Quote(row.Schema)
			if row.Description != "" {
				line += "  " + kindStyle.Render(row.Description)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case "table":
		cells := make([][]string, 0, len(rows))
		for _, row := range rows {
			cells = append(cells, []string{row.Name, "`" + row.Schema + "`", row.Description})
		}
		_, err := io.WriteString(w, Table([]string{"Name", "Schema", "Description"}, cells))
		return err
	default:
		return encode(w, format, rows)
	}
}
