package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bartekus/schemargs/pkg/args"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	schema := args.MustCompile("n#,b,s*,q")
	parsed, err := schema.Scan([]string{"-nbs", "10", "Foo"})
	require.NoError(t, err)
	return NewReport(schema, parsed)
}

func TestNewReport(t *testing.T) {
	r := sampleReport(t)

	assert.Equal(t, "n#,b,s*,q", r.Schema)
	assert.Equal(t, []string{"n", "b", "s"}, r.Found)
	assert.Equal(t, map[string]any{"n": 10, "b": true, "s": "Foo", "q": false}, r.Values)
	assert.Equal(t, []Row{
		{Flag: "-n", Kind: "integer", Value: "10", Found: true},
		{Flag: "-b", Kind: "boolean", Value: "true", Found: true},
		{Flag: "-s", Kind: "string", Value: "Foo", Found: true},
		{Flag: "-q", Kind: "boolean", Value: "false", Found: false},
	}, r.Rows)
}

func TestWriteReport_Formats(t *testing.T) {
	r := sampleReport(t)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, "json", r))
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "n#,b,s*,q", decoded["schema"])
		assert.Equal(t, []any{"n", "b", "s"}, decoded["found"])
		assert.NotContains(t, buf.String(), "Rows")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, "yaml", r))
		var decoded struct {
			Found  []string       `yaml:"found"`
			Values map[string]any `yaml:"values"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, []string{"n", "b", "s"}, decoded.Found)
		assert.Equal(t, 10, decoded.Values["n"])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, "table", r))
		want := "| Flag | Kind | Value | Found |\n" +
			"| --- | --- | --- | --- |\n" +
			"| -n | integer | 10 | true |\n" +
			"| -b | boolean | true | true |\n" +
			"| -s | string | Foo | true |\n" +
			"| -q | boolean | false | false |\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, "text", r))
		out := buf.String()
		assert.Contains(t, out, "-n")
		assert.Contains(t, out, `"Foo"`)
		assert.Contains(t, out, "(default)")
	})

	t.Run("unknown", func(t *testing.T) {
		err := WriteReport(&bytes.Buffer{}, "xml", r)
		assert.EqualError(t, err, `unknown output format "xml"`)
	})
}

func TestTable_EscapesCells(t *testing.T) {
	got := Table([]string{"A"}, [][]string{{"x|y\nz"}})
	assert.Equal(t, "| A |\n| --- |\n| x\\|y z |\n", got)
}

func TestElementRows(t *testing.T) {
	schema := args.MustCompile("p#,v")
	rows := ElementRows(schema, func(id rune) string {
		if id == 'p' {
			return "port"
		}
		return ""
	})
	assert.Equal(t, []ElementRow{
		{Flag: "-p", Kind: "integer", Parameter: true, Help: "port"},
		{Flag: "-v", Kind: "boolean", Parameter: false},
	}, rows)

	var buf bytes.Buffer
	require.NoError(t, WriteElements(&buf, "table", rows))
	assert.Contains(t, buf.String(), "| -p | integer | true | port |")
}

func TestNewErrorReport(t *testing.T) {
	_, err := args.Parse("n#", []string{"-n", "abc"})
	require.Error(t, err)

	r := NewErrorReport(err)
	assert.Equal(t, ErrorReport{
		Code:      "invalid_integer_parameter",
		Flag:      "n",
		Parameter: "abc",
		Message:   `argument -n expects an integer but was "abc"`,
	}, r)

	assert.Equal(t, ErrorReport{Code: "error", Message: "boom"}, NewErrorReport(errors.New("boom")))

	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "text", err))
	assert.Equal(t, "error [invalid_integer_parameter]: argument -n expects an integer but was \"abc\"\n", buf.String())
}
