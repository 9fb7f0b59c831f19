package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
	"github.com/bartekus/schemargs/internal/testutil/golden"
	"github.com/bartekus/schemargs/pkg/args"
)

func execute(t *testing.T, argv ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(argv)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse_JSON(t *testing.T) {
	dir := golden.TestdataDir(t)

	bundled, err := execute(t, "parse", "--schema", "n#,b,s*", "-o", "json", "--", "-nbs", "10", "Foo")
	require.NoError(t, err)
	golden.Assert(t, dir, "parse_bundled.json", bundled)

	separate, err := execute(t, "parse", "--schema", "n#,b,s*", "-o", "json", "--", "-n", "10", "-b", "-s", "Foo")
	require.NoError(t, err)
	assert.Equal(t, bundled, separate)
}

func TestParse_Table(t *testing.T) {
	out, err := execute(t, "parse", "--schema", "a,b,c", "--output", "table", "--", "-ac", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "| Flag | Kind | Value | Found |\n"+
		"| --- | --- | --- | --- |\n"+
		"| -a | boolean | true | true |\n"+
		"| -b | boolean | false | false |\n"+
		"| -c | boolean | true | true |\n", out)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		exitCode int
		code     error
	}{
		{
			name:     "invalid identifier",
			argv:     []string{"parse", "--schema", "1abc"},
			exitCode: clierr.ExitInvalidSchema,
			code:     args.ErrInvalidIdentifier,
		},
		{
			name:     "invalid element format",
			argv:     []string{"parse", "--schema", "n@"},
			exitCode: clierr.ExitInvalidSchema,
			code:     args.ErrInvalidElementFormat,
		},
		{
			name:     "unexpected argument",
			argv:     []string{"parse", "--schema", "a", "--", "-x"},
			exitCode: clierr.ExitInvalidArgs,
			code:     args.ErrUnexpectedArgument,
		},
		{
			name:     "missing parameter",
			argv:     []string{"parse", "--schema", "n#", "--", "-n"},
			exitCode: clierr.ExitInvalidArgs,
			code:     args.ErrMissingParameter,
		},
		{
			name:     "invalid integer",
			argv:     []string{"parse", "--schema", "n#", "--", "-n", "abc"},
			exitCode: clierr.ExitInvalidArgs,
			code:     args.ErrInvalidIntegerParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.argv...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, clierr.ExitCodeOf(err))
			assert.ErrorIs(t, err, tt.code)
		})
	}
}

func TestParse_ErrorReportJSON(t *testing.T) {
	out, err := execute(t, "parse", "--schema", "n#", "-o", "json", "--", "-n")
	require.Error(t, err)
	assert.Contains(t, out, `"code": "missing_parameter"`)
	assert.Contains(t, out, `"flag": "n"`)
}

func TestParse_NoSchema(t *testing.T) {
	_, err := execute(t, "parse", "--", "-a")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitInvalidSchema, clierr.ExitCodeOf(err))
}

func TestParse_SchemaFromConfigFile(t *testing.T) {
	cfg := writeFile(t, "schemargs.yaml", "schema: \"p#\"\noutput: yaml\n")

	out, err := execute(t, "--config", cfg, "parse", "--", "-p", "8080")
	require.NoError(t, err)
	assert.Contains(t, out, "p: 8080")
}

func TestParse_BadConfig(t *testing.T) {
	cfg := writeFile(t, "schemargs.yaml", "output: xml\n")

	_, err := execute(t, "--config", cfg, "parse", "--schema", "a")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitConfig, clierr.ExitCodeOf(err))
}

func TestCompile(t *testing.T) {
	out, err := execute(t, "compile", "n#,b,s*", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "| Flag | Kind | Parameter | Help |\n"+
		"| --- | --- | --- | --- |\n"+
		"| -n | integer | true |  |\n"+
		"| -b | boolean | false |  |\n"+
		"| -s | string | true |  |\n", out)

	_, err = execute(t, "compile", "a,9")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitInvalidSchema, clierr.ExitCodeOf(err))
}

const testCatalog = `
schemas:
  - name: server
    description: HTTP listener
    schema: "p#,v,r*"
    flags:
      p: listen port
  - name: archive
    schema: "c,x,f*"
`

func TestSchemas(t *testing.T) {
	path := writeFile(t, "catalog.yaml", testCatalog)

	out, err := execute(t, "--catalog", path, "schemas", "list", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "| Name | Schema | Description |\n"+
		"| --- | --- | --- |\n"+
		"| archive | `c,x,f*` |  |\n"+
		"| server | `p#,v,r*` | HTTP listener |\n", out)

	out, err = execute(t, "--catalog", path, "schemas", "show", "server", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"help": "listen port"`)

	_, err = execute(t, "--catalog", path, "schemas", "show", "nope")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitConfig, clierr.ExitCodeOf(err))

	_, err = execute(t, "schemas", "list")
	require.Error(t, err)
	assert.Equal(t, clierr.ExitConfig, clierr.ExitCodeOf(err))
}

func TestParse_UseCatalogEntry(t *testing.T) {
	path := writeFile(t, "catalog.yaml", testCatalog)

	out, err := execute(t, "--catalog", path, "parse", "--use", "server", "-o", "table", "--", "-vp", "8080")
	require.NoError(t, err)
	assert.Contains(t, out, "| -p | integer | 8080 | true |")
	assert.Contains(t, out, "| -r | string |  | false |")
}

const testCases = `
cases:
  - name: bundled
    schema: "n#,b,s*"
    args: ["-nbs", "10", "Foo"]
    expect:
      found: [n, b, s]
      values: {n: "10", s: Foo}
  - name: missing
    schema: "n#"
    args: ["-n"]
    error: missing_parameter
`

func TestVerify(t *testing.T) {
	cases := writeFile(t, "cases.yaml", testCases)
	state := t.TempDir()

	out, err := execute(t, "--state-dir", state, "verify", "run", cases)
	require.NoError(t, err)
	assert.Equal(t, "PASS: bundled\nPASS: missing\n", out)

	out, err = execute(t, "--state-dir", state, "verify", "report")
	require.NoError(t, err)
	assert.Equal(t, "Status: pass\nAll passed.\n", out)

	require.NoError(t, os.WriteFile(cases, []byte(testCases+`  - name: broken
    schema: "a"
    args: ["-a"]
    error: unexpected_argument
`), 0o600))

	_, err = execute(t, "--state-dir", state, "verify", "run", cases)
	require.Error(t, err)
	assert.Equal(t, clierr.ExitVerifyFailed, clierr.ExitCodeOf(err))

	out, err = execute(t, "--state-dir", state, "verify", "report")
	require.NoError(t, err)
	assert.Equal(t, "Status: fail\nFailed:\n  - broken\n", out)

	out, err = execute(t, "--state-dir", state, "verify", "run", cases, "bundled")
	require.NoError(t, err)
	assert.Equal(t, "PASS: bundled\n", out)

	_, err = execute(t, "--state-dir", state, "verify", "reset")
	require.NoError(t, err)

	out, err = execute(t, "--state-dir", state, "verify", "report")
	require.NoError(t, err)
	assert.Equal(t, "No run state found.\n", out)
}

func TestVerify_Resume(t *testing.T) {
	cases := writeFile(t, "cases.yaml", testCases)
	state := t.TempDir()

	out, err := execute(t, "--state-dir", state, "verify", "resume", cases)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = execute(t, "--state-dir", state, "verify", "run", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, clierr.ExitConfig, clierr.ExitCodeOf(err))
}
