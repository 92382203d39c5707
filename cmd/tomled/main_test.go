package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `title = "example"

[database]
host = "localhost"
port = 8080

[[server.routes]]
path = "/a"
`

func writeSample(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	return path
}

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGetCmd(t *testing.T) {
	path := writeSample(t)

	tcs := map[string]struct {
		path string
		want string
	}{
		"top-level key": {path: "title", want: "example\n"},
		"nested key":    {path: "database.port", want: "8080\n"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, _, err := runCmd(t, "get", path, tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// An array-table's name is its whole bracket-interior text taken as one
// opaque literal (see internal/span.spanName) — "server.routes" here,
// not a nested "server" table holding a "routes" array. dottedLookup
// splits on '.', so it cannot reach a dotted array-table name; get
// reports it as missing rather than descending incorrectly.
func TestGetCmd_DottedArrayTableNameNotAddressable(t *testing.T) {
	path := writeSample(t)

	_, _, err := runCmd(t, "get", path, "server.routes.path")
	assert.Error(t, err)
}

func TestGetCmd_MissingPathFails(t *testing.T) {
	path := writeSample(t)

	_, _, err := runCmd(t, "get", path, "database.missing")
	assert.Error(t, err)
}

func TestSetCmd_UpdatesFileInPlace(t *testing.T) {
	path := writeSample(t)

	_, _, err := runCmd(t, "set", path, "database.port", "9090")
	require.NoError(t, err)

	got, err := os.ReadFile(path) //nolint:gosec // G304: path is a t.TempDir() file.
	require.NoError(t, err)
	assert.Contains(t, string(got), "port = 9090")
}

func TestSetCmd_NotAKeyvalFails(t *testing.T) {
	path := writeSample(t)

	_, _, err := runCmd(t, "set", path, "database", "9090")
	assert.Error(t, err)
}

func TestSetCmd_SyntaxErrorLeavesFileUntouched(t *testing.T) {
	path := writeSample(t)
	before, err := os.ReadFile(path) //nolint:gosec // G304: path is a t.TempDir() file.
	require.NoError(t, err)

	_, stderr, err := runCmd(t, "set", path, "title", `"unterminated`)
	assert.Error(t, err)
	assert.NotEmpty(t, stderr)

	after, err := os.ReadFile(path) //nolint:gosec // G304: path is a t.TempDir() file.
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestListCmd_PrintsTopLevelSpans(t *testing.T) {
	path := writeSample(t)

	out, _, err := runCmd(t, "list", path, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, `title = "example"`)
	assert.Contains(t, out, "[database]")
	assert.Contains(t, out, "[[server.routes]]")
}
