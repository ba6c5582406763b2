package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refundYAML = `name: refund
time_limit: 1
times:
  - [0, 2, 2, 2, -1]
  - [9, 0, 2, 2, -1]
  - [9, 3, 0, 2, -1]
  - [9, 3, 2, 0, -1]
  - [9, 3, 2, 2, 0]
`

const fuelJSONC = `{
  // state 0 is the raw ore
  "counts": [
    [0, 1, 0, 0, 0, 1],
    [4, 0, 0, 3, 2, 0],
    [0, 0, 0, 0, 0, 0],
    [0, 0, 0, 0, 0, 0],
    [0, 0, 0, 0, 0, 0],
    [0, 0, 0, 0, 0, 0],
  ],
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("ESCAPE_CONFIG", "")
	t.Setenv(debugEnv, "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestPlan_Text(t *testing.T) {
	path := writeFile(t, "refund.yaml", refundYAML)
	code, out, errOut := runCLI(t, "plan", path, "--no-color", "--route")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "rescued:   [1 2]\n")
	assert.Contains(t, out, "route:     start -> exit -> target 1 -> exit -> target 2 -> exit\n")
	assert.Empty(t, errOut)
}

func TestPlan_JSONWithTimeLimitOverride(t *testing.T) {
	path := writeFile(t, "refund.yaml", refundYAML)
	code, out, errOut := runCLI(t, "plan", path, "-o", "json", "--time-limit", "0")
	require.Equal(t, 0, code, errOut)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 0.0, got["time_limit"])
	assert.Equal(t, []any{1.0}, got["targets"])
	assert.Equal(t, 0.0, got["cost"])
	assert.NotContains(t, got, "route")
}

func TestPlan_TimeLimitOutOfRange(t *testing.T) {
	path := writeFile(t, "refund.yaml", refundYAML)
	code, out, errOut := runCLI(t, "plan", path, "--no-color", "--time-limit", "1000")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error: time_limit 1000")
}

func TestPlan_ConfigFile(t *testing.T) {
	path := writeFile(t, "refund.yaml", refundYAML)
	cfg := writeFile(t, "escape.yaml", "output: yaml\nroute: true\ncolor: false\n")
	code, out, errOut := runCLI(t, "--config", cfg, "plan", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "scenario: refund\n")
	assert.Contains(t, out, "route:\n")

	// --route=false beats the file.
	code, out, _ = runCLI(t, "--config", cfg, "plan", path, "--route=false")
	require.Equal(t, 0, code)
	assert.NotContains(t, out, "route:")
}

func TestPlan_VerboseLogs(t *testing.T) {
	path := writeFile(t, "refund.yaml", refundYAML)
	code, _, errOut := runCLI(t, "plan", path, "--no-color", "--verbose")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "search finished")
	assert.Contains(t, errOut, "scenario=refund")
}

func TestAbsorb_Text(t *testing.T) {
	path := writeFile(t, "fuel.jsonc", fuelJSONC)
	code, out, errOut := runCLI(t, "absorb", path, "--no-color")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "scenario:  fuel\n")
	assert.Contains(t, out, "state 5:   9/14\n")
	assert.Contains(t, out, "solution:  [0 3 2 9 14]\n")
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"plan", "nope.yaml"}, "reading nope.yaml"},
		{"unknown format", []string{"absorb", "fuel.txt"}, "unknown file format"},
		{"no args", []string{"plan"}, "accepts 1 arg(s)"},
		{"bad output", []string{"version", "-o", "xml"}, "output must be one of"},
		{"missing config", []string{"version", "--config", "/nonexistent/escape.yaml"}, "reading config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, append(tc.args, "--no-color")...)
			assert.Equal(t, 1, code)
			assert.Contains(t, errOut, "error: ")
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "escape dev (unknown)\n", out)
}
