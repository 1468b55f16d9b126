package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlink/config"
)

// invoke runs the command with the given args and stdin.
func invoke(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRun_ClustersFromConfig(t *testing.T) {
	code, out, _ := invoke(t, "", "-config", "testdata/sample.yaml")
	require.Equal(t, 0, code)
	assert.Equal(t, "40\n", out)
}

func TestRun_FlagsOverrideConfig(t *testing.T) {
	code, out, _ := invoke(t, "", "-config", "testdata/sample.yaml", "-mode", "complete")
	require.Equal(t, 0, code)
	assert.Equal(t, "25272\n", out)
}

func TestRun_Stdin(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	code, out, stderr := invoke(t, string(data), "-links", "10", "-log-format", "json")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "40\n", out)
	assert.Contains(t, stderr, `"msg":"points loaded"`)

	code, out, _ = invoke(t, string(data), "-mode", "complete", "-axis", "y")
	require.Equal(t, 0, code)
	assert.Equal(t, "24528\n", out)
}

func TestRun_Failures(t *testing.T) {
	data, err := os.ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	cases := []struct {
		name  string
		stdin string
		args  []string
		want  int
	}{
		{"bad flag", "", []string{"-nope"}, 2},
		{"missing config", "", []string{"-config", "testdata/absent.yaml"}, 1},
		{"bad mode", "", []string{"-mode", "spiral"}, 1},
		{"missing input", "", []string{"-input", "testdata/absent.txt"}, 1},
		{"malformed input", "1,2\n", nil, 1},
		{"empty input", "", []string{"-mode", "complete"}, 1},
		{"budget beyond pairs", string(data), []string{"-links", "191"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := invoke(t, tc.stdin, tc.args...)
			assert.Equal(t, tc.want, code)
			assert.Empty(t, out)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	_, err = newLogger(config.LogConfig{Level: "loud", Format: "text"}, &buf)
	assert.Error(t, err)
}
