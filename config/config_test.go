package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlink/geom"
)

// writeConfig writes body to a temp file and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
input: boxes.txt
mode: complete
link_budget: 10
top_k: 2
axis: z
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(filepath.Dir(path), "boxes.txt"), cfg.Input)
	assert.Equal(t, ModeComplete, cfg.Mode)
	assert.Equal(t, 10, cfg.LinkBudget)
	assert.Equal(t, 2, cfg.TopK)

	axis, err := cfg.GeomAxis()
	require.NoError(t, err)
	assert.Equal(t, geom.AxisZ, axis)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "input: boxes.txt\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultMode, cfg.Mode)
	assert.Equal(t, DefaultLinkBudget, cfg.LinkBudget)
	assert.Equal(t, DefaultTopK, cfg.TopK)
	assert.Equal(t, DefaultAxis, cfg.Axis)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "mode: [",
		"empty input":     "input: \"\"\n",
		"unknown mode":    "mode: spiral\n",
		"negative budget": "link_budget: -4\n",
		"zero top_k":      "top_k: 0\n",
		"bad axis":        "axis: w\n",
		"bad log level":   "log:\n  level: loud\n",
		"bad log format":  "log:\n  format: xml\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
		})
	}
}

func TestParse_AxisWrapsGeomError(t *testing.T) {
	_, err := Parse([]byte("axis: q\n"))
	assert.ErrorIs(t, err, geom.ErrUnknownAxis)
}

// TestLoad_RelativeInput checks a relative input is resolved next to the
// config file, while stdin and absolute paths are left alone.
func TestLoad_RelativeInput(t *testing.T) {
	path := writeConfig(t, "input: boxes.txt\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "boxes.txt"), cfg.Input)

	cfg, err = Load(writeConfig(t, "input: \"-\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Input)

	abs := filepath.Join(t.TempDir(), "abs.txt")
	cfg, err = Load(writeConfig(t, "input: "+abs+"\n"))
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Input)
}
