package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlink/cluster"
	"github.com/katalvlaran/lvlink/geom"
	"github.com/katalvlaran/lvlink/linkage"
)

// Run modes.
const (
	// ModeClusters runs linkage.ClusterProduct.
	ModeClusters = "clusters"
	// ModeComplete runs linkage.CompletingEdge.
	ModeComplete = "complete"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultInput      = "-"
	DefaultMode       = ModeClusters
	DefaultLinkBudget = linkage.DefaultLinkBudget
	DefaultTopK       = cluster.DefaultK
	DefaultAxis       = "x"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config is one run of the junction linker.
type Config struct {
	// Input is the path of the point file; "-" means stdin. Load resolves a
	// relative path against the directory of the config file.
	Input string `yaml:"input"`

	// Mode is ModeClusters or ModeComplete.
	Mode string `yaml:"mode"`

	// LinkBudget is the number of links accepted in clusters mode.
	LinkBudget int `yaml:"link_budget"`

	// TopK is the number of largest circuits multiplied in clusters mode.
	TopK int `yaml:"top_k"`

	// Axis is the coordinate multiplied in complete mode: x, y or z.
	Axis string `yaml:"axis"`

	Log LogConfig `yaml:"log"`
}

// LogConfig selects the slog handler built by the CLI.
type LogConfig struct {
	// Level is debug | info | warn | error.
	Level string `yaml:"level"`

	// Format is text | json.
	Format string `yaml:"format"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		Input:      DefaultInput,
		Mode:       DefaultMode,
		LinkBudget: DefaultLinkBudget,
		TopK:       DefaultTopK,
		Axis:       DefaultAxis,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults, and a relative Input is
// made relative to the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if cfg.Input != "-" && !filepath.IsAbs(cfg.Input) {
		cfg.Input = filepath.Join(filepath.Dir(path), cfg.Input)
	}

	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values and structural constraints.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("config: input is required")
	}
	switch c.Mode {
	case ModeClusters, ModeComplete:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	if c.LinkBudget < 0 {
		return fmt.Errorf("config: link_budget must not be negative")
	}
	if c.TopK < 1 {
		return fmt.Errorf("config: top_k must be positive")
	}
	if _, err := geom.ParseAxis(c.Axis); err != nil {
		return fmt.Errorf("config: axis: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}

	return nil
}

// GeomAxis returns Axis as a geom.Axis.
func (c *Config) GeomAxis() (geom.Axis, error) { return geom.ParseAxis(c.Axis) }

// SlogLevel maps Level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("config: unknown log level %q", l.Level)
	}
}
