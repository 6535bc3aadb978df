// Package config loads the blogcharts build configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/junkd0g/blogcharts/internal/charts"
	"github.com/junkd0g/blogcharts/internal/theme"
)

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidFormat is returned when the file cannot be parsed.
	ErrInvalidFormat = errors.New("invalid config format")
	// ErrValidationFailed is returned when a parsed config is inconsistent.
	ErrValidationFailed = errors.New("config validation failed")
)

// Format is an output format the build can produce.
type Format string

const (
	FormatSVG    Format = "svg"
	FormatFigure Format = "figure"
	FormatPNG    Format = "png"
	FormatDOT    Format = "dot"
)

// Formats lists every supported output format.
var Formats = []Format{FormatSVG, FormatFigure, FormatPNG, FormatDOT}

// Ext returns the file extension written for f.
func (f Format) Ext() string {
	switch f {
	case FormatFigure:
		return ".html"
	case FormatPNG:
		return ".png"
	case FormatDOT:
		return ".dot"
	default:
		return ".svg"
	}
}

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Formats {
		if f == k {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Config is the build configuration.
type Config struct {
	OutputDir string            `yaml:"output_dir"`
	Theme     string            `yaml:"theme"`
	Formats   []Format          `yaml:"formats"`
	PNGScale  float64           `yaml:"png_scale"`
	Charts    []string          `yaml:"charts"`
	Colors    map[string]string `yaml:"colors"`
	Log       LogConfig         `yaml:"log"`
}

// LogConfig mirrors logging.Config in file form.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		OutputDir: "charts",
		Theme:     "light",
		Formats:   []Format{FormatSVG},
		PNGScale:  2,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadFile reads a YAML config from path. Values missing from the file
// keep their defaults.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to access config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses YAML from r over the defaults and validates the result.
// ${VAR} references are expanded from the environment.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadString parses a YAML config held in a string.
func LoadString(content string) (*Config, error) {
	return Load(strings.NewReader(content))
}

// Validate checks every field against the values the build understands.
func (c *Config) Validate() error {
	var problems []string

	if c.OutputDir == "" {
		problems = append(problems, "output_dir is empty")
	}
	if _, err := theme.ByName(c.Theme); err != nil {
		problems = append(problems, err.Error())
	}
	if len(c.Formats) == 0 {
		problems = append(problems, "no output formats")
	}
	for _, f := range c.Formats {
		if _, err := ParseFormat(string(f)); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if c.PNGScale <= 0 {
		problems = append(problems, fmt.Sprintf("png_scale must be positive, got %v", c.PNGScale))
	}
	for _, name := range c.Charts {
		if _, ok := charts.Lookup(name); !ok {
			problems = append(problems, fmt.Sprintf("unknown chart %q", name))
		}
	}
	if _, err := theme.Light().Override(c.Colors); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidationFailed, strings.Join(problems, "; "))
	}
	return nil
}

// ResolveTheme returns the configured theme with colour overrides applied.
func (c *Config) ResolveTheme() (theme.Theme, error) {
	th, err := theme.ByName(c.Theme)
	if err != nil {
		return theme.Theme{}, err
	}
	return th.Override(c.Colors)
}

// ChartNames returns the charts to build, every catalog chart when the
// config names none.
func (c *Config) ChartNames() []string {
	if len(c.Charts) == 0 {
		return charts.Names()
	}
	return c.Charts
}

// Wants reports whether f is among the configured formats.
func (c *Config) Wants(f Format) bool {
	for _, k := range c.Formats {
		if k == f {
			return true
		}
	}
	return false
}
