// Package config loads user defaults for the mondrian CLI.
//
// Settings live in a TOML file at $XDG_CONFIG_HOME/mondrian/config.toml
// (falling back to ~/.config/mondrian/config.toml). Every field is optional;
// missing fields keep the built-in defaults, and command-line flags override
// both.
//
//	[generate]
//	mode = "complex"
//	width = 1200
//	height = 800
//	formats = ["png", "json"]
//
//	[palettes]
//	basic = ["#d40920", "#1356a2", "#f7d842", "#f2f2f2"]
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/render/sink"
)

// AppName names the config and cache directories.
const AppName = "mondrian"

// Built-in defaults.
const (
	DefaultMode   = mondrian.ModeBasic
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultScale  = 1
)

// DefaultFormats is the output format list used when none is configured.
var DefaultFormats = []string{sink.FormatPNG}

// Config is the parsed configuration file.
type Config struct {
	Generate Generate `toml:"generate"`
	Palettes Palettes `toml:"palettes"`
}

// Generate holds defaults for the generate command.
type Generate struct {
	Mode        string   `toml:"mode"`
	Width       int      `toml:"width"`
	Height      int      `toml:"height"`
	Seed        uint64   `toml:"seed,omitempty"`
	Formats     []string `toml:"formats"`
	Scale       int      `toml:"scale"`
	JPEGQuality int      `toml:"jpeg_quality,omitempty"`
	OutputDir   string   `toml:"output_dir,omitempty"`
	NoCache     bool     `toml:"no_cache,omitempty"`
}

// Palettes overrides the built-in palette of each mode.
type Palettes struct {
	Basic   []string `toml:"basic,omitempty"`
	Complex []string `toml:"complex,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Generate: Generate{
			Mode:    string(DefaultMode),
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Formats: append([]string(nil), DefaultFormats...),
			Scale:   DefaultScale,
		},
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file is not an
// error. Unknown keys are rejected so typos do not silently fall back.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := cfg.decode(data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Parse reads configuration from TOML source over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config")
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return c.Validate()
}

// Validate checks every configured value.
func (c *Config) Validate() error {
	g := c.Generate
	if _, err := mondrian.ParseMode(g.Mode); err != nil {
		return err
	}
	if err := apperrors.ValidateDimensions(g.Width, g.Height); err != nil {
		return err
	}
	for _, f := range g.Formats {
		if !sink.IsImageFormat(f) && f != sink.FormatJSON {
			return apperrors.New(apperrors.ErrCodeInvalidFormat, "invalid format: %q", f)
		}
	}
	if g.Scale < 1 || g.Scale > sink.MaxScale {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "scale %d out of range [1, %d]", g.Scale, sink.MaxScale)
	}
	if g.JPEGQuality != 0 && (g.JPEGQuality < 1 || g.JPEGQuality > 100) {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "jpeg_quality %d out of range [1, 100]", g.JPEGQuality)
	}
	for _, p := range [][]string{c.Palettes.Basic, c.Palettes.Complex} {
		if len(p) == 0 {
			continue
		}
		if _, err := mondrian.ParsePalette(p); err != nil {
			return err
		}
	}
	return nil
}

// Mode returns the configured mode.
func (c *Config) Mode() mondrian.Mode {
	m, err := mondrian.ParseMode(c.Generate.Mode)
	if err != nil {
		return DefaultMode
	}
	return m
}

// Palette returns the palette override for m, or nil to use the built-in one.
func (c *Config) Palette(m mondrian.Mode) (mondrian.Palette, error) {
	hexes := c.Palettes.Basic
	if m == mondrian.ModeComplex {
		hexes = c.Palettes.Complex
	}
	if len(hexes) == 0 {
		return nil, nil
	}
	return mondrian.ParsePalette(hexes)
}

// OutputDir returns the configured output directory with a leading "~"
// expanded. An empty result means the working directory.
func (c *Config) OutputDir() string {
	dir := c.Generate.OutputDir
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}
	return dir
}

// Encode serialises the configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteSample writes a commented sample configuration to path. It refuses to
// overwrite an existing file unless force is set.
func WriteSample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return apperrors.New(apperrors.ErrCodeInvalidPath, "%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "create config dir")
	}
	if err := os.WriteFile(path, []byte(Sample()), 0644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// Sample returns a commented configuration file holding the defaults.
func Sample() string {
	var b strings.Builder
	b.WriteString("# mondrian configuration\n")
	b.WriteString("# Command-line flags override these values.\n\n")
	b.WriteString("[generate]\n")
	b.WriteString("# basic (flat primaries) or complex (purple wave bands)\n")
	b.WriteString("mode = \"" + string(DefaultMode) + "\"\n")
	b.WriteString("width = 800\n")
	b.WriteString("height = 600\n")
	b.WriteString("# seed = 42        # fixed seed; omit for a fresh image every run\n")
	b.WriteString("formats = [\"png\"] # png, jpeg, bmp, tiff, json\n")
	b.WriteString("scale = 1          # integer upscaling, nearest neighbour\n")
	b.WriteString("# jpeg_quality = 95\n")
	b.WriteString("# output_dir = \"~/Pictures/mondrian\"\n")
	b.WriteString("# no_cache = false\n\n")
	b.WriteString("[palettes]\n")
	b.WriteString("# basic = " + tomlList(mondrian.BasicPalette().Hex()) + "\n")
	b.WriteString("# complex = " + tomlList(mondrian.ComplexPalette().Hex()[:4]) + "\n")
	return b.String()
}

func tomlList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = `"` + s + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
