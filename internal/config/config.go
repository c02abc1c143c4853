// Package config loads gmtool's render defaults from an optional TOML file
// via github.com/BurntSushi/toml. The file is the one named by --config,
// else by GMTOOL_CONFIG; no other location is searched. Flags in turn
// override whatever the file sets.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"crusader-assets/internal/gfx"
)

// EnvVar is the environment variable gmtool checks for a config file path
// when --config is not given.
const EnvVar = "GMTOOL_CONFIG"

// RenderConfig holds gmtool's render-mode defaults. Every field has a
// built-in default and a TOML file overrides those; render's --palette,
// --format and --transparent flags override the file. OutputDir is loaded
// but no gmtool mode reads it.
type RenderConfig struct {
	DefaultPalette     int    `toml:"default_palette"`
	DefaultFormat      string `toml:"default_format"`
	DefaultTransparent string `toml:"default_transparent"` // "RRGGBB" hex
	OutputDir          string `toml:"output_dir"`
}

// Default returns the built-in configuration used when no file is present.
func Default() RenderConfig {
	return RenderConfig{
		DefaultPalette:     0,
		DefaultFormat:      "bmp",
		DefaultTransparent: "000000",
		OutputDir:          ".",
	}
}

// Load reads path as TOML over top of Default(), so a file that only sets
// one field leaves the others at their built-in values.
func Load(path string) (RenderConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the config file path: an explicit --config flag value wins,
// then the GMTOOL_CONFIG environment variable, then no file (built-in
// defaults only).
func Resolve(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvVar)
}

// TransparentColor parses DefaultTransparent as a 24-bit opaque RGB color.
func (c RenderConfig) TransparentColor() (gfx.Color, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(c.DefaultTransparent, "%02x%02x%02x", &r, &g, &b); err != nil {
		return gfx.Color{}, fmt.Errorf("config: default_transparent %q is not RRGGBB hex: %w", c.DefaultTransparent, err)
	}
	return gfx.Opaque(r, g, b), nil
}
