package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.DefaultFormat != "bmp" || cfg.OutputDir != "." {
		t.Fatalf("Default() = %+v, unexpected built-in values", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gmtool.toml")
	if err := os.WriteFile(path, []byte(`default_palette = 3`+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPalette != 3 {
		t.Fatalf("DefaultPalette = %d, want 3", cfg.DefaultPalette)
	}
	if cfg.DefaultFormat != "bmp" {
		t.Fatalf("DefaultFormat = %q, want unchanged built-in %q", cfg.DefaultFormat, "bmp")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want Default()", cfg)
	}
}

func TestResolvePrefersFlagOverEnv(t *testing.T) {
	t.Setenv(EnvVar, "/from/env.toml")
	if got := Resolve("/from/flag.toml"); got != "/from/flag.toml" {
		t.Fatalf("Resolve = %q, want flag value", got)
	}
	if got := Resolve(""); got != "/from/env.toml" {
		t.Fatalf("Resolve(\"\") = %q, want env value", got)
	}
}

func TestTransparentColorParsesHex(t *testing.T) {
	cfg := Default()
	cfg.DefaultTransparent = "1a2b3c"
	c, err := cfg.TransparentColor()
	if err != nil {
		t.Fatalf("TransparentColor: %v", err)
	}
	if c.R != 0x1a || c.G != 0x2b || c.B != 0x3c || c.A != 255 {
		t.Fatalf("TransparentColor() = %+v, want {1a,2b,3c,ff}", c)
	}
}

func TestTransparentColorRejectsBadHex(t *testing.T) {
	cfg := Default()
	cfg.DefaultTransparent = "not-hex"
	if _, err := cfg.TransparentColor(); err == nil {
		t.Fatal("expected error for malformed hex")
	}
}
