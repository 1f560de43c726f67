package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadDirMissingFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if cfg.Compiler.A11y != "warn" {
		t.Errorf("default a11y = %q, want warn", cfg.Compiler.A11y)
	}
	if cfg.Compiler.SourceMap || cfg.Compiler.Dev || cfg.Cache.Enabled {
		t.Errorf("defaults not zero: %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[compiler]
a11y = "strict"
source_map = true
out_dir = "dist"

[cache]
enabled = true
dir = ".lyra-cache"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Compiler.A11y != "strict" || !cfg.Compiler.SourceMap || cfg.Compiler.OutDir != "dist" {
		t.Errorf("compiler = %+v", cfg.Compiler)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != ".lyra-cache" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[cache]\nenabled = true\n")
	cfg, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if cfg.Compiler.A11y != "warn" {
		t.Errorf("a11y = %q, want the warn default", cfg.Compiler.A11y)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache.enabled not read")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[compiler]\na11y = \"warn\"\ntypo_key = 1\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown key")
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "not [valid toml")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed TOML")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir)
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("starter manifest does not load: %v", err)
	}
	if cfg.Compiler.A11y != "warn" {
		t.Errorf("starter a11y = %q, want warn", cfg.Compiler.A11y)
	}

	if _, err := WriteDefault(dir); err == nil {
		t.Error("WriteDefault overwrote an existing manifest")
	}
}
