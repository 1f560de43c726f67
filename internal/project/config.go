// Package project loads lyra.toml, the per-project defaults the CLI merges
// under explicit flags.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the manifest name looked up in the working directory.
const ConfigFile = "lyra.toml"

// CompilerConfig is the [compiler] section.
type CompilerConfig struct {
	A11y      string `toml:"a11y"`
	SourceMap bool   `toml:"source_map"`
	Dev       bool   `toml:"dev"`
	OutDir    string `toml:"out_dir"`
}

// CacheConfig is the [cache] section.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Config is the whole manifest.
type Config struct {
	Compiler CompilerConfig `toml:"compiler"`
	Cache    CacheConfig    `toml:"cache"`
}

// Default returns the configuration used when no manifest exists.
func Default() *Config {
	return &Config{
		Compiler: CompilerConfig{A11y: "warn"},
	}
}

// Load parses the manifest at path.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	return cfg, nil
}

// LoadDir loads dir/lyra.toml, falling back to defaults when the manifest
// does not exist.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// WriteDefault creates a starter manifest at dir/lyra.toml. It refuses to
// overwrite an existing one.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("%s already exists", path)
	}
	content := `[compiler]
a11y = "warn"        # strict | warn | off
source_map = false
dev = false
out_dir = ""

[cache]
enabled = false
dir = ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return path, err
	}
	return path, nil
}
