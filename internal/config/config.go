// Package config loads .reindent.toml, the optional per-tree settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// FileName is looked up from the input file's directory towards the root.
const FileName = ".reindent.toml"

// Config mirrors the TOML document.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type OutputConfig struct {
	Color          string `toml:"color"`
	Diagnostics    string `toml:"diagnostics"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Context        bool   `toml:"context"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the settings used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Color:          "auto",
			Diagnostics:    "text",
			MaxDiagnostics: 100,
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(fsys afero.Fs, startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := fsys.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the file at path on top of Default.
func Load(fsys afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("cache", "dir") && strings.TrimSpace(cfg.Cache.Dir) == "" {
		return Config{}, fmt.Errorf("%s: [cache].dir must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds and loads the config governing file. Without a config file
// it returns Default.
func Discover(fsys afero.Fs, file string) (Config, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	path, ok, err := Find(fsys, filepath.Dir(file))
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(fsys, path)
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	switch c.Output.Diagnostics {
	case "text", "json":
	default:
		return fmt.Errorf("[output].diagnostics must be text or json, got %q", c.Output.Diagnostics)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must not be negative")
	}
	return nil
}
