// Package config loads gqlfront.toml, the optional settings file shared by
// the CLI and the driver.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name looked up by Find.
const FileName = "gqlfront.toml"

// ErrNotFound is returned by Find and Discover when no settings file exists
// between the start directory and the filesystem root.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config mirrors gqlfront.toml. Zero values mean "use the default".
type Config struct {
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
	Driver DriverConfig `toml:"driver"`

	// Path is the file the settings were read from; empty for defaults.
	Path string `toml:"-"`
}

type ParserConfig struct {
	MaxDepth  int `toml:"max_depth"`
	MaxErrors int `toml:"max_errors"`
}

type OutputConfig struct {
	// Color is "auto", "on" or "off".
	Color string `toml:"color"`
	// Format is one of "pretty", "simple", "json", "msgpack" and "sarif".
	Format string `toml:"format"`
	// Context is the number of source lines shown around a diagnostic.
	Context int `toml:"context"`
}

type DriverConfig struct {
	Jobs     int    `toml:"jobs"`
	CacheDir string `toml:"cache_dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: OutputConfig{Color: "auto", Format: "pretty"},
	}
}

var (
	validColors  = []string{"auto", "on", "off"}
	validFormats = []string{"pretty", "simple", "json", "msgpack", "sarif"}
)

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Load reads and validates the settings file at path. Keys that are not
// set keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds and loads the nearest settings file. When none exists it
// returns the defaults together with ErrNotFound.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if err != nil {
		return Default(), err
	}
	return Load(path)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.Parser.MaxDepth < 0:
		return fmt.Errorf("[parser].max_depth must not be negative, got %d", c.Parser.MaxDepth)
	case c.Parser.MaxErrors < 0:
		return fmt.Errorf("[parser].max_errors must not be negative, got %d", c.Parser.MaxErrors)
	case c.Output.Context < 0:
		return fmt.Errorf("[output].context must not be negative, got %d", c.Output.Context)
	case c.Driver.Jobs < 0:
		return fmt.Errorf("[driver].jobs must not be negative, got %d", c.Driver.Jobs)
	}
	if c.Output.Color != "" && !oneOf(c.Output.Color, validColors) {
		return fmt.Errorf("[output].color must be one of %s, got %q", strings.Join(validColors, ", "), c.Output.Color)
	}
	if c.Output.Format != "" && !oneOf(c.Output.Format, validFormats) {
		return fmt.Errorf("[output].format must be one of %s, got %q", strings.Join(validFormats, ", "), c.Output.Format)
	}
	return nil
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
