// Package config loads the optional xeplint.toml configuration, discovered
// by walking up from the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"xeplint/internal/checks"
)

const FileName = "xeplint.toml"

type Config struct {
	Lint   LintConfig   `toml:"lint"`
	Output OutputConfig `toml:"output"`
}

type LintConfig struct {
	// Disable lists check names excluded from every run.
	Disable []string `toml:"disable"`
	// Jobs caps parallel workers; 0 means one per CPU.
	Jobs int `toml:"jobs"`
}

type OutputConfig struct {
	Format string `toml:"format"` // text|json|summary
	Color  string `toml:"color"`  // auto|on|off
}

// Default is the configuration used when no xeplint.toml exists.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text", Color: "auto"},
	}
}

// Find walks up from startDir looking for xeplint.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
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

// Load parses and validates one configuration file.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir finds and loads the nearest configuration, falling back to
// defaults when none exists.
func LoadFromDir(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

func (c Config) validate() error {
	switch c.Output.Format {
	case "text", "json", "summary":
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("unknown color mode %q", c.Output.Color)
	}
	if c.Lint.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Lint.Jobs)
	}

	known := make(map[string]bool)
	for _, check := range checks.All() {
		known[check.Name()] = true
	}
	for _, name := range c.Lint.Disable {
		if !known[name] {
			return fmt.Errorf("unknown check %q in disable list", name)
		}
	}
	return nil
}
