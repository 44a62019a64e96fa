// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
)

// maxConfigSize bounds config input (1 MiB) to prevent memory abuse.
const maxConfigSize = 1 << 20

// appDirName is the per-user config directory under ~/.config.
const appDirName = "obsidian-pdf"

// Config holds all CLI configuration.
type Config struct {
	Vault  VaultConfig  `yaml:"vault"`
	Style  StyleConfig  `yaml:"style"`
	Export ExportConfig `yaml:"export"`
}

// VaultConfig locates the vault.
type VaultConfig struct {
	Path string `yaml:"path"` // Vault root directory (empty = must pass --vault)
}

// StyleConfig defines document styling.
type StyleConfig struct {
	Name     string `yaml:"name"`     // Built-in style name, CSS path, or raw CSS
	AssetDir string `yaml:"assetDir"` // Directory of override assets (empty = embedded only)
}

// ExportConfig defines export behavior.
type ExportConfig struct {
	Remote       *bool `yaml:"remote"`       // Fetch remote images (default true)
	PrintTrigger *bool `yaml:"printTrigger"` // Embed on-load print script (default true)
	OpenAfter    bool  `yaml:"openAfter"`    // Open artifact in the browser after export
	Concurrency  int   `yaml:"concurrency"`  // Max simultaneous resolutions (0 = library default)
	TimeoutSec   int   `yaml:"timeoutSec"`   // Whole-export timeout in seconds (0 = default)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// RemoteEnabled resolves the remote-fetch setting with its default.
func (c *Config) RemoteEnabled() bool {
	return c.Export.Remote == nil || *c.Export.Remote
}

// PrintTriggerEnabled resolves the print-trigger setting with its default.
func (c *Config) PrintTriggerEnabled() bool {
	return c.Export.PrintTrigger == nil || *c.Export.PrintTrigger
}

// LoadConfig loads configuration from a file path or config name.
// A nameOrPath containing a path separator is treated as a file path;
// otherwise it is searched in the standard locations. Returns an error if
// the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrConfigTooLarge, len(data))
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// SearchPaths returns the locations probed for a named config, in order.
func SearchPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if home, err := os.UserHomeDir(); err == nil {
		base := filepath.Join(home, ".config", appDirName)
		paths = append(paths,
			filepath.Join(base, name+".yaml"),
			filepath.Join(base, name+".yml"),
		)
	}
	return paths
}

// resolveConfigPath finds the first existing file among the search paths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (searched %s)", ErrConfigNotFound, name, strings.Join(paths, ", "))
}
