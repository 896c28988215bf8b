// Package config provides configuration loading and management for ontograph.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Config represents the complete ontograph configuration
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Export ExportConfig `yaml:"export"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig configures where ontology documents are read from
type InputConfig struct {
	// Paths lists obographs JSON files to load. Entries may be glob
	// patterns, including ** for recursive matches.
	Paths []string `yaml:"paths"`
}

// ExportConfig configures RDF export defaults
type ExportConfig struct {
	// Format is the default serialization (turtle, ntriples, jsonld)
	Format string `yaml:"format"`
	// Output is the directory export files are written to
	Output string `yaml:"output"`
}

// WatchConfig configures the file watcher
type WatchConfig struct {
	// Debounce is how long to wait after a change before reloading
	Debounce time.Duration `yaml:"debounce"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `yaml:"level"`
}

// SlogLevel maps the configured level name onto a slog level.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Paths: nil,
		},
		Export: ExportConfig{
			Format: "turtle",
			Output: ".",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

var validFormats = map[string]bool{
	"turtle":   true,
	"ttl":      true,
	"ntriples": true,
	"nt":       true,
	"jsonld":   true,
	"json-ld":  true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !validFormats[strings.ToLower(c.Export.Format)] {
		return fmt.Errorf("export.format %q is not supported", c.Export.Format)
	}
	if c.Export.Output == "" {
		return fmt.Errorf("export.output is required")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level %q is not supported", c.Log.Level)
	}
	return nil
}

// ResolveInputs expands the configured input paths. Entries containing glob
// metacharacters are matched against the filesystem; plain paths are passed
// through untouched. The result is deduplicated and sorted.
func (c *Config) ResolveInputs() ([]string, error) {
	var resolved []string
	for _, pattern := range c.Input.Paths {
		if !strings.ContainsAny(pattern, "*?[{") {
			resolved = append(resolved, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("input pattern %q: %w", pattern, err)
		}
		resolved = append(resolved, matches...)
	}

	slices.Sort(resolved)
	return slices.Compact(resolved), nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Input.Paths) > 0 {
		c.Input.Paths = other.Input.Paths
	}

	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}
	if other.Export.Output != "" {
		c.Export.Output = other.Export.Output
	}

	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
