// Package config provides YAML configuration support for cellgrid
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/layout"
)

// Config represents the cellgrid configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Layout   LayoutConfig   `yaml:"layout"`
	Store    StoreConfig    `yaml:"store"`
	Watch    WatchConfig    `yaml:"watch"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `yaml:"-"`
}

// DefaultsConfig holds the settings applied to text cells that leave them out
type DefaultsConfig struct {
	Border    string `yaml:"border"`    // none, light, heavy or block
	Alignment string `yaml:"alignment"` // default, left, center or right
	Padding   int    `yaml:"padding"`
}

// LayoutConfig controls the layout engine
type LayoutConfig struct {
	MaxSpan int `yaml:"maxSpan"`
	MaxSize int `yaml:"maxSize"` // rendered height or width, in character cells
}

// StoreConfig controls the saved-layouts database
type StoreConfig struct {
	Path string `yaml:"path"`
}

// WatchConfig controls `render --watch`
type WatchConfig struct {
	PollInterval time.Duration `yaml:"pollInterval"`
}

// Load loads configuration from file with priority:
// 1. Project-level: .cellgrid/cellgrid.yaml
// 2. User: cellgrid.yaml in the host's ConfigDir
// 3. Default: built-in defaults
func Load(projectDir string) (*Config, error) {
	return LoadEnv(projectDir, HostEnv())
}

// LoadEnv is Load with the user directory resolved against env
func LoadEnv(projectDir string, env Env) (*Config, error) {
	projectConfig := ProjectConfigPath(projectDir)
	if info, err := os.Stat(projectConfig); err == nil && !info.IsDir() {
		return loadFile(projectConfig)
	}

	if dir := env.ConfigDir(); dir != "" {
		userConfig := filepath.Join(dir, "cellgrid.yaml")
		if info, err := os.Stat(userConfig); err == nil && !info.IsDir() {
			return loadFile(userConfig)
		}
	}

	return DefaultConfig(), nil
}

// loadFile loads configuration from a specific file
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Validate rejects values that cannot be applied
func (c *Config) Validate() error {
	if _, err := border.ParseWeight(c.Defaults.Border); err != nil {
		return fmt.Errorf("defaults.border: %w", err)
	}
	if _, err := layout.ParseAlignment(c.Defaults.Alignment); err != nil {
		return fmt.Errorf("defaults.alignment: %w", err)
	}
	if c.Defaults.Padding < 0 {
		return fmt.Errorf("defaults.padding: must not be negative, got %d", c.Defaults.Padding)
	}
	if c.Layout.MaxSpan < 0 {
		return fmt.Errorf("layout.maxSpan: must not be negative, got %d", c.Layout.MaxSpan)
	}
	if c.Layout.MaxSize < 0 {
		return fmt.Errorf("layout.maxSize: must not be negative, got %d", c.Layout.MaxSize)
	}
	if c.Defaults.Padding > c.MaxSize() {
		return fmt.Errorf("defaults.padding: must not exceed %d, got %d", c.MaxSize(), c.Defaults.Padding)
	}
	if c.Watch.PollInterval < 0 {
		return fmt.Errorf("watch.pollInterval: must not be negative, got %s", c.Watch.PollInterval)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Border:    "light",
			Alignment: "default",
			Padding:   0,
		},
		Layout: LayoutConfig{
			MaxSpan: layout.DefaultMaxSpan,
			MaxSize: layout.DefaultMaxSize,
		},
		Watch: WatchConfig{
			PollInterval: 500 * time.Millisecond,
		},
	}
}

// BorderWeight returns the default border weight. An unset or invalid value
// falls back to light.
func (c *Config) BorderWeight() border.Weight {
	w, err := border.ParseWeight(c.Defaults.Border)
	if err != nil {
		return border.Light
	}
	return w
}

// TextAlignment returns the default text alignment
func (c *Config) TextAlignment() layout.Alignment {
	a, err := layout.ParseAlignment(c.Defaults.Alignment)
	if err != nil {
		return layout.AlignDefault
	}
	return a
}

// MaxSpan returns the span cap handed to tables
func (c *Config) MaxSpan() int {
	if c.Layout.MaxSpan <= 0 {
		return layout.DefaultMaxSpan
	}
	return c.Layout.MaxSpan
}

// MaxSize returns the rendered size cap handed to tables and the builder
func (c *Config) MaxSize() int {
	if c.Layout.MaxSize <= 0 {
		return layout.DefaultMaxSize
	}
	return c.Layout.MaxSize
}

// StorePath returns the database path, falling back to the user cache dir
func (c *Config) StorePath() string {
	if c.Store.Path == "" {
		return DefaultStorePath()
	}
	return c.Store.Path
}

// PollInterval returns the watch-mode polling interval
func (c *Config) PollInterval() time.Duration {
	if c.Watch.PollInterval <= 0 {
		return 500 * time.Millisecond
	}
	return c.Watch.PollInterval
}
