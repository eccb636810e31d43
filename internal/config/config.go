// Package config loads and saves the user's tintshade settings
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colorpalettestudio/tintshade/internal/color"
)

// DefaultFilePrefix matches the file names used by the export buttons
const DefaultFilePrefix = "tint-shade-palette"

// DefaultSwatchWidth is the terminal cell width of one swatch
const DefaultSwatchWidth = 9

// Config holds user settings. Command line flags override every field
type Config struct {
	Preset      string `yaml:"preset"`
	Steps       []int  `yaml:"steps,omitempty"`
	ExportDir   string `yaml:"export_dir,omitempty"`
	FilePrefix  string `yaml:"file_prefix"`
	LogLevel    string `yaml:"log_level"`
	SwatchWidth int    `yaml:"swatch_width"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Preset:      color.DefaultPreset,
		FilePrefix:  DefaultFilePrefix,
		LogLevel:    "warn",
		SwatchWidth: DefaultSwatchWidth,
	}
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	var errs []error
	if len(c.Steps) == 0 {
		if _, ok := color.Preset(c.Preset); !ok {
			errs = append(errs, fmt.Errorf("unknown preset %q (want one of %s)",
				c.Preset, strings.Join(color.PresetNames(), ", ")))
		}
	}
	for _, s := range c.Steps {
		if s < -100 || s > 100 {
			errs = append(errs, fmt.Errorf("step %d out of range [-100, 100]", s))
		}
	}
	if err := ValidatePrefix(c.FilePrefix); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.SwatchWidth < 7 || c.SwatchWidth > 40 {
		errs = append(errs, fmt.Errorf("swatch_width %d out of range [7, 40]", c.SwatchWidth))
	}
	return errors.Join(errs...)
}

// maxPrefixLen leaves room for a "-N" suffix and the extension within a
// 255 byte file name
const maxPrefixLen = 200

// ValidatePrefix checks an export file name prefix
func ValidatePrefix(prefix string) error {
	if strings.TrimSpace(prefix) == "" || prefix == "." || prefix == ".." ||
		strings.ContainsAny(prefix, "/\\\x00") {
		return fmt.Errorf("invalid file_prefix %q", prefix)
	}
	if len(prefix) > maxPrefixLen {
		return fmt.Errorf("file_prefix is %d bytes, at most %d allowed", len(prefix), maxPrefixLen)
	}
	return nil
}

// StepList returns the custom steps when set, otherwise the preset ladder
func (c *Config) StepList() ([]color.Step, error) {
	if len(c.Steps) > 0 {
		steps := make([]color.Step, len(c.Steps))
		for i, s := range c.Steps {
			steps[i] = color.Step(s)
		}
		return steps, nil
	}
	steps, ok := color.Preset(c.Preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", c.Preset)
	}
	return steps, nil
}

// SetSteps stores a custom ladder, clearing it when steps is empty
func (c *Config) SetSteps(steps []color.Step) {
	c.Steps = nil
	for _, s := range steps {
		c.Steps = append(c.Steps, int(s))
	}
}

// OutputDir returns the export directory, defaulting to the working directory
func (c *Config) OutputDir() string {
	if c.ExportDir != "" {
		return c.ExportDir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", name)
	}
	return lvl, nil
}

// Store reads and writes the config file
type Store struct {
	Path string
}

// NewStore creates a store for path, or for the default location when path
// is empty
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locating config dir: %w", err)
		}
		path = filepath.Join(dir, "tintshade", "config.yaml")
	}
	return &Store{Path: path}, nil
}

// Load reads the config file. A missing file yields the defaults
func (s *Store) Load() (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", s.Path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", s.Path, err)
	}
	return cfg, nil
}

// Save writes cfg, creating the parent directory if needed
func (s *Store) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(s.Path, data, 0644)
}
