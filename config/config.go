// Package config loads and saves the platform configuration as JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the platform variables: window scale, fullscreen, the
// alt+enter toggle, joystick enable and the display geometry override,
// plus the input tunables.
type Config struct {
	Scale      int    `json:"scale"`
	Fullscreen bool   `json:"fullscreen"`
	AltEnter   bool   `json:"altenter"`
	Joystick   bool   `json:"joy"`
	VMode      [3]int `json:"vmode"` // width, height, color depth; 0 width/height = native * scale

	JoyCommitThreshold int `json:"joyCommitThreshold"` // analog dead-zone bound
	MaxJoyButtons      int `json:"maxJoyButtons"`      // numbered button bound
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Scale:              1,
		AltEnter:           true,
		Joystick:           true,
		VMode:              [3]int{0, 0, 32},
		JoyCommitThreshold: 3276,
		MaxJoyButtons:      16,
	}
}

// DefaultPath returns the per-user config file location, e.g.
// ~/.config/gnuboy/config.json on Linux and the platform equivalent
// elsewhere.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, "gnuboy", "config.json"), nil
}

// Load reads the configuration at path. A missing file is not an
// error: defaults are returned. Fields absent from the file keep
// their defaults; out-of-range values are clamped back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.sanitize()
	return cfg, nil
}

// Save writes the configuration to path atomically: a temp file in the
// same directory is written first, then renamed over the target, so
// the file is never left partially written.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

func (c *Config) sanitize() {
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.JoyCommitThreshold <= 0 || c.JoyCommitThreshold > 32767 {
		c.JoyCommitThreshold = 3276
	}
	if c.MaxJoyButtons <= 0 {
		c.MaxJoyButtons = 16
	}
	if c.VMode[2] != 16 && c.VMode[2] != 32 {
		c.VMode[2] = 32
	}
}
