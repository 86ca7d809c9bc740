package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "VectorViewer")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "VectorViewer")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "vectorviewer")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "vectorviewer")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPSLimit <= 0 {
		return fmt.Errorf("fps_limit must be positive, got %d", c.Graphics.FPSLimit)
	}
	if c.Viewer.ZScaleFactor <= 0 {
		return fmt.Errorf("z_scale_factor must be positive, got %g", c.Viewer.ZScaleFactor)
	}
	if c.Viewer.PausePoll <= 0 {
		return fmt.Errorf("pause_poll must be positive, got %v", c.Viewer.PausePoll)
	}
	if c.Capture.Headless && c.Capture.Frames <= 0 {
		return fmt.Errorf("headless capture needs a positive frame count, got %d", c.Capture.Frames)
	}
	return nil
}
