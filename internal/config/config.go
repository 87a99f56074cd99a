package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"profile-editor/internal/core"
)

// Config holds persisted application settings.
type Config struct {
	InstallDir     string `json:"InstallDir"`
	ProfileDataDir string `json:"ProfileDataDir"`
	Locale         string `json:"Locale,omitempty"`

	firstRun bool
	path     string
}

// Load reads the configuration, creating defaults if necessary.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.InstallDir = DefaultInstallDir()
	cfg.ProfileDataDir = DefaultProfileDataDir()
	cfg.path = filepath.Join(cfg.InstallDir, core.ConfigFileName)

	if err := EnsureDir(cfg.InstallDir); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.firstRun = true
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(data) == 0 {
		cfg.firstRun = true
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.InstallDir = ExpandPath(cfg.InstallDir)
	cfg.ProfileDataDir = ExpandPath(cfg.ProfileDataDir)
	cfg.path = filepath.Join(cfg.InstallDir, core.ConfigFileName)
	if err := EnsureDir(cfg.InstallDir); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func (c *Config) Save() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.InstallDir) == "" {
		return errors.New("install directory is required")
	}
	c.InstallDir = ExpandPath(c.InstallDir)
	c.ProfileDataDir = ExpandPath(c.ProfileDataDir)
	if err := EnsureDir(c.InstallDir); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(struct {
		InstallDir     string `json:"InstallDir"`
		ProfileDataDir string `json:"ProfileDataDir"`
		Locale         string `json:"Locale,omitempty"`
	}{
		InstallDir:     c.InstallDir,
		ProfileDataDir: c.ProfileDataDir,
		Locale:         strings.TrimSpace(c.Locale),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	path := c.path
	if path == "" {
		path = filepath.Join(c.InstallDir, core.ConfigFileName)
		c.path = path
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	c.firstRun = false
	return nil
}

// ProfileDataPath returns the base directory file choosers open in.
// It satisfies the ui.Settings collaborator.
func (c *Config) ProfileDataPath() string {
	if c == nil || strings.TrimSpace(c.ProfileDataDir) == "" {
		return DefaultProfileDataDir()
	}
	return c.ProfileDataDir
}

// FirstRun indicates whether this is the initial configuration load.
func (c *Config) FirstRun() bool {
	if c == nil {
		return true
	}
	return c.firstRun
}

// ConfigPath returns the full path to the settings file.
func (c *Config) ConfigPath() string {
	if c == nil {
		return ""
	}
	if c.path != "" {
		return c.path
	}
	return filepath.Join(c.InstallDir, core.ConfigFileName)
}

// EnsureDir creates the provided directory if necessary.
func EnsureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	return os.MkdirAll(path, 0o755)
}

// ExpandPath expands environment variables, ~ and returns an absolute path.
func ExpandPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	expanded := os.ExpandEnv(trimmed)
	if strings.HasPrefix(expanded, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			expanded = filepath.Join(home, strings.TrimPrefix(expanded, "~"))
		}
	}
	expanded = filepath.Clean(expanded)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return expanded
	}
	return abs
}

// DefaultInstallDir returns the directory holding the config and log files.
func DefaultInstallDir() string {
	if dir := strings.TrimSpace(os.Getenv(core.ConfigDirEnv)); dir != "" {
		return ExpandPath(dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = filepath.Join(home, ".config")
		}
	}
	return ExpandPath(filepath.Join(base, core.TextDomain))
}

// DefaultProfileDataDir returns the directory profile data is kept in when
// the user has not picked one.
func DefaultProfileDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ExpandPath(".")
	}
	return ExpandPath(filepath.Join(home, core.TextDomain, "data"))
}
