package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDirName is the default state directory under the user's home.
const DefaultDirName = ".workbench"

// Load reads and parses the config at path, applying defaults for anything
// unset. A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyDefaults(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultPath returns ~/.workbench/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, "config.yaml"), nil
}

func applyDefaults(cfg *Config) {
	if cfg.Theme.Accent == "" {
		cfg.Theme.Accent = "86"
	}
	if cfg.Theme.Highlight == "" {
		cfg.Theme.Highlight = "205"
	}
	if cfg.Theme.Muted == "" {
		cfg.Theme.Muted = "241"
	}
	if cfg.Theme.Text == "" {
		cfg.Theme.Text = "252"
	}
	if cfg.Theme.Danger == "" {
		cfg.Theme.Danger = "196"
	}
	if cfg.Console.Shell == "" {
		cfg.Console.Shell = os.Getenv("SHELL")
	}
	if cfg.Console.Shell == "" {
		cfg.Console.Shell = "sh"
	}
	if cfg.Console.MaxLine <= 0 {
		cfg.Console.MaxLine = 500
	}
	if cfg.SideBars.ExplorerRank <= 0 {
		cfg.SideBars.ExplorerRank = 100
	}
	if cfg.SideBars.ConsoleRank <= 0 {
		cfg.SideBars.ConsoleRank = 100
	}
}
