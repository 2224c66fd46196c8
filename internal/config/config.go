package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 30
	DefaultTheme      = "cyberpunk"
	DefaultSimulation = "pendulum"
)

// Config holds the user-facing application settings.
type Config struct {
	Theme      string    `yaml:"theme"`
	FPS        int       `yaml:"fps"`
	Simulation string    `yaml:"simulation"`
	Audio      bool      `yaml:"audio"`
	Overrides  Overrides `yaml:"overrides"`
}

// Overrides maps simulation slugs to parameter values applied on top
// of each schema's defaults.
type Overrides map[string]map[string]float64

func DefaultConfig() *Config {
	return &Config{
		Theme:      DefaultTheme,
		FPS:        DefaultFPS,
		Simulation: DefaultSimulation,
		Overrides:  Overrides{},
	}
}

// DefaultPath returns ~/.config/simlab/config.yaml, or an empty string
// when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "simlab", "config.yaml")
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.FPS < 1 || cfg.FPS > 120 {
		cfg.FPS = DefaultFPS
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ParamsFor returns the configured overrides for one simulation; nil
// when none are set.
func (c *Config) ParamsFor(slug string) map[string]float64 {
	if c.Overrides == nil {
		return nil
	}
	return c.Overrides[slug]
}
