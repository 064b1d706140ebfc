package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Application Application `yaml:"application"`
	GUI         GUI         `yaml:"gui"`
	Style       Style       `yaml:"style"`
	Calculator  Calculator  `yaml:"calculator"`
}

type Application struct {
	Name     string `yaml:"name" default:"factor-calc"`
	Version  string `yaml:"version" default:"1.0.0"`
	LogLevel string `yaml:"log_level" default:"info"`
}

type GUI struct {
	Title     string `yaml:"title" default:"GCD / LCM Calculator with Prime Factorization"`
	Width     int    `yaml:"width" default:"640"`
	Height    int    `yaml:"height" default:"480"`
	Theme     string `yaml:"theme" default:"dark"`
	FixedSize bool   `yaml:"fixed_size"`
}

// Style carries the window palette as #rrggbb strings.
type Style struct {
	Background string  `yaml:"background" default:"#1c1c1e"`
	Surface    string  `yaml:"surface" default:"#2c2c2e"`
	Text       string  `yaml:"text" default:"#ffffff"`
	Border     string  `yaml:"border" default:"#ff453a"`
	Input      string  `yaml:"input_border" default:"#444444"`
	Accent     string  `yaml:"accent" default:"#0a84ff"`
	Hover      string  `yaml:"hover" default:"#66aaff"`
	Pressed    string  `yaml:"pressed" default:"#0050a0"`
	FontSize   float32 `yaml:"font_size" default:"16"`
}

type Calculator struct {
	DefaultMode string `yaml:"default_mode" default:"GCD"`
}

// Default returns a Config populated from struct defaults only.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path on top of the defaults. A missing file
// yields the defaults; a malformed or invalid file is an error. Environment
// overrides are applied last and validated with the same schema.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := validate(data); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}
	}

	if applyEnvOverrides(cfg, defaultEnvMapping) {
		merged, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshal config: %w", err)
		}
		if err := validate(merged); err != nil {
			return nil, fmt.Errorf("environment overrides: %w", err)
		}
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
