package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults pre-fills the solve form and backstops omitted optional fields.
type Defaults struct {
	Tol     float64 `yaml:"tol"`
	MaxIter int     `yaml:"max_iter"`
	Delta   float64 `yaml:"delta"`
}

// Config carries the server settings loadable from a YAML file.
type Config struct {
	Addr      string   `yaml:"addr"`
	LogLevel  string   `yaml:"log_level"`
	LogFormat string   `yaml:"log_format"`
	Defaults  Defaults `yaml:"defaults"`
}

// DefaultConfig mirrors the defaults the original form shipped with.
func DefaultConfig() Config {
	return Config{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
		Defaults: Defaults{
			Tol:     0.0001,
			MaxIter: 10,
			Delta:   0.01,
		},
	}
}

// LoadConfig reads a YAML config file, filling unset fields from
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
