package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the session settings. The zero value is not useful; start
// from Default or LoadConfig.
type Config struct {
	// ShowSteps adds one truth-table column per sub-expression instead of
	// only the variables and the final value.
	ShowSteps bool `yaml:"show-steps"`
	// Prompt is printed before each read when the session is interactive.
	Prompt string `yaml:"prompt"`

	Path string `yaml:"-"`
}

// Default returns the settings used when no config file exists: steps on,
// `>> ` prompt.
func Default() *Config {
	return &Config{
		ShowSteps: true,
		Prompt:    ">> ",
	}
}

// LoadConfig reads settings from the YAML file at path. Keys missing from
// the file keep their defaults. A missing file is reported with an error
// satisfying os.IsNotExist so callers can fall back to Default.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config.Path = path
	return config, nil
}

// Write persists the settings back to the file they came from.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	return nil
}
