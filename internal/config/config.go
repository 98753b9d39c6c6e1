// ABOUTME: Layered configuration for the termflow CLI
// ABOUTME: Merges ~/.config/termflow/config.yaml with project .termflow.yaml

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termflow/pkg/indent"
)

// Config holds the merged CLI configuration. Zero values defer to the
// built-in defaults in cmd/termflow.
type Config struct {
	Width  int            `yaml:"width,omitempty"`
	Tail   string         `yaml:"tail,omitempty"`
	Indent indent.Options `yaml:"indent,omitempty"`
	Theme  string         `yaml:"theme,omitempty"`
}

// Load reads and merges global and project-local configuration.
// Project values override global values. Missing files are not errors.
func Load(projectRoot string) (*Config, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads a Config from a YAML file. Returns a zero Config if the
// file does not exist.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// merge overlays project configuration onto global configuration.
// Non-zero project values win.
func merge(global, project *Config) *Config {
	if global == nil {
		global = &Config{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Width != 0 {
		result.Width = project.Width
	}
	if project.Tail != "" {
		result.Tail = project.Tail
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.Indent != (indent.Options{}) {
		result.Indent = project.Indent
	}

	return &result
}
