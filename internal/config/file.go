package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of .gentestx.yaml
type File struct {
	APIKey         string   `yaml:"api_key"`
	Endpoint       string   `yaml:"endpoint"`
	Model          string   `yaml:"model"`
	Temperature    *float64 `yaml:"temperature"`
	MaxTokens      int      `yaml:"max_tokens"`
	OutputLocation string   `yaml:"output_location"`
	TestFramework  string   `yaml:"test_framework"`
	PathsToIgnore  []string `yaml:"paths_to_ignore"`
}

// ReadFile parses a YAML config file. Environment variables are expanded first.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &f); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}

func (c *Config) applyFile(path string) error {
	f, err := ReadFile(path)
	if err != nil {
		return err
	}

	if f.APIKey != "" {
		c.APIKey = f.APIKey
	}
	if f.Endpoint != "" {
		c.Endpoint = f.Endpoint
	}
	if f.Model != "" {
		c.Model = f.Model
	}
	if f.Temperature != nil {
		c.Temperature = *f.Temperature
	}
	if f.MaxTokens > 0 {
		c.MaxTokens = f.MaxTokens
	}
	if f.OutputLocation != "" {
		c.OutputLocation = f.OutputLocation
	}
	if f.TestFramework != "" {
		c.TestFramework = f.TestFramework
	}
	if len(f.PathsToIgnore) > 0 {
		c.PathsToIgnore = append([]string(nil), f.PathsToIgnore...)
	}
	return nil
}
