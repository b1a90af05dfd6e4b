package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level showinvestor.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Report   ReportConfig   `yaml:"report"`
}

// BusinessConfig identifies the business the reports are generated for.
type BusinessConfig struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo,omitempty"` // path to a PNG or JPEG logo
}

// ReportConfig controls report presentation and output.
type ReportConfig struct {
	Title     string `yaml:"title"`
	Font      string `yaml:"font,omitempty"` // path to a UTF-8 TTF for the currency glyph
	OutputDir string `yaml:"output_dir"`
}

// Load reads a showinvestor.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new business.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Report: ReportConfig{
			Title:     "Business Performance Report",
			OutputDir: ".",
		},
	}
}
