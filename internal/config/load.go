package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"evoqa/internal/spec"
)

// Load reads, parses, normalizes, and validates a candidate config
// file. The format is chosen by extension: ".json" parses as JSON,
// everything else as YAML.
func Load(path string) (spec.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return spec.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return spec.Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return spec.Config{}, err
	}
	return cfg, nil
}

// Parse decodes raw config bytes using the format implied by path.
func Parse(data []byte, path string) (spec.Config, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return spec.ParseConfigJSON(data)
	}
	return spec.ParseConfig(data)
}
