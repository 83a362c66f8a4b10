// Package config holds the workload generation parameters, their defaults,
// and the validation rules the CLI enforces before any file is touched.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes one workload generation run.
type Config struct {
	// Size of the Fenwick tree; generated indexes are in [0, Size-1].
	Size int `yaml:"size"`

	// Operations is the number of operation lines to generate.
	Operations int `yaml:"operations"`

	// Output is the path of the workload file to create or truncate.
	Output string `yaml:"output"`

	// Queries is the percentage (0-100) of operations that are queries.
	Queries int `yaml:"queries"`

	// Seed for the random source. Zero means derive a seed from the current
	// time, which makes repeated runs produce different content.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() *Config {
	return &Config{
		Size:       128,
		Operations: 1000,
		Output:     "input.txt",
		Queries:    20,
		Seed:       0,
	}
}

// Load reads a workload profile from a YAML file. Keys absent from the file
// keep their default values. Profiles are always named explicitly on the
// command line, so a missing file is an error rather than a silent default.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	return cfg, nil
}

// Validate rejects parameter combinations the generator must never see.
// It runs before the output file is created, so an invalid run leaves no
// file behind.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive (got %d)", c.Size)
	}
	if c.Operations <= 0 {
		return fmt.Errorf("operations must be positive (got %d)", c.Operations)
	}
	if c.Queries < 0 || c.Queries > 100 {
		return fmt.Errorf("query percentage must be between 0 and 100 (got %d)", c.Queries)
	}
	return nil
}
