// Package config loads the optional YAML preset file for the
// parse-zone CLI. Command-line flags override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Filters mirrors the filter criteria of the zonefilter package.
type Filters struct {
	NoDNSSEC    bool     `yaml:"no_dnssec"`
	RRTypes     []string `yaml:"rrtypes"`
	IncludeName string   `yaml:"include_name"`
	IncludeData string   `yaml:"include_data"`
	ExcludeName string   `yaml:"exclude_name"`
	ExcludeData string   `yaml:"exclude_data"`
	Wildcard    bool     `yaml:"wildcard"`
	Delegations bool     `yaml:"delegations"`
	TTLMin      *uint32  `yaml:"ttl_min"`
	TTLMax      *uint32  `yaml:"ttl_max"`
	Class       string   `yaml:"class"`
}

// Output selects what the CLI emits.
type Output struct {
	PrintRecords bool `yaml:"print_records"`
	Stats        bool `yaml:"stats"`
}

// Config is the root of the preset file.
type Config struct {
	Filters       Filters `yaml:"filters"`
	Output        Output  `yaml:"output"`
	SkipMalformed bool    `yaml:"skip_malformed"`
}

// Load reads and parses a preset file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}
