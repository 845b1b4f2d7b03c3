package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parse-zone.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
filters:
  no_dnssec: true
  rrtypes: [A, AAAA, MX]
  include_name: www
  ttl_min: 300
  class: IN
output:
  print_records: true
  stats: true
skip_malformed: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Filters.NoDNSSEC {
		t.Error("Expected no_dnssec true")
	}
	if len(cfg.Filters.RRTypes) != 3 || cfg.Filters.RRTypes[2] != "MX" {
		t.Errorf("Unexpected rrtypes: %v", cfg.Filters.RRTypes)
	}
	if cfg.Filters.IncludeName != "www" {
		t.Errorf("Expected include_name www, got %q", cfg.Filters.IncludeName)
	}
	if cfg.Filters.TTLMin == nil || *cfg.Filters.TTLMin != 300 {
		t.Errorf("Expected ttl_min 300, got %v", cfg.Filters.TTLMin)
	}
	if cfg.Filters.TTLMax != nil {
		t.Errorf("Expected ttl_max unset, got %v", cfg.Filters.TTLMax)
	}
	if !cfg.Output.PrintRecords || !cfg.Output.Stats {
		t.Errorf("Unexpected output settings: %+v", cfg.Output)
	}
	if !cfg.SkipMalformed {
		t.Error("Expected skip_malformed true")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output:\n  stats: true\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Filters.NoDNSSEC || cfg.Filters.Wildcard || len(cfg.Filters.RRTypes) != 0 {
		t.Errorf("Expected zero-value filters, got %+v", cfg.Filters)
	}
	if cfg.Output.PrintRecords {
		t.Error("Expected print_records false by default")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "filters: [unclosed\n")); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
