package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig with missing file failed: %v", err)
	}

	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.API.Timeout != 30 {
		t.Errorf("API.Timeout = %d, want 30", cfg.API.Timeout)
	}
	if cfg.Paging.DesignPageSize != 10 || cfg.Paging.ProjectPageSize != 20 {
		t.Errorf("unexpected paging defaults: %+v", cfg.Paging)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	contents := `
env: staging
log:
  level: debug
api:
  base_url: http://localhost:9000/v1
paging:
  design_page_size: 5
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Env != "staging" {
		t.Errorf("Env = %q, want staging", cfg.Env)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.API.BaseURL != "http://localhost:9000/v1" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Paging.DesignPageSize != 5 {
		t.Errorf("DesignPageSize = %d, want 5", cfg.Paging.DesignPageSize)
	}
	// Unset keys keep their defaults
	if cfg.API.Timeout != 30 {
		t.Errorf("API.Timeout = %d, want default 30", cfg.API.Timeout)
	}
}
