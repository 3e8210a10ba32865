package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Adapter.Default != "sqlite:obo:" {
		t.Errorf("expected default adapter template sqlite:obo:, got %s", cfg.Adapter.Default)
	}
	if !cfg.Cache.Labels {
		t.Error("expected label caching enabled by default")
	}
	if cfg.Cache.Dir != "cache" {
		t.Errorf("expected default cache dir cache, got %s", cfg.Cache.Dir)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing adapter default",
			modify:  func(c *Config) { c.Adapter.Default = "" },
			wantErr: true,
		},
		{
			name:    "caching enabled without dir",
			modify:  func(c *Config) { c.Cache.Dir = "" },
			wantErr: true,
		},
		{
			name: "no dir needed when caching disabled",
			modify: func(c *Config) {
				c.Cache.Labels = false
				c.Cache.Dir = ""
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
adapter:
  default: "sqlite:obo:"
  config_path: "/etc/semterms/adapters.yaml"
cache:
  labels: false
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Adapter.ConfigPath != "/etc/semterms/adapters.yaml" {
		t.Errorf("config_path = %s", cfg.Adapter.ConfigPath)
	}
	if cfg.Cache.Labels {
		t.Error("expected label caching disabled")
	}
	// Unset fields keep their defaults.
	if cfg.Cache.Dir != "cache" {
		t.Errorf("cache dir = %s, want default", cfg.Cache.Dir)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Cache.Dir = "/var/cache/semterms"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Cache.Dir != "/var/cache/semterms" {
		t.Errorf("cache dir = %s", loaded.Cache.Dir)
	}
}

func TestLoadAdapters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adapters.yaml")
	content := `
ontology_adapters:
  GO: sqlite:obo:go
  CHEBI: sqlite:obo:chebi
  LOCAL: ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	adapters, err := LoadAdapters(path)
	if err != nil {
		t.Fatalf("LoadAdapters: %v", err)
	}
	if adapters["GO"] != "sqlite:obo:go" {
		t.Errorf("GO = %q", adapters["GO"])
	}
	// Explicitly disabled prefixes survive as empty entries.
	if v, ok := adapters["LOCAL"]; !ok || v != "" {
		t.Errorf("LOCAL = %q ok=%v, want declared empty", v, ok)
	}
}

func TestLoadAdaptersMissingFile(t *testing.T) {
	adapters, err := LoadAdapters(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing adapter file should not error, got %v", err)
	}
	if adapters != nil {
		t.Errorf("adapters = %v, want nil", adapters)
	}
}

func TestLoadAdaptersMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ontology_adapters: [not, a, map]"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAdapters(path); err == nil {
		t.Error("expected parse error")
	}
}
