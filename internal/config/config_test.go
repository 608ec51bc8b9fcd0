package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate_Default(t *testing.T) {
	if warnings := Default().Validate(); len(warnings) != 0 {
		t.Errorf("default config should have no warnings, got %v", warnings)
	}
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{Cache: CacheConfig{Backend: BackendNone}}
	if warnings := cfg.Validate(); len(warnings) != 0 {
		t.Errorf("empty config should have no warnings, got %v", warnings)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string // substring of the expected warning
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"negative report level", func(c *Config) { c.Report.Level = -1 }, "report level"},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }, "unknown"},
		{"redis without addr", func(c *Config) {
			c.Cache.Backend = BackendRedis
			c.Cache.RedisAddr = ""
		}, "redis_addr"},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }, "ttl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			warnings := cfg.Validate()
			found := false
			for _, w := range warnings {
				if strings.Contains(w, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected warning containing %q, got %v", tt.want, warnings)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "aigkit", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestLoad_MissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Report.Level != 1 || cfg.Cache.Backend != BackendFile {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if cfg.Cache.TTL != 7*24*time.Hour {
		t.Errorf("Cache.TTL = %s", cfg.Cache.TTL)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() should fail for a missing explicit path")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[log]
level = "debug"

[report]
level = 4

[render]
detailed = true

[cache]
backend = "redis"
redis_addr = "cache:6379"
ttl = "1h"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Report.Level != 4 {
		t.Errorf("Report.Level = %d", cfg.Report.Level)
	}
	if !cfg.Render.Detailed {
		t.Error("Render.Detailed should be true")
	}
	if cfg.Cache.Backend != BackendRedis || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache.TTL = %s, want 1h", cfg.Cache.TTL)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("AIGKIT_REPORT_LEVEL", "9")
	t.Setenv("AIGKIT_CACHE_BACKEND", "none")
	t.Setenv("AIGKIT_RENDER_REACHABLE_ONLY", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Report.Level != 9 {
		t.Errorf("Report.Level = %d, want 9", cfg.Report.Level)
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if !cfg.Render.ReachableOnly {
		t.Error("Render.ReachableOnly should be true")
	}
}
