package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Chart.TitleWidth != pipeline.DefaultTitleWidth {
		t.Errorf("TitleWidth = %v, want %v", cfg.Chart.TitleWidth, pipeline.DefaultTitleWidth)
	}
	if cfg.Chart.MonthWidth != pipeline.DefaultMaxMonthWidth {
		t.Errorf("MonthWidth = %v, want %v", cfg.Chart.MonthWidth, pipeline.DefaultMaxMonthWidth)
	}
	if len(cfg.Render.Formats) != 1 || cfg.Render.Formats[0] != pipeline.FormatSVG {
		t.Errorf("Formats = %v, want [svg]", cfg.Render.Formats)
	}
	if !cfg.Cache.Enabled {
		t.Error("caching should be enabled by default")
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, CacheBackendFile)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Cache.Backend != CacheBackendFile {
		t.Errorf("missing default config should keep defaults, Backend = %q", cfg.Cache.Backend)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() with explicit missing file should fail")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[chart]
title_width = 150.0
legend = true

[render]
formats = ["svg", "png"]

[cache]
backend = "redis"
scope = "acme"

[cache.redis]
addr = "redis.internal:6379"
db = 2

[server]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Chart.TitleWidth != 150 {
		t.Errorf("TitleWidth = %v, want 150", cfg.Chart.TitleWidth)
	}
	if !cfg.Chart.Legend {
		t.Error("Legend should be true")
	}
	// month_width absent from the file keeps its default.
	if cfg.Chart.MonthWidth != pipeline.DefaultMaxMonthWidth {
		t.Errorf("MonthWidth = %v, want default %v", cfg.Chart.MonthWidth, pipeline.DefaultMaxMonthWidth)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Errorf("Formats = %v, want [svg png]", cfg.Render.Formats)
	}
	if cfg.Cache.Backend != CacheBackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Scope != "acme" {
		t.Errorf("Scope = %q, want acme", cfg.Cache.Scope)
	}
	if cfg.Cache.Redis.Addr != "redis.internal:6379" {
		t.Errorf("Redis.Addr = %q, want redis.internal:6379", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want :9090", cfg.Server.Addr)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("chart = {{"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() with invalid TOML should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want INVALID_CONFIG", errors.GetCode(err))
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"negative title width", func(c *Config) { c.Chart.TitleWidth = -1 }, true},
		{"negative month width", func(c *Config) { c.Chart.MonthWidth = -5 }, true},
		{"invalid format", func(c *Config) { c.Render.Formats = []string{"bmp"} }, true},
		{"empty backend allowed", func(c *Config) { c.Cache.Backend = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
