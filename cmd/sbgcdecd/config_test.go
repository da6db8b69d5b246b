package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gimbalworks/sbgcdec/internal/sbgc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadServiceConfigDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
name = "bench"
addr = ":9400"
cors_origins = ["http://localhost:3000", " "]

[log]
level = "debug"
`)

	cfg, err := loadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "bench" {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	if cfg.Addr != ":9400" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if len(cfg.CorsOrigins) != 1 {
		t.Fatalf("unexpected origins: %+v", cfg.CorsOrigins)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
	// Keys absent from the file keep their defaults.
	if cfg.MaxBufferBytes != sbgc.MaxFrameBytes {
		t.Fatalf("unexpected buffer cap: %d", cfg.MaxBufferBytes)
	}
	if cfg.Log.MaxSizeMB != 10 {
		t.Fatalf("unexpected log max size: %d", cfg.Log.MaxSizeMB)
	}
}

func TestLoadServiceConfigRejectsInvalidOverride(t *testing.T) {
	path := writeConfig(t, `max_buffer_bytes = 0`)
	if _, err := loadServiceConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadServiceConfigMissingFile(t *testing.T) {
	if _, err := loadServiceConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected load error")
	}
}
