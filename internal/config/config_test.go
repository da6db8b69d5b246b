package config

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

func TestLoadServiceConfigDefaults(t *testing.T) {
	path := writeConfig(t, ``)

	cfg, err := LoadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "sbgcdecd" {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	if cfg.Addr != ":9300" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.MaxBufferBytes != sbgc.MaxFrameBytes {
		t.Fatalf("unexpected buffer cap: %d", cfg.MaxBufferBytes)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("unexpected log level: %q", cfg.Log.Level)
	}
}

func TestLoadServiceConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
name = "bench-decoder"
addr = ":9400"
cors_origins = ["http://localhost:3000"]
max_buffer_bytes = 64

[log]
level = "debug"
file = "decode.log"
max_size_mb = 5
max_backups = 2
`)

	cfg, err := LoadServiceConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Name != "bench-decoder" {
		t.Fatalf("unexpected name: %q", cfg.Name)
	}
	if cfg.MaxBufferBytes != 64 {
		t.Fatalf("unexpected buffer cap: %d", cfg.MaxBufferBytes)
	}
	if len(cfg.CorsOrigins) != 1 {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
	if cfg.Log.File != "decode.log" || cfg.Log.MaxSizeMB != 5 {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadServiceConfigRejectsOversizeBufferCap(t *testing.T) {
	path := writeConfig(t, `max_buffer_bytes = 4096`)
	if _, err := LoadServiceConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadServiceConfigRejectsUnknownLogLevel(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "loud"
`)
	if _, err := LoadServiceConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := WriteTemplate(path, "service", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, "service", false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}

	cfg, err := LoadServiceConfig(path)
	if err != nil {
		t.Fatalf("template must validate: %v", err)
	}
	if cfg.MaxBufferBytes != sbgc.MaxFrameBytes {
		t.Fatalf("unexpected buffer cap: %d", cfg.MaxBufferBytes)
	}
}

func TestTemplateUnknownKind(t *testing.T) {
	if _, err := Template("mirage"); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}
