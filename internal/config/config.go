package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gimbalworks/sbgcdec/internal/sbgc"
)

type ServiceConfig struct {
	Name           string    `toml:"name"`
	Addr           string    `toml:"addr"`
	CorsOrigins    []string  `toml:"cors_origins"`
	MaxBufferBytes int       `toml:"max_buffer_bytes"`
	Log            LogConfig `toml:"log"`
}

type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		Name:           "sbgcdecd",
		Addr:           ":9300",
		CorsOrigins:    []string{},
		MaxBufferBytes: sbgc.MaxFrameBytes,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

func LoadServiceConfig(path string) (ServiceConfig, error) {
	cfg := DefaultServiceConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ServiceConfig{}, err
	}
	if err := ValidateServiceConfig(cfg); err != nil {
		return ServiceConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateServiceConfig(cfg ServiceConfig) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("service config missing name")
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("service config missing addr")
	}
	if cfg.MaxBufferBytes <= 0 || cfg.MaxBufferBytes > sbgc.MaxFrameBytes {
		return fmt.Errorf("max_buffer_bytes must be in 1..%d, got %d", sbgc.MaxFrameBytes, cfg.MaxBufferBytes)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Log.Level)) {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("unknown log level: %q", cfg.Log.Level)
	}
	if cfg.Log.File != "" && cfg.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("log.max_size_mb must be positive when log.file is set")
	}
	return nil
}
