package config

import (
	"fmt"
	"os"

	"apex/internal/models/global"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListen         = "0.0.0.0:8080"
	DefaultDocumentRoot   = "web"
	DefaultMaxHeaderBytes = 1 << 20
)

// Default returns the settings used when no settings file exists.
func Default() *global.Settings {
	cfg := &global.Settings{}
	applyDefaults(cfg)
	return cfg
}

func LoadSettings(path string) (*global.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg global.Settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *global.Settings) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = DefaultListen
	}
	if cfg.Server.DocumentRoot == "" {
		cfg.Server.DocumentRoot = DefaultDocumentRoot
	}
	if cfg.Server.Concurrency == 0 {
		cfg.Server.Concurrency = 1
	}
	if cfg.Server.Limits.MaxHeaderBytes == 0 {
		cfg.Server.Limits.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

func validate(cfg *global.Settings) error {
	if cfg.Server.Concurrency < 0 {
		return fmt.Errorf("server.concurrency must not be negative, got %d", cfg.Server.Concurrency)
	}
	if cfg.Server.Timeouts.Read < 0 || cfg.Server.Timeouts.Write < 0 {
		return fmt.Errorf("server.timeouts must not be negative")
	}
	if cfg.Server.Limits.MaxHeaderBytes < 0 {
		return fmt.Errorf("server.limits.max_header_bytes must not be negative, got %d", cfg.Server.Limits.MaxHeaderBytes)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log.format %q", cfg.Log.Format)
	}
	return nil
}
