//go:build linux && cgo

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the exporter's YAML configuration file.
type Config struct {
	// Listen is the HTTP listen address, e.g. ":9137".
	Listen string `yaml:"listen"`

	// MetricsPath is the HTTP path serving metrics.
	MetricsPath string `yaml:"metrics_path"`

	// SensorsConfig is an optional libsensors configuration file.
	// Empty means the library's default search paths.
	SensorsConfig string `yaml:"sensors_config"`

	// Match restricts collection to chips matching this name
	// pattern, e.g. "k10temp-*". Empty means every chip.
	Match string `yaml:"match"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file and no
// flags override it.
func DefaultConfig() Config {
	return Config{
		Listen:      ":9137",
		MetricsPath: "/metrics",
		LogLevel:    "info",
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
