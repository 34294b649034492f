//go:build linux && cgo

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, ":9137", cfg.Listen)
	require.Equal(t, "/metrics", cfg.MetricsPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.Match)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exporter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"listen: \":9999\"\nmatch: \"k10temp-*\"\nlog_level: debug\n",
	), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Listen)
	require.Equal(t, "k10temp-*", cfg.Match)
	require.Equal(t, "debug", cfg.LogLevel)
	// Unset keys keep their defaults.
	require.Equal(t, "/metrics", cfg.MetricsPath)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exporter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listne: \":9999\"\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
