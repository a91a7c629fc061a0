package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vmini/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultPort, cfg.Dev.Port)
	assert.Equal(t, DefaultHost, cfg.Dev.Host)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, DefaultMetricsPath, cfg.Metrics.Path)
	assert.Equal(t, DefaultExportPrefix, cfg.Export.Prefix)
	assert.NoError(t, cfg.Validate(), "default config should validate")
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	// Test loading non-existent config
	_, err := Load(tmpDir)
	assert.Equal(t, "E201", errors.Code(err), "missing config")

	configJSON := `{
  "dev": {
    "port": 8080,
    "host": "0.0.0.0"
  },
  "log": {
    "level": "debug",
    "format": "json"
  },
  "export": {
    "bucket": "snaps",
    "region": "eu-west-1"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	level, _ := cfg.LogLevel()
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "snaps", cfg.Export.Bucket)
	assert.Equal(t, "eu-west-1", cfg.Export.Region)
	// Unset fields keep their defaults
	assert.Equal(t, DefaultExportPrefix, cfg.Export.Prefix)
	assert.True(t, cfg.Metrics.Enabled, "Metrics.Enabled should default to true")
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := `dev:
  port: 4000
metrics:
  enabled: false
log:
  format: text
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, YAMLConfigFileName), []byte(configYAML), 0644))
	require.True(t, Exists(tmpDir), "Exists() = false for directory with vmini.yaml")

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Dev.Port)
	assert.Equal(t, DefaultHost, cfg.Dev.Host)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, YAMLConfigFileName, filepath.Base(cfg.Path()))
}

func TestLoad_PrefersJSON(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(`{"dev":{"port":1111}}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, YAMLConfigFileName), []byte("dev:\n  port: 2222\n"), 0644))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1111, cfg.Dev.Port)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json", ConfigFileName, "not valid json"},
		{"yaml", YAMLConfigFileName, "dev: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "E201")
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := New()
	cfg.Dev.Port = 9000

	for _, name := range []string{ConfigFileName, YAMLConfigFileName} {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, cfg.SaveTo(path), name)
		assert.Equal(t, path, cfg.Path())

		loaded, err := LoadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, 9000, loaded.Dev.Port, name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"port too high", func(c *Config) { c.Dev.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }, true},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, true},
		{"relative path with metrics off", func(c *Config) {
			c.Metrics.Enabled = false
			c.Metrics.Path = "metrics"
		}, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"upper-case level", func(c *Config) { c.Log.Level = "WARN" }, false},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "E202", errors.Code(err))
		})
	}
}
