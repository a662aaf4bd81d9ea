package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300, cfg.Playback.Speed)
	assert.Equal(t, 700*time.Millisecond, cfg.Interval())
	assert.Equal(t, "bubble", cfg.Algorithm)
	assert.Equal(t, DefaultInput, cfg.Input.Default)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "playback:\n  speed: 800\nalgorithm: merge\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Playback.Speed)
	assert.Equal(t, "merge", cfg.Algorithm)
	assert.Equal(t, "info", cfg.Logging.Level, "unset keys keep defaults")
	assert.Equal(t, DefaultInput, cfg.Input.Default)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playback: [oops"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Playback.Speed = 150
	cfg.Input.Preset = "reverse"
	cfg.Logging.File = "/tmp/dsaviz.log"

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		t.Setenv("DSAVIZ_SPEED", "850")
		t.Setenv("DSAVIZ_ALGORITHM", "queue")
		t.Setenv("DSAVIZ_INPUT", "1, 2, 3")
		t.Setenv("DSAVIZ_LOG_LEVEL", "debug")
		t.Setenv("DSAVIZ_LOG_FILE", "dsaviz.log")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 850, cfg.Playback.Speed)
		assert.Equal(t, "queue", cfg.Algorithm)
		assert.Equal(t, "1, 2, 3", cfg.Input.Default)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "dsaviz.log", cfg.Logging.File)
	})

	t.Run("bad speed is ignored", func(t *testing.T) {
		t.Setenv("DSAVIZ_SPEED", "fast")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, 300, cfg.Playback.Speed)
	})

	t.Run("applies when file is missing", func(t *testing.T) {
		t.Setenv("DSAVIZ_ALGORITHM", "stack")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "stack", cfg.Algorithm)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"speed too low", func(c *Config) { c.Playback.Speed = 50 }},
		{"speed too high", func(c *Config) { c.Playback.Speed = 1000 }},
		{"unknown algorithm", func(c *Config) { c.Algorithm = "bogo" }},
		{"bad input", func(c *Config) { c.Input.Default = "one, two" }},
		{"unknown preset", func(c *Config) { c.Input.Preset = "zigzag" }},
		{"negative size", func(c *Config) { c.Input.Size = -1 }},
		{"huge size", func(c *Config) { c.Input.Size = MaxSize + 1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))
	assert.Equal(t, "dsaviz", filepath.Base(filepath.Dir(DefaultPath())))
}
