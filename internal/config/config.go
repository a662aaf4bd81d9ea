package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mabhi256/dsaviz/internal/algo"
	"github.com/mabhi256/dsaviz/internal/input"
	"github.com/mabhi256/dsaviz/internal/playback"
)

// DefaultInput is the array shown on first launch.
const DefaultInput = "64, 34, 25, 12, 22, 11, 90"

// MaxSize bounds generated presets; bars past this stop fitting a terminal.
const MaxSize = 60

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all dsaviz configuration.
type Config struct {
	Playback  PlaybackConfig `yaml:"playback"`
	Input     InputConfig    `yaml:"input"`
	Algorithm string         `yaml:"algorithm"`
	Logging   LoggingConfig  `yaml:"logging"`
}

type PlaybackConfig struct {
	Speed int `yaml:"speed"` // 100 (slow) to 900 (fast)
}

// InputConfig picks the starting array. Default wins over Preset when set.
type InputConfig struct {
	Default string `yaml:"default"`
	Preset  string `yaml:"preset"`
	Size    int    `yaml:"size"`
	Seed    int64  `yaml:"seed"` // 0 means seed from the clock
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			Speed: playback.DefaultSpeed,
		},
		Input: InputConfig{
			Default: DefaultInput,
			Preset:  string(input.PresetRandom),
			Size:    input.DefaultSize,
		},
		Algorithm: algo.Bubble.String(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath is dsaviz/config.yaml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "dsaviz", "config.yaml")
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DSAVIZ_SPEED"); v != "" {
		if speed, err := strconv.Atoi(v); err == nil {
			c.Playback.Speed = speed
		}
	}
	if v := os.Getenv("DSAVIZ_ALGORITHM"); v != "" {
		c.Algorithm = v
	}
	if v := os.Getenv("DSAVIZ_INPUT"); v != "" {
		c.Input.Default = v
	}
	if v := os.Getenv("DSAVIZ_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DSAVIZ_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Playback.Speed < playback.MinSpeed || c.Playback.Speed > playback.MaxSpeed {
		return fmt.Errorf("%w: playback.speed %d outside [%d, %d]",
			ErrInvalidConfig, c.Playback.Speed, playback.MinSpeed, playback.MaxSpeed)
	}
	if _, err := algo.Lookup(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Input.Default != "" {
		if _, err := input.Parse(c.Input.Default); err != nil {
			return fmt.Errorf("%w: input.default: %w", ErrInvalidConfig, err)
		}
	}
	if c.Input.Preset != "" && !input.IsPreset(c.Input.Preset) {
		return fmt.Errorf("%w: unknown input.preset %q", ErrInvalidConfig, c.Input.Preset)
	}
	if c.Input.Size < 0 || c.Input.Size > MaxSize {
		return fmt.Errorf("%w: input.size %d outside [0, %d]", ErrInvalidConfig, c.Input.Size, MaxSize)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Interval is the delay between playback ticks at the configured speed.
func (c *Config) Interval() time.Duration {
	return playback.Interval(c.Playback.Speed)
}
