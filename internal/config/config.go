package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTileSize     = 100
	DefaultMinDelayMs   = 5000
	DefaultMaxDelayMs   = 60000
	DefaultFlipDuration = 500
	DefaultFPS          = 30
	DefaultTheme        = "bauhaus"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Theme    string         `yaml:"theme" toml:"theme"`
	TileSize int            `yaml:"tile_size" toml:"tile_size"`
	Seed     int64          `yaml:"seed" toml:"seed"`
	FPS      int            `yaml:"fps" toml:"fps"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
	Viewport ViewportConfig `yaml:"viewport" toml:"viewport"`
}

// TimingConfig holds flip timing in milliseconds.
type TimingConfig struct {
	MinDelay     int `yaml:"min_delay_ms" toml:"min_delay_ms"`
	MaxDelay     int `yaml:"max_delay_ms" toml:"max_delay_ms"`
	FlipDuration int `yaml:"flip_duration_ms" toml:"flip_duration_ms"`
}

// ViewportConfig overrides the measured viewport, in logical units. Zero
// means measure.
type ViewportConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:    DefaultTheme,
		TileSize: DefaultTileSize,
		FPS:      DefaultFPS,
		Timing: TimingConfig{
			MinDelay:     DefaultMinDelayMs,
			MaxDelay:     DefaultMaxDelayMs,
			FlipDuration: DefaultFlipDuration,
		},
	}
}

// Load reads a config file on top of the defaults. Files ending in .toml
// are decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %d", ErrInvalid, c.TileSize)
	case c.Timing.MinDelay < 0:
		return fmt.Errorf("%w: min_delay_ms must not be negative, got %d", ErrInvalid, c.Timing.MinDelay)
	case c.Timing.MaxDelay < c.Timing.MinDelay:
		return fmt.Errorf("%w: max_delay_ms %d below min_delay_ms %d", ErrInvalid, c.Timing.MaxDelay, c.Timing.MinDelay)
	case c.Timing.FlipDuration < 0:
		return fmt.Errorf("%w: flip_duration_ms must not be negative, got %d", ErrInvalid, c.Timing.FlipDuration)
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps must be in 1..240, got %d", ErrInvalid, c.FPS)
	case c.Viewport.Width < 0 || c.Viewport.Height < 0:
		return fmt.Errorf("%w: viewport must not be negative", ErrInvalid)
	}
	return nil
}

func (c *Config) MinDelay() time.Duration {
	return time.Duration(c.Timing.MinDelay) * time.Millisecond
}

func (c *Config) MaxDelay() time.Duration {
	return time.Duration(c.Timing.MaxDelay) * time.Millisecond
}

func (c *Config) FlipDuration() time.Duration {
	return time.Duration(c.Timing.FlipDuration) * time.Millisecond
}

// FrameInterval is the time between rendered frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
