package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DisplayConfig controls the grid and rings.
type DisplayConfig struct {
	Range         float64 `yaml:"range_km"`
	RingCount     int     `yaml:"ring_count"`
	RingLineWidth float64 `yaml:"ring_line_width"`
	SpriteScale   float64 `yaml:"sprite_scale"`
	Proximity     float64 `yaml:"proximity_km"`
}

// ZoomConfig bounds the interactive zoom.
type ZoomConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// VisionConfig controls per-airship derived geometry.
type VisionConfig struct {
	Lookahead     float64 `yaml:"lookahead_km"`
	ConeRadius    float64 `yaml:"cone_radius_km"`
	ConeHalfAngle float64 `yaml:"cone_half_angle_deg"`
}

// FeedConfig controls the entity feed.
type FeedConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	Interval   time.Duration `yaml:"interval"`
	EvictEvery time.Duration `yaml:"evict_every"`
	DemoCount  int           `yaml:"demo_count"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Config is the root application configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Zoom    ZoomConfig    `yaml:"zoom"`
	Vision  VisionConfig  `yaml:"vision"`
	Feed    FeedConfig    `yaml:"feed"`
	Log     LogConfig     `yaml:"log"`
}

// Default returns a Config populated from the package defaults.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Range:         DefaultRange,
			RingCount:     DefaultRingCount,
			RingLineWidth: DefaultRingLineWidth,
			SpriteScale:   DefaultSpriteScale,
			Proximity:     DefaultProximity,
		},
		Zoom: ZoomConfig{
			Initial: DefaultZoom,
			Min:     DefaultZoomMin,
			Max:     DefaultZoomMax,
			Step:    DefaultZoomStep,
		},
		Vision: VisionConfig{
			Lookahead:     DefaultLookahead,
			ConeRadius:    DefaultConeRadius,
			ConeHalfAngle: DefaultConeHalfAngle,
		},
		Feed: FeedConfig{
			Timeout:    DefaultFeedTimeout,
			Interval:   DefaultFeedInterval,
			EvictEvery: DefaultEvictEvery,
			DemoCount:  DefaultDemoCount,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a YAML config file over the defaults. Fields missing from the
// file keep their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value can build a non-degenerate frame.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"display.range_km", c.Display.Range},
		{"display.sprite_scale", c.Display.SpriteScale},
		{"zoom.initial", c.Zoom.Initial},
		{"zoom.min", c.Zoom.Min},
		{"zoom.max", c.Zoom.Max},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"display.ring_line_width", c.Display.RingLineWidth},
		{"display.proximity_km", c.Display.Proximity},
		{"vision.lookahead_km", c.Vision.Lookahead},
		{"vision.cone_radius_km", c.Vision.ConeRadius},
	}
	for _, p := range nonNegative {
		if !(p.value >= 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be non-negative, got %v", p.name, p.value)
		}
	}

	switch {
	case c.Display.RingCount < 1:
		return fmt.Errorf("display.ring_count must be at least 1, got %d", c.Display.RingCount)
	case !(c.Vision.ConeHalfAngle >= 0 && c.Vision.ConeHalfAngle <= 180):
		return fmt.Errorf("vision.cone_half_angle_deg must be within [0,180], got %v", c.Vision.ConeHalfAngle)
	case c.Zoom.Min > c.Zoom.Max:
		return fmt.Errorf("zoom.min %v exceeds zoom.max %v", c.Zoom.Min, c.Zoom.Max)
	case c.Zoom.Initial < c.Zoom.Min || c.Zoom.Initial > c.Zoom.Max:
		return fmt.Errorf("zoom.initial %v outside [%v,%v]", c.Zoom.Initial, c.Zoom.Min, c.Zoom.Max)
	case !(c.Zoom.Step > 1) || math.IsInf(c.Zoom.Step, 0):
		return fmt.Errorf("zoom.step must be greater than 1, got %v", c.Zoom.Step)
	case c.Feed.Timeout <= 0 || c.Feed.Interval <= 0 || c.Feed.EvictEvery <= 0:
		return fmt.Errorf("feed durations must be positive")
	case c.Feed.DemoCount < 0:
		return fmt.Errorf("feed.demo_count must be non-negative, got %d", c.Feed.DemoCount)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
