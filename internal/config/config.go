// Package config provides TOML-based configuration for Canvas Creator.
package config

import (
	"fmt"
	"time"

	"CanvasCreator/internal/state"
)

type Config struct {
	Canvas CanvasConfig      `toml:"canvas"`
	Brush  BrushConfig       `toml:"brush"`
	Theme  ThemeConfig       `toml:"theme"`
	Notify NotifyConfig      `toml:"notify"`
	Export ExportConfig      `toml:"export"`
	Log    LogConfig         `toml:"log"`
	Keys   map[string]string `toml:"keys"` // action name -> key, e.g. undo = "ctrl+z"
}

type CanvasConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	GridSize float64 `toml:"grid_size"`
}

type BrushConfig struct {
	Color     string  `toml:"color"`
	Random    bool    `toml:"random"`
	MinRadius float64 `toml:"min_radius"`
	Seed      uint64  `toml:"seed"` // 0 picks a time-based seed at startup
}

type ThemeConfig struct {
	Name string `toml:"name"`
}

type NotifyConfig struct {
	Duration Duration `toml:"duration"`
}

type ExportConfig struct {
	Dir string `toml:"dir"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Duration wraps time.Duration with TOML-friendly string parsing.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Validate checks values that the rest of the program assumes are sane.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.GridSize <= 0 {
		return fmt.Errorf("grid_size %v must be positive", c.Canvas.GridSize)
	}
	if c.Brush.MinRadius < 0 {
		return fmt.Errorf("min_radius %v must not be negative", c.Brush.MinRadius)
	}
	if _, err := state.NormalizeColor(c.Brush.Color); err != nil {
		return fmt.Errorf("brush color: %w", err)
	}
	if _, err := state.ParseTheme(c.Theme.Name); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ThemeVariant returns the configured theme; Validate has already vetted it.
func (c *Config) ThemeVariant() state.Theme {
	t, _ := state.ParseTheme(c.Theme.Name)
	return t
}

// StateOptions maps the brush and theme sections onto initial state options.
func (c *Config) StateOptions() state.Options {
	seed := c.Brush.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return state.Options{
		Color:     c.Brush.Color,
		Random:    c.Brush.Random,
		Theme:     c.ThemeVariant(),
		MinRadius: c.Brush.MinRadius,
		Seed:      seed,
	}
}
