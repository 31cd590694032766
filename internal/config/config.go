// Package config loads BezierBoard settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"BezierBoard/internal/state"
)

// Config is the full set of user-tunable settings.
type Config struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	StrokeColor    string  `toml:"stroke_color"`
	StrokeWidth    float64 `toml:"stroke_width"`
	SavedOpacity   float64 `toml:"saved_opacity"`
	ControlOpacity float64 `toml:"control_opacity"`
	ControlOffset  float64 `toml:"control_offset"`
	MinScale       float64 `toml:"min_scale"`
	MaxScale       float64 `toml:"max_scale"`
	ZoomStep       float64 `toml:"zoom_step"`
	LogLevel       string  `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:          500,
		Height:         500,
		StrokeColor:    "#000000",
		StrokeWidth:    2,
		SavedOpacity:   0.3,
		ControlOpacity: 0.5,
		ControlOffset:  10,
		MinScale:       0.3,
		MaxScale:       3.0,
		ZoomStep:       1.2,
		LogLevel:       "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value is in range.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height))
	}
	if _, err := ParseHexColor(c.StrokeColor); err != nil {
		errs = append(errs, err)
	}
	if c.StrokeWidth <= 0 {
		errs = append(errs, fmt.Errorf("stroke_width %g must be positive", c.StrokeWidth))
	}
	if c.SavedOpacity < 0 || c.SavedOpacity > 1 {
		errs = append(errs, fmt.Errorf("saved_opacity %g outside [0, 1]", c.SavedOpacity))
	}
	if c.ControlOpacity < 0 || c.ControlOpacity > 1 {
		errs = append(errs, fmt.Errorf("control_opacity %g outside [0, 1]", c.ControlOpacity))
	}
	if c.ControlOffset <= 0 {
		errs = append(errs, fmt.Errorf("control_offset %g must be positive", c.ControlOffset))
	}
	if c.MinScale <= 0 || c.MaxScale < c.MinScale {
		errs = append(errs, fmt.Errorf("scale range [%g, %g] is invalid", c.MinScale, c.MaxScale))
	}
	if c.ZoomStep <= 1 {
		errs = append(errs, fmt.Errorf("zoom_step %g must be greater than 1", c.ZoomStep))
	}
	return errors.Join(errs...)
}

// Style converts the settings into the editor's style.
func (c Config) Style() (state.Style, error) {
	col, err := ParseHexColor(c.StrokeColor)
	if err != nil {
		return state.Style{}, err
	}
	return state.Style{
		StrokeColor:    col,
		StrokeWidth:    c.StrokeWidth,
		SavedOpacity:   c.SavedOpacity,
		ControlOpacity: c.ControlOpacity,
		ControlOffset:  c.ControlOffset,
	}, nil
}

// ClampScale limits f to the configured scale range.
func (c Config) ClampScale(f float64) float64 {
	return min(max(f, c.MinScale), c.MaxScale)
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	col := color.NRGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &col.R, &col.G, &col.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &col.R, &col.G, &col.B, &col.A)
	default:
		err = errors.New("want 6 or 8 hex digits")
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("stroke_color %q: %w", s, err)
	}
	return col, nil
}
