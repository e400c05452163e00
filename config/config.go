// Package config loads run settings for the mobius command from a TOML file.
//
//	[surface]
//	radius = 5.0
//	width = 2.0
//	resolution = 200
//
//	[render]
//	output = "strip.png"
//	colormap = "viridis"
//
//	[output]
//	format = "text"
//
//	[log]
//	level = "info"
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/alexshd/mobius"
	"github.com/alexshd/mobius/render"
)

// Config is the complete run configuration.
type Config struct {
	Surface Surface `toml:"surface"`
	Render  Render  `toml:"render"`
	Output  Output  `toml:"output"`
	Log     Log     `toml:"log"`
}

type Surface struct {
	Radius     float64 `toml:"radius"`
	Width      float64 `toml:"width"`
	Resolution int     `toml:"resolution"`
}

// Render configures the optional PNG plot. An empty Output disables it.
type Render struct {
	Output    string  `toml:"output"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Elevation float64 `toml:"elevation"`
	Azimuth   float64 `toml:"azimuth"`
	Colormap  string  `toml:"colormap"`
	Alpha     float64 `toml:"alpha"`
	Title     string  `toml:"title"`
}

type Output struct {
	Format string `toml:"format"` // text or json
}

type Log struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Default returns the reference run with rendering disabled.
func Default() Config {
	p := mobius.DefaultParams()
	r := render.DefaultOptions()
	return Config{
		Surface: Surface{
			Radius:     p.R,
			Width:      p.W,
			Resolution: p.N,
		},
		Render: Render{
			Width:     r.Width,
			Height:    r.Height,
			Elevation: r.Elevation,
			Azimuth:   r.Azimuth,
			Colormap:  r.Colormap,
			Alpha:     r.Alpha,
			Title:     r.Title,
		},
		Output: Output{Format: "text"},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults; keys missing from the file keep
// their default values. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Params returns the surface parameters.
func (c Config) Params() mobius.Params {
	return mobius.Params{R: c.Surface.Radius, W: c.Surface.Width, N: c.Surface.Resolution}
}

// RenderOptions merges the render section into the renderer defaults.
func (c Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Width = c.Render.Width
	opts.Height = c.Render.Height
	opts.Elevation = c.Render.Elevation
	opts.Azimuth = c.Render.Azimuth
	opts.Colormap = c.Render.Colormap
	opts.Alpha = c.Render.Alpha
	opts.Title = c.Render.Title
	return opts
}

// LogLevel parses the configured level.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	if c.Render.Output != "" {
		if err := c.RenderOptions().Validate(); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("output: unknown format %q", c.Output.Format)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// Write encodes c as TOML.
func (c Config) Write(path string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}
