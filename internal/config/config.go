package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/compose"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/noise"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/sample"
)

// Config holds the generator configuration.
type Config struct {
	Seed       int64  `json:"seed" yaml:"seed"`
	SeedPhrase string `json:"seed_phrase,omitempty" yaml:"seed_phrase,omitempty"` // overrides Seed when set

	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Radius   float64 `json:"radius" yaml:"radius"`
	Attempts int     `json:"attempts" yaml:"attempts"`
	Border   bool    `json:"border" yaml:"border"`

	Noise       string  `json:"noise" yaml:"noise"` // "simplex" or "perlin"
	Resolution  int     `json:"resolution" yaml:"resolution"`
	NoiseScale  float64 `json:"noise_scale" yaml:"noise_scale"`
	Octaves     int     `json:"octaves" yaml:"octaves"`
	Persistence float64 `json:"persistence" yaml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" yaml:"lacunarity"`
	OffsetX     float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY     float64 `json:"offset_y" yaml:"offset_y"`

	UVScale          float64 `json:"uv_scale" yaml:"uv_scale"`
	HeightMultiplier float64 `json:"height_multiplier" yaml:"height_multiplier"`
	CleanupMargin    float64 `json:"cleanup_margin" yaml:"cleanup_margin"`

	Regions []Region      `json:"regions" yaml:"regions"`
	Curve   []compose.Key `json:"curve,omitempty" yaml:"curve,omitempty"`
}

// Region is a terrain band with its color written as "#rrggbb".
type Region struct {
	Name   string  `json:"name" yaml:"name"`
	Height float64 `json:"height" yaml:"height"`
	Color  string  `json:"color" yaml:"color"`
}

// DefaultConfig returns a Config with the library defaults.
func DefaultConfig() *Config {
	p := terrain.DefaultParams()
	cfg := &Config{
		Seed:             p.Seed,
		Width:            p.Sampling.Width,
		Height:           p.Sampling.Height,
		Radius:           p.Sampling.Radius,
		Attempts:         p.Sampling.Attempts,
		Border:           p.Sampling.Border,
		Noise:            p.NoiseSource,
		Resolution:       p.Noise.Resolution,
		NoiseScale:       p.Noise.Scale,
		Octaves:          p.Noise.Octaves,
		Persistence:      p.Noise.Persistence,
		Lacunarity:       p.Noise.Lacunarity,
		UVScale:          p.UVScale,
		HeightMultiplier: p.HeightMultiplier,
		CleanupMargin:    p.CleanupMargin,
	}
	for _, r := range p.Regions {
		cfg.Regions = append(cfg.Regions, Region{Name: r.Name, Height: r.Height, Color: FormatColor(r.Color)})
	}
	return cfg
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["seed-phrase"] {
		cfg.SeedPhrase = fromFile.SeedPhrase
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["radius"] {
		cfg.Radius = fromFile.Radius
	}
	if !explicitFlags["attempts"] {
		cfg.Attempts = fromFile.Attempts
	}
	if !explicitFlags["border"] {
		cfg.Border = fromFile.Border
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["resolution"] {
		cfg.Resolution = fromFile.Resolution
	}
	if !explicitFlags["noise-scale"] {
		cfg.NoiseScale = fromFile.NoiseScale
	}
	if !explicitFlags["octaves"] {
		cfg.Octaves = fromFile.Octaves
	}
	if !explicitFlags["persistence"] {
		cfg.Persistence = fromFile.Persistence
	}
	if !explicitFlags["lacunarity"] {
		cfg.Lacunarity = fromFile.Lacunarity
	}
	if !explicitFlags["uv-scale"] {
		cfg.UVScale = fromFile.UVScale
	}
	if !explicitFlags["height-multiplier"] {
		cfg.HeightMultiplier = fromFile.HeightMultiplier
	}
	if !explicitFlags["cleanup-margin"] {
		cfg.CleanupMargin = fromFile.CleanupMargin
	}

	// No flags for these.
	cfg.OffsetX, cfg.OffsetY = fromFile.OffsetX, fromFile.OffsetY
	cfg.Regions = fromFile.Regions
	cfg.Curve = fromFile.Curve
}

// Params converts cfg into generator parameters.
func (cfg *Config) Params() (terrain.Params, error) {
	p := terrain.Params{
		Seed: cfg.Seed,
		Sampling: sample.Region{
			Width:    cfg.Width,
			Height:   cfg.Height,
			Radius:   cfg.Radius,
			Attempts: cfg.Attempts,
			Border:   cfg.Border,
		},
		Noise: noise.Params{
			Resolution:  cfg.Resolution,
			Scale:       cfg.NoiseScale,
			Octaves:     cfg.Octaves,
			Persistence: cfg.Persistence,
			Lacunarity:  cfg.Lacunarity,
			Offset:      r2.Point{X: cfg.OffsetX, Y: cfg.OffsetY},
		},
		NoiseSource:      cfg.Noise,
		UVScale:          cfg.UVScale,
		HeightMultiplier: cfg.HeightMultiplier,
		CleanupMargin:    cfg.CleanupMargin,
	}
	if cfg.SeedPhrase != "" {
		p.Seed = terrain.SeedFromPhrase(cfg.SeedPhrase)
	}
	if len(cfg.Curve) > 0 {
		p.Curve = compose.NewCurve(cfg.Curve...)
	}
	for i, r := range cfg.Regions {
		c, err := ParseColor(r.Color)
		if err != nil {
			return terrain.Params{}, fmt.Errorf("region %d (%s): %w", i, r.Name, err)
		}
		p.Regions = append(p.Regions, compose.Region{Name: r.Name, Height: r.Height, Color: c})
	}
	return p, nil
}

// ParseColor parses "#rrggbb" (the leading # is optional) into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// FormatColor writes c as "#rrggbb".
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
