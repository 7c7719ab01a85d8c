package lattice

import (
	"log/slog"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/quadcraft/ivm/internal/quadray"
)

// FieldConfig holds density field parameters.
type FieldConfig struct {
	Seed        int64   `json:"seed" yaml:"seed"`
	Octaves     int     `json:"octaves" yaml:"octaves"`         // Noise layers summed
	Frequency   float64 `json:"frequency" yaml:"frequency"`     // Base sampling frequency per Cartesian unit
	Persistence float64 `json:"persistence" yaml:"persistence"` // Amplitude falloff per octave
}

// DefaultFieldConfig returns a smooth field that varies over a few cells.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Seed:        12345,
		Octaves:     3,
		Frequency:   0.1,
		Persistence: 0.5,
	}
}

// Field is a scalar density in [0, 1] sampled at lattice positions.
type Field struct {
	cfg   FieldConfig
	noise opensimplex.Noise
}

// NewField builds a field. A non-positive octave count is treated as 1.
func NewField(cfg FieldConfig) *Field {
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	return &Field{
		cfg:   cfg,
		noise: opensimplex.NewNormalized(cfg.Seed),
	}
}

// Config returns the parameters the field was built with.
func (f *Field) Config() FieldConfig {
	return f.cfg
}

// Sample returns the density at q's Cartesian position. Quadrays naming the
// same point sample the same value.
func (f *Field) Sample(q quadray.Quadray) float64 {
	x, y, z := q.ToXYZ()
	return octaveNoise(f.noise, x, y, z, f.cfg.Octaves, f.cfg.Frequency, f.cfg.Persistence)
}

// Solid returns the cells of a size⁴ grid whose density is at least
// threshold, in grid order.
func (f *Field) Solid(size int, threshold float64) []quadray.Quadray {
	var solid []quadray.Quadray
	total := 0
	EachCell(size, func(q quadray.Quadray) bool {
		total++
		if f.Sample(q) >= threshold {
			solid = append(solid, q)
		}
		return true
	})
	slog.Debug("lattice field filled", "size", size, "threshold", threshold, "solid", len(solid), "cells", total)
	return solid
}

func octaveNoise(noise opensimplex.Noise, x, y, z float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	v := total / maxVal
	return math.Max(0, math.Min(1, v))
}
