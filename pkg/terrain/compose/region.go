// Package compose turns a noise field into terrain colors and displaces a
// UV-mapped mesh by it.
package compose

import (
	"image/color"

	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/noise"
)

// Region is one band of the terrain classification table. A cell belongs to
// the first region whose Height is at least the cell's normalised value.
type Region struct {
	Name   string
	Height float64
	Color  color.RGBA
}

// DefaultRegions is a water-to-snow table in ascending Height order.
func DefaultRegions() []Region {
	return []Region{
		{Name: "deep water", Height: 0.3, Color: color.RGBA{R: 0x1f, G: 0x3c, B: 0x88, A: 0xff}},
		{Name: "shallow water", Height: 0.4, Color: color.RGBA{R: 0x36, G: 0x61, B: 0xc4, A: 0xff}},
		{Name: "sand", Height: 0.45, Color: color.RGBA{R: 0xd2, G: 0xd0, B: 0x7d, A: 0xff}},
		{Name: "grass", Height: 0.55, Color: color.RGBA{R: 0x56, G: 0x98, B: 0x1a, A: 0xff}},
		{Name: "forest", Height: 0.6, Color: color.RGBA{R: 0x3e, G: 0x6b, B: 0x14, A: 0xff}},
		{Name: "rock", Height: 0.7, Color: color.RGBA{R: 0x5a, G: 0x45, B: 0x3c, A: 0xff}},
		{Name: "high rock", Height: 0.9, Color: color.RGBA{R: 0x4b, G: 0x3c, B: 0x35, A: 0xff}},
		{Name: "snow", Height: 1, Color: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	}
}

// Classify returns the color for normalised height v. Regions are scanned
// in the given order; a value above every threshold takes the last color.
// With no regions the value is rendered in gray.
func Classify(regions []Region, v float64) color.RGBA {
	if len(regions) == 0 {
		return gray(v)
	}
	for _, r := range regions {
		if v <= r.Height {
			return r.Color
		}
	}
	return regions[len(regions)-1].Color
}

// Colorize maps every field cell to a region color. An empty table yields
// the grayscale rendering of the field.
func Colorize(field noise.Field, regions []Region) ColorBuffer {
	if len(regions) == 0 {
		return Grayscale(field)
	}
	buf := NewColorBuffer(field.Size)
	for i, v := range field.Values {
		buf.Pix[i] = Classify(regions, v)
	}
	return buf
}
