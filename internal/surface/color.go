package surface

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	White Color = "#ffffff"
	Black Color = "#000000"
)

// RGB decodes c into 8-bit channels. Malformed colors decode as white so a bad
// theme entry stays visible.
func (c Color) RGB() (r, g, b uint8) {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 255, 255, 255
	}
	return col.RGB255()
}

// Blend mixes c toward other by t in [0, 1], interpolating in Lab space.
func (c Color) Blend(other Color, t float64) Color {
	a, errA := colorful.Hex(string(c))
	b, errB := colorful.Hex(string(other))
	if errA != nil || errB != nil {
		return c
	}
	return Color(a.BlendLab(b, t).Clamped().Hex())
}
