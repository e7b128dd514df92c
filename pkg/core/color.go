package core

import "math"

// Color is a linear RGB radiance value with an alpha channel.
type Color struct {
	R, G, B, A float64
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// NewColor creates an opaque color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Add sums the color channels. The result is opaque.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, 1}
}

// MultiplyColor multiplies every channel, alpha included.
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Scale multiplies the color channels by a scalar. The result is opaque.
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar, 1}
}

// Divide divides the color channels by a scalar. The result is opaque.
func (c Color) Divide(scalar float64) Color {
	return c.Scale(1.0 / scalar)
}

// IsBlack reports whether all color channels are zero
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Pack converts the color to 0xRRGGBBAA applying sqrt gamma and clamping
// each channel to [0, 255].
func (c Color) Pack() uint32 {
	return packChannel(c.R)<<24 | packChannel(c.G)<<16 | packChannel(c.B)<<8 | packChannel(c.A)
}

// UnpackColor is the inverse of Pack up to quantisation.
func UnpackColor(pixel uint32) Color {
	return Color{
		R: unpackChannel(pixel >> 24),
		G: unpackChannel(pixel >> 16),
		B: unpackChannel(pixel >> 8),
		A: unpackChannel(pixel),
	}
}

func packChannel(v float64) uint32 {
	if !(v > 0) {
		// Negative and NaN channels map to 0
		return 0
	}
	return uint32(math.Min(math.Round(math.Sqrt(v)*255), 255))
}

func unpackChannel(b uint32) float64 {
	v := float64(b&0xff) / 255
	return v * v
}
