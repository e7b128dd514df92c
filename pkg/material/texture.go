package material

import (
	"math"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Constant provides uniform color
type Constant struct {
	Color core.Color
}

// NewConstant creates a new constant texture
func NewConstant(color core.Color) *Constant {
	return &Constant{Color: color}
}

// Value returns the color regardless of UV or position
func (c *Constant) Value(u, v float64, point core.Vec3) core.Color {
	return c.Color
}

// Checker splits the UV square into quadrants. Quadrants where (u-0.5) and
// (v-0.5) have opposite signs use A, the others B.
type Checker struct {
	A, B core.Color
}

// NewChecker creates a UV quadrant checker texture
func NewChecker(a, b core.Color) *Checker {
	return &Checker{A: a, B: b}
}

// Value picks a color by UV quadrant
func (c *Checker) Value(u, v float64, point core.Vec3) core.Color {
	if (u-0.5)*(v-0.5) < 0 {
		return c.A
	}
	return c.B
}

// SolidChecker is a 3D checker pattern from the sign of a product of sines
type SolidChecker struct {
	A, B  core.Color
	Scale float64
}

// NewSolidChecker creates a solid checker texture with the given frequency
func NewSolidChecker(a, b core.Color, scale float64) *SolidChecker {
	return &SolidChecker{A: a, B: b, Scale: scale}
}

// Value picks a color from the position, ignoring UV
func (c *SolidChecker) Value(u, v float64, point core.Vec3) core.Color {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.A
	}
	return c.B
}
