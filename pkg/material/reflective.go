package material

import (
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/sampling"
)

// Reflective represents a mirror-like material with optional fuzz
type Reflective struct {
	Albedo core.Color
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewReflective creates a new reflective material
func NewReflective(albedo core.Color, fuzz float64) *Reflective {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Reflective{Albedo: albedo, Fuzz: fuzz}
}

// Emission is always black
func (r *Reflective) Emission(hit core.Hit) core.Color {
	return core.Black
}

// Scatter mirrors the incoming direction about the normal. Perturbed
// directions that end up below the surface are absorbed.
func (r *Reflective) Scatter(hit core.Hit, incoming core.Vec3, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := incoming.Normalize().Reflect(hit.Normal)
	if r.Fuzz > 0 {
		reflected = reflected.Add(core.RandomUnitVector(random).Multiply(r.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Specular:    true,
		Attenuation: r.Albedo,
		PDF:         sampling.Delta{Direction: reflected},
	}, true
}

// Transmission returns the albedo for any direction pair
func (r *Reflective) Transmission(hit core.Hit, incoming, outgoing core.Vec3) core.Color {
	return r.Albedo
}
