// Package sampling provides the direction distributions used by the path
// tracer for importance sampling.
package sampling

import (
	"math"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// MinDensity is returned for directions a distribution cannot produce. It
// keeps densities strictly positive so the estimator never divides by zero
// for a direction drawn from the other half of a mixture.
const MinDensity = 1e-5

// Cosine is a cosine-weighted hemisphere distribution around a normal
type Cosine struct {
	normal core.Vec3
	frame  core.Mat4
}

// NewCosine creates a cosine sampler for the unit normal
func NewCosine(normal core.Vec3) Cosine {
	return Cosine{normal: normal, frame: core.FromIBasis(normal)}
}

// Generate draws a direction on the normal's side of the surface
func (c Cosine) Generate(random *rand.Rand) core.Vec3 {
	return c.frame.Transform(core.RandomCosineDirection(random), false)
}

// Value returns cos(theta)/pi, or MinDensity below the surface
func (c Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.normal)
	if cosine <= 0 {
		return MinDensity
	}
	return cosine / math.Pi
}
