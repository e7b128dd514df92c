package sampling

import (
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Mixture combines two samplers with equal weight (balance heuristic)
type Mixture struct {
	A, B core.Sampler
}

// NewMixture creates a 50/50 mixture of a and b
func NewMixture(a, b core.Sampler) Mixture {
	return Mixture{A: a, B: b}
}

// Generate draws from A or B with equal probability
func (m Mixture) Generate(random *rand.Rand) core.Vec3 {
	if random.Float64() < 0.5 {
		return m.A.Generate(random)
	}
	return m.B.Generate(random)
}

// Value is the mean of both densities, whichever sampler produced direction
func (m Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.A.Value(direction) + 0.5*m.B.Value(direction)
}

// Delta always returns one direction. It backs specular scattering, where
// the estimator never divides by a density.
type Delta struct {
	Direction core.Vec3
}

// Generate returns the fixed direction
func (d Delta) Generate(random *rand.Rand) core.Vec3 {
	return d.Direction
}

// Value is zero: a delta distribution has no finite density
func (d Delta) Value(direction core.Vec3) float64 {
	return 0
}
