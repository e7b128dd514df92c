package geometry

import (
	"math"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// PDFValue returns the solid angle density of Random for ray.Direction.
// Outside the sphere directions are drawn from the cone subtended by the
// sphere; inside, uniformly over all directions.
func (s *Sphere) PDFValue(ray core.Ray) float64 {
	if _, hit := s.Intersect(ray); !hit {
		return 0.0
	}

	distanceSquared := s.Center.Subtract(ray.Origin).LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distanceSquared)
	return 1.0 / (2.0 * math.Pi * (1.0 - cosThetaMax))
}

// Random samples a direction from origin toward the visible part of the sphere
func (s *Sphere) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	toCenter := s.Center.Subtract(origin)
	distanceSquared := toCenter.LengthSquared()

	// From inside every direction sees the sphere
	if distanceSquared <= s.Radius*s.Radius {
		return core.RandomUnitVector(random)
	}

	// Sample direction within the cone toward the sphere
	cosThetaMax := math.Sqrt(1.0 - s.Radius*s.Radius/distanceSquared)
	cosTheta := 1.0 - random.Float64()*(1.0-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * random.Float64()

	// The frame's first axis points at the center
	local := core.NewVec3(cosTheta, sinTheta*math.Cos(phi), sinTheta*math.Sin(phi))
	return core.FromIBasis(toCenter.Normalize()).Transform(local, false)
}
