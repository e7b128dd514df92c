package geometry

import (
	"math"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialID int) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: materialID,
	}
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (core.Hit, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 || a == 0 {
		return core.Hit{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first, then the far one for rays
	// starting inside the sphere or leaving its inner surface
	root := (-halfB - sqrtD) / a
	if !validDistance(root) || root <= core.HitEpsilon {
		root = (-halfB + sqrtD) / a
		if !validDistance(root) {
			return core.Hit{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Divide(s.Radius)
	u, v := sphereUV(outwardNormal)

	return core.Hit{
		Point:      point,
		Distance:   root,
		Normal:     faceNormal(ray, outwardNormal),
		MaterialID: s.Material,
		U:          u,
		V:          v,
	}, true
}

// sphereUV maps a point on the unit sphere to longitude/latitude in [0,1]
func sphereUV(p core.Vec3) (float64, float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() core.Bounds {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewBoundingBox(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// MaterialID returns the index of the sphere's material
func (s *Sphere) MaterialID() int {
	return s.Material
}
