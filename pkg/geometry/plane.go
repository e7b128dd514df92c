package geometry

import "github.com/joshua-smart/FeO/pkg/core"

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Unit normal
	Material int
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, materialID int) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: materialID,
	}
}

// Intersect tests if a ray intersects with the plane. Rays parallel to the
// plane never hit it.
func (p *Plane) Intersect(ray core.Ray) (core.Hit, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if denominator == 0 {
		return core.Hit{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !validDistance(t) {
		return core.Hit{}, false
	}

	point := ray.At(t)
	return core.Hit{
		Point:      point,
		Distance:   t,
		Normal:     faceNormal(ray, p.Normal),
		MaterialID: p.Material,
		U:          point.X,
		V:          point.Z,
	}, true
}

// Bounds is Full: a plane has no finite extent
func (p *Plane) Bounds() core.Bounds {
	return core.FullBounds()
}

// MaterialID returns the index of the plane's material
func (p *Plane) MaterialID() int {
	return p.Material
}
