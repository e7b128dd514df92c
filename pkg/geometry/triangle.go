package geometry

import (
	"math"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	Material   int
	normal     core.Vec3   // Cached unit normal from the winding order
	bounds     core.Bounds // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, materialID int) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: materialID,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bounds:   core.NewBoundingBoxFromPoints(v0, v1, v2),
	}
}

// Intersect tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Intersect(ray core.Ray) (core.Hit, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a == 0 {
		return core.Hit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Hit{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Hit{}, false
	}

	distance := f * edge2.Dot(q)
	if !validDistance(distance) {
		return core.Hit{}, false
	}

	return core.Hit{
		Point:      ray.At(distance),
		Distance:   distance,
		Normal:     faceNormal(ray, t.normal),
		MaterialID: t.Material,
		U:          u,
		V:          v,
	}, true
}

// Bounds returns the axis-aligned bounding box for this triangle
func (t *Triangle) Bounds() core.Bounds {
	return t.bounds
}

// MaterialID returns the index of the triangle's material
func (t *Triangle) MaterialID() int {
	return t.Material
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Area returns the surface area of the triangle
func (t *Triangle) Area() float64 {
	return 0.5 * t.V1.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Length()
}

// PDFValue converts the uniform area density of Random to solid angle
func (t *Triangle) PDFValue(ray core.Ray) float64 {
	hit, ok := t.Intersect(ray)
	if !ok {
		return 0.0
	}
	return areaToSolidAngle(ray, hit, t.Area())
}

// Random returns a direction from origin to a uniformly chosen point on the triangle
func (t *Triangle) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	r1 := math.Sqrt(random.Float64())
	r2 := random.Float64()
	point := t.V0.Multiply(1 - r1).
		Add(t.V1.Multiply(r1 * (1 - r2))).
		Add(t.V2.Multiply(r1 * r2))
	return point.Subtract(origin)
}
