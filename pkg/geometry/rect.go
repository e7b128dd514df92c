package geometry

import (
	"math"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// rectThickness pads the bounding box of a rectangle so it is never flat
const rectThickness = 1e-5

// Rect is an axis-aligned rectangle lying in the plane where coordinate
// Axis equals K. The rectangle spans [A0,A1] x [B0,B1] on the other two
// axes, taken in X, Y, Z order.
type Rect struct {
	Axis     int
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material int
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, y0, x1, y1, k float64, materialID int) *Rect {
	return newRect(2, x0, y0, x1, y1, k, materialID)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, z0, x1, z1, k float64, materialID int) *Rect {
	return newRect(1, x0, z0, x1, z1, k, materialID)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, z0, y1, z1, k float64, materialID int) *Rect {
	return newRect(0, y0, z0, y1, z1, k, materialID)
}

func newRect(axis int, a0, b0, a1, b1, k float64, materialID int) *Rect {
	return &Rect{
		Axis:     axis,
		A0:       math.Min(a0, a1),
		A1:       math.Max(a0, a1),
		B0:       math.Min(b0, b1),
		B1:       math.Max(b0, b1),
		K:        k,
		Material: materialID,
	}
}

// axes returns the two in-plane axes
func (r *Rect) axes() (int, int) {
	switch r.Axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}

// normal returns the +axis unit normal
func (r *Rect) normal() core.Vec3 {
	switch r.Axis {
	case 0:
		return core.NewVec3(1, 0, 0)
	case 1:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// point builds a world position from in-plane coordinates
func (r *Rect) point(a, b float64) core.Vec3 {
	switch r.Axis {
	case 0:
		return core.NewVec3(r.K, a, b)
	case 1:
		return core.NewVec3(a, r.K, b)
	default:
		return core.NewVec3(a, b, r.K)
	}
}

// Area returns the surface area of the rectangle
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// Intersect tests if a ray intersects with the rectangle
func (r *Rect) Intersect(ray core.Ray) (core.Hit, bool) {
	t := (r.K - ray.Origin.Axis(r.Axis)) / ray.Direction.Axis(r.Axis)
	if !validDistance(t) {
		return core.Hit{}, false
	}

	aAxis, bAxis := r.axes()
	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return core.Hit{}, false
	}

	return core.Hit{
		Point:      r.point(a, b),
		Distance:   t,
		Normal:     faceNormal(ray, r.normal()),
		MaterialID: r.Material,
		U:          (a - r.A0) / (r.A1 - r.A0),
		V:          (b - r.B0) / (r.B1 - r.B0),
	}, true
}

// Bounds returns a box around the rectangle padded along its normal
func (r *Rect) Bounds() core.Bounds {
	return core.NewBoundingBox(
		r.point(r.A0, r.B0).Subtract(r.normal().Multiply(rectThickness)),
		r.point(r.A1, r.B1).Add(r.normal().Multiply(rectThickness)),
	)
}

// MaterialID returns the index of the rectangle's material
func (r *Rect) MaterialID() int {
	return r.Material
}

// PDFValue converts the uniform area density of Random to solid angle
func (r *Rect) PDFValue(ray core.Ray) float64 {
	hit, ok := r.Intersect(ray)
	if !ok {
		return 0.0
	}
	return areaToSolidAngle(ray, hit, r.Area())
}

// Random returns a direction from origin to a uniformly chosen point on the rectangle
func (r *Rect) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	a := r.A0 + random.Float64()*(r.A1-r.A0)
	b := r.B0 + random.Float64()*(r.B1-r.B0)
	return r.point(a, b).Subtract(origin)
}

// areaToSolidAngle returns dist²/(|cos|·area) for a hit on a uniformly
// sampled surface
func areaToSolidAngle(ray core.Ray, hit core.Hit, area float64) float64 {
	length := ray.Direction.Length()
	distanceSquared := hit.Distance * hit.Distance * length * length
	cosine := math.Abs(ray.Direction.Dot(hit.Normal)) / length
	if cosine == 0 || area == 0 {
		return 0.0
	}
	return distanceSquared / (cosine * area)
}
