package core

import (
	"math"
	"math/rand"
)

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1.0 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Min returns the component-wise minimum of two vectors
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum of two vectors
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// Reflect mirrors the vector about the given unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * normal.Dot(v)))
}

// Axis returns the component for axis 0 (X), 1 (Y) or 2 (Z)
func (v Vec3) Axis(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("core: axis out of range")
}

// IsFinite reports whether every component is neither NaN nor infinite
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Transform applies the affine transform m. Translation is applied only
// when translate is set, so directions pass translate=false.
func (v Vec3) Transform(m Mat4, translate bool) Vec3 {
	return m.Transform(v, translate)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// RandomUnitVector returns a uniformly distributed direction using rejection sampling
func RandomUnitVector(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		lengthSquared := p.LengthSquared()
		if lengthSquared <= 1.0 && lengthSquared > 1e-160 {
			return p.Divide(math.Sqrt(lengthSquared))
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		// Accept if inside unit disk
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}

// RandomCosineDirection returns a cosine-weighted direction in a local frame
// whose X axis is the hemisphere axis. The X component is always > 0.
func RandomCosineDirection(random *rand.Rand) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	phi := 2.0 * math.Pi * r1
	x := math.Sqrt(1.0 - r2)
	y := math.Cos(phi) * math.Sqrt(r2)
	z := math.Sin(phi) * math.Sqrt(r2)

	return NewVec3(x, y, z)
}
