package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4x4 affine transform. Storage is the column-major mgl64 layout;
// At and Set address it by (row, col).
type Mat4 mgl64.Mat4

// Identity returns the identity transform
func Identity() Mat4 {
	return Mat4(mgl64.Ident4())
}

// At returns the element at the given row and column
func (m Mat4) At(row, col int) float64 {
	return mgl64.Mat4(m).At(row, col)
}

// Set returns a copy of m with the element at (row, col) replaced
func (m Mat4) Set(row, col int, value float64) Mat4 {
	mm := mgl64.Mat4(m)
	mm.Set(row, col, value)
	return Mat4(mm)
}

// Mul composes two transforms; the result applies other first.
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4(mgl64.Mat4(m).Mul4(mgl64.Mat4(other)))
}

// Transform applies the transform to v as a point (translate=true) or as a
// direction (translate=false).
func (m Mat4) Transform(v Vec3, translate bool) Vec3 {
	w := 0.0
	if translate {
		w = 1.0
	}
	out := mgl64.Mat4(m).Mul4x1(mgl64.Vec4{v.X, v.Y, v.Z, w})
	return Vec3{out[0], out[1], out[2]}
}

// FromBasis builds a transform whose columns are the basis vectors i, j, k.
func FromBasis(i, j, k Vec3) Mat4 {
	return Mat4(mgl64.Mat4FromCols(
		mgl64.Vec4{i.X, i.Y, i.Z, 0},
		mgl64.Vec4{j.X, j.Y, j.Z, 0},
		mgl64.Vec4{k.X, k.Y, k.Z, 0},
		mgl64.Vec4{0, 0, 0, 1},
	))
}

// FromIBasis builds an orthonormal frame whose first axis is the unit
// vector i. Transforming (1,0,0) with the result yields i.
func FromIBasis(i Vec3) Mat4 {
	// The helper must not be parallel to i, including when i points down.
	helper := NewVec3(0, 1, 0)
	if math.Abs(i.Y) > 0.999 {
		helper = NewVec3(-1, 0, 0)
	}
	k := i.Cross(helper).Normalize()
	j := k.Cross(i)
	return FromBasis(i, j, k)
}

// FrameTransform builds an orthonormal frame located at origin. The i axis
// keeps the direction of iBasis; jBasis only fixes the plane of the frame.
func FrameTransform(origin, iBasis, jBasis Vec3) Mat4 {
	ih := iBasis.Normalize()
	kh := ih.Cross(jBasis).Normalize()
	jh := kh.Cross(ih)
	return Mat4(mgl64.Mat4FromCols(
		mgl64.Vec4{ih.X, ih.Y, ih.Z, 0},
		mgl64.Vec4{jh.X, jh.Y, jh.Z, 0},
		mgl64.Vec4{kh.X, kh.Y, kh.Z, 0},
		mgl64.Vec4{origin.X, origin.Y, origin.Z, 1},
	))
}
