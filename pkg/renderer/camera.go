package renderer

import (
	"math"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// PerspectiveCamera is a pinhole or thin-lens camera. In camera space it
// looks along +Y with +X to the right and +Z up; Transform places it in
// the world.
type PerspectiveCamera struct {
	Transform  core.Mat4
	tanHalfFov float64
	Aperture   float64 // Lens diameter, 0 for a pinhole
	FocalDepth float64 // Distance to the plane in focus
}

// NewPerspectiveCamera creates a camera with a horizontal field of view in radians
func NewPerspectiveCamera(transform core.Mat4, fieldOfView, aperture, focalDepth float64) *PerspectiveCamera {
	return &PerspectiveCamera{
		Transform:  transform,
		tanHalfFov: math.Tan(fieldOfView / 2),
		Aperture:   aperture,
		FocalDepth: focalDepth,
	}
}

// GenerateRay returns the ray through image position (col, row). Row 0 is
// the top of the image. Safe for concurrent use: all randomness comes
// from the caller's generator.
func (c *PerspectiveCamera) GenerateRay(width, height int, col, row float64, random *rand.Rand) core.Ray {
	aspectRatio := float64(height) / float64(width)

	var offset core.Vec3
	if c.Aperture > 0 {
		disk := core.RandomInUnitDisk(random).Multiply(c.Aperture / 2)
		// The lens lies in the camera's XZ plane
		offset = core.NewVec3(disk.X, 0, disk.Y)
	}

	x := ((col/float64(width))*2 - 1) * c.tanHalfFov * c.FocalDepth
	z := ((row/float64(height))*2 - 1) * c.tanHalfFov * c.FocalDepth * aspectRatio

	target := core.NewVec3(x, c.FocalDepth, -z)
	ray := core.NewRay(offset, target.Subtract(offset).Normalize())
	return ray.Transform(c.Transform, true)
}
