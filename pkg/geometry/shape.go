// Package geometry implements the primitives a scene is built from.
package geometry

import (
	"math"

	"github.com/joshua-smart/FeO/pkg/core"
)

// faceNormal orients the outward normal against the incoming ray so that
// scattering always happens on the side the ray arrived from
func faceNormal(ray core.Ray, outwardNormal core.Vec3) core.Vec3 {
	if ray.Direction.Dot(outwardNormal) > 0 {
		return outwardNormal.Negate()
	}
	return outwardNormal
}

// validDistance rejects non-positive, NaN and infinite ray parameters
func validDistance(t float64) bool {
	return t > 0 && !math.IsInf(t, 1)
}
