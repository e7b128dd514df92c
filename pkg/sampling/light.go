package sampling

import (
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Object samples directions from origin toward a single light
type Object struct {
	origin core.Vec3
	light  core.LightSource
}

// NewObject creates a sampler aimed at light from origin
func NewObject(origin core.Vec3, light core.LightSource) Object {
	return Object{origin: origin, light: light}
}

// Generate returns a direction toward a random point on the light
func (o Object) Generate(random *rand.Rand) core.Vec3 {
	return o.light.Random(o.origin, random)
}

// Value returns the light's solid angle density for direction
func (o Object) Value(direction core.Vec3) float64 {
	return o.light.PDFValue(core.NewRay(o.origin, direction))
}

// LightList samples uniformly among several lights. Generate picks one
// light at random; Value is the mean of every light's density, which is
// the density of that two-stage draw.
type LightList struct {
	origin core.Vec3
	lights []core.LightSource
}

// NewLightList creates a sampler over lights. lights must not be empty.
func NewLightList(origin core.Vec3, lights []core.LightSource) LightList {
	return LightList{origin: origin, lights: lights}
}

// Generate picks a light uniformly and samples a direction toward it
func (l LightList) Generate(random *rand.Rand) core.Vec3 {
	if len(l.lights) == 1 {
		return NewObject(l.origin, l.lights[0]).Generate(random)
	}
	light := l.lights[random.Intn(len(l.lights))]
	return light.Random(l.origin, random)
}

// Value averages the densities of all lights
func (l LightList) Value(direction core.Vec3) float64 {
	if len(l.lights) == 1 {
		return NewObject(l.origin, l.lights[0]).Value(direction)
	}
	ray := core.NewRay(l.origin, direction)
	sum := 0.0
	for _, light := range l.lights {
		sum += light.PDFValue(ray)
	}
	return sum / float64(len(l.lights))
}
