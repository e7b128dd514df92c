// Package material implements surface materials and the textures that
// drive their colors.
package material

import (
	"math"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/sampling"
)

// Lambertian represents a perfectly diffuse material. A positive
// emissivity turns it into an area light of the albedo's color.
type Lambertian struct {
	Albedo     core.Texture // Base color/reflectance (can be solid or textured)
	Emissivity float64
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Albedo: NewConstant(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewDiffuseLight creates an emissive lambertian material
func NewDiffuseLight(albedo core.Color, emissivity float64) *Lambertian {
	return &Lambertian{Albedo: NewConstant(albedo), Emissivity: emissivity}
}

// Emission returns albedo scaled by emissivity
func (l *Lambertian) Emission(hit core.Hit) core.Color {
	if l.Emissivity == 0 {
		return core.Black
	}
	return l.albedo(hit).Scale(l.Emissivity)
}

// Scatter always scatters diffusely around the surface normal
func (l *Lambertian) Scatter(hit core.Hit, incoming core.Vec3, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Specular:    false,
		Attenuation: l.albedo(hit),
		PDF:         sampling.NewCosine(hit.Normal),
	}, true
}

// Transmission returns albedo * cos(theta) / pi, zero below the surface
func (l *Lambertian) Transmission(hit core.Hit, incoming, outgoing core.Vec3) core.Color {
	cosine := hit.Normal.Dot(outgoing.Normalize())
	if cosine < 0 {
		cosine = 0
	}
	return l.albedo(hit).Scale(cosine / math.Pi)
}

func (l *Lambertian) albedo(hit core.Hit) core.Color {
	return l.Albedo.Value(hit.U, hit.V, hit.Point)
}
