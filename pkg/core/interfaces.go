package core

import "math/rand"

// Primitive is anything a ray can hit
type Primitive interface {
	// Intersect returns the hit along the ray, if any. Distances must be
	// finite and positive.
	Intersect(ray Ray) (Hit, bool)
	Bounds() Bounds
	// MaterialID indexes the scene material table
	MaterialID() int
}

// LightSource is a primitive that can be sampled for direct lighting
type LightSource interface {
	Primitive
	// PDFValue returns the solid angle density of sampling ray.Direction
	// from ray.Origin toward this light
	PDFValue(ray Ray) float64
	// Random returns a direction from origin toward a random point on the light
	Random(origin Vec3, random *rand.Rand) Vec3
}

// Sampler is a distribution over directions
type Sampler interface {
	Generate(random *rand.Rand) Vec3
	Value(direction Vec3) float64
}

// ScatterResult describes a scatter event at a surface
type ScatterResult struct {
	Specular    bool    // Delta distribution; PDF values are meaningless
	Attenuation Color   // Surface albedo for this event
	PDF         Sampler // Distribution of outgoing directions
}

// Material defines how light interacts with a surface
type Material interface {
	Emission(hit Hit) Color
	// Scatter returns false for pure absorbers
	Scatter(hit Hit, incoming Vec3, random *rand.Rand) (ScatterResult, bool)
	// Transmission is the BRDF times cosine for the direction pair
	Transmission(hit Hit, incoming, outgoing Vec3) Color
}

// Texture maps surface coordinates to a color
type Texture interface {
	Value(u, v float64, point Vec3) Color
}

// Camera generates primary rays. Implementations must be safe for
// concurrent use.
type Camera interface {
	GenerateRay(width, height int, col, row float64, random *rand.Rand) Ray
}
