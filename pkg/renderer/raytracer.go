package renderer

import (
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Tracer estimates the radiance arriving along a ray. Implementations must
// be safe for concurrent use with distinct random generators.
type Tracer interface {
	Trace(ray core.Ray, depth int, random *rand.Rand) core.Color
}

// Raytracer renders complete images for a single worker
type Raytracer struct {
	tracer Tracer
	camera core.Camera
	width  int
	height int
}

// NewRaytracer creates a new raytracer
func NewRaytracer(tracer Tracer, camera core.Camera, width, height int) *Raytracer {
	return &Raytracer{
		tracer: tracer,
		camera: camera,
		width:  width,
		height: height,
	}
}

// RenderImage estimates every pixel from samplesPerPixel jittered rays
func (rt *Raytracer) RenderImage(samplesPerPixel int, random *rand.Rand) *Image {
	img := NewImage(rt.width, rt.height)
	for y := 0; y < rt.height; y++ {
		for x := 0; x < rt.width; x++ {
			img.SetPixel(x, y, rt.samplePixel(x, y, samplesPerPixel, random))
		}
	}
	return img
}

// samplePixel averages samples rays through random points inside the pixel
func (rt *Raytracer) samplePixel(x, y, samples int, random *rand.Rand) core.Color {
	accum := core.Black
	for s := 0; s < samples; s++ {
		col := float64(x) + random.Float64()
		row := float64(y) + random.Float64()
		ray := rt.camera.GenerateRay(rt.width, rt.height, col, row, random)
		accum = accum.Add(rt.tracer.Trace(ray, 0, random))
	}
	return accum.Divide(float64(samples))
}
