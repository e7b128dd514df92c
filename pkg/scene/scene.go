// Package scene holds the renderable scene and the path tracing estimator
// that evaluates it.
package scene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/log"
	"github.com/joshua-smart/FeO/pkg/sampling"
)

var (
	ErrMaterialOutOfRange = errors.New("scene: material id out of range")
	ErrNotLightSource     = errors.New("scene: light cannot be sampled")
	ErrInvalidMaxDepth    = errors.New("scene: max depth must not be negative")
)

var logger = log.New("scene")

// Options describes a scene before construction
type Options struct {
	Name       string
	Primitives []core.Primitive
	Materials  []core.Material  // Indexed by Primitive.MaterialID
	Lights     []core.Primitive // Sampled for direct lighting; must implement core.LightSource
	Background core.Color
	MaxDepth   int
	Camera     core.Camera
	Seed       int64 // Seeds the random split axes of the BVH
}

// Scene is an immutable set of primitives, materials and lights. It is
// safe to share between render workers once built.
type Scene struct {
	name       string
	bvh        *core.BVH
	primitives int
	materials  []core.Material
	lights     []core.LightSource
	background core.Color
	maxDepth   int
	camera     core.Camera
}

// New validates the options and builds the BVH
func New(opts Options) (*Scene, error) {
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxDepth, opts.MaxDepth)
	}

	for i, p := range opts.Primitives {
		if id := p.MaterialID(); id < 0 || id >= len(opts.Materials) {
			return nil, fmt.Errorf("%w: primitive %d uses material %d of %d", ErrMaterialOutOfRange, i, id, len(opts.Materials))
		}
	}

	lights := make([]core.LightSource, 0, len(opts.Lights))
	for i, l := range opts.Lights {
		light, ok := l.(core.LightSource)
		if !ok {
			return nil, fmt.Errorf("%w: light %d is a %T", ErrNotLightSource, i, l)
		}
		lights = append(lights, light)
	}

	bvh := core.NewBVH(opts.Primitives, rand.New(rand.NewSource(opts.Seed)))
	stats := bvh.Stats()
	logger.Debugf("built BVH for %q: %d nodes, depth %d", opts.Name, stats.TotalNodes, stats.MaxDepth)

	background := opts.Background
	background.A = 1

	return &Scene{
		name:       opts.Name,
		bvh:        bvh,
		primitives: len(opts.Primitives),
		materials:  opts.Materials,
		lights:     lights,
		background: background,
		maxDepth:   opts.MaxDepth,
		camera:     opts.Camera,
	}, nil
}

// Camera returns the camera the scene was described with, if any
func (s *Scene) Camera() core.Camera {
	return s.camera
}

// WithMaxDepth returns a copy of the scene that cuts paths off at maxDepth.
// The BVH and materials are shared.
func (s *Scene) WithMaxDepth(maxDepth int) (*Scene, error) {
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxDepth, maxDepth)
	}
	c := *s
	c.maxDepth = maxDepth
	return &c, nil
}

// Name returns the scene name
func (s *Scene) Name() string {
	return s.name
}

// Trace estimates the radiance arriving along ray, starting at bounce
// depth. Paths are cut off at the scene's max depth with zero radiance.
//
// Each bounce contributes emitted + transmitted * incoming / density, where
// the outgoing direction is drawn from an even mixture of light sampling
// and the material's own distribution. The recursion is unrolled into a
// running throughput.
func (s *Scene) Trace(ray core.Ray, depth int, random *rand.Rand) core.Color {
	radiance := core.Black
	throughput := core.White

	for ; depth < s.maxDepth; depth++ {
		// Nothing further along the path can contribute
		if throughput.IsBlack() {
			return radiance
		}

		hit, ok := s.bvh.Intersect(ray)
		if !ok {
			return radiance.Add(throughput.MultiplyColor(s.background))
		}

		// An out of range id is a construction bug and panics here
		material := s.materials[hit.MaterialID]
		radiance = radiance.Add(throughput.MultiplyColor(material.Emission(hit)))

		scatter, ok := material.Scatter(hit, ray.Direction, random)
		if !ok {
			return radiance
		}

		if scatter.Specular {
			// Delta distributions carry no density
			throughput = throughput.MultiplyColor(scatter.Attenuation)
			ray = core.NewRay(hit.Point, scatter.PDF.Generate(random))
			continue
		}

		sampler := s.sampler(hit, scatter)
		outgoing := sampler.Generate(random).Normalize()
		density := sampler.Value(outgoing)
		if density == 0 {
			return radiance
		}

		transmitted := material.Transmission(hit, ray.Direction, outgoing)
		throughput = throughput.MultiplyColor(transmitted).Divide(density)
		ray = core.NewRay(hit.Point, outgoing)
	}

	return radiance
}

// sampler builds the outgoing direction distribution for a diffuse bounce
func (s *Scene) sampler(hit core.Hit, scatter core.ScatterResult) core.Sampler {
	var surface core.Sampler = sampling.NewCosine(hit.Normal)
	if scatter.PDF != nil {
		surface = scatter.PDF
	}
	if len(s.lights) == 0 {
		return surface
	}
	return sampling.NewMixture(sampling.NewLightList(hit.Point, s.lights), surface)
}

// Info summarises a scene
type Info struct {
	Name       string
	Primitives int
	Materials  int
	Lights     int
	MaxDepth   int
	Background core.Color
	BVH        core.BVHStats
}

// Info returns counts and BVH statistics for the scene
func (s *Scene) Info() Info {
	return Info{
		Name:       s.name,
		Primitives: s.primitives,
		Materials:  len(s.materials),
		Lights:     len(s.lights),
		MaxDepth:   s.maxDepth,
		Background: s.background,
		BVH:        s.bvh.Stats(),
	}
}
