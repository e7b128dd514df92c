package scene

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/geometry"
	"github.com/joshua-smart/FeO/pkg/material"
	"github.com/joshua-smart/FeO/pkg/renderer"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// Preset is a scene built in code
type Preset struct {
	Name        string
	Description string
	Build       func(seed int64) (*Scene, error)
}

var presets = []Preset{
	{"cornell", "Ground plane, red sphere and a rectangular light", NewCornellScene},
	{"box", "Cornell box with a ceiling light and two spheres", NewBoxScene},
	{"empty", "No primitives, only the background", NewEmptyScene},
}

// Presets returns the built-in scenes
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Load builds a preset by name, or reads a JSON description when given a
// path ending in .json.
func Load(nameOrPath string, seed int64) (*Scene, error) {
	if strings.EqualFold(filepath.Ext(nameOrPath), ".json") {
		return LoadFile(nameOrPath, seed)
	}
	for _, p := range presets {
		if p.Name == nameOrPath {
			return p.Build(seed)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, nameOrPath)
}

func degrees(d float64) float64 {
	return d * math.Pi / 180
}

// NewCornellScene is a single sphere resting on a ground plane, lit by a
// small rectangle off to the left.
func NewCornellScene(seed int64) (*Scene, error) {
	materials := []core.Material{
		material.NewLambertian(core.NewColor(0.65, 0.05, 0.05)), // red
		material.NewLambertian(core.NewColor(0.73, 0.73, 0.73)), // white
		material.NewLambertian(core.NewColor(0.12, 0.45, 0.15)), // green
		material.NewDiffuseLight(core.White, 15),
	}

	light := geometry.NewYZRect(7, 0, 9, 2, -3, 3)
	primitives := []core.Primitive{
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1),
		geometry.NewSphere(core.NewVec3(0, 8, 1), 1, 0),
		light,
	}

	camera := renderer.NewPerspectiveCamera(
		core.FrameTransform(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)),
		degrees(70), 0, 8,
	)

	return New(Options{
		Name:       "cornell",
		Primitives: primitives,
		Materials:  materials,
		Lights:     []core.Primitive{light},
		Background: core.Black,
		MaxDepth:   3,
		Camera:     camera,
		Seed:       seed,
	})
}

// NewBoxScene creates the classic Cornell box. The box spans 0..555 on
// every axis with Z up; the camera looks in along +Y.
func NewBoxScene(seed int64) (*Scene, error) {
	const (
		red = iota
		white
		green
		light
		metal
	)
	materials := []core.Material{
		red:   material.NewLambertian(core.NewColor(0.65, 0.05, 0.05)),
		white: material.NewLambertian(core.NewColor(0.73, 0.73, 0.73)),
		green: material.NewLambertian(core.NewColor(0.12, 0.45, 0.15)),
		light: material.NewDiffuseLight(core.White, 15),
		metal: material.NewReflective(core.NewColor(0.8, 0.85, 0.88), 0),
	}

	boxSize := 555.0
	ceilingLight := geometry.NewXYRect(213, 227, 343, 332, boxSize-1, light)

	primitives := []core.Primitive{
		geometry.NewXYRect(0, 0, boxSize, boxSize, 0, white),       // floor
		geometry.NewXYRect(0, 0, boxSize, boxSize, boxSize, white), // ceiling
		geometry.NewXZRect(0, 0, boxSize, boxSize, boxSize, white), // back wall
		geometry.NewYZRect(0, 0, boxSize, boxSize, 0, red),
		geometry.NewYZRect(0, 0, boxSize, boxSize, boxSize, green),
		ceilingLight,
		geometry.NewSphere(core.NewVec3(185, 350, 90), 90, white),
		geometry.NewSphere(core.NewVec3(370, 200, 90), 90, metal),
	}

	camera := renderer.NewPerspectiveCamera(
		core.FrameTransform(core.NewVec3(278, -800, 278), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)),
		degrees(40), 0, 800,
	)

	return New(Options{
		Name:       "box",
		Primitives: primitives,
		Materials:  materials,
		Lights:     []core.Primitive{ceilingLight},
		Background: core.Black,
		MaxDepth:   8,
		Camera:     camera,
		Seed:       seed,
	})
}

// NewEmptyScene has nothing in it; every ray sees the sky colour
func NewEmptyScene(seed int64) (*Scene, error) {
	camera := renderer.NewPerspectiveCamera(
		core.FrameTransform(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)),
		degrees(60), 0, 1,
	)

	return New(Options{
		Name:       "empty",
		Background: core.NewColor(0.5, 0.7, 1.0),
		MaxDepth:   1,
		Camera:     camera,
		Seed:       seed,
	})
}
