package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/joshua-smart/FeO/pkg/core"
)

func TestPerspectiveCamera_CenterRay(t *testing.T) {
	origin := core.NewVec3(0, 0, 1)
	transform := core.FrameTransform(origin, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	camera := NewPerspectiveCamera(transform, 70*math.Pi/180, 0, 8)
	random := rand.New(rand.NewSource(1))

	ray := camera.GenerateRay(100, 50, 50, 25, random)
	if ray.Origin.Subtract(origin).Length() > 1e-9 {
		t.Errorf("Expected origin %v, got %v", origin, ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-9 {
		t.Errorf("Expected forward direction (0,1,0), got %v", ray.Direction)
	}
}

func TestPerspectiveCamera_Orientation(t *testing.T) {
	camera := NewPerspectiveCamera(core.Identity(), math.Pi/2, 0, 1)
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		col, row float64
		check    func(core.Vec3) bool
	}{
		{"left edge", 0, 50, func(d core.Vec3) bool { return d.X < 0 && math.Abs(d.X+d.Y) < 1e-9 }},
		{"right edge", 100, 50, func(d core.Vec3) bool { return d.X > 0 && math.Abs(d.X-d.Y) < 1e-9 }},
		{"top row", 50, 0, func(d core.Vec3) bool { return d.Z > 0 }},
		{"bottom row", 50, 100, func(d core.Vec3) bool { return d.Z < 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GenerateRay(100, 100, tt.col, tt.row, random)
			if !tt.check(ray.Direction) {
				t.Errorf("unexpected direction %v", ray.Direction)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-9 {
				t.Errorf("direction not normalized: %v", ray.Direction)
			}
		})
	}
}

func TestPerspectiveCamera_DepthOfField(t *testing.T) {
	camera := NewPerspectiveCamera(core.Identity(), math.Pi/3, 0.5, 4)
	random := rand.New(rand.NewSource(2))

	focus := core.NewVec3(0, 4, 0)
	for i := 0; i < 100; i++ {
		ray := camera.GenerateRay(10, 10, 5, 5, random)
		if ray.Origin.Length() > 0.25+1e-9 || ray.Origin.Y != 0 {
			t.Fatalf("lens sample %v outside the aperture", ray.Origin)
		}
		// Every ray through the pixel center passes through the focal point
		toFocus := focus.Subtract(ray.Origin).Normalize()
		if toFocus.Subtract(ray.Direction).Length() > 1e-9 {
			t.Fatalf("ray %+v misses the focal point", ray)
		}
	}
}
