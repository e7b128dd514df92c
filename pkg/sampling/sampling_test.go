package sampling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/joshua-smart/FeO/pkg/core"
)

// constSampler is a sampler with fixed output, for testing compositions
type constSampler struct {
	dir     core.Vec3
	density func(core.Vec3) float64
}

func (c constSampler) Generate(random *rand.Rand) core.Vec3 { return c.dir }
func (c constSampler) Value(d core.Vec3) float64            { return c.density(d) }

// MockLight is a light that always returns the same direction and density
type MockLight struct {
	direction core.Vec3
	pdf       float64
	calls     int
}

func (m *MockLight) Intersect(ray core.Ray) (core.Hit, bool) { return core.Hit{}, false }
func (m *MockLight) Bounds() core.Bounds                     { return core.FullBounds() }
func (m *MockLight) MaterialID() int                         { return 0 }
func (m *MockLight) PDFValue(ray core.Ray) float64           { return m.pdf }
func (m *MockLight) Random(origin core.Vec3, random *rand.Rand) core.Vec3 {
	m.calls++
	return m.direction
}

// cosineNormals covers every axis direction, since the sampler's frame is
// built differently when the normal is close to Y.
var cosineNormals = []struct {
	name   string
	normal core.Vec3
}{
	{"+X", core.NewVec3(1, 0, 0)},
	{"-X", core.NewVec3(-1, 0, 0)},
	{"+Y", core.NewVec3(0, 1, 0)},
	{"-Y", core.NewVec3(0, -1, 0)},
	{"+Z", core.NewVec3(0, 0, 1)},
	{"-Z", core.NewVec3(0, 0, -1)},
	{"oblique", core.NewVec3(1, 1, 1).Normalize()},
}

func TestCosine_GeneratedDirections(t *testing.T) {
	for _, tt := range cosineNormals {
		t.Run(tt.name, func(t *testing.T) {
			sampler := NewCosine(tt.normal)
			random := rand.New(rand.NewSource(1))

			for i := 0; i < 1000; i++ {
				d := sampler.Generate(random)
				if math.Abs(d.Length()-1) > 1e-9 {
					t.Fatalf("draw %d: direction %v is not unit length", i, d)
				}
				if d.Dot(tt.normal) <= 0 {
					t.Fatalf("draw %d: direction %v below the surface", i, d)
				}
				if v := sampler.Value(d); !(v > 0) {
					t.Fatalf("draw %d: density %f not positive", i, v)
				}
			}
		})
	}
}

func TestCosine_Value(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	sampler := NewCosine(normal)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"along normal", core.NewVec3(0, 0, 1), 1 / math.Pi},
		{"unnormalized", core.NewVec3(0, 0, 5), 1 / math.Pi},
		{"45 degrees", core.NewVec3(1, 0, 1), math.Sqrt2 / 2 / math.Pi},
		{"tangent", core.NewVec3(1, 0, 0), MinDensity},
		{"below", core.NewVec3(0, 0, -1), MinDensity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sampler.Value(tt.direction); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Value() = %g, want %g", got, tt.expected)
			}
		})
	}
}

func TestCosine_MeanCosine(t *testing.T) {
	// E[cos] under a cos/pi density is 2/3
	for _, tt := range cosineNormals {
		t.Run(tt.name, func(t *testing.T) {
			sampler := NewCosine(tt.normal)
			random := rand.New(rand.NewSource(2))

			const n = 50000
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += sampler.Generate(random).Normalize().Dot(tt.normal)
			}
			if mean := sum / n; math.Abs(mean-2.0/3.0) > 0.01 {
				t.Errorf("mean cosine %f, want ~0.667", mean)
			}
		})
	}
}

func TestMixture_DensityLaw(t *testing.T) {
	a := NewCosine(core.NewVec3(0, 1, 0))
	b := constSampler{density: func(d core.Vec3) float64 { return 0.1 + math.Abs(d.X)*3.7 }}
	m := NewMixture(a, b)
	random := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		d := core.RandomUnitVector(random)
		if got, want := m.Value(d), 0.5*a.Value(d)+0.5*b.Value(d); got != want {
			t.Fatalf("Value(%v) = %v, want exactly %v", d, got, want)
		}
	}
}

func TestMixture_GenerateSplitsEvenly(t *testing.T) {
	left := core.NewVec3(-1, 0, 0)
	right := core.NewVec3(1, 0, 0)
	m := NewMixture(constSampler{dir: left}, constSampler{dir: right})
	random := rand.New(rand.NewSource(4))

	const n = 10000
	lefts := 0
	for i := 0; i < n; i++ {
		if m.Generate(random) == left {
			lefts++
		}
	}
	if frac := float64(lefts) / n; math.Abs(frac-0.5) > 0.03 {
		t.Errorf("fraction from A = %f, want ~0.5", frac)
	}
}

func TestLightList(t *testing.T) {
	a := &MockLight{direction: core.NewVec3(1, 0, 0), pdf: 2}
	b := &MockLight{direction: core.NewVec3(0, 1, 0), pdf: 4}
	origin := core.NewVec3(0, 0, 0)

	single := NewLightList(origin, []core.LightSource{a})
	if got := single.Value(core.NewVec3(0, 0, 1)); got != 2 {
		t.Errorf("single light Value() = %f, want 2", got)
	}

	// A single light draws exactly like an Object sampler on the same stream
	r1, r2 := rand.New(rand.NewSource(6)), rand.New(rand.NewSource(6))
	if single.Generate(r1) != NewObject(origin, a).Generate(r2) || r1.Int63() != r2.Int63() {
		t.Error("single light list must delegate to its light without picking one")
	}
	a.calls = 0

	list := NewLightList(origin, []core.LightSource{a, b})
	if got := list.Value(core.NewVec3(0, 0, 1)); got != 3 {
		t.Errorf("Value() = %f, want mean 3", got)
	}

	random := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		list.Generate(random)
	}
	if a.calls < 400 || b.calls < 400 {
		t.Errorf("uneven light choice: %d vs %d", a.calls, b.calls)
	}

	obj := NewObject(origin, b)
	if obj.Generate(random) != b.direction || obj.Value(b.direction) != 4 {
		t.Error("Object sampler must delegate to its light")
	}
}
