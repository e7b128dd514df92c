package renderer

import (
	"errors"
	"math/rand"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/joshua-smart/FeO/pkg/core"
)

// constTracer returns the same color for every ray
type constTracer struct {
	color core.Color
	calls int64
}

func (c *constTracer) Trace(ray core.Ray, depth int, random *rand.Rand) core.Color {
	atomic.AddInt64(&c.calls, 1)
	return c.color
}

// noisyTracer returns a random gray level
type noisyTracer struct{}

func (noisyTracer) Trace(ray core.Ray, depth int, random *rand.Rand) core.Color {
	v := random.Float64()
	return core.NewColor(v, v, v)
}

// panicTracer fails for every ray
type panicTracer struct{}

func (panicTracer) Trace(ray core.Ray, depth int, random *rand.Rand) core.Color {
	panic("material index out of range")
}

func testCamera() core.Camera {
	return NewPerspectiveCamera(core.Identity(), 1.2, 0, 1)
}

func TestRender_ConstantTracer(t *testing.T) {
	background := core.NewColor(0.2, 0.4, 0.6)
	tracer := &constTracer{color: background}
	cfg := Config{Width: 8, Height: 6, SamplesPerPixel: 8, Workers: 4, Seed: 3}

	img, stats, err := Render(tracer, testCamera(), cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := background.Pack()
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if got := img.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}

	if len(stats.Workers) != 4 || stats.SamplesPerPixel != 8 {
		t.Errorf("unexpected stats %+v", stats)
	}
	for i, w := range stats.Workers {
		if w.ID != i || w.SamplesPerPixel != 2 {
			t.Errorf("worker stat %d = %+v", i, w)
		}
	}
	if tracer.calls != 8*6*8 {
		t.Errorf("expected %d traces, got %d", 8*6*8, tracer.calls)
	}
}

func TestRender_MoreWorkersThanSamples(t *testing.T) {
	tracer := &constTracer{color: core.White}
	cfg := Config{Width: 2, Height: 2, SamplesPerPixel: 2, Workers: 5, Seed: 1}

	_, stats, err := Render(tracer, testCamera(), cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Every worker takes at least one sample
	if stats.SamplesPerPixel != 5 {
		t.Errorf("expected 5 samples per pixel, got %d", stats.SamplesPerPixel)
	}
}

func TestRender_Deterministic(t *testing.T) {
	cfg := Config{Width: 5, Height: 4, SamplesPerPixel: 6, Workers: 3, Seed: 42}

	a, _, err := Render(noisyTracer{}, testCamera(), cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, _, err := Render(noisyTracer{}, testCamera(), cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("pixel %d differs between runs with the same seed", i)
		}
	}
}

func TestRender_WorkerPanicAborts(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, SamplesPerPixel: 2, Workers: 2}

	img, _, err := Render(panicTracer{}, testCamera(), cfg)
	if err == nil {
		t.Fatal("Expected error from panicking worker")
	}
	if img != nil {
		t.Error("Expected no image after an aborted render")
	}
	if !strings.Contains(err.Error(), "material index out of range") {
		t.Errorf("error %q should carry the panic value", err)
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Width: 0, Height: 1, SamplesPerPixel: 1}},
		{"negative height", Config{Width: 1, Height: -1, SamplesPerPixel: 1}},
		{"no samples", Config{Width: 1, Height: 1, SamplesPerPixel: 0}},
		{"negative workers", Config{Width: 1, Height: 1, SamplesPerPixel: 1, Workers: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Render(&constTracer{}, testCamera(), tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Render() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMerge_ConstantImages(t *testing.T) {
	colors := []core.Color{
		core.NewColor(0.2, 0.4, 0.6),
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(1, 0, 0.3),
		{R: 0.5, G: 0.5, B: 0.5, A: 0.25},
	}

	for _, c := range colors {
		for _, n := range []int{1, 2, 3, 7, 16} {
			images := make([]*Image, n)
			for i := range images {
				images[i] = NewImage(3, 2)
				for y := 0; y < 2; y++ {
					for x := 0; x < 3; x++ {
						images[i].SetPixel(x, y, c)
					}
				}
			}

			merged, err := Merge(images)
			if err != nil {
				t.Fatalf("Merge() error = %v", err)
			}
			for i, p := range merged.Pixels {
				if p != images[0].Pixels[i] {
					t.Fatalf("color %v, %d images: pixel %d = %#08x, want %#08x", c, n, i, p, images[0].Pixels[i])
				}
			}
		}
	}
}

func TestMerge_Mean(t *testing.T) {
	a := NewImage(1, 1)
	b := NewImage(1, 1)
	a.SetPixel(0, 0, core.NewColor(0, 0, 0))
	b.SetPixel(0, 0, core.NewColor(1, 1, 1))

	merged, err := Merge([]*Image{a, b})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	// mean of 0 and 1 in linear space is 0.5, gamma encoded as sqrt(0.5)
	if got := merged.Pixel(0, 0); got != 0xb4b4b4ff {
		t.Errorf("merged pixel = %#08x, want 0xb4b4b4ff", got)
	}
}

func TestMerge_Errors(t *testing.T) {
	if _, err := Merge(nil); !errors.Is(err, ErrNoImages) {
		t.Errorf("Merge(nil) error = %v, want ErrNoImages", err)
	}
	if _, err := Merge([]*Image{NewImage(2, 2), NewImage(2, 3)}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Merge() error = %v, want ErrSizeMismatch", err)
	}
}
