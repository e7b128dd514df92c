// Package renderer drives the per-pixel sampling of a scene across a pool
// of workers and merges their images.
package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/log"
)

var (
	ErrInvalidConfig = errors.New("renderer: invalid configuration")
	ErrNoImages      = errors.New("renderer: no images to merge")
	ErrSizeMismatch  = errors.New("renderer: image sizes differ")
)

var logger = log.New("renderer")

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Total rays per pixel across all workers
	Workers         int   // Number of parallel workers, 0 for one per CPU
	Seed            int64 // Worker w draws from the sequence seeded Seed+w
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          360,
		SamplesPerPixel: 16,
		Workers:         0,
		Seed:            1,
	}
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Render renders the scene seen by camera. Every worker renders a full
// image with SamplesPerPixel/Workers samples per pixel from its own random
// sequence; the images are merged once all workers are done. A panic in
// any worker aborts the render.
func Render(tracer Tracer, camera core.Camera, cfg Config) (*Image, FrameStats, error) {
	if err := cfg.validate(); err != nil {
		return nil, FrameStats{}, err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	perWorker := cfg.SamplesPerPixel / workers
	if perWorker < 1 {
		perWorker = 1
	}
	if dropped := cfg.SamplesPerPixel - perWorker*workers; dropped > 0 {
		logger.Warningf("%d samples per pixel do not divide across %d workers; rendering %d", cfg.SamplesPerPixel, workers, perWorker*workers)
	}

	logger.Infof("rendering %dx%d with %d workers at %d samples per pixel each", cfg.Width, cfg.Height, workers, perWorker)
	start := time.Now()

	pool := NewWorkerPool(NewRaytracer(tracer, camera, cfg.Width, cfg.Height), workers)
	pool.Start()
	for w := 0; w < workers; w++ {
		pool.SubmitTask(ImageTask{
			WorkerID:        w,
			SamplesPerPixel: perWorker,
			Seed:            cfg.Seed + int64(w),
		})
	}
	pool.Stop()

	// All workers have joined; the images are ours now
	results := make([]ImageResult, 0, workers)
	for result := range pool.Results() {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].WorkerID < results[j].WorkerID
	})

	stats := FrameStats{SamplesPerPixel: perWorker * workers}
	images := make([]*Image, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			return nil, FrameStats{}, result.Error
		}
		logger.Debugf("worker %d finished in %s", result.WorkerID, result.Stat.RenderTime)
		images = append(images, result.Image)
		stats.Workers = append(stats.Workers, result.Stat)
	}

	mergeStart := time.Now()
	merged, err := Merge(images)
	if err != nil {
		return nil, FrameStats{}, err
	}
	stats.MergeTime = time.Since(mergeStart)
	stats.RenderTime = time.Since(start)

	logger.Infof("frame rendered in %s", stats.RenderTime)
	return merged, stats, nil
}

// Merge averages images per pixel and channel. Identical inputs merge to
// the same image exactly.
func Merge(images []*Image) (*Image, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	width, height := images[0].Width, images[0].Height
	for _, img := range images[1:] {
		if img.Width != width || img.Height != height {
			return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrSizeMismatch, width, height, img.Width, img.Height)
		}
	}

	merged := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			merged.SetPixel(x, y, meanPixel(images, x, y))
		}
	}
	return merged, nil
}

// meanPixel uses a running mean, which stays exact when all values are equal
func meanPixel(images []*Image, x, y int) core.Color {
	var mean core.Color
	for i, img := range images {
		c := img.GetPixel(x, y)
		n := float64(i + 1)
		mean.R += (c.R - mean.R) / n
		mean.G += (c.G - mean.G) / n
		mean.B += (c.B - mean.B) / n
		mean.A += (c.A - mean.A) / n
	}
	return mean
}
