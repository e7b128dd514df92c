package renderer

import "time"

// WorkerStat records how one worker's image was produced
type WorkerStat struct {
	// The worker id.
	ID int

	// Samples taken for every pixel of this worker's image.
	SamplesPerPixel int

	// Render time for the worker's image.
	RenderTime time.Duration
}

// FrameStats summarises a rendered frame, returned by Render alongside the
// merged image.
type FrameStats struct {
	// Individual worker stats, ordered by id.
	Workers []WorkerStat

	// Samples per pixel across all workers.
	SamplesPerPixel int

	// Time spent merging worker images.
	MergeTime time.Duration

	// Total render time for entire frame.
	RenderTime time.Duration
}
