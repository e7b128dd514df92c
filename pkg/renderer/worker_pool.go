package renderer

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// ImageTask asks a worker to render one complete image
type ImageTask struct {
	WorkerID        int
	SamplesPerPixel int
	Seed            int64
}

// ImageResult contains the image rendered for a task
type ImageResult struct {
	WorkerID int
	Image    *Image
	Stat     WorkerStat
	Error    error
}

// WorkerPool renders one image per worker in parallel
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan ImageTask
	resultQueue chan ImageResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// The raytracer is shared read-only by every worker.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan ImageTask, numWorkers),
		resultQueue: make(chan ImageResult, numWorkers),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop waits for all workers to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a task to the worker pool
func (wp *WorkerPool) SubmitTask(task ImageTask) {
	wp.taskQueue <- task
}

// Results returns the channel completed images are delivered on
func (wp *WorkerPool) Results() <-chan ImageResult {
	return wp.resultQueue
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.resultQueue <- wp.render(task)
	}
}

// render runs a single task, converting a panic into an error result
func (wp *WorkerPool) render(task ImageTask) (result ImageResult) {
	result.WorkerID = task.WorkerID
	defer func() {
		if r := recover(); r != nil {
			result.Image = nil
			result.Error = fmt.Errorf("renderer: panic in worker %d: %v", task.WorkerID, r)
		}
	}()

	start := time.Now()
	random := rand.New(rand.NewSource(task.Seed))
	result.Image = wp.raytracer.RenderImage(task.SamplesPerPixel, random)
	result.Stat = WorkerStat{
		ID:              task.WorkerID,
		SamplesPerPixel: task.SamplesPerPixel,
		RenderTime:      time.Since(start),
	}
	return result
}
