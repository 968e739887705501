package render

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// WorkerPool runs a fixed number of goroutines that repeatedly ask a
// Scheduler for work and execute it, grounded on the worker-pool shape of
// df07-go-progressive-raytracer's pkg/renderer/worker_pool.go (Start/Stop,
// sync.WaitGroup), adapted from a tile-task channel to
// original_source/Raytracer.cpp's RunWorker pull loop: each worker reports
// its previous task as done and receives the next one in the same call.
// continueRendering is the single atomic in the system, mirroring the
// original's continueRendering bool checked by every worker thread.
type WorkerPool struct {
	scheduler  *Scheduler
	numWorkers int
	logger     Logger

	onTonemap func(*TonemapUnit)

	continueRendering atomic.Bool
	wg                sync.WaitGroup
}

// NewWorkerPool creates a pool of numWorkers goroutines driving scheduler.
// numWorkers <= 0 defaults to runtime.NumCPU(). onTonemap, if non-nil, is
// invoked every time a tonemap task completes, so a viewer can publish the
// freshly tonemapped frame.
func NewWorkerPool(scheduler *Scheduler, numWorkers int, logger Logger, onTonemap func(*TonemapUnit)) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		scheduler:  scheduler,
		numWorkers: numWorkers,
		logger:     logger,
		onTonemap:  onTonemap,
	}
}

// Start launches all worker goroutines. It returns immediately; call Stop
// to bring rendering to a halt.
func (wp *WorkerPool) Start() {
	wp.continueRendering.Store(true)
	wp.wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go wp.runWorker()
	}
}

// Stop signals every worker to finish its current task and return, then
// waits for them all to exit.
func (wp *WorkerPool) Stop() {
	wp.continueRendering.Store(false)
	wp.wg.Wait()
}

func (wp *WorkerPool) runWorker() {
	defer wp.wg.Done()

	completed := Task{Kind: TaskSleep}
	for wp.continueRendering.Load() {
		task := wp.scheduler.GetNewTask(completed)
		wp.execute(task)
		completed = task
	}
}

func (wp *WorkerPool) execute(task Task) {
	switch task.Kind {
	case TaskSleep:
		time.Sleep(100 * time.Millisecond)

	case TaskTrace:
		wp.scheduler.TraceUnit(task.Unit).Render()

	case TaskPlot:
		plot := wp.scheduler.PlotUnit(task.Unit)
		for _, traceIdx := range task.OtherUnits {
			plot.Plot(wp.scheduler.TraceUnit(traceIdx))
		}

	case TaskGather:
		gather := wp.scheduler.Gather()
		for _, plotIdx := range task.OtherUnits {
			gather.Accumulate(wp.scheduler.PlotUnit(plotIdx))
		}

	case TaskTonemap:
		tonemap := wp.scheduler.Tonemap()
		tonemap.Tonemap(wp.scheduler.Gather())
		if wp.onTonemap != nil {
			wp.onTonemap(tonemap)
		}
		if wp.logger != nil {
			wp.logger.Printf("tonemapped frame")
		}
	}
}
