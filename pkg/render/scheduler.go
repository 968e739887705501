package render

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// tonemappingInterval bounds how often the scheduler will hand out a
// Tonemap task, grounded on original_source/TaskScheduler.h's
// tonemappingInterval.
const tonemappingInterval = 10 * time.Second

// Scheduler hands out work across a fixed pool of worker goroutines,
// multiplexing them over a larger pool of TraceUnits and PlotUnits,
// grounded on original_source/TaskScheduler.h/.cpp. A single mutex
// guards all scheduling decisions; the actual tracing, plotting,
// gathering and tonemapping happen outside the lock.
type Scheduler struct {
	mu sync.Mutex

	// RunID identifies one render run, so log lines and the viewer's
	// /healthz endpoint can be correlated across a restart.
	RunID uuid.UUID

	traceUnits []*TraceUnit
	plotUnits  []*PlotUnit
	gather     *GatherUnit
	tonemap    *TonemapUnit

	availableTraceUnits []int
	doneTraceUnits      []int

	availablePlotUnits []int
	donePlotUnits      []int

	gatherUnitAvailable  bool
	tonemapUnitAvailable bool

	imageChanged    bool
	lastTonemapTime time.Time
}

// NewScheduler builds a scheduler for a canvas of the given size, with
// numberOfThreads driving how many trace and plot units are provisioned:
// three trace units and half a plot unit per worker thread, both floored
// at 1, matching the original's "more trace units than threads, fewer
// plot units is fine" reasoning — one plot unit can absorb several done
// trace units at once.
func NewScheduler(scene Scene, numberOfThreads, width, height int, seed int64) *Scheduler {
	numberOfTraceUnits := max(1, numberOfThreads*3)
	numberOfPlotUnits := max(1, numberOfThreads/2)

	aspectRatio := float64(width) / float64(height)

	traceUnits := make([]*TraceUnit, numberOfTraceUnits)
	nextSeed := seed
	for i := range traceUnits {
		traceUnits[i] = NewTraceUnit(scene, nextSeed, aspectRatio)
		nextSeed = traceUnits[i].NextSeed()
	}

	plotUnits := make([]*PlotUnit, numberOfPlotUnits)
	for i := range plotUnits {
		plotUnits[i] = NewPlotUnit(width, height)
	}

	s := &Scheduler{
		RunID:                uuid.New(),
		traceUnits:           traceUnits,
		plotUnits:            plotUnits,
		gather:               NewGatherUnit(width, height),
		tonemap:              NewTonemapUnit(width, height),
		gatherUnitAvailable:  true,
		tonemapUnitAvailable: true,
		imageChanged:         false,
		lastTonemapTime:      time.Now().Add(-tonemappingInterval),
	}

	for i := range traceUnits {
		s.availableTraceUnits = append(s.availableTraceUnits, i)
	}
	for i := range plotUnits {
		s.availablePlotUnits = append(s.availablePlotUnits, i)
	}

	return s
}

// TraceUnit returns the trace unit with the given index, for a worker to
// act on after receiving a TaskTrace or TaskPlot task.
func (s *Scheduler) TraceUnit(i int) *TraceUnit { return s.traceUnits[i] }

// PlotUnit returns the plot unit with the given index.
func (s *Scheduler) PlotUnit(i int) *PlotUnit { return s.plotUnits[i] }

// Gather returns the single gather unit.
func (s *Scheduler) Gather() *GatherUnit { return s.gather }

// Tonemap returns the single tonemap unit.
func (s *Scheduler) Tonemap() *TonemapUnit { return s.tonemap }

// GetNewTask reports completedTask as finished, frees the resources it
// held, and returns the next task a worker should perform. It is safe to
// call concurrently from every worker goroutine.
func (s *Scheduler) GetNewTask(completedTask Task) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completeTask(completedTask)

	now := time.Now()
	if now.Sub(s.lastTonemapTime) > tonemappingInterval {
		if s.imageChanged {
			if s.gatherUnitAvailable && s.tonemapUnitAvailable {
				return s.createTonemapTask()
			}
		} else if s.gatherUnitAvailable && len(s.donePlotUnits) > 0 {
			return s.createGatherTask()
		}
	}

	// If a substantial number of trace units is done, plot them first so
	// they can be recycled soon.
	if len(s.doneTraceUnits) > len(s.traceUnits)/2 && len(s.availablePlotUnits) > 0 {
		return s.createPlotTask()
	}

	if len(s.availableTraceUnits) > 0 {
		return s.createTraceTask()
	}

	if len(s.availablePlotUnits) > 0 && len(s.doneTraceUnits) > 0 {
		return s.createPlotTask()
	}

	if s.gatherUnitAvailable && len(s.donePlotUnits) > 0 {
		return s.createGatherTask()
	}

	return Task{Kind: TaskSleep}
}

func (s *Scheduler) createTraceTask() Task {
	unit := s.availableTraceUnits[0]
	s.availableTraceUnits = s.availableTraceUnits[1:]
	return Task{Kind: TaskTrace, Unit: unit}
}

func (s *Scheduler) createPlotTask() Task {
	unit := s.availablePlotUnits[0]
	s.availablePlotUnits = s.availablePlotUnits[1:]

	// Take around half of the trace units which are done for this task.
	done := len(s.doneTraceUnits)
	n := done
	if half := max(1, done/2); half < n {
		n = half
	}

	task := Task{Kind: TaskPlot, Unit: unit, OtherUnits: append([]int(nil), s.doneTraceUnits[:n]...)}
	s.doneTraceUnits = s.doneTraceUnits[n:]
	return task
}

func (s *Scheduler) createGatherTask() Task {
	s.gatherUnitAvailable = false
	task := Task{Kind: TaskGather, OtherUnits: s.donePlotUnits}
	s.donePlotUnits = nil
	return task
}

func (s *Scheduler) createTonemapTask() Task {
	// The gather unit must not be used during tonemapping, because the
	// tonemap unit reads from it.
	s.gatherUnitAvailable = false
	s.tonemapUnitAvailable = false
	return Task{Kind: TaskTonemap}
}

func (s *Scheduler) completeTask(t Task) {
	switch t.Kind {
	case TaskTrace:
		s.doneTraceUnits = append(s.doneTraceUnits, t.Unit)
	case TaskPlot:
		s.availableTraceUnits = append(s.availableTraceUnits, t.OtherUnits...)
		s.donePlotUnits = append(s.donePlotUnits, t.Unit)
	case TaskGather:
		s.availablePlotUnits = append(s.availablePlotUnits, t.OtherUnits...)
		s.gatherUnitAvailable = true
		s.imageChanged = true
	case TaskTonemap:
		s.gatherUnitAvailable = true
		s.tonemapUnitAvailable = true
		s.imageChanged = false
		s.lastTonemapTime = time.Now()
	case TaskSleep:
		// Consumes no resources.
	}
}
