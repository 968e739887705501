package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_FirstTaskIsTrace(t *testing.T) {
	s := NewScheduler(nil, 1, 4, 4, 1)
	task := s.GetNewTask(Task{Kind: TaskSleep})
	assert.Equal(t, TaskTrace, task.Kind)
}

func TestScheduler_DoneTraceUnitsEventuallyRecycleThroughPlot(t *testing.T) {
	s := NewScheduler(nil, 1, 4, 4, 1)
	require.Equal(t, 3, len(s.traceUnits))
	require.Equal(t, 1, len(s.plotUnits))

	// Drain every trace unit.
	var lastTask Task
	traced := 0
	for traced < len(s.traceUnits) {
		task := s.GetNewTask(lastTask)
		if task.Kind == TaskTrace {
			traced++
		}
		lastTask = task
	}

	// Force the scheduler past the tonemapping-interval gate so it takes
	// the ordinary recycling path rather than racing to gather/tonemap.
	s.mu.Lock()
	s.lastTonemapTime = time.Now()
	s.mu.Unlock()

	task := s.GetNewTask(lastTask)
	require.Equal(t, TaskPlot, task.Kind, "a substantial number of done trace units should trigger plotting")
	assert.NotEmpty(t, task.OtherUnits)

	plotTask := task
	task = s.GetNewTask(plotTask)

	// The trace units that were plotted must be available again.
	s.mu.Lock()
	recycled := len(s.availableTraceUnits)
	s.mu.Unlock()
	assert.Greater(t, recycled, 0)
}

func TestScheduler_SleepWhenNothingIsAvailable(t *testing.T) {
	s := NewScheduler(nil, 1, 4, 4, 1)

	s.mu.Lock()
	s.availableTraceUnits = nil
	s.availablePlotUnits = nil
	s.doneTraceUnits = nil
	s.donePlotUnits = nil
	s.gatherUnitAvailable = false
	s.lastTonemapTime = time.Now()
	s.mu.Unlock()

	task := s.GetNewTask(Task{Kind: TaskSleep})
	assert.Equal(t, TaskSleep, task.Kind)
}
