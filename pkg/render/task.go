package render

// TaskKind identifies which stage of the pipeline a Task drives, grounded
// on original_source/Task.h's TaskType enum.
type TaskKind int

const (
	// TaskSleep means there was no work available; the worker should
	// back off briefly and ask for a new task again.
	TaskSleep TaskKind = iota
	// TaskTrace traces a batch of camera rays into a TraceUnit.
	TaskTrace
	// TaskPlot plots one or more done TraceUnits into a PlotUnit.
	TaskPlot
	// TaskGather accumulates one or more done PlotUnits into the
	// GatherUnit.
	TaskGather
	// TaskTonemap converts the GatherUnit's tristimulus buffer to sRGB.
	TaskTonemap
)

func (k TaskKind) String() string {
	switch k {
	case TaskSleep:
		return "sleep"
	case TaskTrace:
		return "trace"
	case TaskPlot:
		return "plot"
	case TaskGather:
		return "gather"
	case TaskTonemap:
		return "tonemap"
	default:
		return "unknown"
	}
}

// Task describes one unit of work handed out by the Scheduler, grounded on
// original_source/Task.h.
type Task struct {
	Kind TaskKind

	// Unit is the index of the trace or plot unit this task should use,
	// for TaskTrace and TaskPlot.
	Unit int

	// OtherUnits holds, for TaskPlot, the indices of the trace units to
	// plot, and for TaskGather, the indices of the plot units to gather.
	OtherUnits []int
}
