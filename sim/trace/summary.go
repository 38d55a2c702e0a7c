package trace

// TraceSummary aggregates tick statistics from an ExecutionTrace.
type TraceSummary struct {
	TotalEvents   int
	Counts        map[EventKind]int
	ExecTicks     int64 // ticks spent executing processes
	SwitchTicks   int64 // pure-overhead ticks spent context switching
	IdleTicks     int64 // ticks with nothing to run
	Dispatches    int   // policy decisions that changed the running process
	Completions   int
	PerProcessRun map[int]int64 // pid → exec ticks observed
}

// Summarize computes aggregate statistics from an ExecutionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *ExecutionTrace) *TraceSummary {
	summary := &TraceSummary{
		Counts:        make(map[EventKind]int),
		PerProcessRun: make(map[int]int64),
	}
	if et == nil {
		return summary
	}

	summary.TotalEvents = len(et.Events)
	for _, ev := range et.Events {
		summary.Counts[ev.Kind]++
		switch ev.Kind {
		case EventExec:
			summary.ExecTicks++
			if ev.PID != nil {
				summary.PerProcessRun[*ev.PID]++
			}
		case EventSwitch:
			summary.SwitchTicks++
		case EventIdle:
			summary.IdleTicks++
		case EventDispatch:
			summary.Dispatches++
		case EventCompletion:
			summary.Completions++
		}
	}

	return summary
}
