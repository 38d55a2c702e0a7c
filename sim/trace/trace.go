package trace

// ExecutionTrace collects the ordered event timeline of one simulation run.
type ExecutionTrace struct {
	Events []Event
}

// NewExecutionTrace creates an ExecutionTrace ready for recording.
func NewExecutionTrace() *ExecutionTrace {
	return &ExecutionTrace{
		Events: make([]Event, 0),
	}
}

// RecordArrival appends an arrival event for pid.
func (et *ExecutionTrace) RecordArrival(tick int64, pid int) {
	et.Events = append(et.Events, Event{Time: tick, Kind: EventArrival, PID: PIDRef(pid)})
}

// RecordDispatch appends a dispatch decision event.
// target nil records a dispatch to idle.
func (et *ExecutionTrace) RecordDispatch(tick int64, target *int) {
	et.Events = append(et.Events, Event{Time: tick, Kind: EventDispatch, PID: target})
}

// RecordSwitch appends one overhead tick of an in-flight context switch.
// target nil records a switch toward idle.
func (et *ExecutionTrace) RecordSwitch(tick int64, target *int) {
	et.Events = append(et.Events, Event{Time: tick, Kind: EventSwitch, PID: target})
}

// RecordExec appends one tick of useful execution by pid.
func (et *ExecutionTrace) RecordExec(tick int64, pid int) {
	et.Events = append(et.Events, Event{Time: tick, Kind: EventExec, PID: PIDRef(pid)})
}

// RecordCompletion appends a completion event. The tick is the completion
// instant, one past the final exec tick of the process.
func (et *ExecutionTrace) RecordCompletion(tick int64, pid int) {
	et.Events = append(et.Events, Event{Time: tick, Kind: EventCompletion, PID: PIDRef(pid)})
}

// RecordIdle appends an idle tick.
func (et *ExecutionTrace) RecordIdle(tick int64) {
	et.Events = append(et.Events, Event{Time: tick, Kind: EventIdle})
}

// Len returns the number of recorded events.
func (et *ExecutionTrace) Len() int {
	return len(et.Events)
}
