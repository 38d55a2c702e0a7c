// Package trace provides tick-event recording for scheduling analysis.
// This package has no dependencies on sim/, it stores pure data types.
package trace

// EventKind classifies what happened on the CPU during one tick.
type EventKind string

const (
	// EventArrival marks a process entering the ready queue.
	EventArrival EventKind = "arrival"
	// EventDispatch marks the policy selecting a new process (or idle).
	EventDispatch EventKind = "dispatch"
	// EventSwitch marks one pure-overhead tick of an in-flight context switch.
	EventSwitch EventKind = "switch"
	// EventExec marks one tick of useful execution.
	EventExec EventKind = "exec"
	// EventCompletion marks a process finishing; its time is the completion
	// instant, one past the final exec tick.
	EventCompletion EventKind = "completion"
	// EventIdle marks a tick with nothing to run and no switch in flight.
	EventIdle EventKind = "idle"
)

// validEventKinds maps accepted event kind strings.
var validEventKinds = map[EventKind]bool{
	EventArrival:    true,
	EventDispatch:   true,
	EventSwitch:     true,
	EventExec:       true,
	EventCompletion: true,
	EventIdle:       true,
}

// IsValidEventKind returns true if the given kind string is a recognized event kind.
func IsValidEventKind(kind string) bool {
	return validEventKinds[EventKind(kind)]
}

// Event captures a single simulation occurrence.
// PID is nil for idle ticks and for dispatch/switch events whose target is
// idle. Events are appended in simulation order, so Time never decreases.
type Event struct {
	Time int64     `json:"time"`
	Kind EventKind `json:"event_type"`
	PID  *int      `json:"pid,omitempty"`
}

// PIDRef returns a pointer to pid, for building Events in literals.
func PIDRef(pid int) *int {
	return &pid
}
