// Defines the Process struct that models a single unit of work in the simulation.
// Carries the static workload inputs; mutable run state (remaining time,
// consecutive runtime) is tracked by the Engine, never on the Process itself.

package sim

import (
	"fmt"
)

// Process models one schedulable unit of work.
// Each process has:
// - a unique pid
// - a total CPU demand in ticks (burst)
// - an arrival tick at which it becomes eligible to run
type Process struct {
	PID     int   // Unique identifier, also the deterministic tie-breaker
	Burst   int64 // Total CPU ticks the process needs
	Arrival int64 // Tick at which the process enters the system
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Burst: %d, Arrival: %d)", p.PID, p.Burst, p.Arrival)
}

// ValidateWorkload checks that a process set is simulatable.
// Rejects empty workloads, duplicate pids, non-positive bursts and
// negative arrival times. All failures wrap ErrInvalidWorkload.
func ValidateWorkload(procs []*Process) error {
	if len(procs) == 0 {
		return fmt.Errorf("%w: no processes", ErrInvalidWorkload)
	}
	seen := make(map[int]bool, len(procs))
	for i, p := range procs {
		if p == nil {
			return fmt.Errorf("%w: process[%d] is nil", ErrInvalidWorkload, i)
		}
		if seen[p.PID] {
			return fmt.Errorf("%w: duplicate pid %d", ErrInvalidWorkload, p.PID)
		}
		seen[p.PID] = true
		if p.Burst <= 0 {
			return fmt.Errorf("%w: pid %d has non-positive burst %d", ErrInvalidWorkload, p.PID, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: pid %d has negative arrival %d", ErrInvalidWorkload, p.PID, p.Arrival)
		}
	}
	return nil
}
