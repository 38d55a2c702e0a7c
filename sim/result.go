// Defines the immutable output of one simulation run: per-process records,
// aggregate metrics and the structured trace. The JSON field names are the
// contract consumed by the visualizer, the CLI --json output and the HTTP API.

package sim

import (
	"github.com/schedsim/schedsim/sim/trace"
)

// ProcessResult captures the final timing of one completed process.
// Invariants: Turnaround == Completion - Arrival == Burst + Waiting.
type ProcessResult struct {
	PID        int   `json:"pid"`
	Arrival    int64 `json:"arrival_time"`
	Burst      int64 `json:"burst_time"`
	Completion int64 `json:"completion"`
	Turnaround int64 `json:"turnaround"`
	Waiting    int64 `json:"waiting"`
	Response   int64 `json:"response"` // first exec tick minus arrival
}

// Aggregate holds run-wide metrics derived once the simulation terminates.
// Utilization counts switch overhead as busy; efficiency does not, so
// efficiency < utilization exactly when any context switch occurred.
type Aggregate struct {
	AvgWaiting         float64 `json:"avg_waiting_time"`
	AvgTurnaround      float64 `json:"avg_turnaround_time"`
	AvgResponse        float64 `json:"avg_response_time"`
	CPUUtilization     float64 `json:"cpu_utilization"`
	HardwareEfficiency float64 `json:"hardware_efficiency"`
	Throughput         float64 `json:"throughput"` // completions per tick
}

// Result is the full outcome of a run. Processes are listed in completion
// order; the trace is ordered by tick and, within a tick, by phase.
type Result struct {
	Policy        string          `json:"policy"`
	Processes     []ProcessResult `json:"individual_results"`
	Averages      Aggregate       `json:"averages"`
	TotalTime     int64           `json:"total_time"`
	BusyTicks     int64           `json:"busy_ticks"`
	IdleTicks     int64           `json:"idle_ticks"`
	OverheadTicks int64           `json:"overhead_ticks"`
	Trace         []trace.Event   `json:"structured_trace"`
}
