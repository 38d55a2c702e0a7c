// Package api exposes the simulator over HTTP: a chi-routed JSON server
// and a small client for driving remote simulations.
package api

import (
	"github.com/schedsim/schedsim/sim"
)

// ProcessSpec is one workload entry in a SimulateRequest.
type ProcessSpec struct {
	PID     int   `json:"pid"`
	Burst   int64 `json:"burst"`
	Arrival int64 `json:"arrival"`
}

// SimulateRequest carries everything one run needs. Policy defaults to
// fcfs; quantum is only read by rr.
type SimulateRequest struct {
	Policy          string        `json:"policy,omitempty"`
	Quantum         int64         `json:"quantum,omitempty"`
	DispatchLatency int64         `json:"dispatch_latency,omitempty"`
	Processes       []ProcessSpec `json:"processes"`
}

// PoliciesResponse lists the policy names the server can resolve.
type PoliciesResponse struct {
	Policies []string `json:"policies"`
}

// ErrorResponse is the JSON body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// processes converts the wire entries into engine input.
func (r *SimulateRequest) processes() []*sim.Process {
	procs := make([]*sim.Process, 0, len(r.Processes))
	for _, p := range r.Processes {
		procs = append(procs, &sim.Process{PID: p.PID, Burst: p.Burst, Arrival: p.Arrival})
	}
	return procs
}
