package sim

import "errors"

// Sentinel errors returned by workload validation and Engine.Run.
// Callers match with errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidWorkload indicates the input process set cannot be simulated
	// (duplicate pid, non-positive burst, negative arrival, empty workload).
	ErrInvalidWorkload = errors.New("invalid workload")

	// ErrBadConfig indicates an invalid engine configuration
	// (negative dispatch latency, round-robin quantum below 1).
	ErrBadConfig = errors.New("invalid simulation config")

	// ErrPolicyViolation indicates a scheduling policy broke the selection
	// contract: the engine detects the inconsistency and aborts rather than
	// repairing the ready queue.
	ErrPolicyViolation = errors.New("policy contract violation")

	// ErrStarvation indicates the simulation exceeded the hard tick bound
	// without completing all processes, i.e. the policy starved the workload.
	ErrStarvation = errors.New("starvation detected")
)
