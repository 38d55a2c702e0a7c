package sim

import (
	"fmt"
	"sort"
)

// RemainingTimes maps live pids to the number of CPU ticks each process
// still needs. The Engine owns the map and passes it to policies on every
// decision; policies must treat it as read-only. Completed processes are
// dropped, so a pid present here is always runnable.
type RemainingTimes map[int]int64

// SchedulerPolicy decides which process runs next.
// Called once per tick (when no context switch is in flight) with the ready
// queue, the currently running process (nil when the CPU is idle), the
// number of consecutive ticks the current process has run, and the live
// remaining-time ledger.
//
// Contract: the policy removes its choice from the queue before returning
// it, and re-enqueues a preempted current process at the back of the queue.
// Returning nil with an empty queue (or after re-enqueueing current) means
// the CPU goes idle. The Engine verifies the queue against the returned
// value after every call and aborts the run on any inconsistency.
// Implementations must not retain queue or process references across calls.
type SchedulerPolicy interface {
	SelectNext(rq *ReadyQueue, current *Process, currentRuntime int64, remaining RemainingTimes) *Process
}

// PolicyFactory builds a SchedulerPolicy. The quantum argument only
// matters for time-sliced policies; others ignore it.
type PolicyFactory func(quantum int64) (SchedulerPolicy, error)

// ValidPolicies is the set of built-in policy names.
// Shared by Validate() in the workload spec and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{"": true, "fcfs": true, "sjf": true, "stcf": true, "rr": true}

// policyFactories holds user-registered policies keyed by name.
// Sub-packages or embedding programs add entries via RegisterPolicy.
var policyFactories = map[string]PolicyFactory{}

// IsValidPolicy returns true if the given name is a built-in or registered policy.
func IsValidPolicy(name string) bool {
	if ValidPolicies[name] {
		return true
	}
	_, ok := policyFactories[name]
	return ok
}

// RegisterPolicy makes a user-supplied policy constructible by name through
// NewPolicy, the workload spec and the HTTP API. Built-in names are reserved.
func RegisterPolicy(name string, factory PolicyFactory) error {
	if name == "" {
		return fmt.Errorf("%w: policy name must not be empty", ErrBadConfig)
	}
	if ValidPolicies[name] {
		return fmt.Errorf("%w: policy name %q is reserved", ErrBadConfig, name)
	}
	if _, exists := policyFactories[name]; exists {
		return fmt.Errorf("%w: policy %q already registered", ErrBadConfig, name)
	}
	if factory == nil {
		return fmt.Errorf("%w: policy %q has nil factory", ErrBadConfig, name)
	}
	policyFactories[name] = factory
	return nil
}

// PolicyNames returns all constructible policy names in sorted order.
// The empty-string alias for fcfs is not listed.
func PolicyNames() []string {
	names := make([]string, 0, len(ValidPolicies)+len(policyFactories))
	for name := range ValidPolicies {
		if name != "" {
			names = append(names, name)
		}
	}
	for name := range policyFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustPolicy is NewPolicy for callers with a known-good name; it panics
// on any construction error.
func MustPolicy(name string, quantum int64) SchedulerPolicy {
	p, err := NewPolicy(name, quantum)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPolicy creates a SchedulerPolicy by name.
// Valid names: "fcfs" (default), "sjf", "stcf", "rr", plus anything added
// through RegisterPolicy. Empty string defaults to FCFS (for CLI flag
// default compatibility). The quantum is validated only for "rr".
func NewPolicy(name string, quantum int64) (SchedulerPolicy, error) {
	switch name {
	case "", "fcfs":
		return &FCFSPolicy{}, nil
	case "sjf":
		return &SJFPolicy{}, nil
	case "stcf":
		return &STCFPolicy{}, nil
	case "rr":
		if quantum < 1 {
			return nil, fmt.Errorf("%w: round-robin quantum must be >= 1, got %d", ErrBadConfig, quantum)
		}
		return &RoundRobinPolicy{Quantum: quantum}, nil
	default:
		if factory, ok := policyFactories[name]; ok {
			return factory(quantum)
		}
		return nil, fmt.Errorf("%w: unknown policy %q", ErrBadConfig, name)
	}
}
