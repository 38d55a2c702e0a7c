package sim

// RoundRobinPolicy shares the CPU in fixed time slices.
// The current process runs until it finishes or its quantum expires; on
// expiry it rejoins the back of the queue and the front process is
// dispatched. A process alone in the system is re-selected immediately,
// which the Engine treats as a continuation rather than a switch.
type RoundRobinPolicy struct {
	Quantum int64 // Ticks a process may run before rotation; always >= 1
}

func (r *RoundRobinPolicy) SelectNext(rq *ReadyQueue, current *Process, currentRuntime int64, _ RemainingTimes) *Process {
	if current != nil && currentRuntime < r.Quantum {
		return current
	}
	if current != nil {
		rq.Enqueue(current)
	}
	return rq.Dequeue()
}
