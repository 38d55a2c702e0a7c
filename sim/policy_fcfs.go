package sim

// FCFSPolicy runs processes to completion in arrival order.
// Non-preemptive: the current process keeps the CPU until it finishes.
// Queue order is arrival order (the Engine admits ties by ascending pid),
// so dispatching is a plain dequeue from the front.
type FCFSPolicy struct{}

func (f *FCFSPolicy) SelectNext(rq *ReadyQueue, current *Process, _ int64, _ RemainingTimes) *Process {
	if current != nil {
		return current
	}
	return rq.Dequeue()
}
