package sim

// SJFPolicy picks the queued process with the smallest total burst,
// breaking ties by ascending pid for determinism.
// Non-preemptive: the current process keeps the CPU until it finishes.
// Warning: SJF can starve long processes under a steady stream of short ones.
type SJFPolicy struct{}

func (s *SJFPolicy) SelectNext(rq *ReadyQueue, current *Process, _ int64, _ RemainingTimes) *Process {
	if current != nil {
		return current
	}
	var best *Process
	for _, p := range rq.Items() {
		if best == nil || p.Burst < best.Burst || (p.Burst == best.Burst && p.PID < best.PID) {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	return rq.Remove(best.PID)
}
