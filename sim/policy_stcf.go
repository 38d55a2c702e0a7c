package sim

// STCFPolicy (Shortest Time-to-Completion First) picks the process with the
// least remaining work across the ready queue and the current process,
// breaking ties by ascending pid. Preemptive: a newly arrived process with
// less remaining work (or equal work and a smaller pid) displaces the
// current one, which rejoins the back of the queue with its remaining
// time intact.
type STCFPolicy struct{}

func (s *STCFPolicy) SelectNext(rq *ReadyQueue, current *Process, _ int64, remaining RemainingTimes) *Process {
	best := current
	for _, p := range rq.Items() {
		if best == nil || remaining[p.PID] < remaining[best.PID] ||
			(remaining[p.PID] == remaining[best.PID] && p.PID < best.PID) {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	if current != nil && best.PID == current.PID {
		return current
	}
	chosen := rq.Remove(best.PID)
	if current != nil {
		rq.Enqueue(current)
	}
	return chosen
}
