// Implements the ReadyQueue, which holds all processes eligible to run.
// Processes are enqueued on arrival and re-enqueued on preemption.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of processes waiting for the CPU.
// In the simulator, this models the pool of arrived, not-yet-completed
// processes that are waiting for their next opportunity to be dispatched.
// Front-of-queue order is arrival order; preempted processes rejoin at
// the back with their remaining time intact.
type ReadyQueue struct {
	queue []*Process // FIFO queue of processes
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range rq.queue {
		sb.WriteString(fmt.Sprint(val.PID))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	front := rq.queue[0]
	rq.queue = rq.queue[1:]
	return front
}

// Remove deletes the process with the given pid from the queue, preserving
// the order of the remaining entries. Returns the removed process, or nil
// if no queued process has that pid. Policies use this to claim a process
// from the middle of the queue (SJF, STCF).
func (rq *ReadyQueue) Remove(pid int) *Process {
	for i, p := range rq.queue {
		if p.PID == pid {
			rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
			return p
		}
	}
	return nil
}

// Contains reports whether a process with the given pid is queued.
func (rq *ReadyQueue) Contains(pid int) bool {
	for _, p := range rq.queue {
		if p.PID == pid {
			return true
		}
	}
	return false
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it. Policies that need to take
// an entry use Remove() instead.
func (rq *ReadyQueue) Items() []*Process {
	return rq.queue
}

// PIDs returns a fresh slice of queued pids in queue order.
// Safe for callers to retain; the Engine snapshots the queue with this
// before and after each policy call to verify the selection contract.
func (rq *ReadyQueue) PIDs() []int {
	pids := make([]int, len(rq.queue))
	for i, p := range rq.queue {
		pids[i] = p.PID
	}
	return pids
}
