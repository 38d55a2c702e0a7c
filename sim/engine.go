// sim/engine.go
package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Config holds the parameters of one simulation run.
type Config struct {
	Policy          string // Policy name; empty defaults to fcfs
	Quantum         int64  // Round-robin quantum; ignored by other policies
	DispatchLatency int64  // Pure-overhead ticks per change of running process
}

// starvationMargin pads the hard tick bound beyond any legitimate schedule
// so degenerate-but-legal user policies are not cut short.
const starvationMargin = 1024

// Engine is the core object that holds simulation time, system state, and the tick loop.
// Each tick runs four phases in fixed order: admit arrivals, consult the
// policy (unless a switch is in flight), execute one tick of switch
// overhead / process work / idleness, then advance the clock. The loop is
// single-goroutine and free of wall-clock or randomness: identical inputs
// produce identical Results.
type Engine struct {
	Clock int64
	// Queue holds arrived, not-running, not-completed processes
	Queue *ReadyQueue
	// Trace accumulates the ordered event timeline of the run
	Trace *trace.ExecutionTrace

	cfg    Config
	policy SchedulerPolicy
	// incoming holds not-yet-arrived processes, sorted by (arrival, pid)
	incoming []*Process
	// remaining maps live pids to ticks of work left; completed pids are dropped
	remaining RemainingTimes
	current   *Process // running process; nil while idle or mid-switch
	runtime   int64    // consecutive exec ticks of current since its dispatch
	dispatch  *Dispatcher
	firstRun  map[int]int64 // pid → tick of first exec, for response time
	// results collects completed processes in completion order
	results       []ProcessResult
	busyTicks     int64
	idleTicks     int64
	overheadTicks int64
	// maxTicks is the hard bound; a clock past it means the policy starved the workload
	maxTicks int64
	ran      bool
}

// NewEngine builds an Engine resolving cfg.Policy by name.
// Returns ErrBadConfig for unknown policies, a non-positive rr quantum or a
// negative dispatch latency, and ErrInvalidWorkload for bad process sets.
func NewEngine(cfg Config, procs []*Process) (*Engine, error) {
	if cfg.Policy == "" {
		cfg.Policy = "fcfs"
	}
	policy, err := NewPolicy(cfg.Policy, cfg.Quantum)
	if err != nil {
		return nil, err
	}
	return NewEngineWithPolicy(cfg, policy, procs)
}

// NewEngineWithPolicy builds an Engine around an already-constructed policy.
// This is the injection point for user-supplied SchedulerPolicy implementations
// that are not registered by name.
func NewEngineWithPolicy(cfg Config, policy SchedulerPolicy, procs []*Process) (*Engine, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: nil policy", ErrBadConfig)
	}
	if cfg.DispatchLatency < 0 {
		return nil, fmt.Errorf("%w: dispatch latency must be non-negative, got %d", ErrBadConfig, cfg.DispatchLatency)
	}
	if err := ValidateWorkload(procs); err != nil {
		return nil, err
	}

	incoming := make([]*Process, len(procs))
	copy(incoming, procs)
	sort.SliceStable(incoming, func(i, j int) bool {
		if incoming[i].Arrival != incoming[j].Arrival {
			return incoming[i].Arrival < incoming[j].Arrival
		}
		return incoming[i].PID < incoming[j].PID
	})

	remaining := make(RemainingTimes, len(incoming))
	var totalBurst, latestArrival int64
	for _, p := range incoming {
		remaining[p.PID] = p.Burst
		totalBurst += p.Burst
		if p.Arrival > latestArrival {
			latestArrival = p.Arrival
		}
	}

	return &Engine{
		Queue:     &ReadyQueue{},
		Trace:     trace.NewExecutionTrace(),
		cfg:       cfg,
		policy:    policy,
		incoming:  incoming,
		remaining: remaining,
		dispatch:  NewDispatcher(cfg.DispatchLatency),
		firstRun:  make(map[int]int64, len(incoming)),
		results:   make([]ProcessResult, 0, len(incoming)),
		maxTicks:  latestArrival + (totalBurst+int64(len(incoming)))*(cfg.DispatchLatency+1) + starvationMargin,
	}, nil
}

// Run drives the tick loop to completion and returns the immutable Result.
// It must be called at most once per Engine.
func (e *Engine) Run() (*Result, error) {
	if e.ran {
		return nil, fmt.Errorf("engine already ran; build a new one per simulation")
	}
	e.ran = true
	logrus.Infof("Starting simulation: policy=%s dispatch_latency=%d processes=%d",
		e.cfg.Policy, e.cfg.DispatchLatency, len(e.incoming))

	for len(e.incoming) > 0 || e.Queue.Len() > 0 || e.current != nil || e.dispatch.Switching() {
		if e.Clock > e.maxTicks {
			logrus.Errorf("[tick %07d] %d processes still unfinished past tick bound %d",
				e.Clock, len(e.remaining), e.maxTicks)
			return nil, fmt.Errorf("%w: %d processes unfinished after %d ticks under policy %q",
				ErrStarvation, len(e.remaining), e.maxTicks, e.cfg.Policy)
		}

		// Phase 1: arrivals are admitted before any decision, so a process
		// arriving at tick t is schedulable at tick t, even mid-switch.
		e.admitArrivals()

		// Phase 2: no decision while a switch is in flight.
		if !e.dispatch.Switching() {
			if err := e.decide(); err != nil {
				return nil, err
			}
		}

		// Phase 3: exactly one of overhead, execution or idleness per tick.
		switch {
		case e.dispatch.Switching():
			target := e.dispatch.Target()
			e.Trace.RecordSwitch(e.Clock, pidRef(target))
			e.overheadTicks++
			logrus.Debugf("[tick %07d] context switch in progress (target=%s)", e.Clock, pidLabel(target))
			if e.dispatch.Tick() {
				e.current = e.dispatch.Target()
				e.runtime = 0
			}
		case e.current != nil:
			e.execTick()
		default:
			e.Trace.RecordIdle(e.Clock)
			e.idleTicks++
			logrus.Debugf("[tick %07d] cpu idle", e.Clock)
		}

		e.Clock++
	}

	logrus.Infof("[tick %07d] Simulation ended", e.Clock)
	return e.buildResult(), nil
}

// admitArrivals moves every process with Arrival <= Clock from incoming to
// the ready queue, in (arrival, pid) order.
func (e *Engine) admitArrivals() {
	for len(e.incoming) > 0 && e.incoming[0].Arrival <= e.Clock {
		p := e.incoming[0]
		e.incoming = e.incoming[1:]
		e.Queue.Enqueue(p)
		e.Trace.RecordArrival(e.Clock, p.PID)
		logrus.Debugf("[tick %07d] pid %d arrived (burst=%d)", e.Clock, p.PID, p.Burst)
	}
}

// decide consults the policy and, when its choice differs from the current
// process, starts a context switch (or assigns instantly at zero latency).
// Selecting the current process again is a continuation: the runtime
// counter keeps growing and no overhead is paid.
func (e *Engine) decide() error {
	before := e.Queue.PIDs()
	chosen := e.policy.SelectNext(e.Queue, e.current, e.runtime, e.remaining)
	if err := e.checkSelection(before, chosen); err != nil {
		logrus.Errorf("[tick %07d] %v", e.Clock, err)
		return err
	}
	if samePID(chosen, e.current) {
		return nil
	}

	e.Trace.RecordDispatch(e.Clock, pidRef(chosen))
	logrus.Debugf("[tick %07d] dispatch %s -> %s", e.Clock, pidLabel(e.current), pidLabel(chosen))

	if e.cfg.DispatchLatency == 0 {
		e.current = chosen
		e.runtime = 0
		return nil
	}
	e.dispatch.Begin(chosen)
	e.current = nil
	e.runtime = 0
	return nil
}

// checkSelection verifies the policy honored the selection contract.
// The queue may be freely reordered, but its membership must equal the
// pre-call membership minus the chosen process plus a displaced current.
// The Engine never repairs a broken queue: a violation aborts the run.
func (e *Engine) checkSelection(before []int, chosen *Process) error {
	after := e.Queue.PIDs()

	if chosen != nil {
		if _, live := e.remaining[chosen.PID]; !live {
			return fmt.Errorf("%w: policy returned unknown or completed pid %d", ErrPolicyViolation, chosen.PID)
		}
		if !containsPID(before, chosen.PID) && !samePID(chosen, e.current) {
			return fmt.Errorf("%w: policy returned pid %d which was neither queued nor running", ErrPolicyViolation, chosen.PID)
		}
		if containsPID(after, chosen.PID) {
			return fmt.Errorf("%w: policy returned pid %d but left it in the ready queue", ErrPolicyViolation, chosen.PID)
		}
	}

	expected := make(map[int]int, len(before)+1)
	for _, pid := range before {
		expected[pid]++
	}
	if chosen != nil && containsPID(before, chosen.PID) {
		expected[chosen.PID]--
		if expected[chosen.PID] == 0 {
			delete(expected, chosen.PID)
		}
	}
	if e.current != nil && !samePID(chosen, e.current) {
		// A displaced current process must have been re-enqueued.
		expected[e.current.PID]++
	}

	got := make(map[int]int, len(after))
	for _, pid := range after {
		got[pid]++
	}
	for pid, n := range got {
		if expected[pid] != n {
			return fmt.Errorf("%w: ready queue corrupted at pid %d (%d entries, want %d)",
				ErrPolicyViolation, pid, n, expected[pid])
		}
	}
	for pid, n := range expected {
		if got[pid] != n {
			return fmt.Errorf("%w: pid %d missing from the ready queue after selection",
				ErrPolicyViolation, pid)
		}
	}
	return nil
}

// execTick burns one tick of the current process and retires it when its
// remaining time hits zero.
func (e *Engine) execTick() {
	pid := e.current.PID
	if _, ok := e.firstRun[pid]; !ok {
		e.firstRun[pid] = e.Clock
	}
	e.Trace.RecordExec(e.Clock, pid)
	e.busyTicks++
	e.remaining[pid]--
	e.runtime++
	logrus.Debugf("[tick %07d] exec pid %d (remaining=%d, runtime=%d)", e.Clock, pid, e.remaining[pid], e.runtime)
	if e.remaining[pid] == 0 {
		e.complete(e.current)
	}
}

// complete retires a finished process. The completion instant is one past
// its final exec tick, so a process dispatched the tick it arrives has
// turnaround exactly equal to its burst.
func (e *Engine) complete(p *Process) {
	completion := e.Clock + 1
	delete(e.remaining, p.PID)
	e.current = nil
	e.runtime = 0
	e.Trace.RecordCompletion(completion, p.PID)

	turnaround := completion - p.Arrival
	e.results = append(e.results, ProcessResult{
		PID:        p.PID,
		Arrival:    p.Arrival,
		Burst:      p.Burst,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
		Response:   e.firstRun[p.PID] - p.Arrival,
	})
	logrus.Debugf("[tick %07d] pid %d completed (turnaround=%d)", e.Clock, p.PID, turnaround)
}

func (e *Engine) buildResult() *Result {
	return &Result{
		Policy:        e.cfg.Policy,
		Processes:     e.results,
		Averages:      BuildAggregate(e.results, e.Clock, e.idleTicks, e.overheadTicks),
		TotalTime:     e.Clock,
		BusyTicks:     e.busyTicks,
		IdleTicks:     e.idleTicks,
		OverheadTicks: e.overheadTicks,
		Trace:         e.Trace.Events,
	}
}

// samePID reports whether a and b denote the same process (or both idle).
func samePID(a, b *Process) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.PID == b.PID
}

func containsPID(pids []int, pid int) bool {
	for _, p := range pids {
		if p == pid {
			return true
		}
	}
	return false
}

func pidRef(p *Process) *int {
	if p == nil {
		return nil
	}
	return trace.PIDRef(p.PID)
}

func pidLabel(p *Process) string {
	if p == nil {
		return "idle"
	}
	return fmt.Sprintf("pid %d", p.PID)
}
