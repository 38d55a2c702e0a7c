// Package sim provides the core discrete-time CPU scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: the Process input record and workload validation
//   - policy.go: the SchedulerPolicy decision contract and the policy registry
//   - engine.go: the tick loop (arrivals → decision → overhead/exec/idle)
//
// # Architecture
//
// The sim package owns all mutable run state; supporting concerns live in
// sub-packages and siblings:
//   - sim/trace/: pure-data event records collected during a run
//   - sim/workload/: scenario YAML loading and synthetic generation
//   - viz/: text rendering of Results (Gantt, summary, audit)
//   - api/: HTTP surface exposing simulations over REST
//
// # Key Interfaces
//
// The extension point is a single-method interface:
//   - SchedulerPolicy: pick the next process each tick, given the ready
//     queue, the running process, its consecutive runtime and the live
//     remaining-time ledger
//
// Built-ins cover fcfs, sjf, stcf and rr; user policies plug in through
// RegisterPolicy (by name) or NewEngineWithPolicy (by instance). The Engine
// validates every selection against the queue contract and aborts the run
// on a violation instead of repairing state.
package sim
