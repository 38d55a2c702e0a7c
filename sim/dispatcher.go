// Implements the Dispatcher, which models context-switch latency.
// Every change of the running process (including to and from idle) costs
// a fixed number of pure-overhead ticks during which nothing executes.

package sim

// Dispatcher tracks an in-flight context switch. While a switch is active
// the Engine consumes one overhead tick per tick and consults no policy;
// when the countdown reaches zero the target process takes the CPU.
// A latency of zero means switches complete instantly and the Dispatcher
// is never armed.
type Dispatcher struct {
	Latency   int64    // Configured cost of one switch, in ticks
	ticksLeft int64    // Overhead ticks remaining in the active switch
	target    *Process // Process taking the CPU; nil for a switch to idle
	active    bool
}

func NewDispatcher(latency int64) *Dispatcher {
	return &Dispatcher{Latency: latency}
}

// Switching reports whether a context switch is in flight.
func (d *Dispatcher) Switching() bool {
	return d.active
}

// Begin arms a switch toward target (nil = idle). Must not be called with
// zero latency or while another switch is active; the Engine assigns
// instantly in the zero-latency case.
func (d *Dispatcher) Begin(target *Process) {
	if d.Latency <= 0 {
		panic("Dispatcher.Begin: latency is zero, assign directly")
	}
	if d.active {
		panic("Dispatcher.Begin: switch already in flight")
	}
	d.target = target
	d.ticksLeft = d.Latency
	d.active = true
}

// Tick consumes one overhead tick of the active switch and reports whether
// the switch completed. On completion the Dispatcher disarms itself; the
// caller takes the target via Target() before the next Begin.
func (d *Dispatcher) Tick() bool {
	if !d.active {
		panic("Dispatcher.Tick: no switch in flight")
	}
	d.ticksLeft--
	if d.ticksLeft <= 0 {
		d.active = false
		return true
	}
	return false
}

// Target returns the process the active (or just-completed) switch hands
// the CPU to. Nil when switching to idle.
func (d *Dispatcher) Target() *Process {
	return d.target
}
