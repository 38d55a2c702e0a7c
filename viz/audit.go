package viz

import (
	"fmt"
	"io"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// Audit prints every trace event on its own line, in simulation order.
// Useful when a policy decision needs to be replayed tick by tick.
func Audit(w io.Writer, res *sim.Result) {
	fmt.Fprintf(w, "=== Trace Audit (policy: %s, %d events) ===\n", res.Policy, len(res.Trace))
	for _, e := range res.Trace {
		fmt.Fprintf(w, "%6d  %-10s %s\n", e.Time, e.Kind, eventTarget(e))
	}
}

func eventTarget(e trace.Event) string {
	if e.PID == nil {
		return "-"
	}
	return fmt.Sprintf("P%d", *e.PID)
}
