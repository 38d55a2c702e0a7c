// Package viz renders simulation Results as text: a Gantt occupancy lane,
// a per-process summary table and a full trace audit. It consumes the
// Result contract only and never reaches back into engine state.
package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// ganttCellWidth is the number of characters drawn per simulated tick.
const ganttCellWidth = 3

const (
	switchLabel = "##"
	idleLabel   = "--"
)

// segment is a maximal run of ticks with the same CPU occupant.
type segment struct {
	Start int64
	End   int64 // exclusive
	Label string
}

// Gantt draws the CPU occupancy lane for one run: one cell per tick,
// contiguous ticks with the same occupant merged into a labelled segment,
// with a time ruler underneath marking each segment boundary.
func Gantt(w io.Writer, res *sim.Result) {
	fmt.Fprintf(w, "Gantt chart (policy: %s)\n", res.Policy)
	segs := occupancySegments(res.Trace)
	if len(segs) == 0 {
		fmt.Fprintln(w, "(no activity)")
		return
	}

	var lane, ruler strings.Builder
	lane.WriteString("|")
	ruler.WriteString("0")
	for _, s := range segs {
		width := int(s.End-s.Start) * ganttCellWidth
		lane.WriteString(center(s.Label, width))
		lane.WriteString("|")
		ruler.WriteString(fmt.Sprintf("%*d", width+1, s.End))
	}
	fmt.Fprintln(w, lane.String())
	fmt.Fprintln(w, ruler.String())
	fmt.Fprintf(w, "legend: Pn running process, %s context switch, %s idle\n",
		switchLabel, idleLabel)
}

// occupancySegments reduces the tick-ordered trace to merged CPU occupancy
// segments. Only exec, switch and idle events occupy the CPU; arrival,
// dispatch and completion markers carry no width.
func occupancySegments(events []trace.Event) []segment {
	var segs []segment
	for _, e := range events {
		var label string
		switch e.Kind {
		case trace.EventExec:
			label = fmt.Sprintf("P%d", *e.PID)
		case trace.EventSwitch:
			label = switchLabel
		case trace.EventIdle:
			label = idleLabel
		default:
			continue
		}
		if n := len(segs); n > 0 && segs[n-1].Label == label && segs[n-1].End == e.Time {
			segs[n-1].End = e.Time + 1
			continue
		}
		segs = append(segs, segment{Start: e.Time, End: e.Time + 1, Label: label})
	}
	return segs
}

// center pads s with spaces to the given width, truncating when it does
// not fit.
func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
