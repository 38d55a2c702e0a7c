package viz

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// Summary prints the per-process timing table followed by the aggregate
// metrics block for one run.
func Summary(w io.Writer, res *sim.Result) {
	fmt.Fprintf(w, "=== Simulation Summary (policy: %s) ===\n", res.Policy)

	rows := make([][]string, 0, len(res.Processes))
	for _, p := range res.Processes {
		rows = append(rows, []string{
			fmt.Sprintf("P%d", p.PID),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Waiting),
			fmt.Sprint(p.Response),
		})
	}

	avg := res.Averages
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "averages",
		fmt.Sprintf("%.2f", avg.AvgTurnaround),
		fmt.Sprintf("%.2f", avg.AvgWaiting),
		fmt.Sprintf("%.2f", avg.AvgResponse)})
	table.Render()

	fmt.Fprintf(w, "Total time          : %d ticks (%d busy, %d idle, %d overhead)\n",
		res.TotalTime, res.BusyTicks, res.IdleTicks, res.OverheadTicks)
	fmt.Fprintf(w, "CPU utilization     : %.1f %%\n", avg.CPUUtilization*100)
	fmt.Fprintf(w, "Hardware efficiency : %.1f %%\n", avg.HardwareEfficiency*100)
	fmt.Fprintf(w, "Throughput          : %.4f processes/tick\n", avg.Throughput)

	if len(res.Processes) > 0 {
		waits := make([]int64, 0, len(res.Processes))
		turns := make([]int64, 0, len(res.Processes))
		for _, p := range res.Processes {
			waits = append(waits, p.Waiting)
			turns = append(turns, p.Turnaround)
		}
		sort.Slice(waits, func(i, j int) bool { return waits[i] < waits[j] })
		sort.Slice(turns, func(i, j int) bool { return turns[i] < turns[j] })

		fmt.Fprintf(w, "Waiting p50/p90/p99    : %.1f / %.1f / %.1f ticks\n",
			sim.CalculatePercentile(waits, 50),
			sim.CalculatePercentile(waits, 90),
			sim.CalculatePercentile(waits, 99))
		fmt.Fprintf(w, "Turnaround p50/p90/p99 : %.1f / %.1f / %.1f ticks\n",
			sim.CalculatePercentile(turns, 50),
			sim.CalculatePercentile(turns, 90),
			sim.CalculatePercentile(turns, 99))
	}
}

// Compare prints one metrics row per run so policies can be read side by
// side. All runs are assumed to share the same workload.
func Compare(w io.Writer, results []*sim.Result) {
	fmt.Fprintln(w, "=== Policy Comparison ===")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Avg Response", "Util %", "Eff %", "Dispatches"})
	for _, r := range results {
		table.Append([]string{
			r.Policy,
			fmt.Sprintf("%.2f", r.Averages.AvgWaiting),
			fmt.Sprintf("%.2f", r.Averages.AvgTurnaround),
			fmt.Sprintf("%.2f", r.Averages.AvgResponse),
			fmt.Sprintf("%.1f", r.Averages.CPUUtilization*100),
			fmt.Sprintf("%.1f", r.Averages.HardwareEfficiency*100),
			fmt.Sprint(countKind(r.Trace, trace.EventDispatch)),
		})
	}
	table.Render()
}

func countKind(events []trace.Event, kind trace.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
