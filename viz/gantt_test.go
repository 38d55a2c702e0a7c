package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

func TestGantt_MergesRunsAndAlignsRuler(t *testing.T) {
	// GIVEN a trace with a two-tick exec streak, one switch tick, a short
	// exec and an idle tick (markers interleaved to prove they carry no width)
	res := &sim.Result{
		Policy:    "fcfs",
		TotalTime: 5,
		Trace: []trace.Event{
			{Time: 0, Kind: trace.EventArrival, PID: trace.PIDRef(1)},
			{Time: 0, Kind: trace.EventDispatch, PID: trace.PIDRef(1)},
			{Time: 0, Kind: trace.EventExec, PID: trace.PIDRef(1)},
			{Time: 1, Kind: trace.EventExec, PID: trace.PIDRef(1)},
			{Time: 1, Kind: trace.EventCompletion, PID: trace.PIDRef(1)},
			{Time: 2, Kind: trace.EventSwitch, PID: trace.PIDRef(2)},
			{Time: 3, Kind: trace.EventExec, PID: trace.PIDRef(2)},
			{Time: 4, Kind: trace.EventIdle},
		},
	}

	// WHEN rendering the Gantt chart
	var buf bytes.Buffer
	Gantt(&buf, res)

	// THEN the lane merges equal neighbours and the ruler marks each boundary
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 output lines, got %d: %q", len(lines), buf.String())
	}
	if got, want := lines[1], "|  P1  |## |P2 |-- |"; got != want {
		t.Errorf("lane mismatch:\ngot  %q\nwant %q", got, want)
	}
	if got, want := lines[2], "0      2   3   4   5"; got != want {
		t.Errorf("ruler mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestGantt_EmptyTrace_PrintsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, &sim.Result{Policy: "sjf"})

	if !strings.Contains(buf.String(), "(no activity)") {
		t.Errorf("expected placeholder for empty trace, got %q", buf.String())
	}
}

func TestGantt_FromEngineRun(t *testing.T) {
	// GIVEN a full run with three processes back to back
	procs := []*sim.Process{
		{PID: 1, Burst: 5, Arrival: 0},
		{PID: 2, Burst: 8, Arrival: 1},
		{PID: 3, Burst: 10, Arrival: 2},
	}
	eng, err := sim.NewEngine(sim.Config{Policy: "fcfs"}, procs)
	if err != nil {
		t.Fatal(err)
	}
	res, err := eng.Run()
	if err != nil {
		t.Fatal(err)
	}

	// WHEN rendering
	var buf bytes.Buffer
	Gantt(&buf, res)
	out := buf.String()

	// THEN all three processes appear and the ruler ends at the total time
	for _, want := range []string{"P1", "P2", "P3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	lines := strings.Split(out, "\n")
	if !strings.HasSuffix(lines[2], "23") {
		t.Errorf("ruler should end at 23, got %q", lines[2])
	}
	if strings.Contains(lines[1], switchLabel) || strings.Contains(lines[1], idleLabel) {
		t.Errorf("zero-latency saturated run must have no switch or idle cells: %q", lines[1])
	}
}

func TestCenter_TruncatesWhenTooNarrow(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"P1", 6, "  P1  "},
		{"P1", 3, "P1 "},
		{"P12", 3, "P12"},
		{"P1234", 3, "P12"},
	}
	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
