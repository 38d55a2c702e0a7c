package workload

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadScenarioSpec_ValidYAML_LoadsCorrectly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	yaml := `
name: three-process-fcfs
policy: fcfs
dispatch_latency: 2
processes:
  - pid: 1
    burst: 10
    arrival: 5
  - pid: 2
    burst: 5
    arrival: 0
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadScenarioSpec(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Name != "three-process-fcfs" {
		t.Errorf("name = %q, want %q", spec.Name, "three-process-fcfs")
	}
	if spec.Policy != "fcfs" {
		t.Errorf("policy = %q, want fcfs", spec.Policy)
	}
	if spec.DispatchLatency != 2 {
		t.Errorf("dispatch_latency = %d, want 2", spec.DispatchLatency)
	}
	if len(spec.Processes) != 2 {
		t.Fatalf("processes count = %d, want 2", len(spec.Processes))
	}
	p := spec.Processes[0]
	if p.PID != 1 || p.Burst != 10 || p.Arrival != 5 {
		t.Errorf("process fields mismatch: pid=%d burst=%d arrival=%d", p.PID, p.Burst, p.Arrival)
	}
}

func TestLoadScenarioSpec_GenerateBlock_LoadsCorrectly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generated.yaml")
	yaml := `
policy: rr
quantum: 4
dispatch_latency: 1
generate:
  count: 20
  seed: 42
  burst:
    distribution: gaussian
    params:
      mean: 8
      std_dev: 3
      min: 1
      max: 30
  arrival:
    process: poisson
    params:
      rate: 0.2
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadScenarioSpec(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Quantum != 4 {
		t.Errorf("quantum = %d, want 4", spec.Quantum)
	}
	if spec.Generate == nil {
		t.Fatal("generate block not parsed")
	}
	if spec.Generate.Count != 20 || spec.Generate.Seed != 42 {
		t.Errorf("generate count=%d seed=%d, want 20/42", spec.Generate.Count, spec.Generate.Seed)
	}
	if spec.Generate.Burst.Distribution != "gaussian" {
		t.Errorf("burst distribution = %q, want gaussian", spec.Generate.Burst.Distribution)
	}
	if spec.Generate.Burst.Params["mean"] != 8 {
		t.Errorf("burst mean = %f, want 8", spec.Generate.Burst.Params["mean"])
	}
	if spec.Generate.Arrival.Process != "poisson" {
		t.Errorf("arrival process = %q, want poisson", spec.Generate.Arrival.Process)
	}
}

func TestLoadScenarioSpec_UnknownKey_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	yaml := `
policy: fcfs
dispach_latency: 2
processes:
  - pid: 1
    burst: 5
    arrival: 0
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadScenarioSpec(path)
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}

func TestLoadScenarioSpec_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadScenarioSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScenarioSpec_Validate_NegativeLatency_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy:          "fcfs",
		DispatchLatency: -1,
		Processes:       []ProcessSpec{{PID: 1, Burst: 5}},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error for negative dispatch latency")
	}
}

func TestScenarioSpec_Validate_NegativeQuantum_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy:    "rr",
		Quantum:   -4,
		Processes: []ProcessSpec{{PID: 1, Burst: 5}},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error for negative quantum")
	}
}

func TestScenarioSpec_Validate_NoWorkload_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{Policy: "fcfs"}
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error when neither processes nor generate is given")
	}
}

func TestScenarioSpec_Validate_BothWorkloadForms_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy:    "fcfs",
		Processes: []ProcessSpec{{PID: 1, Burst: 5}},
		Generate: &GenerateSpec{
			Count:   5,
			Burst:   DistSpec{Distribution: "constant", Params: map[string]float64{"value": 3}},
			Arrival: ArrivalSpec{Process: "together"},
		},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error when processes and generate are both given")
	}
}

func TestScenarioSpec_Validate_DuplicatePID_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Processes: []ProcessSpec{
			{PID: 1, Burst: 5},
			{PID: 1, Burst: 3},
		},
	}
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for duplicate pid")
	}
	if !strings.Contains(err.Error(), "processes[1]") {
		t.Errorf("error should name the offending entry: %v", err)
	}
}

func TestScenarioSpec_Validate_NonPositiveBurst_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy:    "fcfs",
		Processes: []ProcessSpec{{PID: 1, Burst: 0}},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error for zero burst")
	}
}

func TestScenarioSpec_Validate_NegativeArrival_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy:    "fcfs",
		Processes: []ProcessSpec{{PID: 1, Burst: 5, Arrival: -2}},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error for negative arrival")
	}
}

func TestScenarioSpec_Validate_GenerateCountZero_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Generate: &GenerateSpec{
			Count:   0,
			Burst:   DistSpec{Distribution: "constant", Params: map[string]float64{"value": 3}},
			Arrival: ArrivalSpec{Process: "together"},
		},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error for generate.count = 0")
	}
}

func TestScenarioSpec_Validate_UnknownDistribution_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Generate: &GenerateSpec{
			Count:   5,
			Burst:   DistSpec{Distribution: "pareto"},
			Arrival: ArrivalSpec{Process: "together"},
		},
	}
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for unknown distribution")
	}
	if !strings.Contains(err.Error(), "pareto") {
		t.Errorf("error should mention the invalid distribution: %v", err)
	}
}

func TestScenarioSpec_Validate_UnknownArrivalProcess_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Generate: &GenerateSpec{
			Count:   5,
			Burst:   DistSpec{Distribution: "constant", Params: map[string]float64{"value": 3}},
			Arrival: ArrivalSpec{Process: "weibull"},
		},
	}
	if err := spec.Validate(); err == nil {
		t.Fatal("expected error for unknown arrival process")
	}
}

func TestScenarioSpec_Validate_NaNParam_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Generate: &GenerateSpec{
			Count:   5,
			Burst:   DistSpec{Distribution: "exponential", Params: map[string]float64{"mean": math.NaN()}},
			Arrival: ArrivalSpec{Process: "together"},
		},
	}
	err := spec.Validate()
	if err == nil {
		t.Fatal("expected error for NaN parameter")
	}
	if !strings.Contains(err.Error(), "finite") {
		t.Errorf("error should mention finiteness: %v", err)
	}
}

func TestScenarioSpec_Validate_ValidSpec_NoError(t *testing.T) {
	spec := &ScenarioSpec{
		Name:            "mixed",
		Policy:          "rr",
		Quantum:         4,
		DispatchLatency: 2,
		Processes: []ProcessSpec{
			{PID: 1, Burst: 10, Arrival: 0},
			{PID: 2, Burst: 3, Arrival: 4},
		},
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("expected no error for valid spec, got: %v", err)
	}
}

func TestScenarioSpec_Validate_DoesNotResolvePolicyName(t *testing.T) {
	// Validation accepts any policy name; resolution happens at engine
	// construction so registered user policies stay loadable from YAML.
	spec := &ScenarioSpec{
		Policy:    "my-custom-policy",
		Processes: []ProcessSpec{{PID: 1, Burst: 5}},
	}
	if err := spec.Validate(); err != nil {
		t.Errorf("unexpected error for unresolved policy name: %v", err)
	}
}

func TestScenarioSpec_EngineConfig_CopiesKnobs(t *testing.T) {
	spec := &ScenarioSpec{
		Policy:          "stcf",
		Quantum:         6,
		DispatchLatency: 3,
	}
	cfg := spec.EngineConfig()
	if cfg.Policy != "stcf" || cfg.Quantum != 6 || cfg.DispatchLatency != 3 {
		t.Errorf("config mismatch: %+v", cfg)
	}
}

func TestScenarioSpec_BuildProcesses_ExplicitList(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Processes: []ProcessSpec{
			{PID: 3, Burst: 8, Arrival: 2},
			{PID: 1, Burst: 10, Arrival: 5},
		},
	}
	procs, err := spec.BuildProcesses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(procs) != 2 {
		t.Fatalf("got %d processes, want 2", len(procs))
	}
	if procs[0].PID != 3 || procs[0].Burst != 8 || procs[0].Arrival != 2 {
		t.Errorf("process[0] mismatch: %+v", procs[0])
	}
}

func TestScenarioSpec_BuildProcesses_GenerateBlock(t *testing.T) {
	spec := &ScenarioSpec{
		Policy: "fcfs",
		Generate: &GenerateSpec{
			Count:   7,
			Seed:    1,
			Burst:   DistSpec{Distribution: "constant", Params: map[string]float64{"value": 3}},
			Arrival: ArrivalSpec{Process: "constant", Params: map[string]float64{"gap": 2}},
		},
	}
	procs, err := spec.BuildProcesses()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(procs) != 7 {
		t.Errorf("got %d processes, want 7", len(procs))
	}
}

func TestScenarioSpec_BuildProcesses_InvalidSpec_ReturnsError(t *testing.T) {
	spec := &ScenarioSpec{Policy: "fcfs"}
	if _, err := spec.BuildProcesses(); err == nil {
		t.Fatal("expected error for spec with no workload")
	}
}
