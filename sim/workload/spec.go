package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenarioSpec(path). A scenario names the policy
// and dispatch latency to simulate under, and supplies the workload either
// as an explicit process list or as a synthetic generation block.
type ScenarioSpec struct {
	Name            string        `yaml:"name,omitempty"`
	Policy          string        `yaml:"policy"`
	Quantum         int64         `yaml:"quantum,omitempty"`
	DispatchLatency int64         `yaml:"dispatch_latency"`
	Processes       []ProcessSpec `yaml:"processes,omitempty"`
	Generate        *GenerateSpec `yaml:"generate,omitempty"`
}

// ProcessSpec defines one explicit process of the workload.
type ProcessSpec struct {
	PID     int   `yaml:"pid"`
	Burst   int64 `yaml:"burst"`
	Arrival int64 `yaml:"arrival"`
}

// GenerateSpec configures synthetic workload generation.
type GenerateSpec struct {
	Count   int         `yaml:"count"`
	Seed    int64       `yaml:"seed"`
	Burst   DistSpec    `yaml:"burst"`
	Arrival ArrivalSpec `yaml:"arrival"`
}

// DistSpec parameterizes a burst-length distribution.
type DistSpec struct {
	Distribution string             `yaml:"distribution"`
	Params       map[string]float64 `yaml:"params,omitempty"`
}

// ArrivalSpec configures the inter-arrival time process.
type ArrivalSpec struct {
	Process string             `yaml:"process"`
	Params  map[string]float64 `yaml:"params,omitempty"`
}

// Valid value registries.
var (
	validDistTypes = map[string]bool{
		"constant": true, "uniform": true, "gaussian": true, "exponential": true,
	}
	validArrivalProcesses = map[string]bool{
		"together": true, "constant": true, "uniform": true, "poisson": true,
	}
)

// LoadScenarioSpec reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	var spec ScenarioSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
// Policy-name resolution is left to sim.NewPolicy so user-registered
// policies remain loadable from scenarios.
func (s *ScenarioSpec) Validate() error {
	if s.DispatchLatency < 0 {
		return fmt.Errorf("dispatch_latency must be non-negative, got %d", s.DispatchLatency)
	}
	if s.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", s.Quantum)
	}
	if len(s.Processes) == 0 && s.Generate == nil {
		return fmt.Errorf("either processes or a generate block is required")
	}
	if len(s.Processes) > 0 && s.Generate != nil {
		return fmt.Errorf("processes and generate are mutually exclusive")
	}
	seen := make(map[int]bool, len(s.Processes))
	for i, p := range s.Processes {
		prefix := fmt.Sprintf("processes[%d]", i)
		if seen[p.PID] {
			return fmt.Errorf("%s: duplicate pid %d", prefix, p.PID)
		}
		seen[p.PID] = true
		if p.Burst <= 0 {
			return fmt.Errorf("%s: burst must be positive, got %d", prefix, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%s: arrival must be non-negative, got %d", prefix, p.Arrival)
		}
	}
	if s.Generate != nil {
		if err := validateGenerate(s.Generate); err != nil {
			return err
		}
	}
	return nil
}

func validateGenerate(g *GenerateSpec) error {
	if g.Count < 1 {
		return fmt.Errorf("generate.count must be at least 1, got %d", g.Count)
	}
	if !validDistTypes[g.Burst.Distribution] {
		return fmt.Errorf("generate.burst: unknown distribution %q; valid: constant, uniform, gaussian, exponential", g.Burst.Distribution)
	}
	if !validArrivalProcesses[g.Arrival.Process] {
		return fmt.Errorf("generate.arrival: unknown process %q; valid: together, constant, uniform, poisson", g.Arrival.Process)
	}
	for name, val := range g.Burst.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("generate.burst.params.%s must be a finite number, got %f", name, val)
		}
	}
	for name, val := range g.Arrival.Params {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("generate.arrival.params.%s must be a finite number, got %f", name, val)
		}
	}
	return nil
}

// EngineConfig translates the scenario's scheduling knobs into a sim.Config.
func (s *ScenarioSpec) EngineConfig() sim.Config {
	return sim.Config{
		Policy:          s.Policy,
		Quantum:         s.Quantum,
		DispatchLatency: s.DispatchLatency,
	}
}

// BuildProcesses resolves the scenario's workload, generating it when a
// generate block is present and otherwise converting the explicit list.
func (s *ScenarioSpec) BuildProcesses() ([]*sim.Process, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if s.Generate != nil {
		return Generate(s.Generate)
	}
	procs := make([]*sim.Process, len(s.Processes))
	for i, p := range s.Processes {
		procs[i] = &sim.Process{PID: p.PID, Burst: p.Burst, Arrival: p.Arrival}
	}
	return procs, nil
}
