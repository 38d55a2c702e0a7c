package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
	"github.com/schedsim/schedsim/viz"
)

var (
	comparePolicyNames []string // Policies to compare; empty means every known one
	compareScenario    string   // YAML scenario file supplying the shared workload
	compareQuantum     int64    // Round-robin quantum used when rr is compared
	compareLatency     int64    // Context-switch overhead (ticks)
	compareCount       int      // Process count for the default synthetic workload
	compareSeed        int64    // Seed for the default synthetic workload
)

// compareCmd runs the same workload under several policies side by side
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run one workload under several policies",
	Long: `Build a single workload, replay it under each policy and print one
metrics row per policy. Without --scenario a small uniform/poisson
workload is generated from --count and --seed.`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := compareWorkload()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		names := comparePolicyNames
		if len(names) == 0 {
			names = sim.PolicyNames()
		}

		results, err := comparePolicies(spec, names)
		if err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		viz.Compare(os.Stdout, results)
	},
}

// compareWorkload resolves the shared workload spec for the comparison.
func compareWorkload() (*workload.ScenarioSpec, error) {
	if compareScenario != "" {
		return workload.LoadScenarioSpec(compareScenario)
	}
	return &workload.ScenarioSpec{
		Quantum:         compareQuantum,
		DispatchLatency: compareLatency,
		Generate: &workload.GenerateSpec{
			Count: compareCount,
			Seed:  compareSeed,
			Burst: workload.DistSpec{
				Distribution: "uniform",
				Params:       map[string]float64{"min": 1, "max": 20},
			},
			Arrival: workload.ArrivalSpec{
				Process: "poisson",
				Params:  map[string]float64{"rate": 0.5},
			},
		},
	}, nil
}

// comparePolicies replays the spec's workload once per policy name.
// The process set is built a single time; engines never mutate it.
func comparePolicies(spec *workload.ScenarioSpec, names []string) ([]*sim.Result, error) {
	procs, err := spec.BuildProcesses()
	if err != nil {
		return nil, err
	}

	results := make([]*sim.Result, 0, len(names))
	for _, name := range names {
		cfg := spec.EngineConfig()
		cfg.Policy = name
		if cfg.Quantum == 0 {
			cfg.Quantum = compareQuantum
		}
		eng, err := sim.NewEngine(cfg, procs)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		res, err := eng.Run()
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// init sets up CLI flags for the compare subcommand
func init() {
	compareCmd.Flags().StringSliceVar(&comparePolicyNames, "policies", nil, "Comma-separated policies to compare (default: all known)")
	compareCmd.Flags().StringVar(&compareScenario, "scenario", "", "Path to a YAML scenario file supplying the workload")
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", 2, "Round-robin quantum in ticks")
	compareCmd.Flags().Int64Var(&compareLatency, "dispatch-latency", 0, "Context-switch overhead in ticks")
	compareCmd.Flags().IntVar(&compareCount, "count", 5, "Process count for the default synthetic workload")
	compareCmd.Flags().Int64Var(&compareSeed, "seed", 42, "Seed for the default synthetic workload")

	rootCmd.AddCommand(compareCmd)
}
