package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/workload"
	"github.com/schedsim/schedsim/viz"
)

var (
	// Scenario source
	scenarioPath string // YAML scenario file; when set, inline flags are ignored
	seed         int64  // Seed for synthetic workload generation

	// Scheduling knobs (inline mode)
	policyName      string // Scheduling policy name
	quantum         int64  // Round-robin quantum (ticks)
	dispatchLatency int64  // Context-switch overhead (ticks)

	// Synthetic workload (inline mode)
	count          int     // Number of processes to generate
	burstDist      string  // Burst distribution (constant, uniform, gaussian, exponential)
	burstValue     float64 // Constant value, or mean for gaussian/exponential
	burstStdev     float64 // Stddev for gaussian bursts
	burstMin       float64 // Lower burst bound (uniform, gaussian clamp)
	burstMax       float64 // Upper burst bound (uniform, gaussian clamp)
	arrivalProcess string  // Arrival process (together, constant, uniform, poisson)
	arrivalRate    float64 // Arrivals per tick for poisson
	arrivalGap     float64 // Exact inter-arrival gap for constant
	arrivalMin     float64 // Lower gap bound for uniform arrivals
	arrivalMax     float64 // Upper gap bound for uniform arrivals

	// Output toggles
	showGantt  bool // Render the Gantt occupancy lane
	showAudit  bool // Render the per-event trace listing
	outputJSON bool // Emit the raw Result JSON instead of tables
)

// runCmd executes one simulation from a scenario file or inline flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling simulation",
	Long: `Run a workload under one policy. The workload comes from --scenario
(a YAML file) or, without it, from the inline generation flags. With a
scenario file, --seed still overrides the file's generation seed.`,
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := resolveScenario()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		if cmd.Flags().Changed("seed") && spec.Generate != nil {
			spec.Generate.Seed = seed
		}

		res, err := simulateScenario(spec)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := renderRun(os.Stdout, res); err != nil {
			logrus.Fatalf("Writing output: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// resolveScenario builds the effective ScenarioSpec from --scenario or the
// inline flags.
func resolveScenario() (*workload.ScenarioSpec, error) {
	if scenarioPath != "" {
		return workload.LoadScenarioSpec(scenarioPath)
	}
	return &workload.ScenarioSpec{
		Policy:          policyName,
		Quantum:         quantum,
		DispatchLatency: dispatchLatency,
		Generate: &workload.GenerateSpec{
			Count:   count,
			Seed:    seed,
			Burst:   workload.DistSpec{Distribution: burstDist, Params: burstParams()},
			Arrival: workload.ArrivalSpec{Process: arrivalProcess, Params: arrivalParams()},
		},
	}, nil
}

// burstParams maps the inline burst flags onto the parameters the chosen
// distribution reads.
func burstParams() map[string]float64 {
	switch burstDist {
	case "constant":
		return map[string]float64{"value": burstValue}
	case "uniform":
		return map[string]float64{"min": burstMin, "max": burstMax}
	case "gaussian":
		return map[string]float64{"mean": burstValue, "std_dev": burstStdev, "min": burstMin, "max": burstMax}
	case "exponential":
		return map[string]float64{"mean": burstValue}
	default:
		return nil
	}
}

// arrivalParams maps the inline arrival flags onto the parameters the
// chosen process reads.
func arrivalParams() map[string]float64 {
	switch arrivalProcess {
	case "constant":
		return map[string]float64{"gap": arrivalGap}
	case "uniform":
		return map[string]float64{"min": arrivalMin, "max": arrivalMax}
	case "poisson":
		return map[string]float64{"rate": arrivalRate}
	default:
		return nil
	}
}

// simulateScenario builds the workload and runs the engine once.
func simulateScenario(spec *workload.ScenarioSpec) (*sim.Result, error) {
	procs, err := spec.BuildProcesses()
	if err != nil {
		return nil, err
	}
	eng, err := sim.NewEngine(spec.EngineConfig(), procs)
	if err != nil {
		return nil, err
	}
	return eng.Run()
}

// renderRun writes the run output honoring the output toggles.
func renderRun(w io.Writer, res *sim.Result) error {
	if outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	viz.Summary(w, res)
	if showGantt {
		viz.Gantt(w, res)
	}
	if showAudit {
		viz.Audit(w, res)
	}
	return nil
}

// init sets up CLI flags for the run subcommand
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario file")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic workload generation")

	// Scheduling knobs
	runCmd.Flags().StringVar(&policyName, "policy", "fcfs", "Scheduling policy (fcfs, sjf, stcf, rr or registered)")
	runCmd.Flags().Int64Var(&quantum, "quantum", 2, "Round-robin quantum in ticks")
	runCmd.Flags().Int64Var(&dispatchLatency, "dispatch-latency", 0, "Context-switch overhead in ticks")

	// Synthetic workload
	runCmd.Flags().IntVar(&count, "count", 5, "Number of processes to generate")
	runCmd.Flags().StringVar(&burstDist, "burst-dist", "uniform", "Burst distribution (constant, uniform, gaussian, exponential)")
	runCmd.Flags().Float64Var(&burstValue, "burst-value", 8, "Constant burst value, or mean for gaussian/exponential")
	runCmd.Flags().Float64Var(&burstStdev, "burst-stdev", 4, "Burst stddev for gaussian")
	runCmd.Flags().Float64Var(&burstMin, "burst-min", 1, "Minimum burst length")
	runCmd.Flags().Float64Var(&burstMax, "burst-max", 20, "Maximum burst length")
	runCmd.Flags().StringVar(&arrivalProcess, "arrival-process", "poisson", "Arrival process (together, constant, uniform, poisson)")
	runCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 0.5, "Arrivals per tick for poisson")
	runCmd.Flags().Float64Var(&arrivalGap, "arrival-gap", 3, "Exact inter-arrival gap for constant arrivals")
	runCmd.Flags().Float64Var(&arrivalMin, "arrival-min", 0, "Minimum inter-arrival gap for uniform arrivals")
	runCmd.Flags().Float64Var(&arrivalMax, "arrival-max", 10, "Maximum inter-arrival gap for uniform arrivals")

	// Output toggles
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Render the Gantt occupancy lane")
	runCmd.Flags().BoolVar(&showAudit, "audit", false, "Render the full trace listing")
	runCmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the raw Result JSON")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
