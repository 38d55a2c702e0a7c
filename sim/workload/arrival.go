package workload

import (
	"fmt"
	"math"
	"math/rand"
)

// ArrivalSampler generates inter-arrival times for synthetic workloads.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival gap in ticks (>= 0).
	// A gap of 0 puts consecutive processes on the same arrival tick.
	SampleIAT(rng *rand.Rand) int64
}

// TogetherSampler makes every process arrive at the same tick (gap 0),
// the classic all-at-time-zero scheduling exercise setup.
type TogetherSampler struct{}

func (s *TogetherSampler) SampleIAT(_ *rand.Rand) int64 {
	return 0
}

// ConstantGapSampler spaces arrivals a fixed number of ticks apart.
type ConstantGapSampler struct {
	gap int64
}

func (s *ConstantGapSampler) SampleIAT(_ *rand.Rand) int64 {
	if s.gap < 0 {
		return 0
	}
	return s.gap
}

// UniformGapSampler draws gaps uniformly from [min, max].
type UniformGapSampler struct {
	min, max int64
}

func (s *UniformGapSampler) SampleIAT(rng *rand.Rand) int64 {
	if s.min >= s.max {
		return max(0, s.min)
	}
	return max(0, s.min+rng.Int63n(s.max-s.min+1))
}

// PoissonSampler generates exponentially-distributed inter-arrival gaps
// for a Poisson arrival process with the given rate (arrivals per tick).
type PoissonSampler struct {
	rate float64
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	gap := int64(math.Round(rng.ExpFloat64() / s.rate))
	if gap < 0 {
		return 0
	}
	return gap
}

// NewArrivalSampler creates an ArrivalSampler from an ArrivalSpec.
// Process names are validated by ScenarioSpec.Validate before reaching here;
// parameter presence is checked per process type.
func NewArrivalSampler(spec ArrivalSpec) (ArrivalSampler, error) {
	switch spec.Process {
	case "together":
		return &TogetherSampler{}, nil

	case "constant":
		if err := requireParam(spec.Params, "gap"); err != nil {
			return nil, err
		}
		return &ConstantGapSampler{gap: int64(spec.Params["gap"])}, nil

	case "uniform":
		if err := requireParam(spec.Params, "min", "max"); err != nil {
			return nil, err
		}
		return &UniformGapSampler{
			min: int64(spec.Params["min"]),
			max: int64(spec.Params["max"]),
		}, nil

	case "poisson":
		if err := requireParam(spec.Params, "rate"); err != nil {
			return nil, err
		}
		rate := spec.Params["rate"]
		if rate <= 0 {
			return nil, fmt.Errorf("poisson arrival process requires rate > 0, got %g", rate)
		}
		return &PoissonSampler{rate: rate}, nil

	default:
		return nil, fmt.Errorf("unknown arrival process %q", spec.Process)
	}
}
