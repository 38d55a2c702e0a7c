package workload

import (
	"math"
	"math/rand"
	"testing"
)

func TestTogetherSampler_AlwaysZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sampler, err := NewArrivalSampler(ArrivalSpec{Process: "together"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if iat := sampler.SampleIAT(rng); iat != 0 {
			t.Fatalf("iteration %d: SampleIAT = %d, want 0", i, iat)
		}
	}
}

func TestConstantGapSampler_ExactIntervals(t *testing.T) {
	sampler, err := NewArrivalSampler(ArrivalSpec{
		Process: "constant",
		Params:  map[string]float64{"gap": 7},
	})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if iat := sampler.SampleIAT(rng); iat != 7 {
			t.Fatalf("iteration %d: SampleIAT = %d, want 7", i, iat)
		}
	}
}

func TestConstantGapSampler_DifferentSeeds_SameResult(t *testing.T) {
	// A fixed gap is deterministic regardless of RNG state.
	sampler, err := NewArrivalSampler(ArrivalSpec{
		Process: "constant",
		Params:  map[string]float64{"gap": 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	rng1 := rand.New(rand.NewSource(1))
	rng2 := rand.New(rand.NewSource(999))
	for i := 0; i < 50; i++ {
		iat1 := sampler.SampleIAT(rng1)
		iat2 := sampler.SampleIAT(rng2)
		if iat1 != iat2 {
			t.Fatalf("iteration %d: different seeds produced different IATs: %d vs %d", i, iat1, iat2)
		}
	}
}

func TestUniformGapSampler_WithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sampler, err := NewArrivalSampler(ArrivalSpec{
		Process: "uniform",
		Params:  map[string]float64{"min": 2, "max": 9},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		iat := sampler.SampleIAT(rng)
		if iat < 2 || iat > 9 {
			t.Errorf("sample %d: %d outside [2, 9]", i, iat)
			break
		}
	}
}

func TestPoissonSampler_MeanIAT_MatchesRate(t *testing.T) {
	// GIVEN a Poisson process at 0.1 arrivals per tick
	rng := rand.New(rand.NewSource(42))
	sampler, err := NewArrivalSampler(ArrivalSpec{
		Process: "poisson",
		Params:  map[string]float64{"rate": 0.1},
	})
	if err != nil {
		t.Fatal(err)
	}

	// WHEN 10000 IATs are sampled
	n := 10000
	sum := int64(0)
	for i := 0; i < n; i++ {
		sum += sampler.SampleIAT(rng)
	}
	meanIAT := float64(sum) / float64(n)

	// THEN mean IAT ≈ 1/rate = 10 ticks (within 5%)
	expected := 10.0
	if math.Abs(meanIAT-expected)/expected > 0.05 {
		t.Errorf("mean IAT = %.2f ticks, want ≈ %.0f (within 5%%)", meanIAT, expected)
	}
}

func TestPoissonSampler_NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sampler, err := NewArrivalSampler(ArrivalSpec{
		Process: "poisson",
		Params:  map[string]float64{"rate": 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		if iat := sampler.SampleIAT(rng); iat < 0 {
			t.Fatalf("IAT must be non-negative, got %d at iteration %d", iat, i)
		}
	}
}

func TestNewArrivalSampler_MissingParam_ReturnsError(t *testing.T) {
	if _, err := NewArrivalSampler(ArrivalSpec{Process: "constant"}); err == nil {
		t.Error("expected error for constant without gap")
	}
	if _, err := NewArrivalSampler(ArrivalSpec{Process: "poisson"}); err == nil {
		t.Error("expected error for poisson without rate")
	}
	if _, err := NewArrivalSampler(ArrivalSpec{
		Process: "poisson",
		Params:  map[string]float64{"rate": 0},
	}); err == nil {
		t.Error("expected error for poisson with zero rate")
	}
}

func TestNewArrivalSampler_InvalidProcess_ReturnsError(t *testing.T) {
	if _, err := NewArrivalSampler(ArrivalSpec{Process: "gamma"}); err == nil {
		t.Fatal("expected error for unknown arrival process")
	}
}
