// sim/metrics.go
package sim

import (
	"math"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// BuildAggregate derives the run-wide metrics from the completed process
// records and the tick accounting. Division-safe for empty runs.
func BuildAggregate(results []ProcessResult, totalTime, idleTicks, overheadTicks int64) Aggregate {
	var agg Aggregate
	if len(results) == 0 || totalTime == 0 {
		return agg
	}

	var wait, turn, resp int64
	for _, r := range results {
		wait += r.Waiting
		turn += r.Turnaround
		resp += r.Response
	}
	n := float64(len(results))
	total := float64(totalTime)

	agg.AvgWaiting = float64(wait) / n
	agg.AvgTurnaround = float64(turn) / n
	agg.AvgResponse = float64(resp) / n
	agg.CPUUtilization = (total - float64(idleTicks)) / total
	agg.HardwareEfficiency = (total - float64(idleTicks) - float64(overheadTicks)) / total
	agg.Throughput = n / total
	return agg
}

// CalculatePercentile is a util function that calculates the p-th percentile
// of a data list with linear interpolation between ranks.
// The data must be sorted ascending; values are returned in ticks.
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if lowerIdx == upperIdx {
		return float64(data[lowerIdx])
	}
	if upperIdx >= n {
		return float64(data[n-1])
	}
	lowerVal := data[lowerIdx]
	upperVal := data[upperIdx]
	return float64(lowerVal) + float64(upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// CalculateMean is a util function that calculates the mean of a data list.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, number := range numbers {
		sum += float64(number)
	}

	return sum / float64(len(numbers))
}
