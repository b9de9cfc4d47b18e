package clock

import (
	"math"
	"slices"

	"github.com/gammazero/deque"
)

// Rolling percentile over a trailing window of positions ending at each index.
// A position yields a value once its window holds at least max(1, window / 2)
// non-missing observations; missing observations are skipped, not zeroed.
func rollingPercentile(values []*float64, window int, p float64) []*float64 {
	minSamples := max(1, window / 2)
	output := make([]*float64, len(values))
	var trailing deque.Deque[*float64]
	for i, value := range values {
		trailing.PushBack(value)
		if trailing.Len() > window {
			trailing.PopFront()
		}
		samples := make([]float64, 0, trailing.Len())
		for j := 0; j < trailing.Len(); j++ {
			pointer := trailing.At(j)
			if pointer != nil {
				samples = append(samples, *pointer)
			}
		}
		if len(samples) < minSamples {
			continue
		}
		percentile := interpolatePercentile(samples, p)
		output[i] = &percentile
	}
	return output
}

// Rank-linear interpolation between order statistics, the conventional
// percentile definition. gonum's stat.Quantile cumulant kinds compute a
// different estimator, hence the direct implementation.
func interpolatePercentile(samples []float64, p float64) float64 {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	rank := p / 100.0 * float64(len(sorted) - 1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower] + weight * (sorted[upper] - sorted[lower])
}
