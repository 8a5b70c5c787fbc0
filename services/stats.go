package services

import (
	"math"
	"sort"
)

// Quantile returns the p-th quantile (0 ≤ p ≤ 1) of sorted using the
// linear-interpolation method (h = (n−1)·p), matching the numpy/pandas
// default. The slice must be sorted ascending and non-empty.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// FiveNum is the five-number summary used for box plots.
type FiveNum struct {
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Summarize computes the five-number summary of values. Returns false when
// values is empty. The input is not modified.
func Summarize(values []float64) (FiveNum, bool) {
	if len(values) == 0 {
		return FiveNum{}, false
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return FiveNum{
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, true
}
