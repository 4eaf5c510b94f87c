package fluency

import "sort"

// percentile returns the nearest-rank percentile of a series: sort a copy
// ascending and index at floor(p/100*(n-1)). No interpolation between ranks;
// every downstream threshold depends on this exact rank selection.
// An empty series yields 0.
func percentile(series []float64, p float64) float64 {
	if len(series) == 0 {
		return 0
	}
	sorted := make([]float64, len(series))
	copy(sorted, series)
	sort.Float64s(sorted)

	idx := int(p / 100.0 * float64(len(sorted)-1))
	return sorted[idx]
}

// clampUnit clamps a score into [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
