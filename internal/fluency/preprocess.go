package fluency

import "math"

// preprocess removes DC bias and peak-normalizes the buffer.
// An effectively silent buffer (peak below normalizeEpsilon) is returned
// DC-removed but unscaled to avoid a divide-by-near-zero blow-up.
// Always succeeds; empty input yields empty output.
func preprocess(samples []float64) []float64 {
	if len(samples) == 0 {
		return samples
	}

	mean := 0.0
	for _, s := range samples {
		mean += s
	}
	mean /= float64(len(samples))

	out := make([]float64, len(samples))
	peak := 0.0
	for i, s := range samples {
		out[i] = s - mean
		if abs := math.Abs(out[i]); abs > peak {
			peak = abs
		}
	}

	if peak < normalizeEpsilon {
		return out
	}

	for i := range out {
		out[i] /= peak
	}
	return out
}
