package fluency

import "math"

// FeatureSeries holds per-frame features, indexed by frame number.
// Energy and ZCR always have equal length.
type FeatureSeries struct {
	Energy []float64 // RMS energy, non-negative
	ZCR    []float64 // zero-crossing rate in [0,1]
}

// frameSize converts a duration to a sample count: round(dur*rate), clamped to
// a minimum of one sample so degenerate rates never produce a zero stride.
func frameSize(durationSec float64, sampleRate int) int {
	n := int(math.Round(durationSec * float64(sampleRate)))
	if n < 1 {
		n = 1
	}
	return n
}

// extractFeatures slices the buffer into fixed 20ms/10ms overlapping frames and
// computes RMS energy and zero-crossing rate per frame. A trailing remainder
// shorter than one full frame is dropped; a buffer shorter than one frame
// yields empty series, which every downstream detector treats as a valid
// no-evidence input.
func extractFeatures(samples []float64, sampleRate int) FeatureSeries {
	frameLen := frameSize(frameDuration, sampleRate)
	hopLen := frameSize(hopDuration, sampleRate)

	var feats FeatureSeries
	for start := 0; start+frameLen <= len(samples); start += hopLen {
		frame := samples[start : start+frameLen]
		feats.Energy = append(feats.Energy, rmsEnergy(frame))
		feats.ZCR = append(feats.ZCR, zeroCrossingRate(frame))
	}
	return feats
}

// rmsEnergy returns the root-mean-square amplitude of a frame.
func rmsEnergy(frame []float64) float64 {
	sum := 0.0
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}

// zeroCrossingRate returns the fraction of adjacent sample pairs whose sign
// differs, with zero treated as non-negative. The divisor is the frame
// length, not the pair count.
func zeroCrossingRate(frame []float64) float64 {
	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i] >= 0) != (frame[i-1] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(frame))
}
