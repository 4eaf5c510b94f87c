package fluency

import "math"

// scoreInstability measures frame-to-frame volatility inside voiced regions,
// a proxy for stuttering-like delivery. Voiced frames are those strictly above
// the voiced threshold (60th energy percentile × 0.6). Consecutive entries of
// the voiced-index list are compared pairwise; a pair whose raw frame indices
// are more than maxVoicedGap apart belongs to separate voiced regions and is
// skipped rather than measured. A pair is unstable when its energy delta
// exceeds energyJumpLimit or its ZCR delta exceeds zcrJumpLimit.
//
// Fewer than minVoicedFrames voiced frames, or zero evaluated pairs, is
// insufficient evidence and scores 0. Otherwise the score is the unstable
// fraction of evaluated pairs, clamped to [0,1].
func scoreInstability(feats FeatureSeries) float64 {
	threshold := percentile(feats.Energy, voicedPercentile) * voicedScale

	var voiced []int
	for i, e := range feats.Energy {
		if e > threshold {
			voiced = append(voiced, i)
		}
	}
	if len(voiced) < minVoicedFrames {
		return 0
	}

	unstable, evaluated := 0, 0
	for k := 1; k < len(voiced); k++ {
		i1, i2 := voiced[k-1], voiced[k]
		if i2-i1 > maxVoicedGap {
			continue
		}
		evaluated++

		dE := math.Abs(feats.Energy[i2] - feats.Energy[i1])
		dZ := math.Abs(feats.ZCR[i2] - feats.ZCR[i1])
		if dE > energyJumpLimit || dZ > zcrJumpLimit {
			unstable++
		}
	}
	if evaluated == 0 {
		return 0
	}

	return clampUnit(float64(unstable) / float64(evaluated))
}
