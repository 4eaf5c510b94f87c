package fluency

import "math"

// burst is a maximal run of consecutive frames whose energy exceeds the burst
// threshold, treated as one utterance segment. Start and end are inclusive
// frame indices.
type burst struct {
	start     int
	end       int
	avgEnergy float64
}

// duration returns the burst length in frames as end-start.
func (b burst) duration() int {
	return b.end - b.start
}

// segmentBursts splits the energy series into bursts above threshold.
// A burst still open at the end of the buffer is closed at the final frame,
// mirroring the pause detector's trailing-run handling.
func segmentBursts(energy []float64, threshold float64) []burst {
	var bursts []burst
	tracker := runTracker{emit: func(start, end int) {
		sum := 0.0
		for i := start; i <= end; i++ {
			sum += energy[i]
		}
		bursts = append(bursts, burst{
			start:     start,
			end:       end,
			avgEnergy: sum / float64(end-start+1),
		})
	}}

	for i, e := range energy {
		tracker.observe(i, e > threshold)
	}
	tracker.flush(len(energy) - 1)

	return bursts
}

// scoreRepetition measures how often consecutive utterance bursts are
// near-duplicates in duration and average energy, the signature of repeated
// short utterances. Fewer than minBurstCount bursts is insufficient evidence
// and scores 0. Each consecutive pair is a repeat when both similarity values
// clear their floors; the score is the repeat fraction, clamped to [0,1].
func scoreRepetition(energy []float64) float64 {
	if len(energy) == 0 {
		return 0
	}

	threshold := percentile(energy, voicedPercentile) * burstScale
	bursts := segmentBursts(energy, threshold)
	if len(bursts) < minBurstCount {
		return 0
	}

	repeats := 0
	pairs := len(bursts) - 1
	for k := 1; k < len(bursts); k++ {
		b1, b2 := bursts[k-1], bursts[k]

		durDelta := math.Abs(float64(b1.duration() - b2.duration()))
		durSim := 1 - math.Min(1, durDelta/math.Max(1, float64(b1.duration())))

		nrgDelta := math.Abs(b1.avgEnergy - b2.avgEnergy)
		nrgSim := 1 - math.Min(1, nrgDelta/math.Max(nrgEpsilon, b1.avgEnergy))

		if durSim > durSimilarityFloor && nrgSim > nrgSimilarityFloor {
			repeats++
		}
	}

	return clampUnit(float64(repeats) / float64(pairs))
}
