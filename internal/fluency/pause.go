package fluency

// countPauses counts silent runs lasting at least minPauseDuration.
// The silence threshold is derived from the 40th energy percentile; a run's
// duration is its frame count times the hop stride. A run still open at the
// end of the buffer is flushed through the same duration test, so an
// unresolved trailing pause still counts.
func countPauses(energy []float64) int {
	if len(energy) == 0 {
		return 0
	}

	threshold := percentile(energy, silencePercentile) * silenceScale

	pauses := 0
	tracker := runTracker{emit: func(start, end int) {
		frames := end - start + 1
		if float64(frames)*hopDuration >= minPauseDuration {
			pauses++
		}
	}}

	// Inclusive compare: a digitally silent buffer has zero energy and a zero
	// threshold, and its trailing run must still register as a pause.
	for i, e := range energy {
		tracker.observe(i, e <= threshold)
	}
	tracker.flush(len(energy) - 1)

	return pauses
}
