// Package fluency implements the speech-fluency analysis pipeline.
// A single pass over a decoded mono buffer yields heuristic scores for
// stuttering-like instability, burst repetition, and silent pauses, plus
// a combined disorder flag and a reassurance message.
package fluency

// Analysis tuning constants.
// These are empirical values; change any of them and the classification
// outcomes shift, so they are deliberately not user-tunable.
const (
	// DefaultSampleRate is assumed when the caller does not specify one.
	DefaultSampleRate = 16000 // Hz

	// Framing parameters
	frameDuration = 0.020 // s - 20ms analysis window
	hopDuration   = 0.010 // s - 10ms stride (50% overlap)

	// Preprocessing
	normalizeEpsilon = 1e-9 // peak floor below which normalization is skipped

	// Adaptive threshold derivation (percentile of frame energy × scale)
	voicedPercentile  = 60.0 // energy percentile for voiced-frame threshold
	voicedScale       = 0.6  // scale applied for instability analysis
	burstScale        = 0.5  // scale applied for burst segmentation
	silencePercentile = 40.0 // energy percentile for silence threshold
	silenceScale      = 0.5  // scale applied for pause detection

	// Pause detection
	minPauseDuration = 0.25 // s - silent runs shorter than this are not pauses

	// Instability detection
	minVoicedFrames = 10   // fewer voiced frames = insufficient evidence
	maxVoicedGap    = 2    // frame-index gap beyond which a voiced pair is skipped
	energyJumpLimit = 0.04 // |dE| above this marks a pair unstable
	zcrJumpLimit    = 0.12 // |dZCR| above this marks a pair unstable

	// Repetition detection
	minBurstCount      = 3    // fewer bursts = insufficient evidence
	durSimilarityFloor = 0.7  // duration similarity required to call a repeat
	nrgSimilarityFloor = 0.75 // energy similarity required to call a repeat
	nrgEpsilon         = 1e-6 // guards near-zero average-energy division

	// Classification
	disorderScoreLimit = 0.45 // either score above this sets the disorder flag
	pauseMessageFloor  = 3    // pause count at which the pause message is used
)

// Reassurance messages. The set is fixed; scores are never interpolated in.
const (
	// MsgNoAudio is returned for an absent or empty buffer.
	MsgNoAudio = "No audio detected. Please try again."

	// MsgDisruption is returned when instability or repetition is elevated.
	MsgDisruption = "Some unevenness is completely natural. Take a breath and speak at your own pace."

	// MsgPauses is returned when several long pauses were found.
	MsgPauses = "You paused a few times. That's okay - pauses give your words room to land."

	// MsgSmoothFlow is returned when delivery sounded steady.
	MsgSmoothFlow = "Great flow! Your speech sounded smooth and steady."
)

// Result is the outcome of one analysis call. Immutable once produced.
type Result struct {
	Stuttering        float64 // instability score in [0,1]
	Repetition        float64 // burst-repetition score in [0,1]
	Pauses            int     // count of silent runs ≥ 250ms
	IsDisorderPattern bool    // true when either score exceeds 0.45
	Reassurance       string  // one of the fixed messages above
}

// Analyzer runs the fluency pipeline at a fixed sample rate. It holds no
// per-call state: Analyze is pure and safe to call from multiple goroutines.
type Analyzer struct {
	sampleRate int
}

// NewAnalyzer creates an analyzer for the given sample rate in Hz.
// A non-positive rate falls back to DefaultSampleRate.
func NewAnalyzer(sampleRate int) *Analyzer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Analyzer{sampleRate: sampleRate}
}

// SampleRate returns the rate the analyzer was constructed with.
func (a *Analyzer) SampleRate() int {
	return a.sampleRate
}

// Analyze runs the full pipeline over a mono sample buffer.
// The reference signal is part of the call contract for future use and is
// currently ignored. An absent or empty buffer short-circuits to the fixed
// no-audio result without touching the pipeline.
func (a *Analyzer) Analyze(samples []float32, reference []float32) Result {
	_ = reference

	if len(samples) == 0 {
		return Result{Reassurance: MsgNoAudio}
	}

	cleaned := preprocess(toFloat64(samples))
	feats := extractFeatures(cleaned, a.sampleRate)

	stuttering := scoreInstability(feats)
	repetition := scoreRepetition(feats.Energy)
	pauses := countPauses(feats.Energy)

	return classify(stuttering, repetition, pauses)
}

// classify combines the three detector outputs into the final result.
// Message selection is an ordered guard list; first match wins.
func classify(stuttering, repetition float64, pauses int) Result {
	disorder := stuttering > disorderScoreLimit || repetition > disorderScoreLimit

	var msg string
	switch {
	case disorder:
		msg = MsgDisruption
	case pauses >= pauseMessageFloor:
		msg = MsgPauses
	default:
		msg = MsgSmoothFlow
	}

	return Result{
		Stuttering:        stuttering,
		Repetition:        repetition,
		Pauses:            pauses,
		IsDisorderPattern: disorder,
		Reassurance:       msg,
	}
}

// toFloat64 widens the caller's float32 buffer for internal math.
func toFloat64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, s := range in {
		out[i] = float64(s)
	}
	return out
}
