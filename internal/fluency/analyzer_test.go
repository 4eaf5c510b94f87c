package fluency

import (
	"reflect"
	"testing"
)

func TestAnalyzeDegenerateInput(t *testing.T) {
	want := Result{Reassurance: MsgNoAudio}

	a := NewAnalyzer(16000)
	if got := a.Analyze(nil, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze(nil) = %+v, want %+v", got, want)
	}
	if got := a.Analyze([]float32{}, nil); !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze(empty) = %+v, want %+v", got, want)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	buf := newTestSignal(t, 16000).noise(2.0, 0.3).buf()
	a := NewAnalyzer(16000)

	first := a.Analyze(buf, nil)
	second := a.Analyze(buf, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestAnalyzeReferenceSignalHasNoEffect(t *testing.T) {
	buf := newTestSignal(t, 16000).tone(1.0, 300, 0.5).buf()
	ref := newTestSignal(t, 16000).noise(1.0, 0.9).buf()

	a := NewAnalyzer(16000)
	without := a.Analyze(buf, nil)
	with := a.Analyze(buf, ref)
	if !reflect.DeepEqual(without, with) {
		t.Errorf("reference signal changed the result: %+v vs %+v", without, with)
	}
}

func TestAnalyzeScoreRanges(t *testing.T) {
	inputs := map[string][]float32{
		"noise":           newTestSignal(t, 16000).noise(3.0, 0.5).buf(),
		"tone":            newTestSignal(t, 16000).tone(3.0, 200, 0.7).buf(),
		"tone with gaps":  newTestSignal(t, 16000).tone(1.0, 200, 0.7).silence(0.5).tone(1.0, 200, 0.7).buf(),
		"single frame":    newTestSignal(t, 16000).tone(0.02, 200, 0.7).buf(),
		"sub frame":       newTestSignal(t, 16000).tone(0.01, 200, 0.7).buf(),
		"constant dc":     repeatFloat32(0.4, 16000),
		"near silence":    repeatFloat32(1e-12, 16000),
		"clipping bursts": newTestSignal(t, 16000).burstTrain(4, 0.2, 0.2, 150, 1.5).buf(),
	}

	a := NewAnalyzer(16000)
	for name, buf := range inputs {
		t.Run(name, func(t *testing.T) {
			got := a.Analyze(buf, nil)
			if got.Stuttering < 0 || got.Stuttering > 1 {
				t.Errorf("Stuttering = %v, out of [0,1]", got.Stuttering)
			}
			if got.Repetition < 0 || got.Repetition > 1 {
				t.Errorf("Repetition = %v, out of [0,1]", got.Repetition)
			}
			if got.Pauses < 0 {
				t.Errorf("Pauses = %d, want >= 0", got.Pauses)
			}
			if got.Reassurance == "" {
				t.Error("Reassurance is empty")
			}
		})
	}
}

func TestAnalyzeSilenceOnlyBuffer(t *testing.T) {
	// One second of digital silence: no voiced frames, no bursts, and the
	// whole series is a single trailing silent run well past 250ms.
	buf := newTestSignal(t, 16000).silence(1.0).buf()

	got := NewAnalyzer(16000).Analyze(buf, nil)
	if got.Stuttering != 0 {
		t.Errorf("Stuttering = %v, want 0", got.Stuttering)
	}
	if got.Repetition != 0 {
		t.Errorf("Repetition = %v, want 0", got.Repetition)
	}
	if got.Pauses != 1 {
		t.Errorf("Pauses = %d, want 1", got.Pauses)
	}
	if got.IsDisorderPattern {
		t.Error("IsDisorderPattern = true, want false")
	}
	if got.Reassurance != MsgSmoothFlow {
		t.Errorf("Reassurance = %q, want smooth-flow message", got.Reassurance)
	}
}

func TestAnalyzeSteadyTone(t *testing.T) {
	// A sustained sine is the smoothest possible delivery: plenty of voiced
	// frames, near-zero deltas between neighbours, no silence.
	buf := newTestSignal(t, 16000).tone(2.0, 440, 0.6).buf()

	got := NewAnalyzer(16000).Analyze(buf, nil)
	if got.Stuttering > 0.1 {
		t.Errorf("Stuttering = %v, want near 0 for a steady tone", got.Stuttering)
	}
	if got.IsDisorderPattern {
		t.Error("IsDisorderPattern = true, want false")
	}
	if got.Reassurance != MsgSmoothFlow {
		t.Errorf("Reassurance = %q, want smooth-flow message", got.Reassurance)
	}
}

func TestAnalyzeRepeatedBursts(t *testing.T) {
	// Four identical tone bursts separated by identical gaps. The burst/gap
	// period is a whole number of hops so framing repeats exactly and every
	// consecutive burst pair is a near-perfect duplicate.
	buf := newTestSignal(t, 16000).burstTrain(4, 0.3, 0.2, 440, 0.8).buf()

	got := NewAnalyzer(16000).Analyze(buf, nil)
	if got.Repetition <= 0.75 {
		t.Errorf("Repetition = %v, want > 0.75 for identical bursts", got.Repetition)
	}
	if !got.IsDisorderPattern {
		t.Error("IsDisorderPattern = false, want true once repetition exceeds 0.45")
	}
	if got.Reassurance != MsgDisruption {
		t.Errorf("Reassurance = %q, want disruption message", got.Reassurance)
	}
}

func TestAnalyzePauseMessage(t *testing.T) {
	// Three long gaps between tone segments of very different lengths. Gaps
	// are 400ms, comfortably past the 250ms pause floor, while the uneven
	// segment durations keep the repetition detector quiet.
	sig := newTestSignal(t, 16000)
	for i, dur := range []float64{1.0, 0.4, 1.3, 0.5} {
		if i > 0 {
			sig.silence(0.4)
		}
		sig.tone(dur, 250, 0.6)
	}

	got := NewAnalyzer(16000).Analyze(sig.buf(), nil)
	if got.Pauses < 3 {
		t.Fatalf("Pauses = %d, want >= 3", got.Pauses)
	}
	if got.IsDisorderPattern {
		t.Errorf("IsDisorderPattern = true, want false (scores: %v, %v)", got.Stuttering, got.Repetition)
	}
	if got.Reassurance != MsgPauses {
		t.Errorf("Reassurance = %q, want pause message", got.Reassurance)
	}
}

func TestNewAnalyzerDefaultsSampleRate(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultSampleRate},
		{-8000, DefaultSampleRate},
		{44100, 44100},
	}
	for _, tt := range tests {
		if got := NewAnalyzer(tt.in).SampleRate(); got != tt.want {
			t.Errorf("NewAnalyzer(%d).SampleRate() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func repeatFloat32(v float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}
