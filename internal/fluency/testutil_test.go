package fluency

import (
	"math"
	"testing"
)

// testSignal builds synthetic mono buffers for pipeline tests.
// All generators are deterministic so expectations stay bit-stable.
type testSignal struct {
	rate    int
	samples []float32
}

func newTestSignal(t *testing.T, sampleRate int) *testSignal {
	t.Helper()
	return &testSignal{rate: sampleRate}
}

// tone appends a sine segment of the given duration, frequency and amplitude.
// Phase continues from zero at the start of each segment.
func (s *testSignal) tone(durationSec, freq, amp float64) *testSignal {
	n := int(durationSec * float64(s.rate))
	for i := 0; i < n; i++ {
		v := amp * math.Sin(2*math.Pi*freq*float64(i)/float64(s.rate))
		s.samples = append(s.samples, float32(v))
	}
	return s
}

// silence appends a run of zero samples.
func (s *testSignal) silence(durationSec float64) *testSignal {
	n := int(durationSec * float64(s.rate))
	s.samples = append(s.samples, make([]float32, n)...)
	return s
}

// noise appends deterministic white noise at the given amplitude.
// Uses a simple LCG to avoid math/rand seeding concerns.
func (s *testSignal) noise(durationSec, amp float64) *testSignal {
	n := int(durationSec * float64(s.rate))
	seed := uint32(12345)
	for i := 0; i < n; i++ {
		seed = seed*1664525 + 1013904223
		v := (float64(seed)/float64(math.MaxUint32)*2 - 1) * amp
		s.samples = append(s.samples, float32(v))
	}
	return s
}

// burstTrain appends count tone bursts separated by silence gaps.
// No trailing gap is added after the final burst.
func (s *testSignal) burstTrain(count int, burstSec, gapSec, freq, amp float64) *testSignal {
	for i := 0; i < count; i++ {
		if i > 0 {
			s.silence(gapSec)
		}
		s.tone(burstSec, freq, amp)
	}
	return s
}

func (s *testSignal) buf() []float32 {
	return s.samples
}
