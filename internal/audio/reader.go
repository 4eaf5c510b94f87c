// Package audio provides WAV file decoding for the analyzer.
package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// Clip is a fully decoded audio file, downmixed to mono float32 in [-1, 1].
type Clip struct {
	Samples    []float32
	SampleRate int
	Channels   int     // channel count of the source file
	BitDepth   int     // bits per sample of the source file
	Duration   float64 // seconds
}

// ReadFile decodes a PCM WAV file into a mono Clip. Multi-channel sources are
// downmixed by averaging across channels; integer samples are scaled by the
// source bit depth so amplitudes land in [-1, 1].
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	bitDepth := int(dec.BitDepth)
	if bitDepth < 8 {
		return nil, fmt.Errorf("unsupported bit depth %d in %s", bitDepth, path)
	}

	// Full-scale value for the source bit depth, e.g. 32768 for 16-bit.
	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / channels
	samples := make([]float32, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = float32(sum / float64(channels) / scale)
	}

	clip := &Clip{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		BitDepth:   bitDepth,
	}
	if clip.SampleRate > 0 {
		clip.Duration = float64(frames) / float64(clip.SampleRate)
	}
	return clip, nil
}
