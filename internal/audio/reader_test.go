package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeTestWAV writes 16-bit PCM data to a temp WAV file and returns its path.
func writeTestWAV(t *testing.T, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp wav: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write wav data: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close wav encoder: %v", err)
	}
	return path
}

func TestReadFileMono(t *testing.T) {
	// Half-scale constant signal: 16384/32768 = 0.5.
	data := make([]int, 1600)
	for i := range data {
		data[i] = 16384
	}
	path := writeTestWAV(t, 16000, 1, data)

	clip, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if clip.SampleRate != 16000 {
		t.Errorf("SampleRate = %d, want 16000", clip.SampleRate)
	}
	if clip.Channels != 1 {
		t.Errorf("Channels = %d, want 1", clip.Channels)
	}
	if len(clip.Samples) != 1600 {
		t.Fatalf("len(Samples) = %d, want 1600", len(clip.Samples))
	}
	if math.Abs(float64(clip.Samples[0])-0.5) > 1e-4 {
		t.Errorf("Samples[0] = %v, want 0.5", clip.Samples[0])
	}
	if math.Abs(clip.Duration-0.1) > 1e-9 {
		t.Errorf("Duration = %v, want 0.1", clip.Duration)
	}
}

func TestReadFileDownmixesStereo(t *testing.T) {
	// Left at half scale, right silent: the mono mix should sit at 0.25.
	data := make([]int, 800)
	for i := 0; i < len(data); i += 2 {
		data[i] = 16384
		data[i+1] = 0
	}
	path := writeTestWAV(t, 16000, 2, data)

	clip, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if clip.Channels != 2 {
		t.Errorf("Channels = %d, want 2", clip.Channels)
	}
	if len(clip.Samples) != 400 {
		t.Fatalf("len(Samples) = %d, want 400 mono frames", len(clip.Samples))
	}
	if math.Abs(float64(clip.Samples[0])-0.25) > 1e-4 {
		t.Errorf("Samples[0] = %v, want 0.25", clip.Samples[0])
	}
}

func TestReadFileErrors(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected error for missing file")
	}

	notWav := filepath.Join(t.TempDir(), "not.wav")
	if err := os.WriteFile(notWav, []byte("definitely not RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(notWav); err == nil {
		t.Error("expected error for non-WAV content")
	}
}
