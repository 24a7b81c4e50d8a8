package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-waveprops/measure/waveprops"
)

// writeTestWAV writes a 16-bit PCM WAV with the given interleaved samples.
func writeTestWAV(t *testing.T, path string, data []int, sampleRate, numChans int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, numChans, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: numChans, SampleRate: sampleRate},
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadWAV_MonoSine(t *testing.T) {
	const (
		sampleRate = 48000
		frames     = 4800
	)

	data := make([]int, frames)
	for i := range data {
		data[i] = int(math.Round(30000 * math.Sin(2*math.Pi*1000*float64(i)/sampleRate)))
	}

	path := filepath.Join(t.TempDir(), "sine.wav")
	writeTestWAV(t, path, data, sampleRate, 1)

	channels, sr, format, err := loadWAV(path)
	if err != nil {
		t.Fatal(err)
	}

	if sr != sampleRate {
		t.Errorf("sample rate: got %g, want %d", sr, sampleRate)
	}
	if len(channels) != 1 {
		t.Fatalf("channels: got %d, want 1", len(channels))
	}
	if len(channels[0]) != frames {
		t.Errorf("frames: got %d, want %d", len(channels[0]), frames)
	}
	if format == "" {
		t.Error("format string is empty")
	}

	// Peak of the decoded signal should be near 30000/32768.
	var peak float64
	for _, v := range channels[0] {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	want := 30000.0 / 32768.0
	if math.Abs(peak-want) > 1e-3 {
		t.Errorf("peak: got %g, want %g", peak, want)
	}
}

func TestLoadWAV_StereoDeinterleave(t *testing.T) {
	const frames = 100

	data := make([]int, 2*frames)
	for i := range frames {
		data[2*i] = 1000   // left
		data[2*i+1] = -500 // right
	}

	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeTestWAV(t, path, data, 44100, 2)

	channels, _, _, err := loadWAV(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(channels) != 2 {
		t.Fatalf("channels: got %d, want 2", len(channels))
	}
	for i := range frames {
		if channels[0][i] != 1000.0/32768.0 {
			t.Fatalf("left[%d] = %g, want %g", i, channels[0][i], 1000.0/32768.0)
		}
		if channels[1][i] != -500.0/32768.0 {
			t.Fatalf("right[%d] = %g, want %g", i, channels[1][i], -500.0/32768.0)
		}
	}
}

func TestLoadWAV_NotAWavFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.wav")
	if err := os.WriteFile(path, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, _, err := loadWAV(path); err == nil {
		t.Fatal("expected error for invalid wav file")
	}
}

func TestEndToEndAnalysis(t *testing.T) {
	const (
		sampleRate = 48000
		frames     = 48000
	)

	data := make([]int, frames)
	for i := range data {
		data[i] = int(math.Round(32000 * math.Sin(2*math.Pi*1000*float64(i)/sampleRate)))
	}

	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTestWAV(t, path, data, sampleRate, 1)

	channels, sr, _, err := loadWAV(path)
	if err != nil {
		t.Fatal(err)
	}

	res, err := waveprops.Analyze(channels, sr)
	if err != nil {
		t.Fatal(err)
	}

	m := res.Channels[0]
	wantRMS := 32000.0 / 32768.0 / math.Sqrt2
	if math.Abs(m.RMS-wantRMS) > 1e-3 {
		t.Errorf("RMS: got %g, want %g", m.RMS, wantRMS)
	}
	if math.Abs(m.CrestFactor_dB-3.01) > 0.02 {
		t.Errorf("CrestFactor_dB: got %g, want ~3.01", m.CrestFactor_dB)
	}
	if math.Abs(m.ADifference_dB) > 0.1 {
		t.Errorf("ADifference_dB: got %g, want ~0", m.ADifference_dB)
	}
}
