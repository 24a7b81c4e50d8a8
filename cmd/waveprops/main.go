// Command waveprops prints waveform properties of a WAV file: DC offset,
// peak level, RMS, crest factor, and A-weighted RMS per channel. All dB
// values are relative to a full-scale square wave.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-waveprops/measure/waveprops"
	"github.com/cwbudde/algo-waveprops/report"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <file.wav>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(filename string) error {
	channels, sampleRate, format, err := loadWAV(filename)
	if err != nil {
		return err
	}

	res, err := waveprops.Analyze(channels, sampleRate)
	if err != nil {
		return err
	}

	sink := report.WriterSink{W: os.Stdout}

	return sink.Render(res, report.Meta{Filename: filename, Format: format})
}

// loadWAV decodes a WAV file into deinterleaved channels scaled to [-1, 1].
func loadWAV(path string) ([][]float64, float64, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, "", err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, "", fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, "", err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, "", fmt.Errorf("invalid wav buffer: %s", path)
	}

	numCh := buf.Format.NumChannels
	frames := len(buf.Data) / numCh
	if frames == 0 {
		return nil, 0, "", fmt.Errorf("empty wav data: %s", path)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))

	channels := make([][]float64, numCh)
	for c := range channels {
		channels[c] = make([]float64, frames)
	}
	for i := range frames {
		for c := range numCh {
			channels[c][i] = float64(buf.Data[i*numCh+c]) * scale
		}
	}

	format := fmt.Sprintf("WAV %d bit, %d Hz", bitDepth, buf.Format.SampleRate)

	return channels, float64(buf.Format.SampleRate), format, nil
}
