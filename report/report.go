// Package report formats waveform analysis results as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-waveprops/measure/waveprops"
)

// Header is printed once above the per-file results and names the level
// reference used for all dB values.
const Header = "dB values are relative to a full-scale square wave"

const separator = "-----------------"

// Meta describes the source of an analysis result.
type Meta struct {
	Filename string
	Format   string
}

// Lines renders an analysis result as report lines, one entry per line,
// without trailing newlines.
func Lines(res waveprops.Result, meta Meta) []string {
	lines := []string{
		fmt.Sprintf("Properties for %q", meta.Filename),
	}

	if meta.Format != "" {
		lines = append(lines, meta.Format)
	}

	channels := fmt.Sprintf("Channels: %d", len(res.Channels))
	if res.ChannelsIdentical && len(res.Channels) == 2 {
		channels += " (L and R are identical)"
	}

	lines = append(lines,
		channels,
		fmt.Sprintf("Sampling rate: %d Hz", int(res.SampleRate)),
		fmt.Sprintf("Frames: %d", res.Frames),
		fmt.Sprintf("Length: %g seconds", res.Duration()),
		separator,
	)

	for _, m := range res.Channels {
		lines = append(lines,
			fmt.Sprintf("DC offset: %f (%.3f%%)", m.DC, m.DCPercent),
			fmt.Sprintf("Crest factor: %.3f (%.3f dB)", m.CrestFactor, m.CrestFactor_dB),
			fmt.Sprintf("Peak level: %.3f (%.3f dB)", m.Peak, m.Peak_dB),
			fmt.Sprintf("RMS level: %.3f (%.3f dB)", m.RMS, m.RMS_dB),
			fmt.Sprintf("A-weighted: %.3f (%.3f dB)", m.AWeightedRMS, m.AWeightedRMS_dB),
			fmt.Sprintf("A-difference: %.3f dB", m.ADifference_dB),
			separator,
		)
	}

	return lines
}

// Sink receives a rendered report.
type Sink interface {
	Render(res waveprops.Result, meta Meta) error
}

// WriterSink renders reports as plain text to an io.Writer, prefixed with
// [Header] and a separator line.
type WriterSink struct {
	W io.Writer
}

// Render writes the report for one analysis result.
func (s WriterSink) Render(res waveprops.Result, meta Meta) error {
	var b strings.Builder

	b.WriteString(Header)
	b.WriteByte('\n')
	b.WriteString(separator)
	b.WriteByte('\n')

	for _, line := range Lines(res, meta) {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(s.W, b.String())

	return err
}
