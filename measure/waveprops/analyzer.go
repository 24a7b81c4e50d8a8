package waveprops

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveprops/dsp/core"
	"github.com/cwbudde/algo-waveprops/dsp/filter/iir"
	"github.com/cwbudde/algo-waveprops/dsp/filter/weighting"
	timestats "github.com/cwbudde/algo-waveprops/stats/time"
)

// Errors returned by the analyzer.
var (
	ErrInvalidSampleRate     = errors.New("waveprops: sample rate must be positive")
	ErrEmptySignal           = errors.New("waveprops: channel contains no samples")
	ErrChannelLengthMismatch = errors.New("waveprops: channels differ in length")
	ErrUnstableFilter        = errors.New("waveprops: weighting filter is unstable at this sample rate")
	ErrNumericInstability    = errors.New("waveprops: non-finite value in filtered signal")
)

// ChannelMetrics holds the measured properties of a single channel.
//
// All dB values use the full-scale square wave as the 0 dB reference: a
// square wave swinging between -1 and +1 has both peak and RMS levels of
// exactly 0 dB. The RMS is taken with the DC offset removed, so a constant
// shift shows up only in DC and DCPercent.
//
//nolint:revive
type ChannelMetrics struct {
	DC        float64
	DCPercent float64

	RMS    float64
	RMS_dB float64

	Peak    float64
	Peak_dB float64

	CrestFactor    float64
	CrestFactor_dB float64

	AWeightedRMS    float64
	AWeightedRMS_dB float64

	// ADifference_dB is the A-weighted level relative to the unweighted
	// level, i.e. AWeightedRMS_dB - RMS_dB.
	ADifference_dB float64
}

// Result holds the analysis of all channels of a waveform.
type Result struct {
	SampleRate float64
	Frames     int
	Channels   []ChannelMetrics

	// ChannelsIdentical is true when the waveform has two or more channels
	// and all of them are sample-for-sample equal.
	ChannelsIdentical bool
}

// Duration returns the waveform length in seconds.
func (r Result) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}

	return float64(r.Frames) / r.SampleRate
}

// Analyzer measures waveform properties channel by channel. An Analyzer is
// cheap to create; the weighting filter is designed once per Analyze call
// and a scratch buffer is reused across channels, so analyzing many files
// through one Analyzer avoids repeated allocations.
type Analyzer struct {
	cfg     AnalyzerConfig
	scratch []float64
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	return &Analyzer{cfg: ApplyAnalyzerOptions(opts...)}
}

// Analyze is a one-shot analysis of deinterleaved channel data at the given
// sample rate. Samples are expected in the range [-1, 1].
func Analyze(channels [][]float64, sampleRate float64) (Result, error) {
	a := &Analyzer{
		cfg: AnalyzerConfig{
			ProcessorConfig: core.ProcessorConfig{SampleRate: sampleRate},
		},
	}

	return a.Analyze(channels)
}

// Analyze measures every channel and returns the combined result.
//
// All channels must be non-empty and of equal length. The A-weighting filter
// is designed once and run with fresh state for each channel.
func (a *Analyzer) Analyze(channels [][]float64) (Result, error) {
	if a.cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: %g", ErrInvalidSampleRate, a.cfg.SampleRate)
	}

	if len(channels) == 0 {
		return Result{}, ErrEmptySignal
	}

	frames := len(channels[0])
	for i, ch := range channels {
		if len(ch) == 0 {
			return Result{}, fmt.Errorf("%w: channel %d", ErrEmptySignal, i)
		}

		if len(ch) != frames {
			return Result{}, fmt.Errorf("%w: channel 0 has %d samples, channel %d has %d",
				ErrChannelLengthMismatch, frames, i, len(ch))
		}
	}

	coeffs, err := weighting.DesignA(a.cfg.SampleRate)
	if err != nil {
		switch {
		case errors.Is(err, weighting.ErrInvalidSampleRate):
			return Result{}, fmt.Errorf("%w: %g", ErrInvalidSampleRate, a.cfg.SampleRate)
		case errors.Is(err, weighting.ErrUnstableFilter):
			return Result{}, fmt.Errorf("%w: %g Hz", ErrUnstableFilter, a.cfg.SampleRate)
		default:
			return Result{}, err
		}
	}

	result := Result{
		SampleRate: a.cfg.SampleRate,
		Frames:     frames,
		Channels:   make([]ChannelMetrics, len(channels)),
	}

	for i, ch := range channels {
		metrics, err := a.analyzeChannel(ch, coeffs)
		if err != nil {
			return Result{}, fmt.Errorf("channel %d: %w", i, err)
		}

		result.Channels[i] = metrics
	}

	result.ChannelsIdentical = channelsIdentical(channels)

	return result, nil
}

func (a *Analyzer) analyzeChannel(ch []float64, coeffs iir.Coefficients) (ChannelMetrics, error) {
	s := timestats.Calculate(ch)

	section, err := iir.NewSection(coeffs)
	if err != nil {
		return ChannelMetrics{}, err
	}

	a.scratch = core.EnsureLen(a.scratch, len(ch))
	section.ProcessBlockTo(a.scratch, ch)

	weighted, err := weightedRMS(a.scratch)
	if err != nil {
		return ChannelMetrics{}, err
	}

	return ChannelMetrics{
		DC:              s.DC,
		DCPercent:       s.DCPercent,
		RMS:             s.DCRemovedRMS,
		RMS_dB:          s.DCRemovedRMS_dB,
		Peak:            s.Peak,
		Peak_dB:         s.Peak_dB,
		CrestFactor:     s.CrestFactor,
		CrestFactor_dB:  s.CrestFactor_dB,
		AWeightedRMS:    weighted,
		AWeightedRMS_dB: core.LinearToDB(weighted),
		ADifference_dB:  differenceDB(weighted, s.DCRemovedRMS),
	}, nil
}

// weightedRMS returns the DC-removed RMS of the filtered signal, using the
// same convention as the unweighted level. Non-finite values are rejected;
// they indicate the filter blew up on pathological input.
func weightedRMS(filtered []float64) (float64, error) {
	var mean, m2 float64
	for i, x := range filtered {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: sample %d", ErrNumericInstability, i)
		}

		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return math.Sqrt(m2 / float64(len(filtered))), nil
}

// differenceDB returns the level of a relative to b in dB. A silent channel
// has no meaningful difference, so both levels being zero yields 0 dB.
func differenceDB(a, b float64) float64 {
	if b == 0 {
		if a == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return core.LinearToDB(a / b)
}

func channelsIdentical(channels [][]float64) bool {
	if len(channels) < 2 {
		return false
	}

	first := channels[0]
	for _, ch := range channels[1:] {
		for i, v := range ch {
			if v != first[i] {
				return false
			}
		}
	}

	return true
}
