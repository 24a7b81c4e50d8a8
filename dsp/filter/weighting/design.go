package weighting

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-waveprops/dsp/core"
	"github.com/cwbudde/algo-waveprops/dsp/filter/iir"
	"github.com/cwbudde/algo-waveprops/dsp/poly"
)

// IEC 61672 analog prototype pole frequencies (Hz) and the A-curve
// calibration gain (dB) that pins the response to 0 dB at 1 kHz.
const (
	f1 = 20.598997 // double pole, low-frequency rolloff
	f2 = 107.65265 // single pole
	f3 = 737.86223 // single pole
	f4 = 12194.217 // double pole, high-frequency rolloff

	a1000 = 1.9997
)

// Errors returned by the design functions.
var (
	ErrInvalidSampleRate = errors.New("weighting: sample rate must be positive")
	ErrUnstableFilter    = errors.New("weighting: designed filter is unstable")
)

// AnalogPrototype is a continuous-time transfer function as a pair of real
// polynomials in s, coefficients highest degree first.
type AnalogPrototype struct {
	Num []float64
	Den []float64
}

// DesignAnalogA returns the continuous-time A-weighting transfer function
//
//	H_A(s) = K * s^4 / ((s^2 + 2ω4·s + ω4^2)(s^2 + 2ω1·s + ω1^2)(s + ω3)(s + ω2))
//
// with ω_i = 2π·f_i and K = ω4^2 · 10^(A1000/20). The numerator is a single
// degree-4 term; the denominator is the expanded product of the four pole
// factors (degree 6).
func DesignAnalogA() AnalogPrototype {
	w1 := 2 * math.Pi * f1
	w2 := 2 * math.Pi * f2
	w3 := 2 * math.Pi * f3
	w4 := 2 * math.Pi * f4

	k := w4 * w4 * core.DBToLinear(a1000)

	den := poly.Mul(
		[]float64{1, 2 * w4, w4 * w4},
		[]float64{1, 2 * w1, w1 * w1},
	)
	den = poly.Mul(den, []float64{1, w3})
	den = poly.Mul(den, []float64{1, w2})

	return AnalogPrototype{
		Num: []float64{k, 0, 0, 0, 0},
		Den: den,
	}
}

// Bilinear maps an analog prototype to digital filter coefficients at the
// given sample rate by substituting s = 2·Fs·(1 − z⁻¹)/(1 + z⁻¹) and
// clearing the common (1 + z⁻¹)^d denominator. The corner frequencies are
// not pre-warped. Both tap slices come out with d+1 entries, d being the
// higher of the two prototype degrees, and A[0] normalized to 1.
func Bilinear(p AnalogPrototype, sampleRate float64) (iir.Coefficients, error) {
	if sampleRate <= 0 {
		return iir.Coefficients{}, ErrInvalidSampleRate
	}

	if len(p.Num) == 0 || len(p.Den) == 0 {
		return iir.Coefficients{}, iir.ErrEmptyCoefficients
	}

	d := len(p.Den) - 1
	if m := len(p.Num) - 1; m > d {
		d = m
	}

	raw := iir.Coefficients{
		B: bilinearPoly(poly.PadLeft(p.Num, d+1), sampleRate),
		A: bilinearPoly(poly.PadLeft(p.Den, d+1), sampleRate),
	}

	return raw.Normalized()
}

// bilinearPoly substitutes s = 2·Fs·(1 − z⁻¹)/(1 + z⁻¹) into one polynomial
// of degree d (descending powers of s, d+1 coefficients) and returns the
// numerator taps in ascending powers of z⁻¹ after multiplying through by
// (1 + z⁻¹)^d.
func bilinearPoly(coeffs []float64, sampleRate float64) []float64 {
	d := len(coeffs) - 1
	out := make([]float64, d+1)

	for i, c := range coeffs {
		k := d - i // power of s this coefficient multiplies

		term := []float64{c * math.Pow(2*sampleRate, float64(k))}
		for range k {
			term = poly.Mul(term, []float64{1, -1})
		}
		for range d - k {
			term = poly.Mul(term, []float64{1, 1})
		}

		for n, v := range term {
			out[n] += v
		}
	}

	return out
}

// DesignA returns digital A-weighting coefficients for the given sample
// rate. The denominator poles are verified to lie strictly inside the unit
// circle; pathological sample rates that break stability are rejected with
// [ErrUnstableFilter].
func DesignA(sampleRate float64) (iir.Coefficients, error) {
	coeffs, err := Bilinear(DesignAnalogA(), sampleRate)
	if err != nil {
		return iir.Coefficients{}, err
	}

	stable, err := coeffs.IsStable()
	if err != nil {
		return iir.Coefficients{}, fmt.Errorf("weighting: pole check failed: %w", err)
	}

	if !stable {
		return iir.Coefficients{}, fmt.Errorf("%w: sample rate %g Hz", ErrUnstableFilter, sampleRate)
	}

	return coeffs, nil
}

// NewA returns a ready-to-use A-weighting filter section for the given
// sample rate, with zero initial state.
func NewA(sampleRate float64) (*iir.Section, error) {
	coeffs, err := DesignA(sampleRate)
	if err != nil {
		return nil, err
	}

	return iir.NewSection(coeffs)
}
