package iir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waveprops/dsp/poly"
)

// Response computes the complex frequency response H(e^jw) of the filter
// at the given frequency (Hz) and sample rate (Hz).
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	zinv := cmplx.Exp(complex(0, -w))

	// B and A are in ascending powers of z^-1; Horner wants the highest
	// power first, so evaluate the reversed tap order.
	num := evalAscending(c.B, zinv)
	den := evalAscending(c.A, zinv)

	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

func evalAscending(taps []float64, zinv complex128) complex128 {
	rev := make([]float64, len(taps))
	for i, v := range taps {
		rev[len(taps)-1-i] = v
	}

	return poly.Eval(rev, zinv)
}

// ImpulseResponse computes n samples of the impulse response by feeding an
// impulse through the section. The filter state is saved and restored so
// this method does not disturb in-progress filtering.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	s.Reset()

	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}

	s.SetState(saved)

	return ir
}
