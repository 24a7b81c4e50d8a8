package iir

import "github.com/cwbudde/algo-waveprops/dsp/core"

// Section is a direct-form IIR filter with coefficients and internal state.
// It implements Direct Form II Transposed processing for arbitrary order.
type Section struct {
	b []float64 // order+1 taps, a0-normalized
	a []float64
	d []float64 // order delay-line slots
}

// NewSection returns a Section for the given coefficients with zero state.
// The coefficients are normalized so the a0 division happens once here
// rather than per sample.
func NewSection(c Coefficients) (*Section, error) {
	norm, err := c.Normalized()
	if err != nil {
		return nil, err
	}

	return &Section{
		b: norm.B,
		a: norm.A,
		d: make([]float64, norm.Order()),
	}, nil
}

// Order returns the filter order.
func (s *Section) Order() int {
	return len(s.d)
}

// ProcessSample filters one input sample and returns the output.
//
//	y       = b0*x + d0
//	d[i-1]  = b[i]*x - a[i]*y + d[i]
//	d[last] = b[n]*x - a[n]*y
func (s *Section) ProcessSample(x float64) float64 {
	n := len(s.d)
	if n == 0 {
		return s.b[0] * x
	}

	y := s.b[0]*x + s.d[0]
	for i := 1; i < n; i++ {
		s.d[i-1] = s.b[i]*x - s.a[i]*y + s.d[i]
	}

	s.d[n-1] = s.b[n]*x - s.a[n]*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst, leaving src untouched. Both slices
// must have the same length. Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	core.Zero(s.d)
}

// State returns a copy of the current delay-line state.
func (s *Section) State() []float64 {
	out := make([]float64, len(s.d))
	copy(out, s.d)

	return out
}

// SetState restores a previously saved delay-line state. The slice length
// must match the filter order.
func (s *Section) SetState(state []float64) {
	copy(s.d, state)
}

// Coefficients returns a copy of the normalized filter coefficients.
func (s *Section) Coefficients() Coefficients {
	out := Coefficients{
		B: make([]float64, len(s.b)),
		A: make([]float64, len(s.a)),
	}
	copy(out.B, s.b)
	copy(out.A, s.a)

	return out
}
