package iir

import (
	"errors"

	"github.com/cwbudde/algo-waveprops/internal/polyroot"
)

// Errors returned by coefficient validation and analysis.
var (
	ErrEmptyCoefficients = errors.New("iir: empty coefficient set")
	ErrZeroLeadingCoeff  = errors.New("iir: leading denominator coefficient is zero")
)

// Coefficients holds the transfer function taps of a direct-form IIR filter.
// B is the feedforward (numerator) side, A the feedback (denominator) side,
// both in ascending powers of z^-1.
type Coefficients struct {
	B []float64
	A []float64
}

// Order returns the filter order, the higher of the two polynomial degrees.
func (c Coefficients) Order() int {
	order := len(c.A) - 1
	if m := len(c.B) - 1; m > order {
		order = m
	}

	if order < 0 {
		return 0
	}

	return order
}

// Normalized returns a copy with A[0] scaled to exactly 1 and B/A padded to
// equal length (order+1 taps each).
func (c Coefficients) Normalized() (Coefficients, error) {
	if len(c.B) == 0 || len(c.A) == 0 {
		return Coefficients{}, ErrEmptyCoefficients
	}

	if c.A[0] == 0 {
		return Coefficients{}, ErrZeroLeadingCoeff
	}

	n := c.Order() + 1
	a0 := c.A[0]

	out := Coefficients{
		B: make([]float64, n),
		A: make([]float64, n),
	}

	for i, v := range c.B {
		out.B[i] = v / a0
	}

	for i, v := range c.A {
		out.A[i] = v / a0
	}

	return out, nil
}

// Poles returns the z-plane poles of the filter, the roots of
//
//	A[0]*z^N + A[1]*z^(N-1) + ... + A[N] = 0.
func (c Coefficients) Poles() ([]complex128, error) {
	if len(c.A) == 0 {
		return nil, ErrEmptyCoefficients
	}

	if len(c.A) == 1 {
		return nil, nil // FIR, no poles
	}

	return polyroot.Roots(c.A)
}

// IsStable reports whether every pole lies strictly inside the unit circle.
func (c Coefficients) IsStable() (bool, error) {
	if len(c.A) <= 1 {
		return true, nil
	}

	m, err := polyroot.MaxMagnitude(c.A)
	if err != nil {
		return false, err
	}

	return m < 1, nil
}
