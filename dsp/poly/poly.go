// Package poly provides dense real polynomial arithmetic used by the
// analog filter design code. Coefficients are stored highest degree first,
// so {1, 4, 4} represents x^2 + 4x + 4.
package poly

import "math"

// Mul returns the product of two polynomials as a full convolution of
// their coefficient sequences. The result has degree deg(a) + deg(b).
// Returns nil if either input is empty.
func Mul(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, len(a)+len(b)-1)
	for i := range a {
		for j := range b {
			out[i+j] += a[i] * b[j]
		}
	}

	return out
}

// Eval evaluates the polynomial at x using Horner's method.
func Eval(coeffs []float64, x complex128) complex128 {
	if len(coeffs) == 0 {
		return 0
	}

	v := complex(coeffs[0], 0)
	for _, c := range coeffs[1:] {
		v = v*x + complex(c, 0)
	}

	return v
}

// Scale returns a new polynomial with every coefficient multiplied by k.
func Scale(coeffs []float64, k float64) []float64 {
	out := make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = c * k
	}

	return out
}

// PadLeft returns coeffs extended with leading zeros to length n. If coeffs
// is already at least n long it is returned unchanged.
func PadLeft(coeffs []float64, n int) []float64 {
	if len(coeffs) >= n {
		return coeffs
	}

	out := make([]float64, n)
	copy(out[n-len(coeffs):], coeffs)

	return out
}

// MaxAbs returns the largest coefficient magnitude, or 0 for an empty
// polynomial. Useful for conditioning checks before root finding.
func MaxAbs(coeffs []float64) float64 {
	m := 0.0
	for _, c := range coeffs {
		if a := math.Abs(c); a > m {
			m = a
		}
	}

	return m
}
