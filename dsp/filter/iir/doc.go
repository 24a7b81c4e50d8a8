// Package iir implements direct-form IIR filtering for arbitrary filter
// order.
//
// A filter is described by [Coefficients]: feedforward taps B and feedback
// taps A, both in ascending powers of z^-1. The transfer function is
//
//	H(z) = (B[0] + B[1]*z^-1 + ... + B[M]*z^-M) /
//	       (A[0] + A[1]*z^-1 + ... + A[N]*z^-N)
//
// [Section] applies the filter with the Direct Form II Transposed structure:
// a single causal forward pass with zero initial state, so the output has the
// same length as the input and carries the usual start-up transient.
//
// Stability and response inspection ([Coefficients.Poles],
// [Coefficients.Response]) operate on the coefficients without touching
// filter state.
package iir
