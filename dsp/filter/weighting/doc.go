// Package weighting designs the IEC 61672 A-weighting filter used for
// perceptual level measurements.
//
// The design follows the classic two-step recipe: build the continuous-time
// transfer function from the standard's corner frequencies, then map it to a
// discrete-time filter with the bilinear transform at the target sample
// rate. The corner frequencies are not pre-warped before the transform, so
// the realized curve deviates from the analog prototype as frequency
// approaches Nyquist; the error is concentrated near the 12.2 kHz corner.
// Sample rates of 44.1 kHz and above keep the audible band well within
// tolerance (48 kHz yields a class 1-compliant filter); lower rates degrade
// accuracy but are not rejected.
//
// The resulting filter is a single 6th-order direct-form section
// ([iir.Coefficients] with 7 taps on each side), normalized to 0 dB at the
// 1 kHz reference frequency via the standard A1000 calibration gain.
package weighting
