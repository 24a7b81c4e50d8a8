// Package spectrum provides FFT-based spectrum helpers used to verify filter
// responses: forward transforms of real signals and vectorized magnitude and
// power extraction of complex spectrum bins.
package spectrum
