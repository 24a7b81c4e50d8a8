package time

import "math"

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length          int
	DC              float64 // mean
	DCPercent       float64 // mean scaled to percent of full scale
	RMS             float64 // raw RMS, DC included
	RMS_dB          float64
	DCRemovedRMS    float64 // RMS of the signal with its mean subtracted
	DCRemovedRMS_dB float64
	Max             float64
	MaxPos          int
	Min             float64
	MinPos          int
	Peak            float64 // max(|max|, |min|)
	Peak_dB         float64
	Range           float64 // max - min
	Range_dB        float64
	CrestFactor     float64 // peak / DC-removed RMS (linear)
	CrestFactor_dB  float64
	Energy          float64 // sum of squares
	Power           float64 // energy / length
	ZeroCrossings   int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// ratioTodB converts a linear ratio to decibels: 20 * log10(value).
// Returns -Inf for zero values.
func ratioTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(value)
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		RMS_dB:          math.Inf(-1),
		DCRemovedRMS_dB: math.Inf(-1),
		Peak_dB:         math.Inf(-1),
		Range_dB:        math.Inf(-1),
		CrestFactor_dB:  math.Inf(-1),
	}
}

// Calculate computes all time-domain statistics in a single pass using
// Welford's online algorithm for a numerically stable central second moment.
//
// The crest factor relates the peak to the DC-removed RMS, so a constant
// offset does not inflate the apparent level headroom. A silent signal has a
// crest factor of 0 rather than a division-by-zero artifact.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	// Welford accumulators.
	var (
		mean float64
		m2   float64
	)

	// Running aggregates.
	var (
		sumSq         float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	dcRemovedRMS := math.Sqrt(m2 / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))
	rangeVal := maxVal - minVal

	var crest, crestdB float64
	if dcRemovedRMS == 0 {
		crest = 0
		crestdB = 0
	} else {
		crest = peak / dcRemovedRMS
		crestdB = ratioTodB(crest)
	}

	return Stats{
		Length:          n,
		DC:              mean,
		DCPercent:       mean * 100,
		RMS:             rms,
		RMS_dB:          ampTodB(rms),
		DCRemovedRMS:    dcRemovedRMS,
		DCRemovedRMS_dB: ampTodB(dcRemovedRMS),
		Max:             maxVal,
		MaxPos:          maxPos,
		Min:             minVal,
		MinPos:          minPos,
		Peak:            peak,
		Peak_dB:         ampTodB(peak),
		Range:           rangeVal,
		Range_dB:        ampTodB(rangeVal),
		CrestFactor:     crest,
		CrestFactor_dB:  crestdB,
		Energy:          sumSq,
		Power:           sumSq / nf,
		ZeroCrossings:   zeroCrossings,
	}
}

// RMS returns the root-mean-square of the signal, DC included.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// DCRemovedRMS returns the RMS of the signal with its mean subtracted,
// i.e. the population standard deviation.
func DCRemovedRMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var (
		mean float64
		m2   float64
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}

	return math.Sqrt(m2 / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// CrestFactor returns the crest factor (peak / DC-removed RMS) of the signal.
// Returns 0 if the DC-removed RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := DCRemovedRMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	if len(signal) < 2 {
		return 0
	}

	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}
