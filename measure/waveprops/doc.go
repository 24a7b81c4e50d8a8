// Package waveprops measures basic waveform properties per channel: DC
// offset, peak level, RMS, crest factor, and A-weighted RMS.
//
// Levels are reported in dB relative to a full-scale square wave, i.e. a
// square wave between -1 and +1 measures 0 dB for both peak and RMS. The RMS
// is computed with the DC offset removed; the crest factor relates the peak
// to that DC-removed RMS. The A-weighted RMS runs each channel through the
// IEC 61672 A-weighting filter with fresh filter state per channel.
package waveprops
