// Package tone estimates the dominant frequency of a rendered signal.
//
// The binaural renderer snaps every oscillator to an integer number of
// cycles per buffer, so a rectangular analysis window introduces no
// spectral leakage and a single FFT peak with parabolic interpolation
// recovers the rendered frequency to a small fraction of a bin.
package tone

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Estimate returns the dominant frequency of signal in Hz.
//
// The signal is zero-padded to the next power of two, transformed, and the
// highest-magnitude bin above DC is refined with parabolic interpolation.
// A signal with no oscillating component (all zeros or DC) returns 0.
func Estimate(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) < 4 {
		return 0, fmt.Errorf("tone: signal too short: %d samples", len(signal))
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("tone: sample rate must be > 0: %v", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("tone: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return 0, fmt.Errorf("tone: forward FFT failed: %w", err)
	}

	binCount := fftSize/2 + 1
	mag := magnitudes(out[:binCount])

	peakBin := 0
	peakMag := 0.0
	for i := 1; i < binCount-1; i++ {
		if mag[i] > peakMag {
			peakMag = mag[i]
			peakBin = i
		}
	}
	if peakMag == 0 {
		return 0, nil
	}

	// Parabolic interpolation around the peak bin.
	prev, next := mag[peakBin-1], mag[peakBin+1]
	denom := prev - 2*peakMag + next
	delta := 0.0
	if denom != 0 {
		delta = 0.5 * (prev - next) / denom
	}

	return (float64(peakBin) + delta) * sampleRate / float64(fftSize), nil
}

func magnitudes(bins []complex128) []float64 {
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)
	return out
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
