package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Int16ToFloat converts int16 PCM sample values to float64 in [-1, +1].
func Int16ToFloat(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) / 32767.0
	}
	return out
}

// MaxAdjacentDelta returns the largest absolute difference between
// consecutive samples, a proxy for the steepest slope in the signal.
func MaxAdjacentDelta(data []float64) float64 {
	maxDelta := 0.0
	for i := 1; i < len(data); i++ {
		d := math.Abs(data[i] - data[i-1])
		if d > maxDelta {
			maxDelta = d
		}
	}
	return maxDelta
}
