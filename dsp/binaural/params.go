package binaural

import (
	"fmt"
	"math"
)

// Params describes one render. The zero value is invalid; start from
// DefaultParams or fill every field. Params is a comparable value type and
// doubles as the memoization key in Cache.
type Params struct {
	// DurationSeconds is the loop length. Must be > 0.
	DurationSeconds float64

	// SampleRate in frames per second. Must be > 0.
	SampleRate int

	// CarrierHz is the base tone frequency. Must be >= 0.
	CarrierHz float64

	// BeatHz is the inter-channel frequency difference magnitude.
	// Must be >= 0.
	BeatHz float64

	// AmpModDepth is the amplitude LFO swing fraction in [0, 1].
	AmpModDepth float64

	// BinauralMix is the fraction of BeatHz applied to the right channel,
	// in [0, 1].
	BinauralMix float64

	// StereoWidth blends the channels toward their mean: 1 keeps full
	// stereo, 0 collapses to mono. In [0, 1].
	StereoWidth float64

	// FreqModDepth is the fraction of the maximum frequency-shift LFO
	// applied to both channels, in [0, 1].
	FreqModDepth float64

	// NoiseLevel is the fraction of the signal replaced by broadband
	// noise, in [0, 1].
	NoiseLevel float64
}

// DefaultParams returns a usable baseline: a 10-second 175 Hz carrier
// with a 1.86 Hz beat, light amplitude modulation and noise.
func DefaultParams() Params {
	return Params{
		DurationSeconds: 10,
		SampleRate:      44100,
		CarrierHz:       175,
		BeatHz:          1.86,
		AmpModDepth:     0.17,
		BinauralMix:     1,
		StereoWidth:     1,
		FreqModDepth:    0,
		NoiseLevel:      0.13,
	}
}

// Validate rejects out-of-domain parameters. Values are never silently
// clamped; a bad field is reported so configuration mistakes stay visible.
func (p Params) Validate() error {
	if p.DurationSeconds <= 0 || math.IsNaN(p.DurationSeconds) || math.IsInf(p.DurationSeconds, 0) {
		return fmt.Errorf("binaural: duration must be > 0 and finite: %v", p.DurationSeconds)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("binaural: sample rate must be > 0: %d", p.SampleRate)
	}
	if p.CarrierHz < 0 || math.IsNaN(p.CarrierHz) || math.IsInf(p.CarrierHz, 0) {
		return fmt.Errorf("binaural: carrier frequency must be >= 0 and finite: %v", p.CarrierHz)
	}
	if p.BeatHz < 0 || math.IsNaN(p.BeatHz) || math.IsInf(p.BeatHz, 0) {
		return fmt.Errorf("binaural: beat frequency must be >= 0 and finite: %v", p.BeatHz)
	}

	unit := []struct {
		name  string
		value float64
	}{
		{"amplitude mod depth", p.AmpModDepth},
		{"binaural mix", p.BinauralMix},
		{"stereo width", p.StereoWidth},
		{"frequency mod depth", p.FreqModDepth},
		{"noise level", p.NoiseLevel},
	}
	for _, f := range unit {
		if f.value < 0 || f.value > 1 || math.IsNaN(f.value) {
			return fmt.Errorf("binaural: %s must be in [0, 1]: %v", f.name, f.value)
		}
	}

	return nil
}

// Frames returns the buffer length implied by duration and sample rate.
func (p Params) Frames() int {
	return int(math.Round(p.DurationSeconds * float64(p.SampleRate)))
}
