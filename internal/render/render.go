// Package render wires command-line flags to the binaural synthesizer for
// the cmd tools.
package render

import (
	"flag"
	"fmt"

	"github.com/jayani55/binaural-dsp/dsp/binaural"
	"github.com/jayani55/binaural-dsp/measure/tone"
)

// Config carries the parsed synthesis flags.
type Config struct {
	Params binaural.Params
	Seed   int64
}

// BindFlags registers one flag per synthesis parameter on fs and returns a
// Config whose fields are filled in when fs is parsed. Defaults follow
// binaural.DefaultParams.
func BindFlags(fs *flag.FlagSet) *Config {
	cfg := &Config{Params: binaural.DefaultParams(), Seed: 1}
	p := &cfg.Params

	fs.Float64Var(&p.DurationSeconds, "duration", p.DurationSeconds, "loop duration in seconds")
	fs.IntVar(&p.SampleRate, "rate", p.SampleRate, "sample rate in Hz")
	fs.Float64Var(&p.CarrierHz, "carrier", p.CarrierHz, "carrier frequency in Hz")
	fs.Float64Var(&p.BeatHz, "beat", p.BeatHz, "binaural beat frequency in Hz")
	fs.Float64Var(&p.AmpModDepth, "amp-mod", p.AmpModDepth, "amplitude modulation depth (0..1)")
	fs.Float64Var(&p.BinauralMix, "mix", p.BinauralMix, "binaural mix (0..1)")
	fs.Float64Var(&p.StereoWidth, "width", p.StereoWidth, "stereo width (0..1)")
	fs.Float64Var(&p.FreqModDepth, "freq-mod", p.FreqModDepth, "frequency modulation depth (0..1)")
	fs.Float64Var(&p.NoiseLevel, "noise", p.NoiseLevel, "noise level (0..1)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")

	return cfg
}

// Run renders one loop from the parsed configuration.
func Run(cfg *Config) (*binaural.Waveform, error) {
	s := binaural.NewSynthesizer(binaural.WithSeed(cfg.Seed))
	w, err := s.Synthesize(cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return w, nil
}

// MeasureChannels estimates the dominant frequency of each rendered
// channel.
func MeasureChannels(w *binaural.Waveform) (left, right float64, err error) {
	l, r := w.SplitChannels()

	left, err = tone.Estimate(toFloat(l), float64(w.SampleRate()))
	if err != nil {
		return 0, 0, fmt.Errorf("render: left channel: %w", err)
	}
	right, err = tone.Estimate(toFloat(r), float64(w.SampleRate()))
	if err != nil {
		return 0, 0, fmt.Errorf("render: right channel: %w", err)
	}
	return left, right, nil
}

func toFloat(samples []int16) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s) / 32767.0
	}
	return out
}
