package binaural

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/jayani55/binaural-dsp/dsp/buffer"
	"github.com/jayani55/binaural-dsp/dsp/pcm"
	"github.com/jayani55/binaural-dsp/dsp/signal"
)

// Synthesizer renders waveforms from a shared configuration. A zero-cost
// value type is deliberately avoided: the synthesizer owns a scratch pool
// so repeated renders reuse allocations.
type Synthesizer struct {
	seed int64
	pool *buffer.Pool
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed sets the deterministic seed for the noise stage. Renders with
// equal parameters and equal seeds are byte-identical.
func WithSeed(seed int64) Option {
	return func(s *Synthesizer) {
		s.seed = seed
	}
}

// NewSynthesizer creates a configured synthesizer. The default noise seed
// is 1.
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		seed: 1,
		pool: buffer.NewPool(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Seed returns the configured noise seed.
func (s *Synthesizer) Seed() int64 {
	return s.seed
}

// Synthesize renders one loop for p. It validates p, snaps all oscillator
// frequencies to integer cycle counts, integrates phase per channel,
// mixes noise and stereo width, and encodes the result as 16-bit PCM.
//
// The call is pure: no state survives between invocations and identical
// inputs yield identical buffers. Callers needing reuse should wrap the
// synthesizer in a Cache rather than re-rendering.
func (s *Synthesizer) Synthesize(p Params) (*Waveform, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.Frames()
	if n < 1 {
		return nil, fmt.Errorf("binaural: duration %v s yields no frames at %d Hz", p.DurationSeconds, p.SampleRate)
	}

	carrier := SnapFrequency(p.CarrierHz, p.DurationSeconds)
	beat := SnapFrequency(p.BeatHz, p.DurationSeconds)
	leftHz := carrier
	rightHz := carrier + beat*p.BinauralMix

	amHz := amplitudeModFrequency(p.DurationSeconds)
	fmHz := float64(freqModCycles) / p.DurationSeconds
	fmShift := p.FreqModDepth * freqModMaxShiftHz

	work := s.pool.Get(n)
	defer s.pool.Put(work)
	mix := s.pool.Get(n)
	defer s.pool.Put(mix)

	curL, curR := work.Left(), work.Right()
	tmpL, tmpR := mix.Left(), mix.Right()

	s.renderChannels(p, n, leftHz, rightHz, amHz, fmHz, fmShift, curL, curR, tmpL, tmpR)

	// The AM stage boosts amplitude up to (1 + depth); dividing both
	// channels keeps the modulated tone within unit amplitude before
	// further mixing.
	norm := 1 / (1 + p.AmpModDepth)
	vecmath.ScaleBlock(tmpL, curL, norm)
	vecmath.ScaleBlock(tmpR, curR, norm)
	curL, curR, tmpL, tmpR = tmpL, tmpR, curL, curR

	if p.NoiseLevel > 0 {
		noise, err := s.noiseSequence(p.NoiseLevel, n)
		if err != nil {
			return nil, err
		}
		// signal*(1-level) + noise*level is a convex combination; both
		// operands are bounded by 1, so the blend cannot clip.
		vecmath.ScaleBlock(tmpL, curL, 1-p.NoiseLevel)
		vecmath.ScaleBlock(tmpR, curR, 1-p.NoiseLevel)
		vecmath.AddBlockInPlace(tmpL, noise)
		vecmath.AddBlockInPlace(tmpR, noise)
		curL, curR, tmpL, tmpR = tmpL, tmpR, curL, curR
	}

	if p.StereoWidth < 1 {
		scratch := s.pool.Get(n)
		center, centerScaled := scratch.Left(), scratch.Right()
		for i := range center {
			center[i] = 0.5 * (curL[i] + curR[i])
		}
		vecmath.ScaleBlock(centerScaled, center, 1-p.StereoWidth)
		vecmath.ScaleBlock(tmpL, curL, p.StereoWidth)
		vecmath.ScaleBlock(tmpR, curR, p.StereoWidth)
		vecmath.AddBlockInPlace(tmpL, centerScaled)
		vecmath.AddBlockInPlace(tmpR, centerScaled)
		curL, curR = tmpL, tmpR
		s.pool.Put(scratch)
	}

	// Safety net, not expected to trigger for valid inputs.
	nonFinite := signal.ZeroNonFinite(curL) + signal.ZeroNonFinite(curR)
	signal.Clip(curL, -1, 1)
	signal.Clip(curR, -1, 1)

	data, err := pcm.EncodeStereo(curL, curR)
	if err != nil {
		return nil, fmt.Errorf("binaural: %w", err)
	}

	return &Waveform{
		data:       data,
		sampleRate: p.SampleRate,
		frames:     n,
		nonFinite:  nonFinite,
	}, nil
}

// renderChannels fills curL/curR with the modulated carrier waves and uses
// tmpL/tmpR for the per-channel amplitude envelopes.
//
// Phase is the discrete integral of instantaneous frequency: an evolving
// frequency must accumulate phase sample by sample, otherwise the end of
// the loop drifts out of alignment whenever the frequency LFO is active.
func (s *Synthesizer) renderChannels(p Params, n int, leftHz, rightHz, amHz, fmHz, fmShift float64, curL, curR, tmpL, tmpR []float64) {
	const twoPi = 2 * math.Pi

	sr := float64(p.SampleRate)
	tStep := p.DurationSeconds / float64(n)

	var sumL, sumR float64
	for i := 0; i < n; i++ {
		t := float64(i) * tStep

		fm := fmShift * math.Sin(twoPi*fmHz*t)
		sumL += leftHz + fm
		sumR += rightHz + fm
		curL[i] = math.Sin(twoPi * sumL / sr)
		curR[i] = math.Sin(twoPi * sumR / sr)

		// Antiphase envelopes: the right channel dips while the left
		// swells, each ranging over [1-depth, 1+depth].
		am := math.Sin(twoPi * amHz * t)
		tmpL[i] = 1 + p.AmpModDepth*am
		tmpR[i] = 1 - p.AmpModDepth*am
	}

	vecmath.MulBlockInPlace(curL, tmpL)
	vecmath.MulBlockInPlace(curR, tmpR)
}

// noiseSequence generates the shared noise track. One sequence is applied
// identically to both channels so the noise floor stays centered.
func (s *Synthesizer) noiseSequence(level float64, n int) ([]float64, error) {
	gen := signal.NewGeneratorWithOptions(nil, signal.WithSeed(s.seed))
	noise, err := gen.WhiteNoise(level, n)
	if err != nil {
		return nil, fmt.Errorf("binaural: %w", err)
	}
	return noise, nil
}
