package binaural

import (
	"time"

	"github.com/jayani55/binaural-dsp/dsp/pcm"
)

const channelCount = 2

// Waveform is one rendered loop: frame-interleaved little-endian 16-bit
// stereo PCM plus its format. A Waveform is immutable once produced;
// callers must not modify the slice returned by Bytes.
type Waveform struct {
	data       []byte
	sampleRate int
	frames     int
	nonFinite  int
}

// Bytes returns the serialized PCM data.
func (w *Waveform) Bytes() []byte {
	return w.data
}

// SampleRate returns the render sample rate in frames per second.
func (w *Waveform) SampleRate() int {
	return w.sampleRate
}

// Channels returns the channel count, always 2.
func (w *Waveform) Channels() int {
	return channelCount
}

// Frames returns the number of stereo sample pairs.
func (w *Waveform) Frames() int {
	return w.frames
}

// Duration returns the playback time of one loop.
func (w *Waveform) Duration() time.Duration {
	return time.Duration(float64(w.frames) / float64(w.sampleRate) * float64(time.Second))
}

// NonFiniteZeroed reports how many intermediate samples were non-finite
// and replaced with zero during mixing. Nonzero values indicate a
// degenerate render worth surfacing to the caller; correct inputs produce
// zero.
func (w *Waveform) NonFiniteZeroed() int {
	return w.nonFinite
}

// Samples decodes the buffer into interleaved int16 sample values.
func (w *Waveform) Samples() []int16 {
	samples, err := pcm.Samples(w.data)
	if err != nil {
		// The constructor only ever stores whole frames.
		panic("binaural: corrupt waveform data: " + err.Error())
	}
	return samples
}

// SplitChannels decodes the buffer into separate left and right channels.
func (w *Waveform) SplitChannels() (left, right []int16) {
	left, right, err := pcm.DecodeStereo(w.data)
	if err != nil {
		panic("binaural: corrupt waveform data: " + err.Error())
	}
	return left, right
}
