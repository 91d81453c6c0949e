package buffer

import "github.com/jayani55/binaural-dsp/dsp/core"

// Stereo holds a left/right pair of equal-length sample slices.
// DSP functions accept raw []float64; use Left() and Right() to bridge.
type Stereo struct {
	left  []float64
	right []float64
}

// NewStereo returns a zero-filled stereo buffer with the given frame count.
func NewStereo(frames int) *Stereo {
	if frames < 0 {
		frames = 0
	}
	return &Stereo{
		left:  make([]float64, frames),
		right: make([]float64, frames),
	}
}

// Left returns the left channel slice.
func (s *Stereo) Left() []float64 {
	return s.left
}

// Right returns the right channel slice.
func (s *Stereo) Right() []float64 {
	return s.right
}

// Frames returns the number of frames per channel.
func (s *Stereo) Frames() int {
	return len(s.left)
}

// Resize sets both channels to n frames, reusing capacity when possible.
// Contents are unspecified after a resize; call Zero before reuse.
func (s *Stereo) Resize(n int) {
	if n < 0 {
		n = 0
	}
	s.left = core.EnsureLen(s.left, n)
	s.right = core.EnsureLen(s.right, n)
}

// Zero sets all samples in both channels to 0.
func (s *Stereo) Zero() {
	core.Zero(s.left)
	core.Zero(s.right)
}

// Copy returns a deep copy of the buffer.
func (s *Stereo) Copy() *Stereo {
	out := NewStereo(len(s.left))
	copy(out.left, s.left)
	copy(out.right, s.right)
	return out
}
