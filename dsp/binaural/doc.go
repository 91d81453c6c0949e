// Package binaural renders loopable binaural-beat waveforms.
//
// The renderer maps an immutable parameter set to a stereo 16-bit PCM
// buffer in four stages: frequency snapping, modulation and phase
// integration, mixing/normalization, and PCM encoding. Every oscillator
// (carrier, beat, amplitude LFO, frequency LFO) is adjusted to complete an
// integer number of cycles over the requested duration, so a rendered
// buffer repeats with no discontinuity in value or slope at the wrap
// point and needs no fade for seamless looping.
//
// Synthesis is a pure function of the parameters and the noise seed: two
// calls with identical inputs produce byte-identical buffers. The Cache
// type memoizes renders on that property. Volume belongs to the caller as
// a post-processing step (see the gain package) so that cached buffers
// stay valid across volume changes.
package binaural
