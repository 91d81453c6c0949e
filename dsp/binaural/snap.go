package binaural

import "math"

const (
	// ampModTargetHz is the nominal amplitude-LFO rate before snapping.
	ampModTargetHz = 2.0

	// freqModMaxShiftHz is the instantaneous frequency offset at full
	// frequency-mod depth.
	freqModMaxShiftHz = 10.0

	// freqModCycles fixes the frequency LFO at one cycle per loop.
	freqModCycles = 1
)

// SnapFrequency returns the frequency nearest freqHz whose waveform
// completes an integer number of cycles over durationSeconds. A snapped
// sinusoid matches value and slope between the end of the buffer and its
// start, which makes the rendered loop seamless without a fade.
//
// At durations below half a period the nearest integer cycle count is
// zero and the result degenerates to 0 Hz (a constant, not an error).
func SnapFrequency(freqHz, durationSeconds float64) float64 {
	return math.Round(freqHz*durationSeconds) / durationSeconds
}

// amplitudeModFrequency snaps the nominal amplitude-LFO rate to an
// integer cycle count over the loop, with a minimum of one full cycle.
func amplitudeModFrequency(durationSeconds float64) float64 {
	cycles := math.Round(ampModTargetHz * durationSeconds)
	if cycles < 1 {
		cycles = 1
	}
	return cycles / durationSeconds
}
