// Package gain applies post-render volume adjustment to 16-bit PCM data.
// Volume is expressed as an amplitude fraction and converted to decibels
// with the 20*log10 convention; a zero fraction maps to a fixed floor
// instead of -Inf. Gain is strictly a post-processing step so that rendered
// buffers stay reusable across volume changes.
package gain

import (
	"fmt"
	"math"

	"github.com/jayani55/binaural-dsp/dsp/core"
	"github.com/jayani55/binaural-dsp/dsp/pcm"
)

// SilenceFloorDB is the attenuation applied for a zero volume fraction.
// At 16-bit resolution anything below roughly -96 dB is inaudible; -120 dB
// guarantees every sample rounds to zero.
const SilenceFloorDB = -120

// DBForVolume converts an amplitude fraction in [0, 1] to decibels.
func DBForVolume(fraction float64) (float64, error) {
	if fraction < 0 || fraction > 1 || math.IsNaN(fraction) {
		return 0, fmt.Errorf("gain: volume fraction must be in [0, 1]: %f", fraction)
	}
	if fraction == 0 {
		return SilenceFloorDB, nil
	}
	return core.LinearToDB(fraction), nil
}

// ApplyPCM16 scales every sample of serialized 16-bit stereo data by the
// given gain and returns a new byte slice. Samples that would exceed int16
// range after scaling are limited.
func ApplyPCM16(data []byte, db float64) ([]byte, error) {
	samples, err := pcm.Samples(data)
	if err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}

	factor := core.DBToLinear(db)
	left := make([]float64, 0, len(samples)/2)
	right := make([]float64, 0, len(samples)/2)
	for i, s := range samples {
		scaled := float64(s) * factor / 32767.0
		if i%2 == 0 {
			left = append(left, scaled)
		} else {
			right = append(right, scaled)
		}
	}

	out, err := pcm.EncodeStereo(left, right)
	if err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}
	return out, nil
}

// PeakDB returns the peak sample level of serialized 16-bit data in dBFS.
func PeakDB(data []byte) (float64, error) {
	samples, err := pcm.Samples(data)
	if err != nil {
		return 0, fmt.Errorf("gain: %w", err)
	}

	peak := 0.0
	for _, s := range samples {
		v := math.Abs(float64(s)) / 32767.0
		if v > peak {
			peak = v
		}
	}
	return core.LinearToDB(peak), nil
}
