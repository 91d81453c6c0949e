package pcm

import (
	"encoding/binary"
	"fmt"
	"math"
)

// BytesPerSample is the serialized width of one sample value.
const BytesPerSample = 2

// fullScale is the positive int16 full-scale used for quantization.
const fullScale = 32767

// Quantize maps a sample in [-1, +1] to a signed 16-bit integer via
// round(s * 32767). Values beyond full scale are limited to the int16 range.
func Quantize(s float64) int16 {
	if math.IsNaN(s) {
		return 0
	}
	v := math.Round(s * fullScale)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// EncodeStereo quantizes two equal-length channels and serializes them as
// frame-interleaved little-endian 16-bit values (left first).
func EncodeStereo(left, right []float64) ([]byte, error) {
	if len(left) != len(right) {
		return nil, fmt.Errorf("pcm: channel length mismatch: %d vs %d", len(left), len(right))
	}
	if len(left) == 0 {
		return nil, fmt.Errorf("pcm: channels must not be empty")
	}

	out := make([]byte, len(left)*2*BytesPerSample)
	for i := range left {
		off := i * 2 * BytesPerSample
		binary.LittleEndian.PutUint16(out[off:], uint16(Quantize(left[i])))
		binary.LittleEndian.PutUint16(out[off+BytesPerSample:], uint16(Quantize(right[i])))
	}
	return out, nil
}

// Samples decodes serialized data into interleaved int16 sample values.
func Samples(data []byte) ([]int16, error) {
	if len(data)%BytesPerSample != 0 {
		return nil, fmt.Errorf("pcm: data length must be a multiple of %d: %d", BytesPerSample, len(data))
	}
	out := make([]int16, len(data)/BytesPerSample)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*BytesPerSample:]))
	}
	return out, nil
}

// DecodeStereo splits serialized stereo data into per-channel int16 slices.
func DecodeStereo(data []byte) (left, right []int16, err error) {
	frameBytes := 2 * BytesPerSample
	if len(data)%frameBytes != 0 {
		return nil, nil, fmt.Errorf("pcm: data length must be a multiple of %d: %d", frameBytes, len(data))
	}
	frames := len(data) / frameBytes
	left = make([]int16, frames)
	right = make([]int16, frames)
	for i := 0; i < frames; i++ {
		off := i * frameBytes
		left[i] = int16(binary.LittleEndian.Uint16(data[off:]))
		right[i] = int16(binary.LittleEndian.Uint16(data[off+BytesPerSample:]))
	}
	return left, right, nil
}
