// Package pcm converts float64 sample buffers to and from 16-bit
// little-endian pulse-code data. Encoding expects inputs already limited to
// [-1, +1]; values outside that range are clamped to the int16 extremes so
// that no out-of-range sample can reach serialized output.
package pcm
