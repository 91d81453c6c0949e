// Package buffer provides a reusable stereo float64 buffer type and pool
// for allocation-friendly rendering. DSP functions accept raw []float64
// slices; Stereo is an optional convenience that keeps a left/right channel
// pair the same length and helps callers reuse allocations across renders.
package buffer
