package pcm

import (
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	cases := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{0.5, 16384}, // round(16383.5)
		{2, 32767},   // limited
		{-2, -32768}, // limited
	}
	for _, tc := range cases {
		if got := Quantize(tc.in); got != tc.want {
			t.Fatalf("Quantize(%v)=%d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEncodeStereoInterleaves(t *testing.T) {
	data, err := EncodeStereo([]float64{1, 0}, []float64{-1, 0.5})
	if err != nil {
		t.Fatalf("EncodeStereo() error = %v", err)
	}
	if len(data) != 8 {
		t.Fatalf("len = %d, want 8", len(data))
	}

	samples, err := Samples(data)
	if err != nil {
		t.Fatalf("Samples() error = %v", err)
	}
	want := []int16{32767, -32767, 0, 16384}
	for i := range want {
		if samples[i] != want[i] {
			t.Fatalf("samples[%d]=%d, want %d", i, samples[i], want[i])
		}
	}
}

func TestEncodeStereoLittleEndian(t *testing.T) {
	data, err := EncodeStereo([]float64{1.0 / 32767}, []float64{0})
	if err != nil {
		t.Fatalf("EncodeStereo() error = %v", err)
	}
	// Sample value 1 serializes low byte first.
	if data[0] != 0x01 || data[1] != 0x00 {
		t.Fatalf("unexpected byte order: % x", data)
	}
}

func TestEncodeStereoRejectsMismatch(t *testing.T) {
	if _, err := EncodeStereo([]float64{0}, []float64{0, 0}); err == nil {
		t.Fatal("expected error for mismatched channel lengths")
	}
	if _, err := EncodeStereo(nil, nil); err == nil {
		t.Fatal("expected error for empty channels")
	}
}

func TestDecodeStereo(t *testing.T) {
	left := []float64{0.25, -0.75, 1}
	right := []float64{-0.25, 0.75, -1}
	data, err := EncodeStereo(left, right)
	if err != nil {
		t.Fatalf("EncodeStereo() error = %v", err)
	}

	l, r, err := DecodeStereo(data)
	if err != nil {
		t.Fatalf("DecodeStereo() error = %v", err)
	}
	for i := range left {
		if l[i] != Quantize(left[i]) || r[i] != Quantize(right[i]) {
			t.Fatalf("frame %d: got %d/%d", i, l[i], r[i])
		}
	}
}

func TestDecodeRejectsOddLength(t *testing.T) {
	if _, _, err := DecodeStereo(make([]byte, 6)); err == nil {
		t.Fatal("expected error for partial frame")
	}
	if _, err := Samples(make([]byte, 3)); err == nil {
		t.Fatal("expected error for partial sample")
	}
}

func TestQuantizeNeverOverflows(t *testing.T) {
	for _, s := range []float64{-1e9, -1.0000001, 1.0000001, 1e9, math.Inf(1), math.Inf(-1), math.NaN()} {
		got := Quantize(s)
		if got > math.MaxInt16 || got < math.MinInt16 {
			t.Fatalf("Quantize(%v)=%d out of int16 range", s, got)
		}
	}
}
