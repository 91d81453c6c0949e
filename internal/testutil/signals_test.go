package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 4000, 1, 4)
	want := []float64{0, 1, 0, -1}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, s[i], want[i])
		}
	}
}

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(5, 1, 32)
	b := DeterministicNoise(5, 1, 32)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestInt16ToFloat(t *testing.T) {
	out := Int16ToFloat([]int16{32767, 0, -32767})
	want := []float64{1, 0, -1}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Fatalf("index %d: got %v, want %v", i, out[i], want[i])
		}
	}
}

func TestMaxAdjacentDelta(t *testing.T) {
	if d := MaxAdjacentDelta([]float64{0, 1, 0.5, 0.6}); d != 1 {
		t.Fatalf("MaxAdjacentDelta=%v, want 1", d)
	}
	if d := MaxAdjacentDelta([]float64{1}); d != 0 {
		t.Fatalf("MaxAdjacentDelta=%v, want 0", d)
	}
}
