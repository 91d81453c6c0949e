package spectrum

import (
	"testing"

	"github.com/jayani55/binaural-dsp/internal/testutil"
)

func TestGoertzelDetectsTone(t *testing.T) {
	const (
		sampleRate = 8000.0
		freq       = 1000.0
		n          = 800 // integer cycles of 1 kHz at 8 kHz
	)
	sig := testutil.DeterministicSine(freq, sampleRate, 1, n)

	onBin, err := AnalyzeBlock(sig, freq, sampleRate)
	if err != nil {
		t.Fatalf("AnalyzeBlock() error = %v", err)
	}
	offBin, err := AnalyzeBlock(sig, 1500, sampleRate)
	if err != nil {
		t.Fatalf("AnalyzeBlock() error = %v", err)
	}

	if onBin < 1000*offBin {
		t.Fatalf("tone not detected: on=%v off=%v", onBin, offBin)
	}
}

func TestGoertzelSilence(t *testing.T) {
	g, err := NewGoertzel(440, 44100)
	if err != nil {
		t.Fatalf("NewGoertzel() error = %v", err)
	}
	g.ProcessBlock(make([]float64, 4410))
	if g.Power() != 0 {
		t.Fatalf("Power()=%v, want 0 for silence", g.Power())
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(440, 44100)
	if err != nil {
		t.Fatalf("NewGoertzel() error = %v", err)
	}
	sig := testutil.DeterministicSine(440, 44100, 1, 4410)
	g.ProcessBlock(sig)
	if g.Power() == 0 {
		t.Fatal("expected nonzero power before reset")
	}
	g.Reset()
	if g.Power() != 0 {
		t.Fatalf("Power()=%v, want 0 after reset", g.Power())
	}
}

func TestGoertzelRejectsBadArgs(t *testing.T) {
	if _, err := NewGoertzel(440, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := NewGoertzel(-1, 44100); err == nil {
		t.Fatal("expected error for negative frequency")
	}
	if _, err := NewGoertzel(30000, 44100); err == nil {
		t.Fatal("expected error for frequency above Nyquist")
	}
}

func TestProcessSampleMatchesBlock(t *testing.T) {
	sig := testutil.DeterministicSine(250, 8000, 0.5, 512)

	a, err := NewGoertzel(250, 8000)
	if err != nil {
		t.Fatalf("NewGoertzel() error = %v", err)
	}
	b, err := NewGoertzel(250, 8000)
	if err != nil {
		t.Fatalf("NewGoertzel() error = %v", err)
	}

	for _, x := range sig {
		a.ProcessSample(x)
	}
	b.ProcessBlock(sig)

	if a.Power() != b.Power() {
		t.Fatalf("sample/block mismatch: %v != %v", a.Power(), b.Power())
	}
}
