package render

import (
	"flag"
	"math"
	"testing"
)

func TestBindFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := BindFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Params.CarrierHz != 175 {
		t.Fatalf("CarrierHz=%v, want default 175", cfg.Params.CarrierHz)
	}
	if cfg.Seed != 1 {
		t.Fatalf("Seed=%d, want 1", cfg.Seed)
	}
}

func TestBindFlagsParse(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := BindFlags(fs)
	err := fs.Parse([]string{
		"-carrier", "200", "-beat", "10", "-duration", "2",
		"-rate", "8000", "-amp-mod", "0", "-noise", "0", "-seed", "9",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Params.CarrierHz != 200 || cfg.Params.BeatHz != 10 {
		t.Fatalf("unexpected params: %+v", cfg.Params)
	}
	if cfg.Seed != 9 {
		t.Fatalf("Seed=%d, want 9", cfg.Seed)
	}
}

func TestRunAndMeasure(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := BindFlags(fs)
	err := fs.Parse([]string{
		"-carrier", "200", "-beat", "10", "-duration", "2",
		"-rate", "8000", "-amp-mod", "0", "-noise", "0",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	w, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	left, right, err := MeasureChannels(w)
	if err != nil {
		t.Fatalf("MeasureChannels() error = %v", err)
	}
	if math.Abs(left-200) > 1 || math.Abs(right-210) > 1 {
		t.Fatalf("measured %v/%v, want about 200/210", left, right)
	}
}

func TestRunRejectsInvalid(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := BindFlags(fs)
	if err := fs.Parse([]string{"-duration", "-1"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := Run(cfg); err == nil {
		t.Fatal("expected error for negative duration")
	}
}
