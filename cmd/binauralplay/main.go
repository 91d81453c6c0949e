// Command binauralplay renders a binaural loop and plays it gaplessly.
//
// Usage:
//
//	binauralplay [flags]
//
// The buffer is rendered once and repeated; because every oscillator is
// snapped to whole cycles per loop there is no audible seam between
// repetitions.
//
// Examples:
//
//	binauralplay -carrier 200 -beat 10
//	binauralplay -loops 3 -volume 0.5
//	binauralplay -carrier 432 -noise 0.15 -duration 30
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jayani55/binaural-dsp/dsp/gain"
	"github.com/jayani55/binaural-dsp/internal/render"
)

func main() {
	cfg := render.BindFlags(flag.CommandLine)
	volume := flag.Float64("volume", 1, "playback volume fraction (0..1), applied after rendering")
	loops := flag.Int("loops", 0, "number of loop repetitions, 0 plays until interrupted")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: binauralplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a binaural loop and plays it gaplessly.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(cfg, *volume, *loops); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *render.Config, volume float64, loops int) error {
	w, err := render.Run(cfg)
	if err != nil {
		return err
	}
	if w.NonFiniteZeroed() > 0 {
		fmt.Fprintf(os.Stderr, "warning: %d non-finite samples were zeroed\n", w.NonFiniteZeroed())
	}

	db, err := gain.DBForVolume(volume)
	if err != nil {
		return err
	}
	data, err := gain.ApplyPCM16(w.Bytes(), db)
	if err != nil {
		return err
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   w.SampleRate(),
		ChannelCount: w.Channels(),
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("failed to create audio context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(newLoopReader(data, loops))
	defer player.Close()
	player.Play()

	fmt.Printf("Playing %v loop at %.1f dB", w.Duration(), db)
	if loops > 0 {
		fmt.Printf(" (%d repetitions)", loops)
	}
	fmt.Println()

	for player.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}
