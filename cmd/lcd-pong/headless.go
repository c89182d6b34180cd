package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/lcd-pong/audio"
	"github.com/lixenwraith/lcd-pong/config"
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/engine"
	"github.com/lixenwraith/lcd-pong/input"
	"github.com/lixenwraith/lcd-pong/render"
	"github.com/lixenwraith/lcd-pong/status"
)

// runHeadless plays ticks base ticks into a framebuffer with no input,
// optionally recording the tone to wavPath, then reports the result to out
func runHeadless(cfg config.Config, ticks int, wavPath string, out io.Writer) error {
	reg := status.NewRegistry()
	gc, err := engine.NewGameContext(cfg, reg)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(cfg.Screen.Width, cfg.Screen.Height)
	buzzer := audio.NewBuzzer(beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.ClockHz)

	game, err := engine.NewGame(gc, fb, buzzer, input.Fixed(input.ButtonNone), engine.NewManualClock(time.Unix(0, 0)))
	if err != nil {
		return err
	}

	var (
		rec        *audio.Recorder
		captureErr error
		onTick     func()
	)
	if wavPath != "" {
		f, err := os.Create(wavPath)
		if err != nil {
			return fmt.Errorf("create wav: %w", err)
		}
		defer f.Close()

		rec = audio.NewRecorder(f, buzzer, cfg.Audio.SampleRate)
		// spread the sample rate over base ticks without drift
		var carry int
		onTick = func() {
			carry += cfg.Audio.SampleRate
			n := carry / cfg.Timing.BaseHz
			carry %= cfg.Timing.BaseHz
			if captureErr == nil {
				captureErr = rec.Capture(n)
			}
		}
	}

	ran := game.RunTicks(ticks, onTick)
	log.Printf("headless: ran %d ticks, state %v", ran, game.State())

	if rec != nil {
		if captureErr != nil {
			return captureErr
		}
		if err := rec.Close(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "ticks=%d state=%v %v=%d %v=%d\n",
		ran, game.State(),
		core.SideLeft, gc.Points(core.SideLeft),
		core.SideRight, gc.Points(core.SideRight))
	return reg.Dump(out)
}
