package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lcd-pong/audio"
	"github.com/lixenwraith/lcd-pong/config"
	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/engine"
	"github.com/lixenwraith/lcd-pong/input"
	"github.com/lixenwraith/lcd-pong/render"
	"github.com/lixenwraith/lcd-pong/status"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	headlessFlag  = flag.Int("headless", 0, "Run N base ticks without a terminal, print the result and exit")
	wavFlag       = flag.String("wav", "", "Record the tone to a WAV file (headless only)")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic recovery on the main goroutine restores the terminal like core.Go does elsewhere
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	config.ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *headlessFlag > 0 {
		if err := runHeadless(cfg, *headlessFlag, *wavFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "headless: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	switch strings.ToLower(mode) {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}

func runTerminal(cfg config.Config) error {
	applyColorMode(*colorModeFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.RegisterCrashTerminal(screen)
	defer core.RegisterCrashTerminal(nil)
	screen.HideCursor()

	keys, err := cfg.KeyMap()
	if err != nil {
		return err
	}
	keyboard := input.NewKeyboard(keys, cfg.Timing.Hold, nil)

	out := audio.NewOutput(cfg.Audio)
	if cfg.Audio.Enabled {
		if err := out.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer out.Cleanup()

	reg := status.NewRegistry()
	gc, err := engine.NewGameContext(cfg, reg)
	if err != nil {
		return err
	}

	display := render.NewTerminalDisplay(screen, cfg.Screen.Width, cfg.Screen.Height)
	game, err := engine.NewGame(gc, display, out, keyboard, engine.SystemClock{})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				display.Resize()
				continue
			}
			if !keyboard.HandleEvent(ev) {
				cancel()
				return
			}
		}
	})

	err = game.Run(ctx)

	log.Printf("final state %v left=%d right=%d", game.State(), gc.Points(core.SideLeft), gc.Points(core.SideRight))
	if dumpErr := reg.Dump(log.Writer()); dumpErr != nil {
		log.Printf("metrics dump: %v", dumpErr)
	}
	return err
}
