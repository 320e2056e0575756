package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/colorflash/audio"
	"github.com/lixenwraith/colorflash/constants"
	"github.com/lixenwraith/colorflash/core"
	"github.com/lixenwraith/colorflash/engine"
	"github.com/lixenwraith/colorflash/render"
	"github.com/lixenwraith/colorflash/status"
	"github.com/lixenwraith/colorflash/systems"
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

// realMain returns the process exit code so deferred cleanup runs before exiting
func realMain(args []string) int {
	cfg, err := parseConfig(args, os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "colorflash: %v\n", err)
		}
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "colorflash: %v\n", err)
		log.Printf("exit: %v", err)
		return 1
	}
	return 0
}

func run(cfg *appConfig) error {
	// Sinks run on this goroutine inside loop.Run; restore the terminal on panic
	defer core.RecoverCrash()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := engine.NewLoop(engine.NewMonotonicTimeProvider())
	reg := status.NewRegistry()
	log.Printf("seed %d", cfg.Seed)

	var sinks render.MultiSink
	var screen tcell.Screen
	var screenSink *render.ScreenSink

	if cfg.Headless {
		sinks = append(sinks, render.NewTextSink(os.Stdout))
	} else {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "create screen")
		}
		if err := screen.Init(); err != nil {
			return errors.Wrap(err, "init screen")
		}
		defer screen.Fini()

		// Crashes on any goroutine restore the terminal before reporting
		core.SetCrashHandler(screen.Fini)
		defer core.SetCrashHandler(nil)

		screenSink = render.NewScreenSink(screen)
		sinks = append(sinks, screenSink)
	}

	audioCfg := audio.LoadAudioConfig()
	if wantSound(cfg, audioCfg) {
		if player, err := audio.NewSpeakerPlayer(audioCfg); err != nil {
			// Non-fatal, runs silent
			log.Printf("audio disabled: %v", err)
		} else {
			defer player.Close()
			sinks = append(sinks, audio.NewChime(player, audioCfg))
		}
	}

	flash := systems.NewColorFlash(loop, rand.New(rand.NewSource(cfg.Seed)), sinks, cfg.Flash, reg)
	stop := newShutdown(loop, flash, constants.ShutdownGrace)

	if screen != nil {
		core.Go(func() { pollInput(screen, loop, screenSink, stop.Request) })
	}

	loop.AfterFunc(0, flash.Start)
	core.Go(func() { stop.wait(sigCtx.Done(), cancel) })

	err := loop.Run(ctx)

	log.Printf("stopped after %d cycles, %d callbacks", flash.Cycles(), loop.Executed())
	reg.Dump(log.Writer())
	return err
}

// wantSound reports whether the -sound flag or COLORFLASH_AUDIO_ENABLED asks for the chime
func wantSound(cfg *appConfig, audioCfg *audio.AudioConfig) bool {
	return cfg.Sound || audioCfg.Enabled
}

// pollInput forwards quit keys and marshals resize redraws onto the loop
// Returns when the screen is finalized
func pollInput(screen tcell.Screen, loop *engine.Loop, sink *render.ScreenSink, quit func()) {
	for {
		// PollEvent returns nil once the screen is finalized
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuitKey(ev) {
				quit()
			}
		case *tcell.EventResize:
			loop.AfterFunc(0, sink.Redraw)
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
