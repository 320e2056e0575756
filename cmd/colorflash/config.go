package main

import (
	"flag"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/colorflash/constants"
	"github.com/lixenwraith/colorflash/core"
	"github.com/lixenwraith/colorflash/systems"
	"github.com/lixenwraith/colorflash/vmath"
)

// appConfig is the parsed command line
type appConfig struct {
	Flash    systems.ColorFlashConfig
	Seed     int64
	Headless bool
	Sound    bool
	Debug    bool
}

// parseConfig parses args (without the program name) into an appConfig
func parseConfig(args []string, output io.Writer) (*appConfig, error) {
	fs := flag.NewFlagSet("colorflash", flag.ContinueOnError)
	fs.SetOutput(output)

	duration := fs.Duration("duration", constants.TransitionDuration, "Transition tween duration")
	interval := fs.Duration("interval", constants.ChangeEvery, "Delay between the starts of two cycles")
	tick := fs.Duration("tick", constants.TweenTickInterval, "Tween tick interval")
	from := fs.String("from", constants.InitialColor, "Initial color (#rrggbb or #rgb)")
	easing := fs.String("easing", "easeInOut", "Easing: linear, easeIn, easeOut, easeInOut")
	cycles := fs.Int("cycles", 0, "Stop after this many cycles (0 = run until interrupted)")
	seed := fs.Int64("seed", 0, "Random seed (0 = time based)")
	headless := fs.Bool("headless", false, "Print colors to stdout instead of painting the terminal")
	sound := fs.Bool("sound", false, "Play a chime when each cycle completes")
	debug := fs.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	initial, err := core.ParseHex(*from)
	if err != nil {
		return nil, errors.Wrap(err, "-from")
	}

	easingFn, ok := vmath.Easings[*easing]
	if !ok {
		return nil, errors.Errorf("-easing: unknown easing %q", *easing)
	}

	cfg := &appConfig{
		Flash: systems.ColorFlashConfig{
			Initial:            initial,
			TransitionDuration: *duration,
			ChangeEvery:        *interval,
			TickInterval:       *tick,
			Easing:             easingFn,
			MaxCycles:          *cycles,
		},
		Seed:     *seed,
		Headless: *headless,
		Sound:    *sound,
		Debug:    *debug,
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}
