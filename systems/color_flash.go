package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/colorflash/constants"
	"github.com/lixenwraith/colorflash/core"
	"github.com/lixenwraith/colorflash/engine"
	"github.com/lixenwraith/colorflash/render"
	"github.com/lixenwraith/colorflash/status"
	"github.com/lixenwraith/colorflash/vmath"
)

// ColorFlashConfig tunes the color cycle
type ColorFlashConfig struct {
	Initial            core.Color
	TransitionDuration time.Duration
	ChangeEvery        time.Duration
	TickInterval       time.Duration
	Easing             vmath.EasingFunc
	MaxCycles          int // Zero runs forever
}

// DefaultColorFlashConfig returns the canonical timings: 250ms smoothstep every second from white
func DefaultColorFlashConfig() ColorFlashConfig {
	return ColorFlashConfig{
		Initial:            core.ColorWhite,
		TransitionDuration: constants.TransitionDuration,
		ChangeEvery:        constants.ChangeEvery,
		TickInterval:       constants.TweenTickInterval,
		Easing:             vmath.EaseInOut,
	}
}

// ColorFlash repeatedly picks a random color and tweens the background toward it
// Every method except Done and the metric readers must run on the scheduler's timeline
type ColorFlash struct {
	sched engine.Scheduler
	rnd   vmath.Float64Source
	sink  render.Sink
	cfg   ColorFlashConfig

	// Transition endpoints, rewritten at the start of every cycle
	from core.Color
	to   core.Color

	tween   *engine.Tween
	cycles  int
	stopped bool

	done     chan struct{}
	doneOnce atomic.Bool

	// Cached metric pointers
	statCycles   *atomic.Int64
	statTicks    *atomic.Int64
	statProgress *status.AtomicFloat
	statFrom     *status.AtomicString
	statTo       *status.AtomicString
	statCurrent  *status.AtomicString
}

// NewColorFlash creates an idle controller; call Start from the scheduler's timeline
// A nil registry gets a private one
func NewColorFlash(sched engine.Scheduler, rnd vmath.Float64Source, sink render.Sink, cfg ColorFlashConfig, reg *status.Registry) *ColorFlash {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if cfg.Easing == nil {
		cfg.Easing = vmath.EaseInOut
	}

	return &ColorFlash{
		sched:        sched,
		rnd:          rnd,
		sink:         sink,
		cfg:          cfg,
		from:         cfg.Initial,
		to:           cfg.Initial,
		done:         make(chan struct{}),
		statCycles:   reg.Ints.Get("flash.cycles"),
		statTicks:    reg.Ints.Get("tween.ticks"),
		statProgress: reg.Floats.Get("tween.progress"),
		statFrom:     reg.Strings.Get("color.from"),
		statTo:       reg.Strings.Get("color.to"),
		statCurrent:  reg.Strings.Get("color.current"),
	}
}

// Start runs the first cycle immediately
func (cf *ColorFlash) Start() {
	cf.changeColor()
}

// Stop prevents further cycles; the in-flight tween still runs to completion
func (cf *ColorFlash) Stop() {
	cf.stopped = true
	if cf.tween == nil || cf.tween.Done() {
		cf.finish()
	}
}

// Done is closed once the controller is stopped and its last tween has completed
func (cf *ColorFlash) Done() <-chan struct{} {
	return cf.done
}

// Cycles returns the number of cycles started
func (cf *ColorFlash) Cycles() int {
	return cf.cycles
}

// Colors returns the current transition endpoints
func (cf *ColorFlash) Colors() (from, to core.Color) {
	return cf.from, cf.to
}

// changeColor starts one cycle and schedules the next from this cycle's start,
// independently of when the tween finishes
func (cf *ColorFlash) changeColor() {
	if cf.stopped {
		return
	}

	cf.from = cf.to
	cf.to = core.NewColor(
		float64(vmath.RandInt(cf.rnd, constants.ChannelMin, constants.ChannelMax)),
		float64(vmath.RandInt(cf.rnd, constants.ChannelMin, constants.ChannelMax)),
		float64(vmath.RandInt(cf.rnd, constants.ChannelMin, constants.ChannelMax)),
	)
	cf.cycles++

	cf.statCycles.Store(int64(cf.cycles))
	cf.statFrom.Store(cf.from.Hex())
	cf.statTo.Store(cf.to.Hex())
	log.Printf("cycle %d: %s -> %s", cf.cycles, cf.from.Hex(), cf.to.Hex())

	if cf.cfg.MaxCycles > 0 && cf.cycles >= cf.cfg.MaxCycles {
		cf.stopped = true
	}

	cf.tween = engine.NewTween(cf.sched, engine.TweenConfig{
		Duration:     cf.cfg.TransitionDuration,
		OnTick:       cf.renderTick,
		Easing:       cf.cfg.Easing,
		OnComplete:   cf.complete,
		TickInterval: cf.cfg.TickInterval,
	})

	if !cf.stopped {
		cf.sched.AfterFunc(cf.cfg.ChangeEvery, cf.changeColor)
	}
}

// renderTick reads the live endpoints, so a cycle starting mid-tween redirects the
// running tween toward the new target
func (cf *ColorFlash) renderTick(progress float64) {
	hex := cf.from.InterpolatedToward(cf.to, progress).Hex()
	cf.sink.SetBackground(hex)

	cf.statTicks.Add(1)
	cf.statProgress.Set(progress)
	cf.statCurrent.Store(hex)
}

func (cf *ColorFlash) complete() {
	cf.sink.SetTitle(cf.to.Hex())
	// A zero-duration tween completes inside NewTween, before cf.tween is reassigned
	if cf.stopped && (cf.tween == nil || cf.tween.Done()) {
		cf.finish()
	}
}

func (cf *ColorFlash) finish() {
	if cf.doneOnce.CompareAndSwap(false, true) {
		close(cf.done)
	}
}
