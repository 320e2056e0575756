package engine

import (
	"time"

	"github.com/lixenwraith/colorflash/constants"
	"github.com/lixenwraith/colorflash/vmath"
)

// TweenConfig describes one time-bounded animation
type TweenConfig struct {
	Duration time.Duration // Zero completes on the first tick, negative never completes

	// OnTick receives eased progress on every tick, including the first (synchronous) one
	OnTick func(progress float64)

	Easing     vmath.EasingFunc // Optional, defaults to vmath.Linear
	OnComplete func()           // Optional, runs right after the final tick

	TickInterval time.Duration // Optional, defaults to constants.TweenTickInterval
}

// Tween maps elapsed time to eased progress and reports it until the fraction reaches 1
// Runs to completion once started; there is no cancellation
// All methods must be called from the scheduler's timeline
type Tween struct {
	sched Scheduler

	startedAt time.Time
	duration  time.Duration
	interval  time.Duration

	easing     vmath.EasingFunc
	onTick     func(float64)
	onComplete func()

	// Ephemeral tick state
	fraction float64
	ticks    int
	done     bool
}

// NewTween starts a tween on sched, capturing the start time and ticking once synchronously
func NewTween(sched Scheduler, cfg TweenConfig) *Tween {
	tw := &Tween{
		sched:      sched,
		startedAt:  sched.Now(),
		duration:   cfg.Duration,
		interval:   cfg.TickInterval,
		easing:     cfg.Easing,
		onTick:     cfg.OnTick,
		onComplete: cfg.OnComplete,
	}

	if tw.easing == nil {
		tw.easing = vmath.Linear
	}
	if tw.onTick == nil {
		tw.onTick = func(float64) {}
	}
	if tw.interval <= 0 {
		tw.interval = constants.TweenTickInterval
	}

	// First tick reports exactly 0 regardless of clock resolution
	tw.step(tw.startedAt)
	return tw
}

// FractionAt returns the clamped linear fraction of the duration elapsed at now
// A zero duration is complete immediately; a negative one stays pinned at 0
func (tw *Tween) FractionAt(now time.Time) float64 {
	if tw.duration == 0 {
		return 1
	}
	return vmath.Clamp(float64(now.Sub(tw.startedAt))/float64(tw.duration), 0, 1)
}

// tick is the rescheduled callback
func (tw *Tween) tick() {
	tw.step(tw.sched.Now())
}

// step computes progress, reports it, and reschedules until the fraction reaches 1
func (tw *Tween) step(now time.Time) {
	t := tw.FractionAt(now)
	tw.fraction = t
	tw.ticks++

	tw.onTick(tw.easing(t))

	if t < 1 {
		tw.sched.AfterFunc(tw.interval, tw.tick)
		return
	}

	tw.done = true
	if tw.onComplete != nil {
		tw.onComplete()
	}
}

// StartedAt returns the time captured at construction
func (tw *Tween) StartedAt() time.Time {
	return tw.startedAt
}

// Fraction returns the pre-easing fraction reported by the last tick
func (tw *Tween) Fraction() float64 {
	return tw.fraction
}

// Ticks returns the number of ticks delivered so far
func (tw *Tween) Ticks() int {
	return tw.ticks
}

// Done reports whether the final tick has been delivered
func (tw *Tween) Done() bool {
	return tw.done
}
