package constants

import "time"

// Animation Timing
const (
	// TransitionDuration is how long one background transition tween runs
	TransitionDuration = 250 * time.Millisecond

	// ChangeEvery is the interval between the starts of two consecutive cycles
	ChangeEvery = 1000 * time.Millisecond

	// TweenTickInterval is the minimal reschedule delay between tween ticks
	TweenTickInterval = 1 * time.Millisecond
)

// Color Defaults
const (
	// InitialColor is the color both ends of the first transition start from
	InitialColor = "#ffffff"

	// ChannelMin and ChannelMax bound each random color channel (inclusive)
	ChannelMin = 0
	ChannelMax = 255
)

// Host Shutdown
const (
	// ShutdownGrace bounds how long a quit request waits for the in-flight transition
	ShutdownGrace = 2 * time.Second
)
