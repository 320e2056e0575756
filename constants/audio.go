package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime Sound Timing
const (
	ChimeDuration = 120 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 60 * time.Millisecond
)

// Chime Pitch
// Hue 0..360 maps linearly onto [ChimeBaseFreq, ChimeBaseFreq*2), one octave
const (
	ChimeBaseFreq = 440.0

	// ChimeOvertoneMix is the linear gain of the octave overtone relative to the fundamental
	ChimeOvertoneMix = 0.3

	// ChimeVolume is the linear master gain of the chime (0 silences)
	ChimeVolume = 0.35
)
