package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/colorflash/constants"
)

// Player plays streamers asynchronously
type Player interface {
	Play(s beep.Streamer)
}

// SpeakerPlayer plays through the system speaker
type SpeakerPlayer struct{}

// NewSpeakerPlayer initializes the speaker for the configured sample rate
func NewSpeakerPlayer(cfg *AudioConfig) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &SpeakerPlayer{}, nil
}

func (*SpeakerPlayer) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Close releases the audio device
func (*SpeakerPlayer) Close() {
	speaker.Close()
}

// Chime is a sink that plays a short tone each time a cycle completes
// Pitch follows the hue of the new color across one octave
type Chime struct {
	player Player
	cfg    *AudioConfig
	played atomic.Int64
}

// NewChime creates a chime sink playing through player
func NewChime(player Player, cfg *AudioConfig) *Chime {
	return &Chime{player: player, cfg: cfg}
}

// SetBackground is ignored, only completed cycles are audible
func (c *Chime) SetBackground(string) {}

// SetTitle plays the chime for the given color; unparseable titles are skipped
func (c *Chime) SetTitle(title string) {
	freq, ok := FrequencyFor(title)
	if !ok {
		return
	}
	c.player.Play(CreateChimeSound(freq, c.cfg))
	c.played.Add(1)
}

// Played returns the number of chimes started
func (c *Chime) Played() int64 {
	return c.played.Load()
}

// FrequencyFor maps a hex color's hue onto [ChimeBaseFreq, 2*ChimeBaseFreq)
func FrequencyFor(hex string) (float64, bool) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return 0, false
	}
	h, _, _ := cf.Hsv()
	return constants.ChimeBaseFreq * (1 + h/360), true
}
