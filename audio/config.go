package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/colorflash/constants"
)

// AudioConfig holds chime playback settings
type AudioConfig struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // Linear gain 0.0-1.0
}

// DefaultAudioConfig returns audio disabled with the default volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:    false,
		SampleRate: constants.AudioSampleRate,
		Volume:     constants.ChimeVolume,
	}
}

// LoadAudioConfig applies environment overrides on top of the defaults
//
//	COLORFLASH_AUDIO_ENABLED  bool
//	COLORFLASH_VOLUME         0-100
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("COLORFLASH_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("COLORFLASH_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	return cfg
}
