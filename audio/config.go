package audio

import (
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/constants"
	"github.com/lixenwraith/invaders/core"
)

// AudioConfig holds speaker and per-cue mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [core.SoundTypeCount]float64{
			core.SoundPew:     0.4,
			core.SoundExplode: 0.6,
			core.SoundMove:    0.25,
			core.SoundWin:     0.5,
			core.SoundLose:    0.5,
			core.SoundStartup: 0.5,
		},
	}
}

// NewAudioConfig applies the user's audio settings over the defaults
func NewAudioConfig(settings config.Audio) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = settings.Enabled
	cfg.MasterVolume = min(max(settings.MasterVolume, 0), 1)
	return cfg
}

// effectVolume returns the final gain for a cue
func (c *AudioConfig) effectVolume(s core.SoundType) float64 {
	if s < 0 || s >= core.SoundTypeCount {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
