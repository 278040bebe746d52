package audio

import (
	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/parameter"
)

// Config holds cue playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // Linear gain 0.0-1.0
	SampleRate   int
	CueVolumes   [core.SoundTypeCount]float64

	// Distance attenuation in world units
	ReferenceDistance float64
	MaxDistance       float64
}

// DefaultConfig returns enabled playback at the default master volume
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:           true,
		MasterVolume:      parameter.AudioMasterVolume,
		SampleRate:        parameter.AudioSampleRate,
		ReferenceDistance: parameter.AudioReferenceDistance,
		MaxDistance:       parameter.AudioMaxDistance,
	}
	cfg.CueVolumes[core.SoundFire] = 1.0
	cfg.CueVolumes[core.SoundDryFire] = 0.6
	cfg.CueVolumes[core.SoundMiss] = 0.4
	return cfg
}

// clampVolume limits linear gain to [0, 1]
func clampVolume(vol float64) float64 {
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
