package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMasterVolume is the default linear gain
	AudioMasterVolume = 0.5
)

// Cue shapes
const (
	FireSoundDuration    = 90 * time.Millisecond
	FireSoundAttack      = 2 * time.Millisecond
	DryFireSoundDuration = 25 * time.Millisecond
	DryFireSoundFreq     = 1800.0
	MissSoundDuration    = 180 * time.Millisecond
	MissSoundFreqStart   = 2400.0
	MissSoundFreqEnd     = 600.0
)

// Distance attenuation
const (
	// AudioReferenceDistance is the distance at which a cue plays at full gain
	AudioReferenceDistance = 500.0

	// AudioMaxDistance is the distance beyond which cues are dropped
	AudioMaxDistance = 20000.0
)
