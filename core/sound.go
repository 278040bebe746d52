package core

// SoundType represents the weapon cues the audio collaborator can play
type SoundType int

const (
	SoundFire    SoundType = iota // Accepted discharge
	SoundDryFire                  // Trigger pulled with empty magazine
	SoundMiss                     // Round passed through without hitting anything
	SoundTypeCount
)

// String returns the cue name used in logs and config keys
func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundDryFire:
		return "dry_fire"
	case SoundMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// EffectType represents particle effects spawned on the weapon mesh
type EffectType int

const (
	EffectMuzzleFlash EffectType = iota
	EffectTypeCount
)

// String returns the effect name
func (e EffectType) String() string {
	switch e {
	case EffectMuzzleFlash:
		return "muzzle_flash"
	default:
		return "unknown"
	}
}
