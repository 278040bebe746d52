package audio

import (
	"github.com/lixenwraith/hitscan/vmath"
)

// Listener is the ear position for positional cues
type Listener struct {
	Position vmath.Vec3F
	Right    vmath.Vec3F // Unit lateral axis for stereo panning
}

// Attenuation returns linear gain for a cue at distance d
// Full gain inside ref, inverse-distance falloff beyond it, silent past max
func Attenuation(d, ref, maxDist float64) float64 {
	if d < 0 {
		d = -d
	}
	if maxDist > 0 && d > maxDist {
		return 0
	}
	if ref <= 0 || d <= ref {
		return 1
	}
	return ref / d
}

// Pan maps the lateral offset of location to a stereo pan in [-1, 1]
func (l Listener) Pan(location vmath.Vec3F) float64 {
	offset := vmath.V3FSub(location, l.Position)
	dist := vmath.V3FMag(offset)
	if dist < vmath.Epsilon {
		return 0
	}
	return vmath.Clamp(vmath.V3FDot(offset, l.Right)/dist, -1, 1)
}

// Gain combines distance attenuation with master and per-cue volume
func (l Listener) Gain(location vmath.Vec3F, cfg *Config, cueVolume float64) float64 {
	d := vmath.V3FMag(vmath.V3FSub(location, l.Position))
	return clampVolume(cfg.MasterVolume) * clampVolume(cueVolume) * Attenuation(d, cfg.ReferenceDistance, cfg.MaxDistance)
}
