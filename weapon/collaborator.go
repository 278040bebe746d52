package weapon

import (
	"image/color"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/engine"
	"github.com/lixenwraith/hitscan/vmath"
)

//go:generate go tool mockgen -destination=./mocks/collaborator_mock.go -package=mocks . SpatialQuery,DamageSink,AudioCue,ParticleCue,ConeIndicator,DebugDraw

// Actor is anything a ray can strike
type Actor interface {
	Entity() core.Entity
	AcceptsDamage() bool
}

// ControllerRef names the entity credited with damage
type ControllerRef struct {
	Entity core.Entity
	Name   string
}

// InstigatorSource resolves the controller credited for the firer's damage
type InstigatorSource interface {
	InstigatingController() (ControllerRef, bool)
}

// Owner is the entity carrying the weapon
type Owner interface {
	Entity() core.Entity
	InstigatorSource
}

// IgnoreSet lists entities a ray passes through
type IgnoreSet map[core.Entity]struct{}

// NewIgnoreSet builds a set from valid entities
func NewIgnoreSet(entities ...core.Entity) IgnoreSet {
	set := make(IgnoreSet, len(entities))
	for _, e := range entities {
		if e.Valid() {
			set[e] = struct{}{}
		}
	}
	return set
}

// Contains reports whether e is ignored
func (s IgnoreSet) Contains(e core.Entity) bool {
	_, ok := s[e]
	return ok
}

// RayHit is the nearest blocking surface along a ray
// Actor is nil for static geometry
type RayHit struct {
	Actor    Actor
	Location vmath.Vec3F
	Normal   vmath.Vec3F
	Distance float64
}

// SpatialQuery finds the nearest blocking surface between origin and end
type SpatialQuery interface {
	RayCast(origin, end vmath.Vec3F, ignore IgnoreSet) (RayHit, bool)
}

// DamageSink applies point damage to a struck actor
type DamageSink interface {
	ApplyPointDamage(target Actor, amount float64, direction vmath.Vec3F, hit RayHit, instigator ControllerRef, causer core.Entity)
}

// Muzzle exposes the world transform of a mesh socket
type Muzzle interface {
	SocketTransform(socket string) (origin, forward, up vmath.Vec3F)
}

// ConeIndicator is the visual aim cone
type ConeIndicator interface {
	SetVisible(visible bool)
	SetScale(x, y, z float64)
}

// AudioCue plays a positional sound cue
type AudioCue interface {
	PlayAt(cue core.SoundType, location vmath.Vec3F)
}

// ParticleCue spawns an effect attached to a mesh socket
type ParticleCue interface {
	SpawnAttached(effect core.EffectType, socket string)
}

// DebugDraw is best-effort shot visualization
type DebugDraw interface {
	DrawLine(a, b vmath.Vec3F, c color.RGBA, duration float64)
	DrawPoint(p vmath.Vec3F, size float64, c color.RGBA, duration float64)
}

// Scheduler is the deferred callback facility of the host clock
type Scheduler interface {
	ScheduleAt(owner engine.Owner, at float64, fn func()) engine.TaskHandle
	Cancel(h engine.TaskHandle) bool
}

var (
	// DebugHitColor marks rays that struck a surface
	DebugHitColor = color.RGBA{R: 255, A: 255}
	// DebugMissColor marks rays that reached max range
	DebugMissColor = color.RGBA{B: 255, A: 255}
)
