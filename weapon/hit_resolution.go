package weapon

import (
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/vmath"
)

// ErrUnresolvedInstigator marks a hit whose damage could not be attributed
var ErrUnresolvedInstigator = errors.New("no instigating controller for damage")

// Shot is one sampled ray
type Shot struct {
	ID        uuid.UUID
	Origin    vmath.Vec3F
	Direction vmath.Vec3F
	End       vmath.Vec3F
	OffsetX   float64
	OffsetZ   float64
	Fallback  bool // Aim vector was degenerate; Direction is muzzle forward
}

// HitOutcome is the result of resolving one shot
// Hit=false is a miss: Location equals Shot.End and Actor is nil
type HitOutcome struct {
	Hit           bool
	Shot          Shot
	Actor         Actor
	Location      vmath.Vec3F
	Normal        vmath.Vec3F
	Distance      float64
	DamageApplied bool
	Err           error // ErrUnresolvedInstigator when damage was skipped
}

// HitResolver turns a fire event into a world ray, resolves it and applies damage
type HitResolver struct {
	name   string
	state  *State
	cone   *Cone
	self   core.Entity
	owner  Owner // Optional
	query  SpatialQuery
	damage DamageSink
	audio  AudioCue  // Optional
	debug  DebugDraw // Optional
	sink   event.Sink
	clock  func() float64

	statHit          *atomic.Int64
	statMiss         *atomic.Int64
	statDamage       *atomic.Int64
	statUnattributed *atomic.Int64
	statFallback     *atomic.Int64
}

// Resolve samples the cone, casts the ray from the muzzle and applies the effect
func (h *HitResolver) Resolve(origin, forward, up vmath.Vec3F) HitOutcome {
	shot := h.aim(origin, forward, up)
	if shot.Fallback {
		h.statFallback.Add(1)
		h.emit(event.EventAimFallback, &event.AimFallbackPayload{ShotID: shot.ID})
	}

	ignore := NewIgnoreSet(h.self, h.ownerEntity())
	hit, ok := h.query.RayCast(shot.Origin, shot.End, ignore)
	if !ok {
		return h.miss(shot)
	}
	return h.hit(shot, hit)
}

// aim composes the local aim point (x, height, z), moves it to world space and builds the ray
func (h *HitResolver) aim(origin, forward, up vmath.Vec3F) Shot {
	x, z := h.cone.SampleConeOffset()

	basis := vmath.NewBasis(forward, up)
	muzzle := vmath.Transform{Origin: origin, Basis: basis}
	aimPoint := muzzle.PointToWorld(vmath.Vec3F{X: x, Y: h.state.ConeHeight, Z: z})

	fallbackDir, _ := vmath.V3FNormalizeSafe(forward, basis.Forward)
	dir, ok := vmath.V3FNormalizeSafe(vmath.V3FSub(aimPoint, origin), fallbackDir)

	return Shot{
		ID:        uuid.New(),
		Origin:    origin,
		Direction: dir,
		End:       vmath.V3FAdd(origin, vmath.V3FScale(dir, h.state.MaxRange)),
		OffsetX:   x,
		OffsetZ:   z,
		Fallback:  !ok,
	}
}

func (h *HitResolver) miss(shot Shot) HitOutcome {
	h.statMiss.Add(1)

	if h.debug != nil {
		h.debug.DrawLine(shot.Origin, shot.End, DebugMissColor, parameter.DebugShotDuration)
	}
	if h.audio != nil {
		h.audio.PlayAt(core.SoundMiss, shot.End)
	}

	h.emit(event.EventShotMissed, &event.ShotMissedPayload{
		ShotID:    shot.ID,
		End:       shot.End,
		Direction: shot.Direction,
	})

	return HitOutcome{
		Shot:     shot,
		Location: shot.End,
		Distance: h.state.MaxRange,
	}
}

func (h *HitResolver) hit(shot Shot, hit RayHit) HitOutcome {
	h.statHit.Add(1)

	out := HitOutcome{
		Hit:      true,
		Shot:     shot,
		Actor:    hit.Actor,
		Location: hit.Location,
		Normal:   hit.Normal,
		Distance: hit.Distance,
	}

	var target core.Entity
	if hit.Actor != nil {
		target = hit.Actor.Entity()
		if hit.Actor.AcceptsDamage() {
			h.applyDamage(&out, hit)
		}
	}

	if h.debug != nil {
		h.debug.DrawLine(shot.Origin, hit.Location, DebugHitColor, parameter.DebugShotDuration)
		h.debug.DrawPoint(hit.Location, parameter.DebugHitPointSize, DebugHitColor, parameter.DebugShotDuration)
	}

	applied := 0.0
	if out.DamageApplied {
		applied = h.state.Damage
	}
	h.emit(event.EventShotHit, &event.ShotHitPayload{
		ShotID:    shot.ID,
		Actor:     target,
		Location:  hit.Location,
		Normal:    hit.Normal,
		Direction: shot.Direction,
		Distance:  hit.Distance,
		Damage:    applied,
	})

	return out
}

func (h *HitResolver) applyDamage(out *HitOutcome, hit RayHit) {
	var (
		ctrl ControllerRef
		ok   bool
	)
	if h.owner != nil {
		ctrl, ok = h.owner.InstigatingController()
	}

	if !ok {
		out.Err = ErrUnresolvedInstigator
		h.statUnattributed.Add(1)
		h.emit(event.EventDamageUnattributed, &event.DamageUnattributedPayload{
			ShotID: out.Shot.ID,
			Actor:  hit.Actor.Entity(),
			Err:    ErrUnresolvedInstigator,
		})
		return
	}

	h.damage.ApplyPointDamage(hit.Actor, h.state.Damage, out.Shot.Direction, hit, ctrl, h.self)
	out.DamageApplied = true
	h.statDamage.Add(1)
}

func (h *HitResolver) ownerEntity() core.Entity {
	if h.owner == nil {
		return core.NoEntity
	}
	return h.owner.Entity()
}

func (h *HitResolver) emit(t event.EventType, payload any) {
	h.sink.Emit(event.GameEvent{
		Type:    t,
		Weapon:  h.name,
		Time:    h.clock(),
		Payload: payload,
	})
}
