package weapon

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/engine"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/parameter"
)

// FireResult is the outcome of one trigger pull
// Rejections are expected results, not errors
type FireResult struct {
	Fired   bool
	Reason  core.RejectReason // RejectNone when fired
	Outcome HitOutcome        // Valid only when fired
}

// Rejected reports whether the pull was refused for reason r
func (r FireResult) Rejected(reason core.RejectReason) bool {
	return !r.Fired && r.Reason == reason
}

// FireControl gates trigger pulls by aim, ammunition and rate, and owns the post-shot cooldown
type FireControl struct {
	name      string
	state     *State
	resolver  *HitResolver
	muzzle    Muzzle
	scheduler Scheduler
	owner     engine.Owner
	audio     AudioCue    // Optional
	particles ParticleCue // Optional
	sink      event.Sink
	log       zerolog.Logger

	pending engine.TaskHandle

	statFired       *atomic.Int64
	statNotAiming   *atomic.Int64
	statOutOfAmmo   *atomic.Int64
	statRateLimited *atomic.Int64
}

// TryFire attempts one discharge at simulation time now
// Gate order: aiming, ammunition, rate window
func (f *FireControl) TryFire(now float64) FireResult {
	s := f.state

	if !s.IsAiming {
		return f.reject(now, core.RejectNotAiming)
	}

	if s.AmmoCount <= 0 {
		if f.audio != nil {
			origin, _, _ := f.muzzle.SocketTransform(parameter.MuzzleSocket)
			f.audio.PlayAt(core.SoundDryFire, origin)
		}
		return f.reject(now, core.RejectOutOfAmmo)
	}

	tbs := s.TimeBetweenShots()
	f.log.Debug().
		Str("weapon", f.name).
		Float64("now", now).
		Float64("last_fire", s.LastFireTime).
		Float64("time_between_shots", tbs).
		Float64("delta", now-s.LastFireTime).
		Int("ammo", s.AmmoCount).
		Msg("fire attempt")

	if s.HasFired() && now-s.LastFireTime <= tbs {
		return f.reject(now, core.RejectRateLimited)
	}

	origin, forward, up := f.muzzle.SocketTransform(parameter.MuzzleSocket)
	outcome := f.resolver.Resolve(origin, forward, up)

	s.recordShot(now)
	f.armCooldown(now + tbs)

	if f.particles != nil {
		f.particles.SpawnAttached(core.EffectMuzzleFlash, parameter.MuzzleSocket)
	}
	if f.audio != nil {
		f.audio.PlayAt(core.SoundFire, origin)
	}

	f.statFired.Add(1)
	f.sink.Emit(event.GameEvent{
		Type:   event.EventWeaponFired,
		Weapon: f.name,
		Time:   now,
		Payload: &event.WeaponFiredPayload{
			ShotID:     outcome.Shot.ID,
			AmmoLeft:   s.AmmoCount,
			Origin:     outcome.Shot.Origin,
			Direction:  outcome.Shot.Direction,
			ConeRadius: s.CurrentBaseRadius,
			OffsetX:    outcome.Shot.OffsetX,
			OffsetZ:    outcome.Shot.OffsetZ,
		},
	})

	return FireResult{Fired: true, Outcome: outcome}
}

// reject records a refused pull without touching weapon state
func (f *FireControl) reject(now float64, reason core.RejectReason) FireResult {
	switch reason {
	case core.RejectNotAiming:
		f.statNotAiming.Add(1)
	case core.RejectOutOfAmmo:
		f.statOutOfAmmo.Add(1)
	case core.RejectRateLimited:
		f.statRateLimited.Add(1)
	}

	f.sink.Emit(event.GameEvent{
		Type:   event.EventFireRejected,
		Weapon: f.name,
		Time:   now,
		Payload: &event.FireRejectedPayload{
			Reason:           reason,
			Ammo:             f.state.AmmoCount,
			LastFireTime:     f.state.LastFireTime,
			TimeBetweenShots: f.state.TimeBetweenShots(),
		},
	})

	return FireResult{Reason: reason}
}

// armCooldown replaces the pending cooldown task
// The completion is a reserved hook for charge-up or cooldown visuals and only clears bookkeeping
func (f *FireControl) armCooldown(at float64) {
	if f.pending != 0 {
		f.scheduler.Cancel(f.pending)
	}
	f.pending = f.scheduler.ScheduleAt(f.owner, at, func() {
		f.pending = 0
		f.sink.Emit(event.GameEvent{
			Type:   event.EventCooldownElapsed,
			Weapon: f.name,
			Time:   at,
		})
	})
}

// CoolingDown reports whether the post-shot task is still pending
func (f *FireControl) CoolingDown() bool {
	return f.pending != 0
}

// cancelPending drops the outstanding cooldown task
func (f *FireControl) cancelPending() {
	if f.pending != 0 {
		f.scheduler.Cancel(f.pending)
		f.pending = 0
	}
}
