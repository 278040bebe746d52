package weapon

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/status"
)

var (
	ErrMissingMuzzle    = errors.New("weapon requires a muzzle")
	ErrMissingQuery     = errors.New("weapon requires a spatial query service")
	ErrMissingDamage    = errors.New("weapon requires a damage sink")
	ErrMissingScheduler = errors.New("weapon requires a scheduler")
)

// Deps are the collaborators a weapon is wired to
// Optional capabilities may be nil and are skipped silently
type Deps struct {
	Self      core.Entity
	Owner     Owner // Optional; without it damage is never attributed
	Muzzle    Muzzle
	Query     SpatialQuery
	Damage    DamageSink
	Scheduler Scheduler

	Indicator ConeIndicator // Optional
	Audio     AudioCue      // Optional
	Particles ParticleCue   // Optional
	Debug     DebugDraw     // Optional
	Sink      event.Sink    // Optional

	Logger   *zerolog.Logger  // Optional, disabled when nil
	Rand     *rand.Rand       // Optional, time-seeded when nil
	Registry *status.Registry // Optional
}

// Weapon is the host-facing hit-scan weapon
// Entry points: Fire, StartAiming, StopAiming, Tick, plus Reload and Destroy for lifecycle
type Weapon struct {
	state *State
	cone  *Cone
	fire  *FireControl
	hits  *HitResolver
	sink  event.Sink
	log   zerolog.Logger

	elapsed float64 // Tick-accumulated time for events without an explicit timestamp
	alive   bool
}

// New validates cfg and wires the weapon to its collaborators
func New(cfg Config, deps Deps) (*Weapon, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, fmt.Errorf("weapon %q: %w", cfg.Name, err)
	}
	switch {
	case deps.Muzzle == nil:
		return nil, ErrMissingMuzzle
	case deps.Query == nil:
		return nil, ErrMissingQuery
	case deps.Damage == nil:
		return nil, ErrMissingDamage
	case deps.Scheduler == nil:
		return nil, ErrMissingScheduler
	}

	sink := deps.Sink
	if sink == nil {
		sink = event.Discard
	}
	logger := zerolog.Nop()
	if deps.Logger != nil {
		logger = *deps.Logger
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	reg := deps.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	w := &Weapon{
		state: NewState(cfg),
		sink:  sink,
		log:   logger,
		alive: true,
	}
	w.cone = NewCone(w.state, deps.Indicator, rng, cfg.Sampling)

	keys := MetricKeys(cfg.Name)
	w.hits = &HitResolver{
		name:             cfg.Name,
		state:            w.state,
		cone:             w.cone,
		self:             deps.Self,
		owner:            deps.Owner,
		query:            deps.Query,
		damage:           deps.Damage,
		audio:            deps.Audio,
		debug:            deps.Debug,
		sink:             sink,
		clock:            w.now,
		statHit:          reg.Ints.Get(keys.Hit),
		statMiss:         reg.Ints.Get(keys.Miss),
		statDamage:       reg.Ints.Get(keys.DamageApplied),
		statUnattributed: reg.Ints.Get(keys.Unattributed),
		statFallback:     reg.Ints.Get(keys.AimFallback),
	}
	w.fire = &FireControl{
		name:            cfg.Name,
		state:           w.state,
		resolver:        w.hits,
		muzzle:          deps.Muzzle,
		scheduler:       deps.Scheduler,
		owner:           w,
		audio:           deps.Audio,
		particles:       deps.Particles,
		sink:            sink,
		log:             logger,
		statFired:       reg.Ints.Get(keys.Fired),
		statNotAiming:   reg.Ints.Get(keys.RejectedNotAiming),
		statOutOfAmmo:   reg.Ints.Get(keys.RejectedOutOfAmmo),
		statRateLimited: reg.Ints.Get(keys.RejectedRateLimited),
	}

	return w, nil
}

// Name returns the configured weapon name
func (w *Weapon) Name() string {
	return w.state.Name
}

// Fire pulls the trigger at simulation time now
func (w *Weapon) Fire(now float64) FireResult {
	// A destroyed weapon cannot aim; the pull is still counted and reported
	if !w.alive {
		return w.fire.reject(now, core.RejectNotAiming)
	}
	if now > w.elapsed {
		w.elapsed = now
	}
	return w.fire.TryFire(now)
}

// StartAiming raises the cone and resets its radius
func (w *Weapon) StartAiming() {
	if !w.alive {
		return
	}
	w.cone.StartAiming()
	w.emit(event.EventAimStarted, &event.AimPayload{Radius: w.state.CurrentBaseRadius})
}

// StopAiming lowers the cone
func (w *Weapon) StopAiming() {
	if !w.alive {
		return
	}
	w.cone.StopAiming()
	w.emit(event.EventAimStopped, &event.AimPayload{Radius: w.state.CurrentBaseRadius})
}

// Tick advances the cone by one simulation step of dt seconds
func (w *Weapon) Tick(dt float64) {
	if !w.alive {
		return
	}
	if dt > 0 {
		w.elapsed += dt
	}
	w.cone.AdvanceCone(dt)
}

// Reload adds rounds to the magazine; non-positive amounts are ignored
func (w *Weapon) Reload(rounds int) {
	if !w.alive || rounds <= 0 {
		return
	}
	w.state.AmmoCount += rounds
	w.emit(event.EventWeaponReloaded, &event.ReloadPayload{Added: rounds, Ammo: w.state.AmmoCount})
}

// SetFireRate changes the fire rate; the shot interval follows on the next pull
func (w *Weapon) SetFireRate(rate float64) error {
	return w.state.SetFireRate(rate)
}

// Destroy cancels pending tasks and marks the weapon dead
// Later calls to any entry point are no-ops
func (w *Weapon) Destroy() {
	if !w.alive {
		return
	}
	w.fire.cancelPending()
	w.alive = false
	w.emit(event.EventWeaponDestroyed, nil)
}

// Alive implements engine.Owner
func (w *Weapon) Alive() bool {
	return w.alive
}

// CoolingDown reports whether the post-shot cooldown task is pending
func (w *Weapon) CoolingDown() bool {
	return w.fire.CoolingDown()
}

// Snapshot returns a copy of the weapon state
func (w *Weapon) Snapshot() State {
	return *w.state
}

// Cone exposes the targeting model for sampling and inspection
func (w *Weapon) Cone() *Cone {
	return w.cone
}

// Resolver exposes hit resolution for hosts that cast from an explicit muzzle pose
// Resolving directly bypasses the fire gates and does not consume ammunition
func (w *Weapon) Resolver() *HitResolver {
	return w.hits
}

func (w *Weapon) now() float64 {
	return w.elapsed
}

func (w *Weapon) emit(t event.EventType, payload any) {
	w.sink.Emit(event.GameEvent{
		Type:    t,
		Weapon:  w.state.Name,
		Time:    w.elapsed,
		Payload: payload,
	})
}
