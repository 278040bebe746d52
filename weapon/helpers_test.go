package weapon_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/engine"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/vmath"
	"github.com/lixenwraith/hitscan/weapon"
)

const (
	selfID   core.Entity = 1
	ownerID  core.Entity = 2
	ctrlID   core.Entity = 3
	targetID core.Entity = 10
)

// fixedMuzzle points along world +Y with +Z up, so local and world axes coincide
type fixedMuzzle struct {
	origin vmath.Vec3F
}

func (m fixedMuzzle) SocketTransform(string) (vmath.Vec3F, vmath.Vec3F, vmath.Vec3F) {
	return m.origin, vmath.AxisY, vmath.AxisZ
}

type stubOwner struct {
	id   core.Entity
	ctrl weapon.ControllerRef
	ok   bool
}

func (o *stubOwner) Entity() core.Entity { return o.id }
func (o *stubOwner) InstigatingController() (weapon.ControllerRef, bool) {
	return o.ctrl, o.ok
}

func controlledOwner() *stubOwner {
	return &stubOwner{id: ownerID, ctrl: weapon.ControllerRef{Entity: ctrlID, Name: "player"}, ok: true}
}

type stubActor struct {
	id         core.Entity
	damageable bool
}

func (a *stubActor) Entity() core.Entity { return a.id }
func (a *stubActor) AcceptsDamage() bool { return a.damageable }

// openRange never hits anything
type openRange struct {
	casts   int
	ignored []weapon.IgnoreSet
}

func (r *openRange) RayCast(_, _ vmath.Vec3F, ignore weapon.IgnoreSet) (weapon.RayHit, bool) {
	r.casts++
	r.ignored = append(r.ignored, ignore)
	return weapon.RayHit{}, false
}

// wall reports every ray striking actor at a fixed distance
type wall struct {
	actor    weapon.Actor
	distance float64
}

func (w *wall) RayCast(origin, end vmath.Vec3F, _ weapon.IgnoreSet) (weapon.RayHit, bool) {
	dir := vmath.V3FNormalize(vmath.V3FSub(end, origin))
	return weapon.RayHit{
		Actor:    w.actor,
		Location: vmath.V3FAdd(origin, vmath.V3FScale(dir, w.distance)),
		Normal:   vmath.V3FScale(dir, -1),
		Distance: w.distance,
	}, true
}

type damageCall struct {
	target     weapon.Actor
	amount     float64
	instigator weapon.ControllerRef
	causer     core.Entity
}

type damageLog struct {
	calls []damageCall
}

func (d *damageLog) ApplyPointDamage(target weapon.Actor, amount float64, _ vmath.Vec3F, _ weapon.RayHit, instigator weapon.ControllerRef, causer core.Entity) {
	d.calls = append(d.calls, damageCall{target: target, amount: amount, instigator: instigator, causer: causer})
}

type harness struct {
	w      *weapon.Weapon
	sched  *engine.Scheduler
	events *event.Recorder
	reg    *status.Registry
	damage *damageLog
}

// newHarness wires a weapon to in-memory collaborators
// A nil owner leaves the weapon without an instigator
func newHarness(t *testing.T, cfg weapon.Config, query weapon.SpatialQuery, owner *stubOwner) *harness {
	t.Helper()

	h := &harness{
		events: event.NewRecorder(),
		reg:    status.NewRegistry(),
		damage: &damageLog{},
	}
	h.sched = engine.NewScheduler(h.reg)

	deps := weapon.Deps{
		Self:      selfID,
		Muzzle:    fixedMuzzle{},
		Query:     query,
		Damage:    h.damage,
		Scheduler: h.sched,
		Sink:      h.events,
		Rand:      rand.New(rand.NewSource(7)),
		Registry:  h.reg,
	}
	if owner != nil {
		deps.Owner = owner
	}

	w, err := weapon.New(cfg, deps)
	require.NoError(t, err)
	h.w = w
	return h
}

func (h *harness) counter(key string) int64 {
	return h.reg.Snapshot().Int(key)
}

func newScheduler() *engine.Scheduler {
	return engine.NewScheduler(status.NewRegistry())
}
