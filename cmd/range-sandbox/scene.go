package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/render"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/vmath"
	"github.com/lixenwraith/hitscan/weapon"
	"github.com/lixenwraith/hitscan/world"
)

const (
	gunEntity    core.Entity = 1
	playerEntity core.Entity = 2
	ctrlEntity   core.Entity = 3
	firstBody    core.Entity = 100

	pillarHalfWidth = 90.0
	pillarHalfTall  = 5000.0 // Tall enough that vertical cone spread still strikes
	flashDuration   = 0.06
	yawStep         = 3 * math.Pi / 180
	maxYaw          = 60 * math.Pi / 180
)

var (
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleWounded  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleCritical = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGun      = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleFlash    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleOutcome  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// player carries the gun and credits its damage to the local controller
type player struct{}

func (player) Entity() core.Entity { return playerEntity }
func (player) InstigatingController() (weapon.ControllerRef, bool) {
	return weapon.ControllerRef{Entity: ctrlEntity, Name: "player"}, true
}

// turret is the muzzle at the world origin; yaw is written by the input goroutine
type turret struct {
	yaw *status.Gauge
}

func (t turret) basis() (forward, right vmath.Vec3F) {
	yaw := t.yaw.Get()
	sin, cos := math.Sincos(yaw)
	return vmath.Vec3F{X: sin, Y: cos}, vmath.Vec3F{X: cos, Y: -sin}
}

// SocketTransform implements weapon.Muzzle
func (t turret) SocketTransform(string) (origin, forward, up vmath.Vec3F) {
	forward, _ = t.basis()
	return vmath.Vec3F{}, forward, vmath.AxisZ
}

func (t turret) turn(delta float64) {
	yaw := vmath.Clamp(t.yaw.Get()+delta, -maxYaw, maxYaw)
	t.yaw.Set(yaw)
}

// flash is the muzzle flash particle stand-in
type flash struct {
	clock func() float64
	until float64
}

// SpawnAttached implements weapon.ParticleCue
func (f *flash) SpawnAttached(effect core.EffectType, _ string) {
	if effect == core.EffectMuzzleFlash {
		f.until = f.clock() + flashDuration
	}
}

func (f *flash) active() bool {
	return f.clock() < f.until
}

// hud keeps the last outcome line for display; simulation goroutine only
type hud struct {
	outcome string
	shots   int
}

// Emit implements event.Sink
func (h *hud) Emit(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.ShotHitPayload:
		h.shots++
		if p.Actor.Valid() {
			h.outcome = fmt.Sprintf("#%d hit target %d at %.0f for %.0f", h.shots, p.Actor, p.Distance, p.Damage)
		} else {
			h.outcome = fmt.Sprintf("#%d hit wall at %.0f", h.shots, p.Distance)
		}
	case *event.ShotMissedPayload:
		h.shots++
		h.outcome = fmt.Sprintf("#%d miss", h.shots)
	case *event.FireRejectedPayload:
		h.outcome = "rejected: " + p.Reason.String()
	case *event.ReloadPayload:
		h.outcome = fmt.Sprintf("reloaded %d", p.Added)
	}
}

// rangeScene owns the shooting range layout
type rangeScene struct {
	world  *world.World
	health *world.Health
	rng    *rand.Rand
	depth  float64
	log    zerolog.Logger
}

func newRangeScene(depth float64, targets int, rng *rand.Rand, log zerolog.Logger) *rangeScene {
	s := &rangeScene{
		world: world.New(firstBody),
		rng:   rng,
		depth: depth,
		log:   log,
	}
	s.health = world.NewHealth(s.world, parameter.SandboxTargetHP, log)
	s.health.OnKill(func(victim *world.Body, killer weapon.ControllerRef) {
		s.log.Info().Str("victim", victim.Name).Str("killer", killer.Name).Msg("Target down")
		s.spawnTarget()
	})

	// Cover walls between the gun and the far targets
	s.world.Add("cover-left", world.Box{
		Min: vmath.Vec3F{X: -depth * 0.3, Y: depth * 0.35, Z: -pillarHalfTall},
		Max: vmath.Vec3F{X: -depth * 0.1, Y: depth * 0.38, Z: pillarHalfTall},
	}, true, false)
	s.world.Add("cover-right", world.Box{
		Min: vmath.Vec3F{X: depth * 0.12, Y: depth * 0.5, Z: -pillarHalfTall},
		Max: vmath.Vec3F{X: depth * 0.25, Y: depth * 0.53, Z: pillarHalfTall},
	}, true, false)

	for i := 0; i < targets; i++ {
		s.spawnTarget()
	}
	return s
}

// spawnTarget places a damageable pillar at a random downrange spot
func (s *rangeScene) spawnTarget() *world.Body {
	y := s.depth * (0.45 + 0.45*s.rng.Float64())
	x := (s.rng.Float64()*2 - 1) * y * math.Tan(maxYaw) * 0.8
	center := vmath.Vec3F{X: x, Y: y}
	half := vmath.Vec3F{X: pillarHalfWidth, Y: pillarHalfWidth, Z: pillarHalfTall}
	return s.world.Add(
		fmt.Sprintf("dummy-%d", s.rng.Intn(1000)),
		world.Box{Min: vmath.V3FSub(center, half), Max: vmath.V3FAdd(center, half)},
		false, true,
	)
}

// draw paints bodies, the gun, cone, debug overlay and HUD
func (s *rangeScene) draw(screen tcell.Screen, gun turret, w *weapon.Weapon, gauge *render.ConeGauge, overlay *render.Overlay, fx *flash, info *hud) {
	width, height := screen.Size()
	screen.Clear()
	if width < 20 || height < 8 {
		render.DrawText(screen, 0, 0, styleHUD, "terminal too small")
		screen.Show()
		return
	}

	proj := render.Fit(width, height-3, s.depth)

	for _, b := range s.world.Bodies() {
		box, ok := b.Shape.(world.Box)
		if !ok {
			x, y := proj.Cell(b.Shape.Center())
			screen.SetContent(x, y, 'O', nil, styleTarget)
			continue
		}
		glyph, style := '#', styleWall
		if b.Damageable {
			glyph, style = 'H', s.hpStyle(b)
		}
		x0, y1 := proj.Cell(box.Min)
		x1, y0 := proj.Cell(box.Max)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}

	forward, right := gun.basis()
	gauge.Render(screen, proj, vmath.Vec3F{}, forward, right)

	overlay.Prune()
	overlay.Render(screen, proj)

	gx, gy := proj.Cell(vmath.Vec3F{})
	if fx.active() {
		screen.SetContent(gx, gy-1, '*', nil, styleFlash)
	}
	screen.SetContent(gx, gy, '^', nil, styleGun)

	snap := w.Snapshot()
	row := height - 3
	gauge.RenderBar(screen, 0, row, width/2, snap.MinBaseRadius, snap.BaseRadius)
	render.DrawText(screen, width/2+1, row, styleHUD, fmt.Sprintf("ammo %d  kills %d  dmg %.0f",
		snap.AmmoCount, s.health.Kills(ctrlEntity), s.health.Dealt(ctrlEntity)))
	render.DrawText(screen, 0, row+1, styleOutcome, info.outcome)
	render.DrawText(screen, 0, row+2, styleHUD, "a aim  space fire  ←/→ turn  r reload  m mute  q quit")

	screen.Show()
}

func (s *rangeScene) hpStyle(b *world.Body) tcell.Style {
	frac := s.health.HP(b.Entity()) / parameter.SandboxTargetHP
	switch {
	case frac > 0.6:
		return styleTarget
	case frac > 0.3:
		return styleWounded
	default:
		return styleCritical
	}
}
