package world

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/vmath"
	"github.com/lixenwraith/hitscan/weapon"
)

// KillFunc is notified when a body's health reaches zero
type KillFunc func(victim *Body, killer weapon.ControllerRef)

// Health tracks hit points per body and credits kills to instigating controllers
// Implements weapon.DamageSink
type Health struct {
	mu     sync.Mutex
	world  *World
	maxHP  float64
	hp     map[core.Entity]float64
	kills  map[core.Entity]int
	dealt  map[core.Entity]float64
	onKill KillFunc
	log    zerolog.Logger
}

// NewHealth creates a damage sink giving every damageable body maxHP
func NewHealth(w *World, maxHP float64, logger zerolog.Logger) *Health {
	return &Health{
		world: w,
		maxHP: maxHP,
		hp:    make(map[core.Entity]float64),
		kills: make(map[core.Entity]int),
		dealt: make(map[core.Entity]float64),
		log:   logger,
	}
}

// OnKill registers the kill callback; runs outside the health lock
func (h *Health) OnKill(fn KillFunc) {
	h.mu.Lock()
	h.onKill = fn
	h.mu.Unlock()
}

// ApplyPointDamage implements weapon.DamageSink
// Bodies that reach zero are removed from the world and the kill is credited to instigator
func (h *Health) ApplyPointDamage(target weapon.Actor, amount float64, direction vmath.Vec3F, hit weapon.RayHit, instigator weapon.ControllerRef, causer core.Entity) {
	if target == nil || amount <= 0 || !target.AcceptsDamage() {
		return
	}
	id := target.Entity()

	h.mu.Lock()
	current, ok := h.hp[id]
	if !ok {
		current = h.maxHP
	}
	current -= amount
	if current < 0 {
		current = 0
	}
	h.hp[id] = current
	h.dealt[instigator.Entity] += amount

	killed := current == 0
	if killed {
		h.kills[instigator.Entity]++
	}
	onKill := h.onKill
	h.mu.Unlock()

	h.log.Debug().
		Uint64("target", uint64(id)).
		Float64("amount", amount).
		Float64("hp", current).
		Str("instigator", instigator.Name).
		Uint64("causer", uint64(causer)).
		Float64("distance", hit.Distance).
		Msg("point damage")

	if !killed {
		return
	}

	body, ok := h.world.Body(id)
	if !ok {
		return
	}
	h.world.Remove(id)
	h.log.Info().
		Str("victim", body.Name).
		Str("killer", instigator.Name).
		Msg("target destroyed")
	if onKill != nil {
		onKill(body, instigator)
	}
}

// HP returns remaining hit points; untouched bodies report full health
func (h *Health) HP(id core.Entity) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.hp[id]; ok {
		return v
	}
	return h.maxHP
}

// Kills returns the kill tally credited to a controller
func (h *Health) Kills(controller core.Entity) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.kills[controller]
}

// Dealt returns total damage credited to a controller
func (h *Health) Dealt(controller core.Entity) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dealt[controller]
}

// Reset restores every body to full health and clears tallies
func (h *Health) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	clear(h.hp)
	clear(h.kills)
	clear(h.dealt)
}
