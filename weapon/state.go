package weapon

import (
	"fmt"
	"math"

	"github.com/lixenwraith/hitscan/parameter"
)

// State is the persistent weapon entity mutated by ticks and fire events
// Single owner: only the owning Weapon mutates it, from the simulation thread
type State struct {
	Name   string
	Recoil float64

	AmmoCount int
	Damage    float64
	MaxRange  float64
	fireRate  float64

	LastFireTime float64
	hasFired     bool

	IsAiming          bool
	BaseRadius        float64
	MinBaseRadius     float64
	CurrentBaseRadius float64
	ConeHeight        float64
	ShrinkSpeed       float64
}

// NewState builds state from a normalized config
func NewState(cfg Config) *State {
	return &State{
		Name:              cfg.Name,
		Recoil:            cfg.Recoil,
		AmmoCount:         cfg.Ammo,
		Damage:            cfg.Damage,
		MaxRange:          cfg.MaxRange,
		fireRate:          cfg.FireRate,
		BaseRadius:        cfg.BaseRadius,
		MinBaseRadius:     cfg.MinBaseRadius,
		CurrentBaseRadius: cfg.BaseRadius,
		ConeHeight:        cfg.ConeHeight,
		ShrinkSpeed:       cfg.ShrinkSpeed,
	}
}

// FireRate returns shots per second
func (s State) FireRate() float64 {
	return s.fireRate
}

// SetFireRate changes the rate; TimeBetweenShots follows immediately
func (s *State) SetFireRate(rate float64) error {
	if !(rate > 0) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFireRate, rate)
	}
	s.fireRate = rate
	return nil
}

// TimeBetweenShots is derived from the current fire rate on every read
func (s State) TimeBetweenShots() float64 {
	return parameter.WeaponShotIntervalFactor / s.fireRate
}

// HasFired reports whether any discharge was accepted yet
func (s State) HasFired() bool {
	return s.hasFired
}

// recordShot consumes one round and stamps the fire time
func (s *State) recordShot(now float64) {
	s.AmmoCount--
	if !s.hasFired || now > s.LastFireTime {
		s.LastFireTime = now
	}
	s.hasFired = true
}
