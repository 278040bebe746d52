package system

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/hitscan/engine"
	"github.com/lixenwraith/hitscan/event"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/status"
	"github.com/lixenwraith/hitscan/weapon"
)

var (
	ErrDuplicateWeapon = errors.New("weapon name already registered")
	ErrDeadWeapon      = errors.New("weapon is destroyed")
)

// WeaponSystem owns weapons and confines them to the simulation goroutine
// Inputs from other goroutines go through Submit; Update advances the clock,
// ticks every cone, drains commands and runs due scheduler tasks
type WeaponSystem struct {
	clock     *engine.SimClock
	scheduler *engine.Scheduler
	commands  *event.Queue[Command]
	pending   []Command
	log       zerolog.Logger

	weapons map[string]*weapon.Weapon
	order   []string

	// Telemetry
	statCommands *atomic.Int64
	statUnknown  *atomic.Int64
	statDisabled *atomic.Int64
	statWeapons  *atomic.Int64

	enabled bool
}

// NewWeaponSystem creates an empty system driving clock and scheduler
func NewWeaponSystem(clock *engine.SimClock, scheduler *engine.Scheduler, reg *status.Registry, log zerolog.Logger) *WeaponSystem {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &WeaponSystem{
		clock:        clock,
		scheduler:    scheduler,
		commands:     event.NewQueue[Command](parameter.CommandQueueSize),
		log:          log,
		weapons:      make(map[string]*weapon.Weapon),
		statCommands: reg.Ints.Get("system.weapon.commands"),
		statUnknown:  reg.Ints.Get("system.weapon.unknown_target"),
		statDisabled: reg.Ints.Get("system.weapon.disabled_drops"),
		statWeapons:  reg.Ints.Get("system.weapon.count"),
		enabled:      true,
	}
}

// Name returns system's name
func (s *WeaponSystem) Name() string {
	return "weapon"
}

// Add registers w under its name
func (s *WeaponSystem) Add(w *weapon.Weapon) error {
	if !w.Alive() {
		return fmt.Errorf("add %q: %w", w.Name(), ErrDeadWeapon)
	}
	if _, ok := s.weapons[w.Name()]; ok {
		return fmt.Errorf("add %q: %w", w.Name(), ErrDuplicateWeapon)
	}
	s.weapons[w.Name()] = w
	s.order = append(s.order, w.Name())
	s.statWeapons.Store(int64(len(s.weapons)))
	return nil
}

// Weapon returns the registered weapon by name
func (s *WeaponSystem) Weapon(name string) (*weapon.Weapon, bool) {
	w, ok := s.weapons[name]
	return w, ok
}

// Weapons returns registered weapons in registration order
func (s *WeaponSystem) Weapons() []*weapon.Weapon {
	out := make([]*weapon.Weapon, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.weapons[name])
	}
	return out
}

// Remove destroys and unregisters the named weapon
func (s *WeaponSystem) Remove(name string) bool {
	w, ok := s.weapons[name]
	if !ok {
		return false
	}
	w.Destroy()
	delete(s.weapons, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	s.statWeapons.Store(int64(len(s.weapons)))
	return true
}

// Submit queues a command; safe from any goroutine
// Returns false when the queue is full and the command was dropped
func (s *WeaponSystem) Submit(cmd Command) bool {
	return s.commands.Push(cmd)
}

// Dropped returns commands rejected by a full queue
func (s *WeaponSystem) Dropped() int64 {
	return s.commands.Dropped()
}

// Enabled reports whether commands are being applied
func (s *WeaponSystem) Enabled() bool {
	return s.enabled
}

// Now returns current simulation time
func (s *WeaponSystem) Now() float64 {
	return s.clock.Now()
}

// Update runs one simulation step of dt seconds
func (s *WeaponSystem) Update(dt float64) {
	applied := s.clock.Advance(dt)

	// Tick before commands so weapon time matches the clock when Fire runs
	for _, name := range s.order {
		s.weapons[name].Tick(applied)
	}

	s.pending = s.commands.ConsumeInto(s.pending[:0])
	for _, cmd := range s.pending {
		s.HandleCommand(cmd)
	}
	clear(s.pending)

	s.scheduler.Advance(s.clock.Now())
}

// HandleCommand applies cmd immediately; simulation goroutine only
func (s *WeaponSystem) HandleCommand(cmd Command) {
	s.statCommands.Add(1)

	if cmd.Type == CommandEnable {
		s.enabled = cmd.Amount != 0
		s.log.Info().Bool("enabled", s.enabled).Msg("Weapon system toggled")
		return
	}

	if !s.enabled {
		s.statDisabled.Add(1)
		return
	}

	if cmd.Weapon == "" {
		// Snapshot: destroy mutates order
		for _, name := range slices.Clone(s.order) {
			s.apply(cmd, name)
		}
		return
	}

	if _, ok := s.weapons[cmd.Weapon]; !ok {
		s.statUnknown.Add(1)
		s.log.Debug().Str("weapon", cmd.Weapon).Str("command", cmd.Type.String()).Msg("Command for unknown weapon")
		return
	}
	s.apply(cmd, cmd.Weapon)
}

func (s *WeaponSystem) apply(cmd Command, name string) {
	w := s.weapons[name]

	switch cmd.Type {
	case CommandAimStart:
		w.StartAiming()
	case CommandAimStop:
		w.StopAiming()
	case CommandFire:
		w.Fire(s.clock.Now())
	case CommandReload:
		w.Reload(cmd.Amount)
	case CommandDestroy:
		s.Remove(name)
	}
}

// Destroy tears down every weapon
func (s *WeaponSystem) Destroy() {
	for _, name := range slices.Clone(s.order) {
		s.Remove(name)
	}
}
