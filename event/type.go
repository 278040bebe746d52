package event

// EventType represents the type of weapon event
type EventType int

const (
	// EventAimStarted signals the aim cone was raised and reset to its base radius
	// Trigger: Weapon.StartAiming | Payload: *AimPayload
	EventAimStarted EventType = iota

	// EventAimStopped signals the aim cone was lowered
	// Trigger: Weapon.StopAiming | Payload: *AimPayload
	EventAimStopped

	// EventFireRejected reports a trigger pull that did not discharge
	// Trigger: Weapon.Fire gate | Payload: *FireRejectedPayload
	EventFireRejected

	// EventWeaponFired reports an accepted discharge once its ray has been resolved
	// Trigger: Weapon.Fire | Payload: *WeaponFiredPayload
	EventWeaponFired

	// EventShotHit reports a ray that struck a surface
	// Trigger: hit resolution | Payload: *ShotHitPayload
	EventShotHit

	// EventShotMissed reports a ray that reached max range unobstructed
	// Trigger: hit resolution | Payload: *ShotMissedPayload
	EventShotMissed

	// EventDamageUnattributed reports a hit whose damage was skipped for lack of an instigator
	// Trigger: hit resolution | Payload: *DamageUnattributedPayload
	EventDamageUnattributed

	// EventAimFallback reports a degenerate aim vector replaced by muzzle forward
	// Trigger: hit resolution | Payload: *AimFallbackPayload
	EventAimFallback

	// EventCooldownElapsed reports the deferred post-shot cooldown task ran
	// Trigger: scheduler | Payload: nil
	EventCooldownElapsed

	// EventWeaponReloaded reports ammunition added to the magazine
	// Trigger: Weapon.Reload | Payload: *ReloadPayload
	EventWeaponReloaded

	// EventWeaponDestroyed reports teardown and cancellation of pending tasks
	// Trigger: Weapon.Destroy | Payload: nil
	EventWeaponDestroyed

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventAimStarted:         "aim_started",
	EventAimStopped:         "aim_stopped",
	EventFireRejected:       "fire_rejected",
	EventWeaponFired:        "weapon_fired",
	EventShotHit:            "shot_hit",
	EventShotMissed:         "shot_missed",
	EventDamageUnattributed: "damage_unattributed",
	EventAimFallback:        "aim_fallback",
	EventCooldownElapsed:    "cooldown_elapsed",
	EventWeaponReloaded:     "weapon_reloaded",
	EventWeaponDestroyed:    "weapon_destroyed",
}

// String returns the snake_case event name
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent is a single weapon event
type GameEvent struct {
	Type    EventType
	Weapon  string  // Weapon name
	Time    float64 // Simulation seconds
	Payload any
}
