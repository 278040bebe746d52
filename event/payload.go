package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/vmath"
)

// AimPayload carries cone state at an aim transition
type AimPayload struct {
	Radius float64
}

// FireRejectedPayload carries the gate state at rejection
type FireRejectedPayload struct {
	Reason           core.RejectReason
	Ammo             int
	LastFireTime     float64
	TimeBetweenShots float64
}

// WeaponFiredPayload describes an accepted discharge
type WeaponFiredPayload struct {
	ShotID     uuid.UUID
	AmmoLeft   int
	Origin     vmath.Vec3F
	Direction  vmath.Vec3F
	ConeRadius float64
	OffsetX    float64
	OffsetZ    float64
}

// ShotHitPayload describes a ray that struck something
type ShotHitPayload struct {
	ShotID    uuid.UUID
	Actor     core.Entity
	Location  vmath.Vec3F
	Normal    vmath.Vec3F
	Direction vmath.Vec3F
	Distance  float64
	Damage    float64 // Zero when no damage was applied
}

// ShotMissedPayload describes a ray that reached max range
type ShotMissedPayload struct {
	ShotID    uuid.UUID
	End       vmath.Vec3F
	Direction vmath.Vec3F
}

// DamageUnattributedPayload describes a hit whose damage was skipped
type DamageUnattributedPayload struct {
	ShotID uuid.UUID
	Actor  core.Entity
	Err    error
}

// AimFallbackPayload identifies the shot that used the muzzle forward fallback
type AimFallbackPayload struct {
	ShotID uuid.UUID
}

// ReloadPayload carries ammunition counts around a reload
type ReloadPayload struct {
	Added int
	Ammo  int
}
