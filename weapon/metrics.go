package weapon

import "fmt"

// Keys names the status counters a weapon publishes
type Keys struct {
	Fired               string
	RejectedNotAiming   string
	RejectedOutOfAmmo   string
	RejectedRateLimited string
	Hit                 string
	Miss                string
	DamageApplied       string
	Unattributed        string
	AimFallback         string
}

// MetricKeys returns the counter keys for a weapon name
func MetricKeys(name string) Keys {
	k := func(suffix string) string {
		return fmt.Sprintf("weapon.%s.%s", name, suffix)
	}
	return Keys{
		Fired:               k("fired"),
		RejectedNotAiming:   k("rejected.not_aiming"),
		RejectedOutOfAmmo:   k("rejected.out_of_ammo"),
		RejectedRateLimited: k("rejected.rate_limited"),
		Hit:                 k("hit"),
		Miss:                k("miss"),
		DamageApplied:       k("damage_applied"),
		Unattributed:        k("damage_unattributed"),
		AimFallback:         k("aim_fallback"),
	}
}
