package core

// RejectReason explains why a trigger pull did not discharge
type RejectReason int

const (
	RejectNone        RejectReason = iota
	RejectNotAiming                // Trigger pulled without aiming
	RejectOutOfAmmo                // Magazine empty
	RejectRateLimited              // Previous shot still inside its rate window
)

// String returns the stable reason name used in logs, metrics and the journal
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectNotAiming:
		return "not_aiming"
	case RejectOutOfAmmo:
		return "out_of_ammo"
	case RejectRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}
