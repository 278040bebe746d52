package vmath

import "math"

// ExpApproach moves current toward target by the fraction 1-exp(-rate*dt)
// Composes exactly across split steps: two calls with dt/2 equal one call with dt
// Result never crosses target; non-positive rate or dt leaves current unchanged
func ExpApproach(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 || math.IsNaN(dt) || math.IsNaN(rate) {
		return current
	}
	alpha := -math.Expm1(-rate * dt) // 1 - e^(-rate*dt), precise for small steps
	next := current + (target-current)*alpha

	// Guard float rounding on the far side of target
	if (current >= target && next < target) || (current <= target && next > target) {
		return target
	}
	return next
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
