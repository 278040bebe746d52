package weapon

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/hitscan/parameter"
)

// SamplingPolicy selects how cone offsets are distributed over the cone base
type SamplingPolicy int

const (
	// SamplingCenterBiased draws radius uniformly, concentrating shots near the axis
	SamplingCenterBiased SamplingPolicy = iota
	// SamplingUniformArea draws radius as R·sqrt(u), uniform over the disk area
	SamplingUniformArea
)

// String returns the config name of the policy
func (p SamplingPolicy) String() string {
	switch p {
	case SamplingCenterBiased:
		return "center_biased"
	case SamplingUniformArea:
		return "uniform_area"
	default:
		return "unknown"
	}
}

// ParseSamplingPolicy maps a config name to a policy
func ParseSamplingPolicy(s string) (SamplingPolicy, error) {
	switch s {
	case "", "center_biased":
		return SamplingCenterBiased, nil
	case "uniform_area":
		return SamplingUniformArea, nil
	default:
		return SamplingCenterBiased, fmt.Errorf("unknown sampling policy %q", s)
	}
}

var (
	ErrInvalidFireRate = errors.New("fire rate must be positive")
	ErrInvalidRange    = errors.New("max range must be positive")
	ErrInvalidCone     = errors.New("cone geometry must be non-negative")
	ErrInvalidAmmo     = errors.New("ammo must be non-negative")
)

// Config is the flat construction-time weapon configuration
type Config struct {
	Name          string
	Ammo          int
	Damage        float64
	FireRate      float64 // Shots per second
	MaxRange      float64
	Recoil        float64
	BaseRadius    float64
	MinBaseRadius float64
	ConeHeight    float64
	ShrinkSpeed   float64
	Sampling      SamplingPolicy
}

// DefaultConfig returns the stock weapon
func DefaultConfig() Config {
	return Config{
		Name:          parameter.WeaponDefaultName,
		Ammo:          parameter.WeaponDefaultAmmo,
		Damage:        parameter.WeaponDefaultDamage,
		FireRate:      parameter.WeaponDefaultFireRate,
		MaxRange:      parameter.WeaponDefaultMaxRange,
		Recoil:        parameter.WeaponDefaultRecoil,
		BaseRadius:    parameter.ConeDefaultBaseRadius,
		MinBaseRadius: parameter.ConeDefaultMinBaseRadius,
		ConeHeight:    parameter.ConeDefaultHeight,
		ShrinkSpeed:   parameter.ConeDefaultShrinkSpeed,
		Sampling:      SamplingCenterBiased,
	}
}

// Normalize validates c and resolves recoverable misconfiguration
// A min radius above the base radius is clamped down to the base radius
func (c Config) Normalize() (Config, error) {
	if c.Name == "" {
		c.Name = parameter.WeaponDefaultName
	}
	if c.Ammo < 0 {
		return c, ErrInvalidAmmo
	}
	if !(c.FireRate > 0) || math.IsInf(c.FireRate, 0) {
		return c, fmt.Errorf("%w: %v", ErrInvalidFireRate, c.FireRate)
	}
	if !(c.MaxRange > 0) || math.IsInf(c.MaxRange, 0) {
		return c, fmt.Errorf("%w: %v", ErrInvalidRange, c.MaxRange)
	}
	for _, v := range []float64{c.BaseRadius, c.MinBaseRadius, c.ConeHeight, c.ShrinkSpeed} {
		if !(v >= 0) || math.IsInf(v, 0) {
			return c, fmt.Errorf("%w: %v", ErrInvalidCone, v)
		}
	}
	if c.MinBaseRadius > c.BaseRadius {
		c.MinBaseRadius = c.BaseRadius
	}
	return c, nil
}
