package weapon

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/vmath"
)

// Cone animates the aim cone and samples shot offsets on its base
type Cone struct {
	state     *State
	indicator ConeIndicator // Optional
	rng       *rand.Rand
	sampling  SamplingPolicy
}

// NewCone binds the cone model to weapon state
func NewCone(state *State, indicator ConeIndicator, rng *rand.Rand, sampling SamplingPolicy) *Cone {
	c := &Cone{
		state:     state,
		indicator: indicator,
		rng:       rng,
		sampling:  sampling,
	}
	if indicator != nil {
		indicator.SetVisible(false)
	}
	return c
}

// StartAiming raises the cone at its widest
func (c *Cone) StartAiming() {
	c.state.IsAiming = true
	c.state.CurrentBaseRadius = c.state.BaseRadius
	if c.indicator != nil {
		c.indicator.SetVisible(true)
		c.pushScale()
	}
}

// StopAiming lowers the cone; the radius keeps its last value until the next StartAiming
func (c *Cone) StopAiming() {
	c.state.IsAiming = false
	if c.indicator != nil {
		c.indicator.SetVisible(false)
	}
}

// AdvanceCone shrinks the radius toward the floor by the elapsed step
// No-op while not aiming
func (c *Cone) AdvanceCone(dt float64) {
	s := c.state
	if !s.IsAiming {
		return
	}

	r := vmath.ExpApproach(s.CurrentBaseRadius, s.MinBaseRadius, s.ShrinkSpeed, dt)
	s.CurrentBaseRadius = vmath.Clamp(r, s.MinBaseRadius, s.BaseRadius)

	if c.indicator != nil {
		c.pushScale()
	}
}

// SampleConeOffset returns a random lateral offset inside the current cone base
// Coordinates are in the plane perpendicular to the cone axis (local X, local Z)
func (c *Cone) SampleConeOffset() (x, z float64) {
	angle := c.rng.Float64() * 2 * math.Pi
	u := c.rng.Float64()

	var radius float64
	switch c.sampling {
	case SamplingUniformArea:
		radius = c.state.CurrentBaseRadius * math.Sqrt(u)
	default:
		radius = c.state.CurrentBaseRadius * u
	}
	if radius == 0 {
		return 0, 0
	}

	return radius * math.Cos(angle), radius * math.Sin(angle)
}

// Radius returns the current cone base radius
func (c *Cone) Radius() float64 {
	return c.state.CurrentBaseRadius
}

func (c *Cone) pushScale() {
	r := c.state.CurrentBaseRadius / parameter.ConeIndicatorRadiusUnit
	h := c.state.ConeHeight / parameter.ConeIndicatorHeightUnit
	c.indicator.SetScale(r, h, r)
}
