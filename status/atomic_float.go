package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64 using bit conversion
// Zero value is ready to use (represents 0.0)
type Gauge struct {
	bits atomic.Uint64
}

// Set stores a value atomically
func (g *Gauge) Set(val float64) {
	g.bits.Store(math.Float64bits(val))
}

// Get loads the value atomically
func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add atomically adds delta and returns the new value
func (g *Gauge) Add(delta float64) float64 {
	for {
		old := g.bits.Load()
		newVal := math.Float64frombits(old) + delta
		if g.bits.CompareAndSwap(old, math.Float64bits(newVal)) {
			return newVal
		}
	}
}
