package status

import "sync/atomic"

// Registry holds the named counters and gauges published by weapons and systems
// Owners cache pointers at construction; hot paths write straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Snapshot is a point-in-time copy of every metric
type Snapshot struct {
	Ints   map[string]int64
	Floats map[string]float64
}

// Int returns the counter value for key, zero when absent
func (s Snapshot) Int(key string) int64 {
	return s.Ints[key]
}

// Float returns the gauge value for key, zero when absent
func (s Snapshot) Float(key string) float64 {
	return s.Floats[key]
}

// Snapshot copies current values
func (r *Registry) Snapshot() Snapshot {
	snap := Snapshot{
		Ints:   make(map[string]int64, r.Ints.Count()),
		Floats: make(map[string]float64, r.Floats.Count()),
	}
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		snap.Ints[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *Gauge) {
		snap.Floats[key] = ptr.Get()
	})
	return snap
}

// Reset zeroes every metric without dropping cached pointers
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, ptr *atomic.Int64) {
		ptr.Store(0)
	})
	r.Floats.Range(func(_ string, ptr *Gauge) {
		ptr.Set(0)
	})
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
