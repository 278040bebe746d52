package status

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// MetricMap is a keyed set of metric cells of type T
// Cells are allocated once per key and never replaced, so callers cache the pointer
type MetricMap[T any] struct {
	cells sync.Map // string -> *T
	count atomic.Int64
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the cell for key, creating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.cells.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.cells.LoadOrStore(key, new(T))
	if !loaded {
		m.count.Add(1)
	}
	return v.(*T)
}

// Lookup returns the cell for key without creating it
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	v, ok := m.cells.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Range visits cells in sorted key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.RangePrefix("", fn)
}

// RangePrefix visits cells whose key starts with prefix, in sorted key order
func (m *MetricMap[T]) RangePrefix(prefix string, fn func(key string, ptr *T)) {
	var keys []string
	m.cells.Range(func(k, _ any) bool {
		if key := k.(string); strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return true
	})
	slices.Sort(keys)

	for _, k := range keys {
		if v, ok := m.cells.Load(k); ok {
			fn(k, v.(*T))
		}
	}
}

// Count returns the number of registered cells
func (m *MetricMap[T]) Count() int {
	return int(m.count.Load())
}
