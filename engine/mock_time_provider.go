package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually stepped TimeProvider for loop tests
// Readings only move through Advance and Set; safe for concurrent use
type MockTimeProvider struct {
	start  time.Time
	offset atomic.Int64 // Nanoseconds since start
}

// NewMockTimeProvider creates a provider reading start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now implements TimeProvider
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.offset.Load()))
}

// Elapsed returns the total advance since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}

// Set jumps to t; moving backwards is allowed so stall and skew cases can be staged
func (m *MockTimeProvider) Set(t time.Time) {
	m.offset.Store(int64(t.Sub(m.start)))
}

// Advance moves the reading forward by d and returns the new time
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	return m.start.Add(time.Duration(m.offset.Add(int64(d))))
}
