package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/hitscan/status"
)

func TestLoopTicksUntilStopped(t *testing.T) {
	reg := status.NewRegistry()
	var calls atomic.Int64
	var maxDt atomic.Int64

	loop := NewLoop(nil, time.Millisecond, reg, func(dt float64) {
		calls.Add(1)
		if us := int64(dt * 1e6); us > maxDt.Load() {
			maxDt.Store(us)
		}
	})
	loop.Start()
	loop.Start() // second start is a no-op
	time.Sleep(30 * time.Millisecond)
	loop.Stop()
	loop.Stop() // idempotent

	n := calls.Load()
	if n == 0 {
		t.Fatal("Expected at least one tick")
	}
	if uint64(n) != loop.TickCount() {
		t.Errorf("Expected TickCount %d to match calls %d", loop.TickCount(), n)
	}
	if got := reg.Snapshot().Int("engine.ticks"); got != n {
		t.Errorf("Expected engine.ticks %d, got %d", n, got)
	}
	if maxDt.Load() > 100_000 {
		t.Errorf("Expected dt capped at 0.1s, got %dus", maxDt.Load())
	}

	after := calls.Load()
	time.Sleep(5 * time.Millisecond)
	if calls.Load() != after {
		t.Error("Expected no ticks after Stop")
	}
}

// primeLoop arms a loop on a mock clock without starting its goroutine
func primeLoop(interval time.Duration, tick TickFunc) (*Loop, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	loop := NewLoop(mock, interval, nil, tick)
	loop.lastTickTime = mock.Now()
	loop.nextDeadline = loop.lastTickTime.Add(interval)
	return loop, mock
}

func TestLoopStepDelta(t *testing.T) {
	var got []float64
	loop, mock := primeLoop(16*time.Millisecond, func(dt float64) { got = append(got, dt) })

	loop.step(mock.Advance(16 * time.Millisecond))
	loop.step(mock.Advance(20 * time.Millisecond))

	if len(got) != 2 {
		t.Fatalf("Expected 2 ticks, got %d", len(got))
	}
	if got[0] != 0.016 || got[1] != 0.020 {
		t.Errorf("Expected dt [0.016 0.020], got %v", got)
	}
	want := mock.Now().Add(-4 * time.Millisecond).Add(16 * time.Millisecond)
	if !loop.nextDeadline.Equal(want) {
		t.Errorf("Expected deadlines to stay on the 16ms grid at %v, got %v", want, loop.nextDeadline)
	}
}

func TestLoopStepStallResyncs(t *testing.T) {
	var got []float64
	loop, mock := primeLoop(10*time.Millisecond, func(dt float64) { got = append(got, dt) })

	now := mock.Advance(2 * time.Second)
	loop.step(now)

	if len(got) != 1 || got[0] != 0.1 {
		t.Errorf("Expected one tick capped at 0.1s, got %v", got)
	}
	if want := now.Add(10 * time.Millisecond); !loop.nextDeadline.Equal(want) {
		t.Errorf("Expected deadline resynchronized to %v, got %v", want, loop.nextDeadline)
	}
	if loop.TickCount() != 1 {
		t.Errorf("Expected TickCount 1, got %d", loop.TickCount())
	}
}
