package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/status"
)

// TickFunc advances the simulation by dt seconds
type TickFunc func(dt float64)

// Loop drives a TickFunc on a fixed interval from its own goroutine
// Handles drift correction and resynchronizes after stalls without burst catch-up
type Loop struct {
	provider     TimeProvider
	tickInterval time.Duration
	tick         TickFunc

	mu           sync.Mutex
	lastTickTime time.Time
	nextDeadline time.Time

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks *atomic.Int64
}

// NewLoop creates a loop; provider nil uses the monotonic wall clock
func NewLoop(provider TimeProvider, tickInterval time.Duration, reg *status.Registry, tick TickFunc) *Loop {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	if tickInterval <= 0 {
		tickInterval = parameter.TickInterval
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop{
		provider:     provider,
		tickInterval: tickInterval,
		tick:         tick,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
	}
}

// Start begins the loop; subsequent calls are no-ops
func (l *Loop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the in-flight tick to finish
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// TickCount returns ticks executed so far
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

func (l *Loop) run() {
	defer l.wg.Done()

	l.mu.Lock()
	l.lastTickTime = l.provider.Now()
	l.nextDeadline = l.lastTickTime.Add(l.tickInterval)
	l.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		now := l.provider.Now()

		l.mu.Lock()
		deadline := l.nextDeadline
		l.mu.Unlock()

		if !now.Before(deadline) {
			l.step(now)

			l.mu.Lock()
			deadline = l.nextDeadline
			l.mu.Unlock()
		}

		sleep := deadline.Sub(l.provider.Now())
		if sleep <= 0 {
			continue
		}

		timer.Reset(sleep)
		select {
		case <-timer.C:
		case <-l.stopChan:
			return
		}
	}
}

// step runs one tick at wall time now and schedules the next deadline
func (l *Loop) step(now time.Time) {
	l.mu.Lock()
	dt := now.Sub(l.lastTickTime).Seconds()
	l.lastTickTime = now
	l.nextDeadline = l.nextDeadline.Add(l.tickInterval)
	if now.Sub(l.nextDeadline) > l.tickInterval*parameter.MaxTicksBehind {
		l.nextDeadline = now.Add(l.tickInterval)
	}
	l.mu.Unlock()

	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	if l.tick != nil {
		l.tick(dt)
	}
	l.tickCount.Add(1)
	l.statTicks.Add(1)
}
