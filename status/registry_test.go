package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegistryCachedPointers(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("weapon.fired")
	b := reg.Ints.Get("weapon.fired")
	if a != b {
		t.Fatal("Expected Get to return the cached pointer for an existing key")
	}

	a.Add(3)
	if got := reg.Snapshot().Int("weapon.fired"); got != 3 {
		t.Errorf("Expected snapshot value 3, got %d", got)
	}
	if got := reg.Snapshot().Int("missing"); got != 0 {
		t.Errorf("Expected zero for absent key, got %d", got)
	}
}

func TestRegistryResetKeepsPointers(t *testing.T) {
	reg := NewRegistry()
	c := reg.Ints.Get("c")
	g := reg.Floats.Get("g")
	c.Store(7)
	g.Set(1.5)

	reg.Reset()

	if c.Load() != 0 || g.Get() != 0 {
		t.Errorf("Expected zeroed metrics, got %d and %f", c.Load(), g.Get())
	}
	c.Add(1)
	if reg.Snapshot().Int("c") != 1 {
		t.Error("Expected cached pointer to stay registered after reset")
	}
	if reg.TotalCount() != 2 {
		t.Errorf("Expected 2 metrics, got %d", reg.TotalCount())
	}
}

func TestLookupDoesNotCreate(t *testing.T) {
	reg := NewRegistry()
	if _, ok := reg.Ints.Lookup("x"); ok {
		t.Error("Expected Lookup miss on empty registry")
	}
	if reg.Ints.Count() != 0 {
		t.Error("Expected Lookup not to register the key")
	}
}

func TestGaugeConcurrentAdd(t *testing.T) {
	var g Gauge
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				g.Add(0.5)
			}
		}()
	}
	wg.Wait()

	if g.Get() != 4000 {
		t.Errorf("Expected 4000, got %f", g.Get())
	}
}

func TestRangePrefixSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("weapon.rifle.miss").Add(2)
	reg.Ints.Get("weapon.rifle.hit").Add(1)
	reg.Ints.Get("weapon.pistol.hit")
	reg.Ints.Get("engine.ticks")

	var keys []string
	reg.Ints.RangePrefix("weapon.rifle.", func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})

	want := []string{"weapon.rifle.hit", "weapon.rifle.miss"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, keys[i])
		}
	}
	if reg.Ints.Count() != 4 {
		t.Errorf("Expected 4 counters, got %d", reg.Ints.Count())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Add(1)
		}()
	}
	wg.Wait()

	if m.Count() != 1 {
		t.Errorf("Expected one cell, got %d", m.Count())
	}
	if v, _ := m.Lookup("shared"); v.Load() != 8 {
		t.Errorf("Expected 8, got %d", v.Load())
	}
}
