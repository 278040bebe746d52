package world

import (
	"sync"

	"github.com/lixenwraith/hitscan/core"
	"github.com/lixenwraith/hitscan/vmath"
	"github.com/lixenwraith/hitscan/weapon"
)

// Body is one collider in the range
// Static bodies block rays but are reported as geometry, not actors
type Body struct {
	id         core.Entity
	Name       string
	Shape      Shape
	Static     bool
	Damageable bool
	alive      bool
}

// Entity implements weapon.Actor
func (b *Body) Entity() core.Entity {
	return b.id
}

// AcceptsDamage implements weapon.Actor
func (b *Body) AcceptsDamage() bool {
	return b.Damageable && b.alive
}

// Alive reports whether the body is still in the world
func (b *Body) Alive() bool {
	return b.alive
}

// World is a flat list of colliders answering nearest-hit ray queries
// Safe for concurrent readers; mutations take the write lock
type World struct {
	mu     sync.RWMutex
	bodies []*Body
	byID   map[core.Entity]*Body
	nextID core.Entity
}

// New creates an empty world; reserved entities below firstID are never issued to bodies
func New(firstID core.Entity) *World {
	if !firstID.Valid() {
		firstID = 1
	}
	return &World{
		byID:   make(map[core.Entity]*Body),
		nextID: firstID,
	}
}

// Add inserts a body and assigns its entity
func (w *World) Add(name string, shape Shape, static, damageable bool) *Body {
	w.mu.Lock()
	defer w.mu.Unlock()

	b := &Body{
		id:         w.nextID,
		Name:       name,
		Shape:      shape,
		Static:     static,
		Damageable: damageable,
		alive:      true,
	}
	w.nextID++
	w.bodies = append(w.bodies, b)
	w.byID[b.id] = b
	return b
}

// Remove drops a body; returns false when it was not present
func (w *World) Remove(id core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.byID[id]
	if !ok {
		return false
	}
	b.alive = false
	delete(w.byID, id)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	return true
}

// Body looks up a live body by entity
func (w *World) Body(id core.Entity) (*Body, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	b, ok := w.byID[id]
	return b, ok
}

// Bodies returns a snapshot of live bodies in insertion order
func (w *World) Bodies() []*Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Count returns the number of live bodies
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.bodies)
}

// RayCast implements weapon.SpatialQuery
// Returns the nearest body struck on the segment origin→end, skipping ignored entities
func (w *World) RayCast(origin, end vmath.Vec3F, ignore weapon.IgnoreSet) (weapon.RayHit, bool) {
	seg := vmath.V3FSub(end, origin)
	length := vmath.V3FMag(seg)
	dir, ok := vmath.V3FNormalizeSafe(seg, vmath.Vec3F{})
	if !ok {
		return weapon.RayHit{}, false
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	var (
		best     *Body
		bestDist = length
		bestN    vmath.Vec3F
	)
	for _, b := range w.bodies {
		if ignore.Contains(b.id) {
			continue
		}
		d, n, hit := b.Shape.Intersect(origin, dir, bestDist)
		if !hit {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist, bestN = b, d, n
		}
	}
	if best == nil {
		return weapon.RayHit{}, false
	}

	hit := weapon.RayHit{
		Location: vmath.V3FAdd(origin, vmath.V3FScale(dir, bestDist)),
		Normal:   bestN,
		Distance: bestDist,
	}
	if !best.Static {
		hit.Actor = best
	}
	return hit, true
}
