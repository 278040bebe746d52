package world

import (
	"math"

	"github.com/lixenwraith/hitscan/vmath"
)

// Shape is a collision volume a ray can be tested against
// dir must be unit length; hits beyond maxDist or behind the origin are rejected
type Shape interface {
	Intersect(origin, dir vmath.Vec3F, maxDist float64) (dist float64, normal vmath.Vec3F, ok bool)
	Center() vmath.Vec3F
}

// Sphere is a ball collider
type Sphere struct {
	Origin vmath.Vec3F
	Radius float64
}

// Center implements Shape
func (s Sphere) Center() vmath.Vec3F {
	return s.Origin
}

// Intersect implements Shape
// A ray starting inside the sphere reports the exit point
func (s Sphere) Intersect(origin, dir vmath.Vec3F, maxDist float64) (float64, vmath.Vec3F, bool) {
	oc := vmath.V3FSub(origin, s.Origin)
	b := vmath.V3FDot(oc, dir)
	c := vmath.V3FMagSq(oc) - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return 0, vmath.Vec3F{}, false
	}

	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDist {
		return 0, vmath.Vec3F{}, false
	}

	p := vmath.V3FAdd(origin, vmath.V3FScale(dir, t))
	n, _ := vmath.V3FNormalizeSafe(vmath.V3FSub(p, s.Origin), vmath.V3FScale(dir, -1))
	return t, n, true
}

// Box is an axis-aligned collider
type Box struct {
	Min vmath.Vec3F
	Max vmath.Vec3F
}

// Center implements Shape
func (b Box) Center() vmath.Vec3F {
	return vmath.V3FLerp(b.Min, b.Max, 0.5)
}

// Intersect implements Shape using the slab method
func (b Box) Intersect(origin, dir vmath.Vec3F, maxDist float64) (float64, vmath.Vec3F, bool) {
	tNear, tFar := math.Inf(-1), math.Inf(1)
	var nearAxis int
	var nearSign float64

	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < vmath.Epsilon {
			// Parallel to slab: must already be between the planes
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, vmath.Vec3F{}, false
			}
			continue
		}
		inv := 1.0 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tNear {
			tNear = t1
			nearAxis = i
			nearSign = sign
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, vmath.Vec3F{}, false
		}
	}

	t := tNear
	if t < 0 {
		// Origin inside the box: report the exit face
		t = tFar
		if t < 0 {
			return 0, vmath.Vec3F{}, false
		}
		return t, vmath.V3FScale(dir, -1), t <= maxDist
	}
	if t > maxDist {
		return 0, vmath.Vec3F{}, false
	}

	var n [3]float64
	n[nearAxis] = nearSign
	return t, vmath.Vec3F{X: n[0], Y: n[1], Z: n[2]}, true
}
