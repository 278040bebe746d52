package vmath

// Basis is an orthonormal frame attached to a point
// Local axes: X = right, Y = forward, Z = up
type Basis struct {
	Right   Vec3F
	Forward Vec3F
	Up      Vec3F
}

var (
	AxisX = Vec3F{X: 1}
	AxisY = Vec3F{Y: 1}
	AxisZ = Vec3F{Z: 1}
)

// IdentityBasis maps local axes onto world axes unchanged
func IdentityBasis() Basis {
	return Basis{Right: AxisX, Forward: AxisY, Up: AxisZ}
}

// NewBasis builds an orthonormal frame from a forward direction and an up hint
// Degenerate input (zero forward, or up parallel to forward) falls back to a world axis
func NewBasis(forward, upHint Vec3F) Basis {
	f, ok := V3FNormalizeSafe(forward, AxisY)
	if !ok {
		return IdentityBasis()
	}

	r, ok := V3FNormalizeSafe(V3FCross(f, upHint), Vec3F{})
	if !ok {
		// Up hint parallel to forward: pick any axis not parallel to f
		alt := AxisZ
		if abs(f.Z) > 0.9 {
			alt = AxisX
		}
		r = V3FNormalize(V3FCross(f, alt))
	}
	u := V3FCross(r, f)

	return Basis{Right: r, Forward: f, Up: u}
}

// ToWorld rotates a local-space vector into world space (no translation)
func (b Basis) ToWorld(local Vec3F) Vec3F {
	return Vec3F{
		X: b.Right.X*local.X + b.Forward.X*local.Y + b.Up.X*local.Z,
		Y: b.Right.Y*local.X + b.Forward.Y*local.Y + b.Up.Y*local.Z,
		Z: b.Right.Z*local.X + b.Forward.Z*local.Y + b.Up.Z*local.Z,
	}
}

// ToLocal is the inverse of ToWorld for an orthonormal basis
func (b Basis) ToLocal(world Vec3F) Vec3F {
	return Vec3F{
		X: V3FDot(world, b.Right),
		Y: V3FDot(world, b.Forward),
		Z: V3FDot(world, b.Up),
	}
}

// Transform is a point plus orientation
type Transform struct {
	Origin Vec3F
	Basis  Basis
}

// PointToWorld maps a local point into world space
func (t Transform) PointToWorld(local Vec3F) Vec3F {
	return V3FAdd(t.Origin, t.Basis.ToWorld(local))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
