package render

import (
	"math"

	"github.com/lixenwraith/hitscan/vmath"
)

// Projection maps world space onto terminal cells as a top-down view
// World +X is screen right, world +Y is screen up; Z is dropped
type Projection struct {
	// Anchor is the cell where the world origin lands
	AnchorX, AnchorY int

	// UnitsPerCol is world units covered by one column; rows cover twice as much for 2:1 cells
	UnitsPerCol float64
}

// Fit builds a projection that places the origin at the bottom center and shows depth world units
func Fit(width, height int, depth float64) Projection {
	rows := float64(height - 1)
	if rows < 1 {
		rows = 1
	}
	return Projection{
		AnchorX:     width / 2,
		AnchorY:     height - 1,
		UnitsPerCol: depth / (rows * 2),
	}
}

// Cell returns the terminal cell for a world point
func (p Projection) Cell(v vmath.Vec3F) (x, y int) {
	upc := p.UnitsPerCol
	if upc <= 0 {
		upc = 1
	}
	x = p.AnchorX + int(math.Round(v.X/upc))
	y = p.AnchorY - int(math.Round(v.Y/(upc*2)))
	return x, y
}

// Span converts a world length to columns
func (p Projection) Span(length float64) int {
	if p.UnitsPerCol <= 0 {
		return int(math.Round(length))
	}
	return int(math.Round(length / p.UnitsPerCol))
}

// traceLine visits every cell from (x1, y1) to (x2, y2) with integer Bresenham
// callback returns false to stop early
func traceLine(x1, y1, x2, y2 int, callback func(x, y int) bool) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy > 0 {
		dy = -dy
	}
	stepX, stepY := 1, 1
	if x1 > x2 {
		stepX = -1
	}
	if y1 > y2 {
		stepY = -1
	}

	err := dx + dy
	for {
		if !callback(x1, y1) {
			return
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += stepX
		}
		if e2 <= dx {
			err += dx
			y1 += stepY
		}
	}
}
