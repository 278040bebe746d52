package render

import (
	"image/color"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hitscan/vmath"
)

const (
	lineGlyph  = '·'
	pointGlyph = '✕'
)

// primitive is one timed debug shape
type primitive struct {
	a, b    vmath.Vec3F
	point   bool
	size    float64
	style   tcell.Style
	expires float64
}

// Overlay collects timed debug lines and points and paints them onto a tcell screen
// Implements weapon.DebugDraw; callers may draw from the simulation goroutine while the UI renders
type Overlay struct {
	mu    sync.Mutex
	clock func() float64
	prims []primitive
}

// NewOverlay creates an overlay whose primitive lifetimes follow clock (seconds)
func NewOverlay(clock func() float64) *Overlay {
	return &Overlay{clock: clock}
}

// DrawLine implements weapon.DebugDraw
func (o *Overlay) DrawLine(a, b vmath.Vec3F, c color.RGBA, duration float64) {
	o.add(primitive{a: a, b: b, style: styleFor(c), expires: o.clock() + duration})
}

// DrawPoint implements weapon.DebugDraw
func (o *Overlay) DrawPoint(p vmath.Vec3F, size float64, c color.RGBA, duration float64) {
	o.add(primitive{a: p, b: p, point: true, size: size, style: styleFor(c), expires: o.clock() + duration})
}

func (o *Overlay) add(p primitive) {
	o.mu.Lock()
	o.prims = append(o.prims, p)
	o.mu.Unlock()
}

// Prune drops expired primitives and returns how many remain
func (o *Overlay) Prune() int {
	now := o.clock()

	o.mu.Lock()
	defer o.mu.Unlock()

	kept := o.prims[:0]
	for _, p := range o.prims {
		if p.expires > now {
			kept = append(kept, p)
		}
	}
	clear(o.prims[len(kept):])
	o.prims = kept
	return len(kept)
}

// Len returns the number of live primitives
func (o *Overlay) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.prims)
}

// Clear removes every primitive
func (o *Overlay) Clear() {
	o.mu.Lock()
	o.prims = o.prims[:0]
	o.mu.Unlock()
}

// Render paints live primitives; lines first so hit markers stay on top
func (o *Overlay) Render(screen tcell.Screen, proj Projection) {
	o.mu.Lock()
	prims := make([]primitive, len(o.prims))
	copy(prims, o.prims)
	o.mu.Unlock()

	w, h := screen.Size()
	inBounds := func(x, y int) bool {
		return x >= 0 && y >= 0 && x < w && y < h
	}

	for _, p := range prims {
		if p.point {
			continue
		}
		x1, y1 := proj.Cell(p.a)
		x2, y2 := proj.Cell(p.b)
		traceLine(x1, y1, x2, y2, func(x, y int) bool {
			if inBounds(x, y) {
				screen.SetContent(x, y, lineGlyph, nil, p.style)
			}
			return true
		})
	}

	for _, p := range prims {
		if !p.point {
			continue
		}
		cx, cy := proj.Cell(p.a)
		r := proj.Span(p.size / 2)
		for y := cy - r/2; y <= cy+r/2; y++ {
			for x := cx - r; x <= cx+r; x++ {
				if inBounds(x, y) {
					screen.SetContent(x, y, pointGlyph, nil, p.style)
				}
			}
		}
	}
}

func styleFor(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
