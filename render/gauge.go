package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hitscan/parameter"
	"github.com/lixenwraith/hitscan/vmath"
)

var (
	coneStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gaugeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// ConeGauge is a terminal stand-in for the aim cone mesh
// Implements weapon.ConeIndicator
type ConeGauge struct {
	mu      sync.Mutex
	visible bool
	scaleX  float64
	scaleY  float64
	scaleZ  float64
}

// NewConeGauge creates a hidden gauge
func NewConeGauge() *ConeGauge {
	return &ConeGauge{}
}

// SetVisible implements weapon.ConeIndicator
func (g *ConeGauge) SetVisible(visible bool) {
	g.mu.Lock()
	g.visible = visible
	g.mu.Unlock()
}

// SetScale implements weapon.ConeIndicator
func (g *ConeGauge) SetScale(x, y, z float64) {
	g.mu.Lock()
	g.scaleX, g.scaleY, g.scaleZ = x, y, z
	g.mu.Unlock()
}

// Visible reports whether the cone is raised
func (g *ConeGauge) Visible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.visible
}

// Dimensions converts mesh scale back to world radius and height
func (g *ConeGauge) Dimensions() (radius, height float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scaleX * parameter.ConeIndicatorRadiusUnit, g.scaleY * parameter.ConeIndicatorHeightUnit
}

// Render outlines the cone from the muzzle along forward in the top-down view
func (g *ConeGauge) Render(screen tcell.Screen, proj Projection, origin, forward, right vmath.Vec3F) {
	if !g.Visible() {
		return
	}
	radius, height := g.Dimensions()

	base := vmath.V3FAdd(origin, vmath.V3FScale(forward, height))
	left := vmath.V3FSub(base, vmath.V3FScale(right, radius))
	rightEdge := vmath.V3FAdd(base, vmath.V3FScale(right, radius))

	w, h := screen.Size()
	plot := func(x, y int) bool {
		if x >= 0 && y >= 0 && x < w && y < h {
			screen.SetContent(x, y, '░', nil, coneStyle)
		}
		return true
	}

	ox, oy := proj.Cell(origin)
	lx, ly := proj.Cell(left)
	rx, ry := proj.Cell(rightEdge)
	traceLine(ox, oy, lx, ly, plot)
	traceLine(ox, oy, rx, ry, plot)
	traceLine(lx, ly, rx, ry, plot)
}

// RenderBar draws the radius readout as a bar between min and max at row y
func (g *ConeGauge) RenderBar(screen tcell.Screen, x, y, width int, minRadius, maxRadius float64) {
	radius, _ := g.Dimensions()
	label := fmt.Sprintf("cone %6.1f ", radius)
	if !g.Visible() {
		label = "cone  ----- "
	}
	DrawText(screen, x, y, labelStyle, label)

	barWidth := width - len(label) - 2
	if barWidth <= 0 {
		return
	}
	fill := 0
	if g.Visible() && maxRadius > minRadius {
		frac := vmath.Clamp((radius-minRadius)/(maxRadius-minRadius), 0, 1)
		fill = int(frac*float64(barWidth) + 0.5)
	}

	bx := x + len(label)
	screen.SetContent(bx, y, '[', nil, labelStyle)
	for i := 0; i < barWidth; i++ {
		r := ' '
		if i < fill {
			r = '='
		}
		screen.SetContent(bx+1+i, y, r, nil, gaugeStyle)
	}
	screen.SetContent(bx+1+barWidth, y, ']', nil, labelStyle)
}

// DrawText writes s starting at (x, y), one rune per cell
func DrawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
