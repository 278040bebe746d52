package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hitscan/vmath"
	"github.com/lixenwraith/hitscan/weapon"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestTraceLineEndpoints(t *testing.T) {
	var cells [][2]int
	traceLine(0, 0, 5, 2, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})
	require.NotEmpty(t, cells)
	assert.Equal(t, [2]int{0, 0}, cells[0])
	assert.Equal(t, [2]int{5, 2}, cells[len(cells)-1])
	assert.Len(t, cells, 6)

	count := 0
	traceLine(3, 3, -3, -3, func(x, y int) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
}

func TestProjectionFit(t *testing.T) {
	p := Fit(80, 21, 4000)
	x, y := p.Cell(vmath.Vec3F{})
	assert.Equal(t, 40, x)
	assert.Equal(t, 20, y)

	// Full depth reaches the top row
	_, y = p.Cell(vmath.Vec3F{Y: 4000})
	assert.Equal(t, 0, y)

	x, _ = p.Cell(vmath.Vec3F{X: 10 * p.UnitsPerCol})
	assert.Equal(t, 50, x)
}

func TestOverlayExpiresPrimitives(t *testing.T) {
	now := 0.0
	o := NewOverlay(func() float64 { return now })
	var _ weapon.DebugDraw = o

	o.DrawLine(vmath.Vec3F{}, vmath.Vec3F{Y: 100}, weapon.DebugMissColor, 1)
	o.DrawPoint(vmath.Vec3F{Y: 100}, 10, weapon.DebugHitColor, 2)
	assert.Equal(t, 2, o.Len())

	now = 1.5
	assert.Equal(t, 1, o.Prune())
	now = 2.0
	assert.Zero(t, o.Prune())
}

func TestOverlayRender(t *testing.T) {
	screen := newScreen(t, 40, 11)
	proj := Fit(40, 11, 1000)
	o := NewOverlay(func() float64 { return 0 })

	o.DrawLine(vmath.Vec3F{}, vmath.Vec3F{Y: 1000}, weapon.DebugMissColor, 1)
	o.DrawPoint(vmath.Vec3F{Y: 500}, 1, weapon.DebugHitColor, 1)
	// Far outside the screen; must be clipped, not panic
	o.DrawLine(vmath.Vec3F{X: -1e5}, vmath.Vec3F{X: 1e5, Y: -1e5}, weapon.DebugMissColor, 1)
	o.Render(screen, proj)

	assert.Equal(t, lineGlyph, runeAt(screen, 20, 10))
	assert.Equal(t, lineGlyph, runeAt(screen, 20, 0))
	assert.Equal(t, pointGlyph, runeAt(screen, 20, 5))

	_, _, style, _ := screen.GetContent(20, 5)
	assert.Equal(t, styleFor(weapon.DebugHitColor), style)
}

func TestConeGauge(t *testing.T) {
	g := NewConeGauge()
	var _ weapon.ConeIndicator = g
	assert.False(t, g.Visible())

	g.SetVisible(true)
	g.SetScale(310.0/200, 1000.0/100, 310.0/200)
	r, h := g.Dimensions()
	assert.InDelta(t, 310, r, 1e-9)
	assert.InDelta(t, 1000, h, 1e-9)

	screen := newScreen(t, 40, 11)
	g.Render(screen, Fit(40, 11, 2000), vmath.Vec3F{}, vmath.AxisY, vmath.AxisX)
	assert.Equal(t, '░', runeAt(screen, 20, 10), "apex at muzzle")

	g.RenderBar(screen, 0, 0, 40, 200, 310)
	assert.Equal(t, 'c', runeAt(screen, 0, 0))
	assert.Equal(t, '=', runeAt(screen, 13, 0))

	g.SetVisible(false)
	screen.Clear()
	g.Render(screen, Fit(40, 11, 2000), vmath.Vec3F{}, vmath.AxisY, vmath.AxisX)
	assert.NotEqual(t, '░', runeAt(screen, 20, 10))
}
