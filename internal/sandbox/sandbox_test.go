package sandbox

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtscam/internal/config"
	"rtscam/internal/input"
)

func TestWorldViewIsNorthUp(t *testing.T) {
	v := worldView{center: mgl32.Vec2{100, 100}, unitsPerPixel: 2, width: 800, height: 600}

	x, y := v.toScreen(mgl32.Vec2{100, 100})
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	x, y = v.toScreen(mgl32.Vec2{300, 100})
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(200), y, "north is up")

	x, y = v.toScreen(mgl32.Vec2{100, 300})
	assert.Equal(t, float32(500), x, "east is right")
	assert.Equal(t, float32(300), y)

	assert.Equal(t, mgl32.Vec2{300, 100}, v.toWorld(400, 200))
}

func TestScreenRectContains(t *testing.T) {
	r := screenRect{x: 10, y: 20, w: 100, h: 50}
	assert.True(t, r.contains(10, 20))
	assert.True(t, r.contains(109, 69))
	assert.False(t, r.contains(110, 30))
	assert.False(t, r.contains(50, 19))
}

func TestWandererStaysInsideRadius(t *testing.T) {
	w := newWanderer(mgl32.Vec2{100, -100}, mgl32.Vec2{500, 300}, 0.5)

	start, ok := w.Position()
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{100, -100, 0}, start)

	for i := 0; i < 600; i++ {
		w.update(1.0 / 60)
		p, _ := w.Position()
		assert.LessOrEqual(t, abs(p.X()-100), float32(500.01))
		assert.LessOrEqual(t, abs(p.Y()+100), float32(300.01))
	}
	p, _ := w.Position()
	assert.NotEqual(t, start, p)
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	return NewGame(cfg, zerolog.Nop())
}

func TestNewGameWiresRigAndMinimap(t *testing.T) {
	g := newTestGame(t)

	_, ok := g.Controller().Frustum()
	assert.True(t, ok)
	_, ok = g.overlay.Outline()
	assert.True(t, ok, "overlay receives the initial projection")
	assert.NotNil(t, g.terrain)
	assert.Equal(t, mgl32.Vec2{2000, 2000}, g.mapArea.HalfExtents)
}

func TestWorldCursorExcludesMinimap(t *testing.T) {
	g := newTestGame(t)

	_, ok := g.worldCursor(10, 10)
	assert.True(t, ok)

	r := g.minimapRect()
	_, ok = g.worldCursor(r.x+5, r.y+5)
	assert.False(t, ok)

	_, ok = g.worldCursor(-1, 10)
	assert.False(t, ok)
	_, ok = g.worldCursor(float32(g.screenWidth), 10)
	assert.False(t, ok)
}

func TestMinimapClickJumpsRig(t *testing.T) {
	g := newTestGame(t)
	r := g.minimapRect()

	// Top centre of the panel is the northern edge of the map.
	cursor := mgl32.Vec2{r.x + r.w/2, r.y + 1}
	g.handleMinimapPointer(input.Sample{Cursor: cursor, PrimaryDown: true, PrimaryHeld: true})

	anchor := g.Controller().Anchor()
	assert.InDelta(t, 2000, anchor.X(), 25)
	assert.InDelta(t, 0, anchor.Y(), 25)

	g.handleMinimapPointer(input.Sample{Cursor: cursor})
	assert.False(t, g.overlay.IsScrubbing())
}

func TestToggleFollow(t *testing.T) {
	g := newTestGame(t)
	g.toggleFollow()
	assert.True(t, g.Controller().IsFollowing())
	g.toggleFollow()
	assert.False(t, g.Controller().IsFollowing())
}

func TestLayoutTracksWindow(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1600, 900)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
	assert.Equal(t, mgl32.Vec2{1600, 900}, g.viewport())

	w, h = g.Layout(0, 0)
	assert.Equal(t, 1600, w)
	assert.Equal(t, 900, h)
}

func TestWindowOpticsAspect(t *testing.T) {
	g := newTestGame(t)
	g.Layout(1000, 500)

	o, ok := windowOptics{cfg: g.cfg, game: g}.Optics()
	require.True(t, ok)
	assert.InDelta(t, 2, o.AspectRatio, 1e-6)

	g.cfg.Camera.ConstrainAspect = true
	g.cfg.Camera.AspectRatio = 4.0 / 3.0
	o, _ = windowOptics{cfg: g.cfg, game: g}.Optics()
	assert.InDelta(t, 4.0/3.0, o.AspectRatio, 1e-6)
}

func TestHUDLines(t *testing.T) {
	g := newTestGame(t)
	lines := strings.Join(g.hudLines(), "\n")
	assert.Contains(t, lines, "zoom  desired    500")
	assert.Contains(t, lines, "follow off")
	assert.Contains(t, lines, "reach  lat")
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
