package sandbox

import (
	"context"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rtscam/internal/rig"
	"rtscam/internal/terrain"
	"rtscam/internal/workers"
)

const terrainResolution = 192

var (
	backgroundColor = color.RGBA{18, 22, 28, 255}
	boundaryColor   = color.RGBA{230, 200, 80, 255}
	bandColor       = color.RGBA{230, 200, 80, 90}
	frustumColor    = color.RGBA{90, 200, 255, 255}
	anchorColor     = color.RGBA{255, 255, 255, 255}
	cameraColor     = color.RGBA{255, 120, 90, 255}
	targetColor     = color.RGBA{120, 255, 140, 255}
	panelColor      = color.RGBA{0, 0, 0, 170}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	v := g.view()
	g.drawTerrain(screen, v)
	g.drawBoundary(screen, v)
	g.drawFrustum(screen, v)
	g.drawMarkers(screen, v)
	g.drawMinimap(screen)
	g.drawHUD(screen)
}

// terrainTexture renders the heightfield over the map area once.
func (g *Game) terrainTexture() *ebiten.Image {
	if g.terrainImage != nil {
		return g.terrainImage
	}
	pool := workers.NewStartedPool(0)
	defer pool.Stop()

	pix, err := terrain.Raster(context.Background(), pool, g.terrain, g.mapArea, terrainResolution)
	img := ebiten.NewImage(terrainResolution, terrainResolution)
	if err != nil {
		g.logger.Error().Err(err).Msg("terrain raster failed")
		img.Fill(backgroundColor)
	} else {
		img.WritePixels(pix)
	}
	g.terrainImage = img
	return img
}

func (g *Game) drawTerrain(screen *ebiten.Image, v worldView) {
	img := g.terrainTexture()
	lo, hi := g.mapArea.Min(), g.mapArea.Max()
	x0, y0 := v.toScreen(mgl32.Vec2{hi.X(), lo.Y()})
	x1, y1 := v.toScreen(mgl32.Vec2{lo.X(), hi.Y()})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(x1-x0)/terrainResolution, float64(y1-y0)/terrainResolution)
	op.GeoM.Translate(float64(x0), float64(y0))
	screen.DrawImage(img, op)
}

func (g *Game) drawBoundary(screen *ebiten.Image, v worldView) {
	if g.boundary == nil {
		return
	}
	b, ok := g.boundary.Boundary()
	if !ok {
		return
	}
	strokeWorldRect(screen, v, b, 2, boundaryColor)

	inner := b
	inner.HalfExtents = b.HalfExtents.Mul(1 - float32(g.cfg.Boundary.TransitionRatio))
	strokeWorldRect(screen, v, inner, 1, bandColor)
}

func (g *Game) drawFrustum(screen *ebiten.Image, v worldView) {
	f, ok := g.ctrl.Frustum()
	if !ok {
		return
	}
	for i := range f.Corners {
		a := f.Corners[i]
		b := f.Corners[(i+1)%len(f.Corners)]
		ax, ay := v.toScreen(a.Vec2())
		bx, by := v.toScreen(b.Vec2())
		vector.StrokeLine(screen, ax, ay, bx, by, 2, frustumColor, true)
	}
}

func (g *Game) drawMarkers(screen *ebiten.Image, v worldView) {
	ax, ay := v.toScreen(g.ctrl.Anchor().Vec2())
	cx, cy := v.toScreen(g.ctrl.CameraPosition().Vec2())
	vector.StrokeLine(screen, ax, ay, cx, cy, 1, cameraColor, true)
	vector.DrawFilledCircle(screen, cx, cy, 5, cameraColor, true)
	vector.DrawFilledCircle(screen, ax, ay, 4, anchorColor, true)

	tp, _ := g.wanderer.Position()
	tx, ty := v.toScreen(tp.Vec2())
	vector.DrawFilledRect(screen, tx-4, ty-4, 8, 8, targetColor, false)
}

// drawMinimap redraws the cached panel only when the view outline changed.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	r := g.minimapRect()
	size := g.cfg.Minimap.Size
	if size <= 0 {
		return
	}
	if g.minimapImage == nil {
		g.minimapImage = ebiten.NewImage(size, size)
		g.renderMinimap(size)
		g.overlay.MarkDrawn()
	}

	if g.overlay.NeedsRedraw() {
		g.renderMinimap(size)
		g.overlay.MarkDrawn()
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.x), float64(r.y))
	screen.DrawImage(g.minimapImage, op)
	vector.StrokeRect(screen, r.x, r.y, r.w, r.h, 1, boundaryColor, false)

	tp, _ := g.wanderer.Position()
	if p, ok := g.overlay.Mapper().WorldToWidget(tp.Vec2()); ok {
		vector.DrawFilledCircle(screen, r.x+p.X(), r.y+p.Y(), 2, targetColor, false)
	}
}

func (g *Game) renderMinimap(size int) {
	img := g.minimapImage
	img.Clear()

	op := &ebiten.DrawImageOptions{}
	scale := float64(size) / terrainResolution
	op.GeoM.Scale(scale, scale)
	img.DrawImage(g.terrainTexture(), op)

	outline, ok := g.overlay.Outline()
	if !ok {
		return
	}
	width := float32(g.cfg.Minimap.LineWidth)
	for i := 0; i < len(outline)-1; i++ {
		a, b := outline[i], outline[i+1]
		vector.StrokeLine(img, a.X(), a.Y(), b.X(), b.Y(), width, frustumColor, true)
	}
}

func strokeWorldRect(screen *ebiten.Image, v worldView, b rig.BoundaryRectangle, width float32, clr color.Color) {
	lo, hi := b.Min(), b.Max()
	x0, y0 := v.toScreen(mgl32.Vec2{hi.X(), lo.Y()})
	x1, y1 := v.toScreen(mgl32.Vec2{lo.X(), hi.Y()})
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, width, clr, false)
}
