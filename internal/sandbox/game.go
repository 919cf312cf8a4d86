// Package sandbox hosts the camera rig in an ebiten window: a top-down world
// view, a minimap panel and a HUD.
package sandbox

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"rtscam/internal/config"
	"rtscam/internal/input"
	"rtscam/internal/minimap"
	"rtscam/internal/monitoring"
	"rtscam/internal/rig"
	"rtscam/internal/terrain"
)

const alertInterval = 600 // ticks between tick-budget checks

// Game implements ebiten.Game for the sandbox.
type Game struct {
	cfg    *config.Config
	logger zerolog.Logger

	ctrl     *rig.Controller
	sampler  *input.Sampler
	overlay  *minimap.Overlay
	monitor  *monitoring.TickMonitor
	terrain  *terrain.Heightfield
	wanderer *wanderer
	boundary rig.BoundarySource
	mapArea  rig.BoundaryRectangle

	screenWidth  int
	screenHeight int
	ticks        int

	terrainImage *ebiten.Image
	minimapImage *ebiten.Image
}

// NewGame wires the rig to its collaborators from configuration.
func NewGame(cfg *config.Config, logger zerolog.Logger) *Game {
	g := &Game{
		cfg:          cfg,
		logger:       logger.With().Str("component", "sandbox").Logger(),
		monitor:      monitoring.NewTickMonitor(time.Second / time.Duration(max(cfg.Display.TPS, 1))),
		terrain:      terrain.FromConfig(cfg),
		screenWidth:  cfg.GetScreenWidth(),
		screenHeight: cfg.GetScreenHeight(),
	}

	g.boundary = rig.BoundaryFromConfig(cfg)
	g.mapArea = mapArea(cfg)

	opts := []rig.Option{
		rig.WithOptics(windowOptics{cfg: cfg, game: g}),
		rig.WithBoundary(g.boundary),
		rig.WithPointer(screenPointer{game: g}),
		rig.WithMonitor(g.monitor),
	}
	if g.terrain != nil {
		opts = append(opts, rig.WithGround(g.terrain))
	}
	g.ctrl = rig.NewController(rig.NewSettings(cfg), logger, opts...)

	g.sampler = input.NewSampler(input.DefaultBindings(), float32(cfg.GetRotationSpeedRadians()))

	size := float32(cfg.Minimap.Size)
	g.overlay = minimap.NewOverlay(minimap.NewMapper(g.mapArea, mgl32.Vec2{size, size}), g.ctrl, logger)
	g.ctrl.AddFrustumListener(g.overlay.OnFrustumUpdated)
	if f, ok := g.ctrl.Frustum(); ok {
		g.overlay.OnFrustumUpdated(f)
	}

	g.wanderer = newWanderer(g.mapArea.Origin, g.mapArea.HalfExtents.Mul(0.8), 0.15)

	for _, w := range cfg.Validate() {
		g.logger.Warn().Msg(w)
	}
	return g
}

// mapArea is the minimap extent: the boundary, or a default square when the
// play area is unbounded.
func mapArea(cfg *config.Config) rig.BoundaryRectangle {
	if src := rig.BoundaryFromConfig(cfg); src != nil {
		if b, ok := src.Boundary(); ok && !b.Degenerate() {
			return b
		}
	}
	return rig.BoundaryRectangle{HalfExtents: mgl32.Vec2{2000, 2000}}
}

// Controller exposes the rig for the host.
func (g *Game) Controller() *rig.Controller {
	return g.ctrl
}

func (g *Game) Update() error {
	g.ticks++
	dt := 1 / float32(ebiten.TPS())

	sample := g.sampler.Poll(dt, g.viewport())
	if sample.ToggleFollow {
		g.toggleFollow()
	}
	g.handleMinimapPointer(sample)

	input.Dispatch(sample, g.ctrl)
	g.wanderer.update(dt)
	g.ctrl.Tick(dt)

	if g.ticks%alertInterval == 0 {
		for _, a := range g.monitor.CheckAlerts() {
			g.logger.Warn().Str("type", a.Type).Float64("value", a.Value).Float64("threshold", a.Threshold).Msg(a.Message)
		}
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.screenWidth, g.screenHeight = outsideWidth, outsideHeight
	}
	return g.screenWidth, g.screenHeight
}

func (g *Game) toggleFollow() {
	if g.ctrl.IsFollowing() {
		g.ctrl.UnfollowTarget()
		g.logger.Info().Msg("stopped following")
		return
	}
	g.ctrl.FollowTarget(g.wanderer)
	g.logger.Info().Msg("following wanderer")
}

func (g *Game) handleMinimapPointer(s input.Sample) {
	r := g.minimapRect()
	local := s.Cursor.Sub(mgl32.Vec2{r.x, r.y})
	switch {
	case s.PrimaryDown:
		g.overlay.PointerDown(local)
	case s.PrimaryHeld:
		g.overlay.PointerMove(local)
	default:
		g.overlay.PointerUp()
	}
}

func (g *Game) viewport() mgl32.Vec2 {
	return mgl32.Vec2{float32(g.screenWidth), float32(g.screenHeight)}
}

// minimapRect is the minimap panel in screen pixels, bottom right.
func (g *Game) minimapRect() screenRect {
	size := float32(g.cfg.Minimap.Size)
	margin := float32(g.cfg.Minimap.Margin)
	return screenRect{
		x: float32(g.screenWidth) - size - margin,
		y: float32(g.screenHeight) - size - margin,
		w: size,
		h: size,
	}
}

// worldCursor filters a screen cursor for edge scrolling.
func (g *Game) worldCursor(x, y float32) (mgl32.Vec2, bool) {
	if x < 0 || y < 0 || x >= float32(g.screenWidth) || y >= float32(g.screenHeight) {
		return mgl32.Vec2{}, false
	}
	if g.minimapRect().contains(x, y) {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{x, y}, true
}

func (g *Game) view() worldView {
	return worldView{
		center:        g.ctrl.Anchor().Vec2(),
		unitsPerPixel: float32(g.cfg.Display.WorldScale),
		width:         float32(g.screenWidth),
		height:        float32(g.screenHeight),
	}
}
