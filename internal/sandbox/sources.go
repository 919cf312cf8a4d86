package sandbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"rtscam/internal/config"
	"rtscam/internal/rig"
)

// windowOptics reports the configured FOV with the live window aspect, unless
// the config pins the aspect.
type windowOptics struct {
	cfg  *config.Config
	game *Game
}

func (o windowOptics) Optics() (rig.CameraOptics, bool) {
	fov := float32(o.cfg.GetFieldOfViewRadians())
	aspect := float32(o.cfg.GetAspectRatio())
	if !o.cfg.Camera.ConstrainAspect && o.game.screenHeight > 0 {
		aspect = float32(o.game.screenWidth) / float32(o.game.screenHeight)
	}
	return rig.CameraOptics{FieldOfView: fov, AspectRatio: aspect}, fov > 0
}

// screenPointer feeds the cursor to edge scrolling. The cursor does not
// count while it is over the minimap or the window is unfocused.
type screenPointer struct {
	game *Game
}

func (p screenPointer) Cursor() (mgl32.Vec2, bool) {
	if !ebiten.IsFocused() {
		return mgl32.Vec2{}, false
	}
	x, y := ebiten.CursorPosition()
	return p.game.worldCursor(float32(x), float32(y))
}

func (p screenPointer) Viewport() mgl32.Vec2 {
	return p.game.viewport()
}
