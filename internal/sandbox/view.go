package sandbox

import (
	"github.com/go-gl/mathgl/mgl32"
)

// worldView is the north-up top-down projection of the main view: world +X
// (north) is screen up, world +Y (east) is screen right.
type worldView struct {
	center        mgl32.Vec2
	unitsPerPixel float32
	width, height float32
}

func (v worldView) toScreen(world mgl32.Vec2) (float32, float32) {
	upp := v.unitsPerPixel
	if upp <= 0 {
		upp = 1
	}
	sx := v.width/2 + (world.Y()-v.center.Y())/upp
	sy := v.height/2 - (world.X()-v.center.X())/upp
	return sx, sy
}

func (v worldView) toWorld(sx, sy float32) mgl32.Vec2 {
	upp := v.unitsPerPixel
	if upp <= 0 {
		upp = 1
	}
	return mgl32.Vec2{
		v.center.X() - (sy-v.height/2)*upp,
		v.center.Y() + (sx-v.width/2)*upp,
	}
}

type screenRect struct {
	x, y, w, h float32
}

func (r screenRect) contains(px, py float32) bool {
	return px >= r.x && py >= r.y && px < r.x+r.w && py < r.y+r.h
}
