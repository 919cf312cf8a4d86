package sandbox

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// wanderer is the demo follow target: it traces a figure eight around the
// play area and can be followed with the follow key.
type wanderer struct {
	center  mgl32.Vec2
	radius  mgl32.Vec2
	speed   float64 // radians per second
	elapsed float64
	pos     mgl32.Vec3
}

func newWanderer(center, radius mgl32.Vec2, speed float64) *wanderer {
	w := &wanderer{center: center, radius: radius, speed: speed}
	w.update(0)
	return w
}

func (w *wanderer) update(dt float32) {
	w.elapsed += float64(dt)
	phase := w.elapsed * w.speed
	w.pos = mgl32.Vec3{
		w.center.X() + w.radius.X()*float32(math.Sin(phase)),
		w.center.Y() + w.radius.Y()*float32(math.Sin(2*phase)),
		0,
	}
}

// Position implements rig.Target.
func (w *wanderer) Position() (mgl32.Vec3, bool) {
	return w.pos, true
}
