// Package input turns raw ebiten input into camera rig intents.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sample is one tick of input, already mapped to rig intents.
type Sample struct {
	PanX      float32 // right positive
	PanY      float32 // forward positive
	Rotate    float32 // radians this tick
	TurnLeft  bool
	TurnRight bool
	Zoom      float32 // wheel notches, positive away from the user

	DragActive bool
	Cursor     mgl32.Vec2
	Viewport   mgl32.Vec2

	ToggleFollow bool
	PrimaryDown  bool // rising edge of the primary button
	PrimaryHeld  bool
}

// Commands is the rig surface that Dispatch drives.
type Commands interface {
	MoveX(value float32)
	MoveY(value float32)
	Rotate(delta float32)
	TurnLeft()
	TurnRight()
	Zoom(delta float32)
	Drag(active bool, cursor, viewport mgl32.Vec2)
}

// Dispatch forwards a sample to the rig entry points. Zero axes are skipped.
func Dispatch(s Sample, c Commands) {
	if s.PanX != 0 {
		c.MoveX(s.PanX)
	}
	if s.PanY != 0 {
		c.MoveY(s.PanY)
	}
	if s.Rotate != 0 {
		c.Rotate(s.Rotate)
	}
	if s.TurnLeft {
		c.TurnLeft()
	}
	if s.TurnRight {
		c.TurnRight()
	}
	if s.Zoom != 0 {
		c.Zoom(s.Zoom)
	}
	c.Drag(s.DragActive, s.Cursor, s.Viewport)
}
