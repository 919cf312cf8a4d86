package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps keys to rig intents.
type Bindings struct {
	Forward, Back, Left, Right []ebiten.Key
	TurnLeft, TurnRight        ebiten.Key
	RotateLeft, RotateRight    ebiten.Key
	Follow                     ebiten.Key
	DragButton                 ebiten.MouseButton
	PrimaryButton              ebiten.MouseButton
}

// DefaultBindings: WASD/arrows pan, Q/E turn, Z/X rotate, F follow, right drag.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:       []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Back:          []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:          []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:         []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		TurnLeft:      ebiten.KeyQ,
		TurnRight:     ebiten.KeyE,
		RotateLeft:    ebiten.KeyZ,
		RotateRight:   ebiten.KeyX,
		Follow:        ebiten.KeyF,
		DragButton:    ebiten.MouseButtonRight,
		PrimaryButton: ebiten.MouseButtonLeft,
	}
}

// Sampler polls ebiten once per tick.
type Sampler struct {
	bindings    Bindings
	rotateSpeed float32 // radians per second while a rotate key is held

	turnLeft  KeyStateTracker
	turnRight KeyStateTracker
	follow    KeyStateTracker
	primary   KeyStateTracker
}

func NewSampler(bindings Bindings, rotateSpeed float32) *Sampler {
	return &Sampler{bindings: bindings, rotateSpeed: rotateSpeed}
}

// Poll reads the keyboard and mouse. viewport is the world view size in pixels.
func (s *Sampler) Poll(dt float32, viewport mgl32.Vec2) Sample {
	b := s.bindings
	cx, cy := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()

	primaryHeld := ebiten.IsMouseButtonPressed(b.PrimaryButton)
	return Sample{
		PanX:         Axis(anyPressed(b.Right), anyPressed(b.Left)),
		PanY:         Axis(anyPressed(b.Forward), anyPressed(b.Back)),
		Rotate:       Axis(ebiten.IsKeyPressed(b.RotateRight), ebiten.IsKeyPressed(b.RotateLeft)) * s.rotateSpeed * dt,
		TurnLeft:     s.turnLeft.IsKeyJustPressed(b.TurnLeft),
		TurnRight:    s.turnRight.IsKeyJustPressed(b.TurnRight),
		Zoom:         float32(wheelY),
		DragActive:   ebiten.IsMouseButtonPressed(b.DragButton),
		Cursor:       mgl32.Vec2{float32(cx), float32(cy)},
		Viewport:     viewport,
		ToggleFollow: s.follow.IsKeyJustPressed(b.Follow),
		PrimaryDown:  s.primary.Update(primaryHeld),
		PrimaryHeld:  primaryHeld,
	}
}

// Axis folds two opposing buttons into -1, 0 or 1.
func Axis(positive, negative bool) float32 {
	var v float32
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
