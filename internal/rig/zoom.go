package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"rtscam/internal/mathutil"
)

// ZoomSettings are the zoom and speed tuning constants.
type ZoomSettings struct {
	MinLength   float32
	MaxLength   float32
	ZoomSpeed   float32 // length change per unit of input; the sign picks the wheel direction
	CatchupRate float32
	MinSpeed    float32
	MaxSpeed    float32
}

// ZoomController keeps the desired boom length separate from the smoothed
// physical one and derives the pan speed from the zoom ratio.
type ZoomController struct {
	settings      ZoomSettings
	movementSpeed float32
}

// NewZoomController puts the arm at minimum zoom.
func NewZoomController(settings ZoomSettings, arm *BoomArm) *ZoomController {
	z := &ZoomController{settings: settings}
	arm.DesiredLength = settings.MinLength
	arm.PhysicalLength = settings.MinLength
	z.updateSpeed(arm.DesiredLength)
	return z
}

func (z *ZoomController) Settings() ZoomSettings {
	return z.settings
}

// MovementSpeed is the current pan speed in units per second.
func (z *ZoomController) MovementSpeed() float32 {
	return z.movementSpeed
}

// OnZoomInput applies one zoom intent to the desired length. Non-finite input
// is ignored. Returns whether the desired length changed.
func (z *ZoomController) OnZoomInput(arm *BoomArm, delta float32) bool {
	if delta == 0 || !mathutil.IsFinite(delta) {
		return false
	}
	next := arm.DesiredLength + delta*z.settings.ZoomSpeed
	if math.IsNaN(float64(next)) {
		return false
	}
	next = mgl32.Clamp(next, z.settings.MinLength, z.settings.MaxLength)
	changed := next != arm.DesiredLength
	arm.DesiredLength = next
	z.updateSpeed(next)
	return changed
}

// TickSmoothing moves the physical length toward the desired length.
func (z *ZoomController) TickSmoothing(arm *BoomArm, dt float32) {
	arm.PhysicalLength = mathutil.InterpTo(arm.PhysicalLength, arm.DesiredLength, dt, z.settings.CatchupRate)
}

// ZoomRatio is 0 at minimum zoom and 1 at maximum.
func (z *ZoomController) ZoomRatio(arm BoomArm) float32 {
	return mathutil.Clamp01(mathutil.NormalizeToRange(arm.DesiredLength, z.settings.MinLength, z.settings.MaxLength))
}

func (z *ZoomController) updateSpeed(desired float32) {
	ratio := mathutil.Clamp01(mathutil.NormalizeToRange(desired, z.settings.MinLength, z.settings.MaxLength))
	z.movementSpeed = mathutil.Lerp(z.settings.MinSpeed, z.settings.MaxSpeed, ratio)
}
