package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"rtscam/internal/mathutil"
)

// minTransitionRatio keeps the ramp division finite for a zero-width band.
const minTransitionRatio float32 = 0.01

// ConstraintParams tune the optical compensation.
type ConstraintParams struct {
	TransitionRatio float32
	Strength        float32
	EnableX         bool
	EnableY         bool
}

// ConstraintResult is the output of Apply.
type ConstraintResult struct {
	Anchor         mgl32.Vec3
	LateralOffset  float32
	VerticalOffset float32
	// Clamped is set when the hard clamp moved the anchor.
	Clamped bool
}

// Apply hard clamps the anchor into the boundary and computes the optical
// offsets that pull the camera back as the anchor enters the transition band.
// The clamp is unconditional. Offsets are derived from the unclamped anchor and
// are zero for a disabled axis or invalid reach factors. A degenerate boundary
// constrains nothing.
func Apply(anchor mgl32.Vec3, physicalLength float32, boundary BoundaryRectangle, factors ReachFactors, params ConstraintParams) ConstraintResult {
	if boundary.Degenerate() {
		return ConstraintResult{Anchor: anchor}
	}

	lo, hi := boundary.Min(), boundary.Max()
	clamped := mgl32.Vec3{
		mgl32.Clamp(anchor.X(), lo.X(), hi.X()),
		mgl32.Clamp(anchor.Y(), lo.Y(), hi.Y()),
		anchor.Z(),
	}
	result := ConstraintResult{
		Anchor:  clamped,
		Clamped: clamped != anchor,
	}

	if !factors.Valid {
		return result
	}

	if params.EnableX {
		diff := anchor.X() - boundary.Origin.X()
		factor := factors.Backward
		if diff > 0 {
			factor = factors.Forward
		}
		result.VerticalOffset = axisOffset(diff, boundary.HalfExtents.X(), physicalLength, factor, params)
	}
	if params.EnableY {
		diff := anchor.Y() - boundary.Origin.Y()
		result.LateralOffset = axisOffset(diff, boundary.HalfExtents.Y(), physicalLength, factors.Lateral, params)
	}
	return result
}

// TransitionAlpha ramps from 0 at the inner edge of the transition band to 1
// at the boundary.
func TransitionAlpha(diff, halfExtent, transitionRatio float32) float32 {
	d := abs32(diff) / max(halfExtent, mathutil.SmallNumber)
	safe := 1 - transitionRatio
	if d <= safe {
		return 0
	}
	return mathutil.Clamp01((d - safe) / max(transitionRatio, minTransitionRatio))
}

// axisOffset pushes the framing back toward the interior.
func axisOffset(diff, halfExtent, physicalLength, factor float32, params ConstraintParams) float32 {
	alpha := TransitionAlpha(diff, halfExtent, params.TransitionRatio)
	if alpha == 0 {
		return 0
	}
	sign := float32(1)
	if diff > 0 {
		sign = -1
	}
	return sign * alpha * physicalLength * factor * params.Strength
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
