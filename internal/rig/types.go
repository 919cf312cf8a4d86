// Package rig drives an RTS camera rig: movement intents, zoom smoothing,
// ground frustum projection and play-area containment.
//
// Coordinates are Z-up. +X is north (forward at yaw 0), +Y is east (right).
// Angles are radians; a negative pitch looks down.
package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"rtscam/internal/mathutil"
)

// CameraRig is the ground pivot the boom is attached to.
type CameraRig struct {
	Anchor mgl32.Vec3
	Yaw    float32
}

// BoomArm connects the anchor to the camera viewpoint.
// DesiredLength follows zoom input instantly; PhysicalLength chases it.
// The offsets are a socket displacement in world XY (X = vertical, Y = lateral)
// applied after the boom's normal position.
type BoomArm struct {
	Pitch          float32
	DesiredLength  float32
	PhysicalLength float32
	LateralOffset  float32
	VerticalOffset float32
}

// CameraOptics is read each tick from the camera. FieldOfView is horizontal.
type CameraOptics struct {
	FieldOfView float32
	AspectRatio float32
}

// Optics lets a fixed value act as an OpticsSource.
func (o CameraOptics) Optics() (CameraOptics, bool) {
	return o, true
}

// ReachFactors are ground reach divided by boom length for each frustum side.
// Valid is false when the pitch/optics combination has no finite footprint.
type ReachFactors struct {
	Lateral  float32
	Forward  float32
	Backward float32
	Valid    bool
}

// BoundaryRectangle is the axis aligned play area.
type BoundaryRectangle struct {
	Origin      mgl32.Vec2
	HalfExtents mgl32.Vec2
}

// Boundary lets a fixed rectangle act as a BoundarySource.
func (b BoundaryRectangle) Boundary() (BoundaryRectangle, bool) {
	return b, true
}

func (b BoundaryRectangle) Min() mgl32.Vec2 {
	return b.Origin.Sub(b.HalfExtents)
}

func (b BoundaryRectangle) Max() mgl32.Vec2 {
	return b.Origin.Add(b.HalfExtents)
}

// Contains reports whether p lies inside or on the rectangle.
func (b BoundaryRectangle) Contains(p mgl32.Vec2) bool {
	lo, hi := b.Min(), b.Max()
	return p.X() >= lo.X() && p.X() <= hi.X() && p.Y() >= lo.Y() && p.Y() <= hi.Y()
}

// Degenerate reports a rectangle too thin to constrain against.
func (b BoundaryRectangle) Degenerate() bool {
	ex, ey := b.HalfExtents.X(), b.HalfExtents.Y()
	return !mathutil.IsFinite(ex) || !mathutil.IsFinite(ey) ||
		!mathutil.IsFinite(b.Origin.X()) || !mathutil.IsFinite(b.Origin.Y()) ||
		ex < mathutil.SmallNumber || ey < mathutil.SmallNumber
}

// MovementCommand is one queued translation intent.
type MovementCommand struct {
	Direction mgl32.Vec2
	Scale     float32
}

// Corner indexes into FrustumProjection.Corners.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// FrustumProjection holds the ground hits of the four view corner rays.
type FrustumProjection struct {
	Corners [4]mgl32.Vec3
}

// Corner returns the point for c.
func (f FrustumProjection) Corner(c Corner) mgl32.Vec3 {
	return f.Corners[c]
}

// Centroid averages the four corners.
func (f FrustumProjection) Centroid() mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, p := range f.Corners {
		sum = sum.Add(p)
	}
	return sum.Mul(0.25)
}
