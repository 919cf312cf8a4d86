package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultAspectRatio replaces a non-positive aspect ratio.
	DefaultAspectRatio float32 = 16.0 / 9.0
	// DefaultFarDistance is how far a ray that misses the ground is extended.
	DefaultFarDistance float32 = 100000

	horizonEpsilon float32 = 1e-3
)

// Basis returns the camera forward, right and up vectors for a yaw/pitch pair.
func Basis(yaw, pitch float32) (forward, right, up mgl32.Vec3) {
	sy, cy := sincos(yaw)
	sp, cp := sincos(pitch)
	forward = mgl32.Vec3{cp * cy, cp * sy, sp}
	right = mgl32.Vec3{-sy, cy, 0}
	up = forward.Cross(right)
	return forward, right, up
}

// HorizontalAxes returns the ground-plane forward and right directions for yaw.
func HorizontalAxes(yaw float32) (forward, right mgl32.Vec2) {
	sy, cy := sincos(yaw)
	return mgl32.Vec2{cy, sy}, mgl32.Vec2{-sy, cy}
}

// BoomOrigin is the camera viewpoint at the end of a boom of the given length.
func BoomOrigin(anchor mgl32.Vec3, yaw, pitch, length float32) mgl32.Vec3 {
	forward, _, _ := Basis(yaw, pitch)
	return anchor.Sub(forward.Mul(length))
}

// HalfAngles returns the horizontal and vertical half field of view.
func HalfAngles(optics CameraOptics) (halfH, halfV float32) {
	aspect := optics.AspectRatio
	if !(aspect > 0) {
		aspect = DefaultAspectRatio
	}
	halfH = optics.FieldOfView / 2
	halfV = float32(math.Atan(math.Tan(float64(halfH)) / float64(aspect)))
	return halfH, halfV
}

// Projector intersects the view corner rays with the ground plane.
type Projector struct {
	FarDistance float32
}

// Project is the pure projection with the default far distance.
func Project(anchor mgl32.Vec3, yaw, pitch, desiredLength float32, optics CameraOptics) FrustumProjection {
	return Projector{FarDistance: DefaultFarDistance}.Project(anchor, yaw, pitch, desiredLength, optics)
}

// Project computes the ground footprint, ordered top-left, top-right,
// bottom-right, bottom-left, on the plane z = anchor.z.
func (p Projector) Project(anchor mgl32.Vec3, yaw, pitch, desiredLength float32, optics CameraOptics) FrustumProjection {
	far := p.FarDistance
	if !(far > 0) {
		far = DefaultFarDistance
	}

	forward, right, up := Basis(yaw, pitch)
	origin := anchor.Sub(forward.Mul(desiredLength))

	halfH, halfV := HalfAngles(optics)
	tanH := float32(math.Tan(float64(halfH)))
	tanV := float32(math.Tan(float64(halfV)))

	signs := [4][2]float32{
		TopLeft:     {-1, 1},
		TopRight:    {1, 1},
		BottomRight: {1, -1},
		BottomLeft:  {-1, -1},
	}

	var out FrustumProjection
	for i, s := range signs {
		dir := forward.
			Add(right.Mul(s[0] * tanH)).
			Add(up.Mul(s[1] * tanV)).
			Normalize()
		out.Corners[i] = intersectGround(origin, dir, anchor.Z(), far)
	}
	return out
}

// intersectGround falls back to a far point when the ray does not reach the plane.
func intersectGround(origin, dir mgl32.Vec3, planeZ, far float32) mgl32.Vec3 {
	if dir.Z() >= -horizonEpsilon {
		return origin.Add(dir.Mul(far))
	}
	t := (planeZ - origin.Z()) / dir.Z()
	if t < 0 {
		return origin.Add(dir.Mul(far))
	}
	return origin.Add(dir.Mul(t))
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}
