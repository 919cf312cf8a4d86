package rig

import "github.com/go-gl/mathgl/mgl32"

// OpticsSource supplies the camera optics. ok=false means no camera is bound.
type OpticsSource interface {
	Optics() (CameraOptics, bool)
}

// BoundarySource supplies the play-area rectangle. ok=false means unconstrained.
type BoundarySource interface {
	Boundary() (BoundaryRectangle, bool)
}

// GroundHeightQuery samples terrain height at a horizontal position.
type GroundHeightQuery interface {
	GroundHeight(x, y float32) (float32, bool)
}

// Target is something the rig can follow. ok=false means it is gone.
type Target interface {
	Position() (mgl32.Vec3, bool)
}

// Pointer exposes the cursor for edge scrolling. ok=false when the cursor
// is not over the world view.
type Pointer interface {
	Cursor() (mgl32.Vec2, bool)
	Viewport() mgl32.Vec2
}

// FrustumListener is invoked synchronously after every recomputation.
type FrustumListener func(FrustumProjection)
