package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"rtscam/internal/config"
)

// Settings are the controller tuning constants. Angles are radians.
type Settings struct {
	Zoom ZoomSettings

	RotationSpeed    float32
	StartingPitch    float32
	StartingYaw      float32
	StartingPosition mgl32.Vec3

	EdgeScrollEnabled   bool
	EdgeScrollThreshold float32
	DragExtent          float32
	DynamicHeight       bool
	FarDistance         float32

	Constraint ConstraintParams
}

// DefaultSettings mirrors config.DefaultConfig.
func DefaultSettings() Settings {
	return NewSettings(config.DefaultConfig())
}

// NewSettings converts the yaml configuration into controller settings.
func NewSettings(cfg *config.Config) Settings {
	rc := cfg.Rig
	bc := cfg.Boundary
	return Settings{
		Zoom: ZoomSettings{
			MinLength:   float32(rc.MinimumZoomLength),
			MaxLength:   float32(rc.MaximumZoomLength),
			ZoomSpeed:   float32(rc.ZoomSpeed),
			CatchupRate: float32(rc.ZoomCatchupSpeed),
			MinSpeed:    float32(rc.MinimumMovementSpeed),
			MaxSpeed:    float32(rc.MaximumMovementSpeed),
		},
		RotationSpeed:       float32(cfg.GetRotationSpeedRadians()),
		StartingPitch:       float32(cfg.GetStartingPitchRadians()),
		StartingYaw:         float32(cfg.GetStartingYawRadians()),
		StartingPosition:    mgl32.Vec3{float32(rc.StartingX), float32(rc.StartingY), 0},
		EdgeScrollEnabled:   rc.EdgeScrollEnabled,
		EdgeScrollThreshold: float32(rc.EdgeScrollThreshold),
		DragExtent:          float32(rc.DragExtent),
		DynamicHeight:       rc.DynamicHeight,
		FarDistance:         float32(rc.ProjectionFarDistance),
		Constraint: ConstraintParams{
			TransitionRatio: float32(bc.TransitionRatio),
			Strength:        float32(bc.CompensationStrength),
			EnableX:         bc.EnableXAxisConstraint,
			EnableY:         bc.EnableYAxisConstraint,
		},
	}
}

// BoundaryFromConfig returns the configured play area, or nil when disabled.
func BoundaryFromConfig(cfg *config.Config) BoundarySource {
	if !cfg.Boundary.Enabled {
		return nil
	}
	return BoundaryRectangle{
		Origin:      mgl32.Vec2{float32(cfg.Boundary.OriginX), float32(cfg.Boundary.OriginY)},
		HalfExtents: mgl32.Vec2{float32(cfg.Boundary.HalfExtentX), float32(cfg.Boundary.HalfExtentY)},
	}
}
