package rig

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var (
	squareBoundary = BoundaryRectangle{Origin: mgl32.Vec2{0, 0}, HalfExtents: mgl32.Vec2{1000, 1000}}
	defaultParams  = ConstraintParams{TransitionRatio: 0.15, Strength: 0.5, EnableX: true, EnableY: true}
)

func TestApplyNearForwardEdge(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)
	anchor := mgl32.Vec3{950, 0, 0}

	res := Apply(anchor, 500, squareBoundary, factors, defaultParams)

	alpha := TransitionAlpha(950, 1000, 0.15)
	assert.InDelta(t, 0.6667, alpha, 1e-3)
	assert.InDelta(t, -alpha*500*factors.Forward*0.5, res.VerticalOffset, 1e-3)
	assert.Less(t, res.VerticalOffset, float32(0), "offset pulls back toward the interior")
	assert.Zero(t, res.LateralOffset)
	assert.LessOrEqual(t, res.Anchor.X(), float32(1000))
	assert.Equal(t, anchor, res.Anchor)
	assert.False(t, res.Clamped)
}

func TestApplyNearBackwardEdgeUsesBackwardFactor(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)

	res := Apply(mgl32.Vec3{-950, 0, 0}, 500, squareBoundary, factors, defaultParams)

	alpha := TransitionAlpha(-950, 1000, 0.15)
	assert.InDelta(t, alpha*500*factors.Backward*0.5, res.VerticalOffset, 1e-3)
	assert.Greater(t, res.VerticalOffset, float32(0))
}

func TestApplyLateralAxisIsSymmetric(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)

	east := Apply(mgl32.Vec3{0, 980, 0}, 1200, squareBoundary, factors, defaultParams)
	west := Apply(mgl32.Vec3{0, -980, 0}, 1200, squareBoundary, factors, defaultParams)

	assert.Less(t, east.LateralOffset, float32(0))
	assert.InDelta(t, -east.LateralOffset, west.LateralOffset, 1e-4)
	assert.Zero(t, east.VerticalOffset)
}

func TestApplyAtCenter(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)
	anchor := mgl32.Vec3{0, 0, 25}

	res := Apply(anchor, 500, squareBoundary, factors, defaultParams)

	assert.Equal(t, anchor, res.Anchor)
	assert.Zero(t, res.LateralOffset)
	assert.Zero(t, res.VerticalOffset)
	assert.False(t, res.Clamped)
}

func TestApplyOutsideClampsAndSaturates(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)

	res := Apply(mgl32.Vec3{1500, -3000, 7}, 500, squareBoundary, factors, defaultParams)

	assert.Equal(t, mgl32.Vec3{1000, -1000, 7}, res.Anchor)
	assert.True(t, res.Clamped)
	assert.InDelta(t, -500*factors.Forward*0.5, res.VerticalOffset, 1e-3)
	assert.InDelta(t, 500*factors.Lateral*0.5, res.LateralOffset, 1e-3)
}

func TestApplyAxisToggles(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)
	params := defaultParams
	params.EnableX = false
	params.EnableY = false

	res := Apply(mgl32.Vec3{1200, 990, 0}, 500, squareBoundary, factors, params)

	assert.Zero(t, res.VerticalOffset)
	assert.Zero(t, res.LateralOffset)
	assert.Equal(t, float32(1000), res.Anchor.X(), "hard clamp is unconditional")
}

func TestApplyInvalidFactorsClampOnly(t *testing.T) {
	res := Apply(mgl32.Vec3{1200, 0, 0}, 500, squareBoundary, ReachFactors{}, defaultParams)

	assert.Equal(t, mgl32.Vec3{1000, 0, 0}, res.Anchor)
	assert.Zero(t, res.VerticalOffset)
	assert.Zero(t, res.LateralOffset)
}

func TestApplyDegenerateBoundary(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)
	thin := BoundaryRectangle{Origin: mgl32.Vec2{0, 0}, HalfExtents: mgl32.Vec2{1000, 0}}
	anchor := mgl32.Vec3{5000, 20, 0}

	res := Apply(anchor, 500, thin, factors, defaultParams)

	assert.Equal(t, anchor, res.Anchor)
	assert.Zero(t, res.VerticalOffset)
	assert.False(t, res.Clamped)
}

func TestApplyZeroStrength(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)
	params := defaultParams
	params.Strength = 0

	res := Apply(mgl32.Vec3{999, 999, 0}, 500, squareBoundary, factors, params)

	assert.Zero(t, res.VerticalOffset)
	assert.Zero(t, res.LateralOffset)
}

func TestApplyAlwaysInsideBoundary(t *testing.T) {
	factors := Calibrate(opticsStd.FieldOfView, opticsStd.AspectRatio, pitch45)
	rng := rand.New(rand.NewSource(1))
	b := BoundaryRectangle{Origin: mgl32.Vec2{300, -200}, HalfExtents: mgl32.Vec2{750, 400}}

	for i := 0; i < 2000; i++ {
		anchor := mgl32.Vec3{
			(rng.Float32()*2 - 1) * 5000,
			(rng.Float32()*2 - 1) * 5000,
			rng.Float32() * 100,
		}
		res := Apply(anchor, 500+rng.Float32()*4500, b, factors, defaultParams)

		assert.True(t, b.Contains(res.Anchor.Vec2()), "anchor %v escaped as %v", anchor, res.Anchor)
		assert.Equal(t, anchor.Z(), res.Anchor.Z())
	}
}

func TestTransitionAlpha(t *testing.T) {
	tests := []struct {
		name                string
		diff, extent, ratio float32
		want                float32
	}{
		{"center", 0, 1000, 0.15, 0},
		{"inner edge", 850, 1000, 0.15, 0},
		{"halfway", -925, 1000, 0.15, 0.5},
		{"edge", 1000, 1000, 0.15, 1},
		{"outside", 1400, 1000, 0.15, 1},
		{"zero band", 1020, 1000, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TransitionAlpha(tt.diff, tt.extent, tt.ratio), 1e-4)
		})
	}
}
