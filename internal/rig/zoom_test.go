package rig

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultZoom() ZoomSettings {
	return ZoomSettings{
		MinLength:   500,
		MaxLength:   5000,
		ZoomSpeed:   -200,
		CatchupRate: 4,
		MinSpeed:    128,
		MaxSpeed:    1024,
	}
}

func TestNewZoomControllerStartsAtMinimum(t *testing.T) {
	var arm BoomArm
	z := NewZoomController(defaultZoom(), &arm)

	assert.Equal(t, float32(500), arm.DesiredLength)
	assert.Equal(t, float32(500), arm.PhysicalLength)
	assert.Equal(t, float32(128), z.MovementSpeed())
}

func TestZoomOutStepsByZoomSpeed(t *testing.T) {
	var arm BoomArm
	z := NewZoomController(defaultZoom(), &arm)

	// A negative zoom speed means negative input (wheel down) pulls the boom out.
	want := []float32{700, 900, 1100}
	for i, w := range want {
		assert.True(t, z.OnZoomInput(&arm, -1))
		assert.Equal(t, w, arm.DesiredLength, "step %d", i)
	}
	assert.Equal(t, float32(500), arm.PhysicalLength, "physical length only moves on tick")
}

func TestZoomCapsAtMaximum(t *testing.T) {
	var arm BoomArm
	z := NewZoomController(defaultZoom(), &arm)

	for i := 0; i < 40; i++ {
		z.OnZoomInput(&arm, -1)
		assert.LessOrEqual(t, arm.DesiredLength, float32(5000))
	}
	assert.Equal(t, float32(5000), arm.DesiredLength)
	assert.Equal(t, float32(1024), z.MovementSpeed())
	assert.False(t, z.OnZoomInput(&arm, -1), "already at cap")
}

func TestZoomInAtMinimumStays(t *testing.T) {
	var arm BoomArm
	z := NewZoomController(defaultZoom(), &arm)

	assert.False(t, z.OnZoomInput(&arm, 1))
	assert.Equal(t, float32(500), arm.DesiredLength)
}

func TestZoomSpeedFollowsRatio(t *testing.T) {
	var arm BoomArm
	z := NewZoomController(defaultZoom(), &arm)
	arm.DesiredLength = 2550
	z.OnZoomInput(&arm, -0.25) // +50 -> 2600

	ratio := float32(2600-500) / 4500
	assert.InDelta(t, 128+(1024-128)*ratio, z.MovementSpeed(), 1e-3)
	assert.InDelta(t, ratio, z.ZoomRatio(arm), 1e-6)
}

func TestZoomClampHoldsForAdversarialInput(t *testing.T) {
	var arm BoomArm
	z := NewZoomController(defaultZoom(), &arm)
	rng := rand.New(rand.NewSource(7))

	inputs := []float32{
		float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()),
		1e30, -1e30, math.MaxFloat32, -math.MaxFloat32,
	}
	for i := 0; i < 500; i++ {
		inputs = append(inputs, (rng.Float32()*2-1)*float32(rng.Intn(1000)))
	}

	for _, in := range inputs {
		z.OnZoomInput(&arm, in)
		assert.GreaterOrEqual(t, arm.DesiredLength, float32(500))
		assert.LessOrEqual(t, arm.DesiredLength, float32(5000))
	}
}

func TestTickSmoothing(t *testing.T) {
	t.Run("fixed point", func(t *testing.T) {
		var arm BoomArm
		z := NewZoomController(defaultZoom(), &arm)
		z.TickSmoothing(&arm, 1.0/60)
		assert.Equal(t, arm.DesiredLength, arm.PhysicalLength)
	})

	t.Run("converges toward desired", func(t *testing.T) {
		var arm BoomArm
		z := NewZoomController(defaultZoom(), &arm)
		z.OnZoomInput(&arm, -5) // 1500

		prev := arm.PhysicalLength
		for i := 0; i < 240; i++ {
			z.TickSmoothing(&arm, 1.0/60)
			assert.GreaterOrEqual(t, arm.PhysicalLength, prev)
			assert.LessOrEqual(t, arm.PhysicalLength, float32(1500))
			prev = arm.PhysicalLength
		}
		assert.InDelta(t, 1500, arm.PhysicalLength, 1)
	})

	t.Run("zero catch-up snaps", func(t *testing.T) {
		settings := defaultZoom()
		settings.CatchupRate = 0
		var arm BoomArm
		z := NewZoomController(settings, &arm)
		z.OnZoomInput(&arm, -1)
		z.TickSmoothing(&arm, 1.0/60)
		assert.Equal(t, float32(700), arm.PhysicalLength)
	})
}
