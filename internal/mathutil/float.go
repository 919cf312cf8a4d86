package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SmallNumber is the epsilon used for degenerate geometry checks.
const SmallNumber float32 = 1e-4

// Clamp01 clamps x to [0, 1] (search: float-math).
func Clamp01(x float32) float32 {
	return mgl32.Clamp(x, 0, 1)
}

// Lerp blends a toward b by alpha. Alpha is not clamped.
func Lerp(a, b, alpha float32) float32 {
	return a + (b-a)*alpha
}

// NormalizeToRange maps value into [0,1] relative to [min, max]. A zero-width
// range returns 0 when value is below min and 1 otherwise.
func NormalizeToRange(value, min, max float32) float32 {
	if max == min {
		if value < min {
			return 0
		}
		return 1
	}
	return (value - min) / (max - min)
}

// InterpTo moves current toward target with frame-rate independent exponential
// decay. A non-positive rate snaps to the target.
func InterpTo(current, target, dt, rate float32) float32 {
	if rate <= 0 {
		return target
	}
	if dt <= 0 || current == target {
		return current
	}
	return current + (target-current)*(1-float32(math.Exp(float64(-rate*dt))))
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sign returns -1, 0, or 1 based on sign (search: float-math).
func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
