package rig

import (
	"math"

	"rtscam/internal/mathutil"
)

// CalibrationLength is the synthetic boom length used to derive reach factors.
const CalibrationLength float32 = 1000

// Reach is the ground footprint extent of a boom of a given length, measured
// horizontally from the camera viewpoint.
type Reach struct {
	Lateral  float32
	Forward  float32
	Backward float32
}

// ReachAt builds the footprint for a boom of the given length. ok is false
// when either edge ray is parallel to or above the ground.
func ReachAt(length, fov, aspect, pitch float32) (Reach, bool) {
	halfH, halfV := HalfAngles(CameraOptics{FieldOfView: fov, AspectRatio: aspect})
	p := float64(pitch)
	if p < 0 {
		p = -p
	}
	hv := float64(halfV)

	sinFar := math.Sin(p + hv)
	sinNear := math.Sin(p - hv)
	if sinFar <= float64(mathutil.SmallNumber) || sinNear <= float64(mathutil.SmallNumber) {
		return Reach{}, false
	}

	z := float64(length) * math.Sin(p)
	slant := z / sinFar
	slantBottom := z / sinNear

	r := Reach{
		Lateral:  float32(slant * math.Tan(float64(halfH))),
		Forward:  float32(slant * math.Cos(p+hv)),
		Backward: float32(slantBottom * math.Cos(p-hv)),
	}
	if !mathutil.IsFinite(r.Lateral) || !mathutil.IsFinite(r.Forward) || !mathutil.IsFinite(r.Backward) {
		return Reach{}, false
	}
	return r, true
}

// Calibrate derives length-independent reach factors. Negative reaches are
// floored at zero. Invalid factors mean only the hard clamp applies.
func Calibrate(fov, aspect, pitch float32) ReachFactors {
	r, ok := ReachAt(CalibrationLength, fov, aspect, pitch)
	if !ok {
		return ReachFactors{}
	}
	return ReachFactors{
		Lateral:  max(r.Lateral/CalibrationLength, 0),
		Forward:  max(r.Forward/CalibrationLength, 0),
		Backward: max(r.Backward/CalibrationLength, 0),
		Valid:    true,
	}
}

// Scale returns the reach of a boom of the given length.
func (f ReachFactors) Scale(length float32) Reach {
	return Reach{
		Lateral:  f.Lateral * length,
		Forward:  f.Forward * length,
		Backward: f.Backward * length,
	}
}
