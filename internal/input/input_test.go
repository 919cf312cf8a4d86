package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"rtscam/internal/rig"
)

type recorder struct {
	calls []string
	drag  []bool
}

func (r *recorder) MoveX(float32) { r.calls = append(r.calls, "MoveX") }
func (r *recorder) MoveY(float32) { r.calls = append(r.calls, "MoveY") }
func (r *recorder) Rotate(float32) { r.calls = append(r.calls, "Rotate") }
func (r *recorder) TurnLeft() { r.calls = append(r.calls, "TurnLeft") }
func (r *recorder) TurnRight() { r.calls = append(r.calls, "TurnRight") }
func (r *recorder) Zoom(float32) { r.calls = append(r.calls, "Zoom") }
func (r *recorder) Drag(active bool, _, _ mgl32.Vec2) {
	r.drag = append(r.drag, active)
}

func TestKeyStateTrackerRisingEdge(t *testing.T) {
	var k KeyStateTracker
	seq := []bool{false, true, true, false, true}
	want := []bool{false, true, false, false, true}
	for i, pressed := range seq {
		assert.Equal(t, want[i], k.Update(pressed), "frame %d", i)
	}
}

func TestAxis(t *testing.T) {
	assert.Equal(t, float32(1), Axis(true, false))
	assert.Equal(t, float32(-1), Axis(false, true))
	assert.Equal(t, float32(0), Axis(true, true))
	assert.Equal(t, float32(0), Axis(false, false))
}

func TestDispatchSkipsIdleAxes(t *testing.T) {
	var r recorder
	Dispatch(Sample{}, &r)

	assert.Empty(t, r.calls)
	assert.Equal(t, []bool{false}, r.drag, "drag always receives the sample so it can end")
}

func TestDispatchForwardsEverything(t *testing.T) {
	var r recorder
	Dispatch(Sample{
		PanX: 1, PanY: -1, Rotate: 0.2,
		TurnLeft: true, TurnRight: true,
		Zoom: -1, DragActive: true,
	}, &r)

	assert.Equal(t, []string{"MoveX", "MoveY", "Rotate", "TurnLeft", "TurnRight", "Zoom"}, r.calls)
	assert.Equal(t, []bool{true}, r.drag)
}

func TestDispatchDrivesController(t *testing.T) {
	ctrl := rig.NewController(rig.DefaultSettings(), zerolog.Nop(),
		rig.WithOptics(rig.CameraOptics{FieldOfView: mgl32.DegToRad(45), AspectRatio: 16.0 / 9.0}))

	Dispatch(Sample{PanY: 1, Zoom: -1}, ctrl)
	ctrl.Tick(0.5)

	assert.Equal(t, float32(700), ctrl.Arm().DesiredLength)
	// Speed follows the zoom intent that was applied before the drain.
	assert.InDelta(t, 0.5*ctrl.MovementSpeed(), ctrl.Anchor().X(), 1e-3)
}
