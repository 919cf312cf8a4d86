package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"rtscam/internal/logging"
	"rtscam/internal/mathutil"
	"rtscam/internal/monitoring"
)

// edgeScrollMinStep is the smallest edge scroll displacement worth applying.
const edgeScrollMinStep float32 = 0.1

// Option configures a Controller at construction.
type Option func(*Controller)

func WithOptics(src OpticsSource) Option {
	return func(c *Controller) { c.optics = src }
}

func WithBoundary(src BoundarySource) Option {
	return func(c *Controller) { c.boundary = src }
}

func WithGround(q GroundHeightQuery) Option {
	return func(c *Controller) { c.ground = q }
}

func WithPointer(p Pointer) Option {
	return func(c *Controller) { c.pointer = p }
}

func WithMonitor(m *monitoring.TickMonitor) Option {
	return func(c *Controller) { c.monitor = m }
}

type calibrationKey struct {
	fov, aspect, pitch float32
}

type dragState struct {
	active bool
	start  mgl32.Vec2
}

type listenerEntry struct {
	id int
	fn FrustumListener
}

// Controller owns one player's camera rig and runs it once per frame.
// It is not safe for concurrent use; every call must come from the game loop.
type Controller struct {
	settings Settings
	logger   zerolog.Logger
	trace    zerolog.Logger

	rig   CameraRig
	arm   BoomArm
	zoom  *ZoomController
	queue CommandQueue
	drag  dragState

	projector    Projector
	frustum      FrustumProjection
	hasFrustum   bool
	listeners    []listenerEntry
	nextListener int

	reach          ReachFactors
	calibrated     bool
	calibratedWith calibrationKey

	optics   OpticsSource
	boundary BoundarySource
	ground   GroundHeightQuery
	pointer  Pointer
	target   Target
	monitor  *monitoring.TickMonitor

	opticsBound   bool
	boundaryBound bool
}

// NewController builds a rig at the configured starting pose and minimum zoom,
// clamps it into the boundary and projects the initial frustum.
func NewController(settings Settings, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		settings:  settings,
		logger:    logger.With().Str("component", "camera_rig").Logger(),
		projector: Projector{FarDistance: settings.FarDistance},
		rig: CameraRig{
			Anchor: settings.StartingPosition,
			Yaw:    wrapAngle(settings.StartingYaw),
		},
		arm: BoomArm{Pitch: settings.StartingPitch},
	}
	c.trace = logging.Sampled(c.logger)
	c.zoom = NewZoomController(settings.Zoom, &c.arm)
	for _, opt := range opts {
		opt(c)
	}

	c.JumpTo(settings.StartingPosition.Vec2())
	return c
}

// Tick runs the per-frame pipeline: movement commands, edge scroll, height
// correction, zoom smoothing, follow snap, boundary constraint.
func (c *Controller) Tick(dt float32) {
	timer := c.monitor.StartTick()
	defer timer.EndTick()

	if !(dt > 0) || !mathutil.IsFinite(dt) {
		dt = 0
	}

	if optics, ok := c.currentOptics(); ok {
		c.ensureCalibrated(optics)
	}

	c.applyMovementCommands(dt)
	c.applyEdgeScroll(dt)
	c.correctHeight()
	c.zoom.TickSmoothing(&c.arm, dt)
	c.snapToTarget()
	c.applyBoundary()
}

// JumpTo moves the anchor to pos keeping its height, then clamps and reprojects.
func (c *Controller) JumpTo(pos mgl32.Vec2) {
	if !mathutil.IsFinite(pos.X()) || !mathutil.IsFinite(pos.Y()) {
		c.logger.Warn().Float32("x", pos.X()).Float32("y", pos.Y()).Msg("ignoring jump to non-finite position")
		return
	}
	c.rig.Anchor = mgl32.Vec3{pos.X(), pos.Y(), c.rig.Anchor.Z()}
	c.constrain()
	c.reproject()
}

// FollowTarget snaps the anchor to target every tick until unfollowed or the
// target reports it is gone. A nil target unfollows.
func (c *Controller) FollowTarget(target Target) {
	c.target = target
	if target != nil {
		c.logger.Debug().Msg("following target")
	}
}

func (c *Controller) UnfollowTarget() {
	c.target = nil
}

func (c *Controller) IsFollowing() bool {
	return c.target != nil
}

// MoveX queues a pan along the rig's right axis.
func (c *Controller) MoveX(value float32) {
	if value == 0 {
		return
	}
	_, right := HorizontalAxes(c.rig.Yaw)
	c.queue.Enqueue(right.X(), right.Y(), value)
}

// MoveY queues a pan along the rig's forward axis.
func (c *Controller) MoveY(value float32) {
	if value == 0 {
		return
	}
	forward, _ := HorizontalAxes(c.rig.Yaw)
	c.queue.Enqueue(forward.X(), forward.Y(), value)
}

// Zoom applies a zoom intent and reprojects immediately.
func (c *Controller) Zoom(delta float32) {
	if c.zoom.OnZoomInput(&c.arm, delta) {
		c.reproject()
	}
}

// Rotate adds delta radians of yaw.
func (c *Controller) Rotate(delta float32) {
	if delta == 0 || !mathutil.IsFinite(delta) {
		return
	}
	c.rig.Yaw = wrapAngle(c.rig.Yaw + delta)
	c.reproject()
}

func (c *Controller) TurnLeft() {
	c.Rotate(-c.settings.RotationSpeed)
}

func (c *Controller) TurnRight() {
	c.Rotate(c.settings.RotationSpeed)
}

// SetPitch changes the boom pitch, which forces recalibration.
func (c *Controller) SetPitch(pitch float32) {
	if pitch == c.arm.Pitch {
		return
	}
	c.arm.Pitch = pitch
	c.calibrated = false
	c.constrain()
	c.reproject()
}

// Drag feeds one sample of a screen drag. The first active sample records the
// start point; later ones queue a pan proportional to the clamped offset from
// it. An inactive sample ends the drag.
func (c *Controller) Drag(active bool, cursor, viewport mgl32.Vec2) {
	if !active {
		c.drag = dragState{}
		return
	}
	if !c.drag.active {
		c.drag = dragState{active: true, start: cursor}
		return
	}

	extentX := viewport.X() * c.settings.DragExtent
	extentY := viewport.Y() * c.settings.DragExtent
	if !(extentX > 0) || !(extentY > 0) {
		return
	}
	delta := cursor.Sub(c.drag.start)
	dx := mgl32.Clamp(delta.X(), -extentX, extentX) / extentX
	dy := mgl32.Clamp(delta.Y(), -extentY, extentY) / extentY

	forward, right := HorizontalAxes(c.rig.Yaw)
	if dx != 0 {
		c.queue.Enqueue(right.X(), right.Y(), dx)
	}
	if dy != 0 {
		// screen y grows downward
		c.queue.Enqueue(forward.X(), forward.Y(), -dy)
	}
}

func (c *Controller) IsDragging() bool {
	return c.drag.active
}

// AddFrustumListener registers fn for change notifications and returns a
// function that removes it.
func (c *Controller) AddFrustumListener(fn FrustumListener) (remove func()) {
	c.nextListener++
	id := c.nextListener
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		kept := make([]listenerEntry, 0, len(c.listeners))
		for _, l := range c.listeners {
			if l.id != id {
				kept = append(kept, l)
			}
		}
		c.listeners = kept
	}
}

// Frustum returns the last projection. ok is false until optics were available.
func (c *Controller) Frustum() (FrustumProjection, bool) {
	return c.frustum, c.hasFrustum
}

func (c *Controller) SetOpticsSource(src OpticsSource) {
	c.optics = src
	c.calibrated = false
	c.constrain()
	c.reproject()
}

func (c *Controller) SetBoundarySource(src BoundarySource) {
	c.boundary = src
	if c.constrain() {
		c.reproject()
	}
}

func (c *Controller) SetGroundQuery(q GroundHeightQuery) {
	c.ground = q
}

func (c *Controller) SetPointer(p Pointer) {
	c.pointer = p
}

func (c *Controller) Anchor() mgl32.Vec3 {
	return c.rig.Anchor
}

func (c *Controller) Yaw() float32 {
	return c.rig.Yaw
}

// Rig returns a copy of the rig state.
func (c *Controller) Rig() CameraRig {
	return c.rig
}

// Arm returns a copy of the boom state.
func (c *Controller) Arm() BoomArm {
	return c.arm
}

func (c *Controller) MovementSpeed() float32 {
	return c.zoom.MovementSpeed()
}

func (c *Controller) ZoomRatio() float32 {
	return c.zoom.ZoomRatio(c.arm)
}

// ReachFactors returns the cached calibration. ok is false before the first
// calibration.
func (c *Controller) ReachFactors() (ReachFactors, bool) {
	return c.reach, c.calibrated
}

// PendingCommands is the number of queued movement commands.
func (c *Controller) PendingCommands() int {
	return c.queue.Len()
}

// CameraPosition is the render viewpoint: the smoothed boom end plus the
// boundary compensation offsets.
func (c *Controller) CameraPosition() mgl32.Vec3 {
	origin := BoomOrigin(c.rig.Anchor, c.rig.Yaw, c.arm.Pitch, c.arm.PhysicalLength)
	return origin.Add(mgl32.Vec3{c.arm.VerticalOffset, c.arm.LateralOffset, 0})
}

// CameraForward is the render view direction.
func (c *Controller) CameraForward() mgl32.Vec3 {
	forward, _, _ := Basis(c.rig.Yaw, c.arm.Pitch)
	return forward
}

func (c *Controller) applyMovementCommands(dt float32) {
	if c.queue.Len() == 0 {
		return
	}
	next := c.queue.DrainAndApply(c.rig.Anchor, c.zoom.MovementSpeed(), dt)
	c.JumpTo(next.Vec2())
}

func (c *Controller) applyEdgeScroll(dt float32) {
	if !c.settings.EdgeScrollEnabled || c.pointer == nil || c.drag.active {
		return
	}
	cursor, ok := c.pointer.Cursor()
	if !ok {
		return
	}
	push := EdgePush(cursor, c.pointer.Viewport(), c.settings.EdgeScrollThreshold)
	if push == (mgl32.Vec2{}) {
		return
	}

	forward, right := HorizontalAxes(c.rig.Yaw)
	step := right.Mul(push.X()).Add(forward.Mul(push.Y())).Mul(c.zoom.MovementSpeed() * dt)
	if step.Len() <= edgeScrollMinStep {
		return
	}
	c.rig.Anchor = c.rig.Anchor.Add(step.Vec3(0))
	c.reproject()
}

func (c *Controller) correctHeight() {
	if !c.settings.DynamicHeight || c.ground == nil {
		return
	}
	h, ok := c.ground.GroundHeight(c.rig.Anchor.X(), c.rig.Anchor.Y())
	if !ok || !mathutil.IsFinite(h) {
		return
	}
	if abs32(h-c.rig.Anchor.Z()) <= mathutil.SmallNumber {
		return
	}
	c.rig.Anchor[2] = h
	c.reproject()
}

func (c *Controller) snapToTarget() {
	if c.target == nil {
		return
	}
	pos, ok := c.target.Position()
	if !ok {
		c.logger.Info().Msg("follow target is gone, unfollowing")
		c.target = nil
		return
	}
	c.JumpTo(pos.Vec2())
}

func (c *Controller) applyBoundary() {
	if c.constrain() {
		c.reproject()
	}
}

// constrain runs the boundary applier on the current anchor and stores the
// offsets. Returns whether the hard clamp moved the anchor.
func (c *Controller) constrain() bool {
	b, ok := c.currentBoundary()
	if !ok {
		c.arm.LateralOffset, c.arm.VerticalOffset = 0, 0
		return false
	}
	if optics, ok := c.currentOptics(); ok {
		c.ensureCalibrated(optics)
	}

	res := Apply(c.rig.Anchor, c.arm.PhysicalLength, b, c.reach, c.settings.Constraint)
	c.rig.Anchor = res.Anchor
	c.arm.LateralOffset = res.LateralOffset
	c.arm.VerticalOffset = res.VerticalOffset

	if res.Clamped || res.LateralOffset != 0 || res.VerticalOffset != 0 {
		c.trace.Trace().
			Float32("lateral", res.LateralOffset).
			Float32("vertical", res.VerticalOffset).
			Bool("clamped", res.Clamped).
			Msg("boundary compensation")
	}
	return res.Clamped
}

// reproject recomputes the frustum from the intent length and notifies
// listeners. Without optics nothing happens.
func (c *Controller) reproject() {
	optics, ok := c.currentOptics()
	if !ok {
		return
	}
	c.frustum = c.projector.Project(c.rig.Anchor, c.rig.Yaw, c.arm.Pitch, c.arm.DesiredLength, optics)
	c.hasFrustum = true
	c.monitor.RecordProjection()

	for _, l := range c.listeners {
		l.fn(c.frustum)
	}
}

func (c *Controller) ensureCalibrated(optics CameraOptics) {
	key := calibrationKey{fov: optics.FieldOfView, aspect: optics.AspectRatio, pitch: c.arm.Pitch}
	if c.calibrated && key == c.calibratedWith {
		return
	}
	c.reach = Calibrate(optics.FieldOfView, optics.AspectRatio, c.arm.Pitch)
	c.calibrated = true
	c.calibratedWith = key
	c.logCalibration(optics)
}

func (c *Controller) logCalibration(optics CameraOptics) {
	if !c.reach.Valid {
		c.logger.Warn().
			Float32("fov_deg", mgl32.RadToDeg(optics.FieldOfView)).
			Float32("pitch_deg", mgl32.RadToDeg(c.arm.Pitch)).
			Msg("reach factors unavailable, boundary uses hard clamp only")
		return
	}

	_, halfV := HalfAngles(optics)
	p := abs32(c.arm.Pitch)
	minReach := c.reach.Scale(c.settings.Zoom.MinLength)
	maxReach := c.reach.Scale(c.settings.Zoom.MaxLength)
	c.logger.Info().
		Float32("fov_deg", mgl32.RadToDeg(optics.FieldOfView)).
		Float32("aspect", optics.AspectRatio).
		Float32("pitch_deg", mgl32.RadToDeg(c.arm.Pitch)).
		Float32("far_ray_deg", mgl32.RadToDeg(p+halfV)).
		Float32("near_ray_deg", mgl32.RadToDeg(p-halfV)).
		Float32("lateral_factor", c.reach.Lateral).
		Float32("forward_factor", c.reach.Forward).
		Float32("backward_factor", c.reach.Backward).
		Float32("lateral_reach_min", minReach.Lateral).
		Float32("lateral_reach_max", maxReach.Lateral).
		Float32("forward_reach_min", minReach.Forward).
		Float32("forward_reach_max", maxReach.Forward).
		Float32("backward_reach_min", minReach.Backward).
		Float32("backward_reach_max", maxReach.Backward).
		Msg("reach calibrated")
}

func (c *Controller) currentOptics() (CameraOptics, bool) {
	var optics CameraOptics
	ok := false
	if c.optics != nil {
		optics, ok = c.optics.Optics()
	}
	if ok != c.opticsBound {
		c.opticsBound = ok
		if ok {
			c.logger.Debug().Msg("camera optics bound")
		} else {
			c.logger.Info().Msg("camera optics missing, frustum projection paused")
		}
	}
	return optics, ok
}

func (c *Controller) currentBoundary() (BoundaryRectangle, bool) {
	var b BoundaryRectangle
	ok := false
	if c.boundary != nil {
		b, ok = c.boundary.Boundary()
	}
	if ok != c.boundaryBound {
		c.boundaryBound = ok
		if ok {
			c.logger.Debug().
				Float32("origin_x", b.Origin.X()).Float32("origin_y", b.Origin.Y()).
				Float32("half_x", b.HalfExtents.X()).Float32("half_y", b.HalfExtents.Y()).
				Msg("boundary bound")
		} else {
			c.logger.Info().Msg("boundary missing, rig is unconstrained")
		}
	}
	return b, ok
}

// EdgePush converts a cursor position into a pan direction: X pushes right,
// Y pushes forward, each in [-1, 1]. The push ramps up across the outer
// threshold fraction of the viewport.
func EdgePush(cursor, viewport mgl32.Vec2, threshold float32) mgl32.Vec2 {
	w, h := viewport.X(), viewport.Y()
	if !(w > 0) || !(h > 0) || !(threshold > 0) {
		return mgl32.Vec2{}
	}
	mx, my := cursor.X(), cursor.Y()

	left := 1 - mathutil.Clamp01(mathutil.NormalizeToRange(mx, 0, w*threshold))
	right := mathutil.Clamp01(mathutil.NormalizeToRange(mx, w*(1-threshold), w))
	up := 1 - mathutil.Clamp01(mathutil.NormalizeToRange(my, 0, h*threshold))
	down := mathutil.Clamp01(mathutil.NormalizeToRange(my, h*(1-threshold), h))

	return mgl32.Vec2{right - left, up - down}
}

func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}
