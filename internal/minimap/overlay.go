package minimap

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"rtscam/internal/rig"
)

// Jumper relocates the camera rig.
type Jumper interface {
	JumpTo(pos mgl32.Vec2)
}

// Overlay caches the view outline for the minimap and turns widget clicks
// into camera jumps. Register OnFrustumUpdated as a frustum listener.
type Overlay struct {
	mapper  Mapper
	jumper  Jumper
	logger  zerolog.Logger
	frustum rig.FrustumProjection
	outline [5]mgl32.Vec2

	hasFrustum bool
	hasOutline bool
	dirty      bool
	scrubbing  bool
}

func NewOverlay(mapper Mapper, jumper Jumper, logger zerolog.Logger) *Overlay {
	return &Overlay{
		mapper: mapper,
		jumper: jumper,
		logger: logger.With().Str("component", "minimap").Logger(),
		dirty:  true,
	}
}

// OnFrustumUpdated rebuilds the outline from a new projection.
func (o *Overlay) OnFrustumUpdated(f rig.FrustumProjection) {
	o.frustum = f
	o.hasFrustum = true
	o.rebuild()
}

// SetMapper changes the widget size or bounds and rebuilds the outline.
func (o *Overlay) SetMapper(m Mapper) {
	if m == o.mapper {
		return
	}
	o.mapper = m
	o.dirty = true
	if o.hasFrustum {
		o.rebuild()
	}
}

func (o *Overlay) Mapper() Mapper {
	return o.mapper
}

// Outline is the closed view polygon in widget space: TL, TR, BR, BL, TL.
func (o *Overlay) Outline() ([5]mgl32.Vec2, bool) {
	return o.outline, o.hasOutline
}

// NeedsRedraw reports whether the outline changed since MarkDrawn.
func (o *Overlay) NeedsRedraw() bool {
	return o.dirty
}

func (o *Overlay) MarkDrawn() {
	o.dirty = false
}

// PointerDown jumps to a click on the widget and starts scrubbing.
// Returns whether the click was consumed.
func (o *Overlay) PointerDown(local mgl32.Vec2) bool {
	if !o.mapper.Contains(local) {
		return false
	}
	o.scrubbing = o.jumpToWidget(local)
	return true
}

// PointerMove keeps jumping while scrubbing. The point is clamped to the widget.
func (o *Overlay) PointerMove(local mgl32.Vec2) {
	if !o.scrubbing {
		return
	}
	size := o.mapper.Size
	clamped := mgl32.Vec2{
		mgl32.Clamp(local.X(), 0, size.X()),
		mgl32.Clamp(local.Y(), 0, size.Y()),
	}
	o.jumpToWidget(clamped)
}

func (o *Overlay) PointerUp() {
	o.scrubbing = false
}

func (o *Overlay) IsScrubbing() bool {
	return o.scrubbing
}

func (o *Overlay) jumpToWidget(local mgl32.Vec2) bool {
	world, ok := o.mapper.WidgetToWorld(local)
	if !ok || o.jumper == nil {
		return false
	}
	o.logger.Debug().Float32("x", world.X()).Float32("y", world.Y()).Msg("minimap jump")
	o.jumper.JumpTo(world)
	return true
}

func (o *Overlay) rebuild() {
	var outline [5]mgl32.Vec2
	for i, corner := range o.frustum.Corners {
		p, ok := o.mapper.WorldToWidget(corner.Vec2())
		if !ok {
			o.hasOutline = false
			o.dirty = true
			return
		}
		outline[i] = p
	}
	outline[4] = outline[0]

	if o.hasOutline && outline == o.outline {
		return
	}
	o.outline = outline
	o.hasOutline = true
	o.dirty = true
}
