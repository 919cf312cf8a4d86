// Package minimap maps between world space and a minimap widget and keeps
// the projected view outline in widget coordinates.
package minimap

import (
	"github.com/go-gl/mathgl/mgl32"

	"rtscam/internal/rig"
)

// Mapper converts between world XY and widget-local pixels. North (+X) is up
// in the widget and east (+Y) is to the right.
type Mapper struct {
	Bounds rig.BoundaryRectangle
	Size   mgl32.Vec2
}

func NewMapper(bounds rig.BoundaryRectangle, size mgl32.Vec2) Mapper {
	return Mapper{Bounds: bounds, Size: size}
}

// Valid reports whether the mapping is invertible.
func (m Mapper) Valid() bool {
	return !m.Bounds.Degenerate() && m.Size.X() > 0 && m.Size.Y() > 0
}

// WorldToWidget returns the widget position of a world point. Points outside
// the bounds map outside the widget.
func (m Mapper) WorldToWidget(world mgl32.Vec2) (mgl32.Vec2, bool) {
	if !m.Valid() {
		return mgl32.Vec2{}, false
	}
	lo := m.Bounds.Min()
	ext := m.Bounds.HalfExtents.Mul(2)
	normX := (world.X() - lo.X()) / ext.X()
	normY := (world.Y() - lo.Y()) / ext.Y()
	return mgl32.Vec2{normY * m.Size.X(), (1 - normX) * m.Size.Y()}, true
}

// WidgetToWorld is the inverse of WorldToWidget.
func (m Mapper) WidgetToWorld(widget mgl32.Vec2) (mgl32.Vec2, bool) {
	if !m.Valid() {
		return mgl32.Vec2{}, false
	}
	lo := m.Bounds.Min()
	ext := m.Bounds.HalfExtents.Mul(2)
	normX := 1 - widget.Y()/m.Size.Y()
	normY := widget.X() / m.Size.X()
	return mgl32.Vec2{lo.X() + normX*ext.X(), lo.Y() + normY*ext.Y()}, true
}

// Contains reports whether a widget-local point is on the widget.
func (m Mapper) Contains(widget mgl32.Vec2) bool {
	return widget.X() >= 0 && widget.Y() >= 0 && widget.X() < m.Size.X() && widget.Y() < m.Size.Y()
}
