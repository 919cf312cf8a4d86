// Package terrain provides a procedural heightfield that answers ground
// height queries for the camera rig.
package terrain

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"rtscam/internal/config"
	"rtscam/internal/rig"
)

// Heightfield is a deterministic sum of sine octaves over a rectangular area.
// Queries outside the area, or beyond the trace length, miss.
type Heightfield struct {
	Bounds      rig.BoundaryRectangle
	BaseHeight  float32
	Amplitude   float32
	Wavelength  float32
	TraceLength float32

	phases [4]float64
}

// NewHeightfield seeds the octave phases.
func NewHeightfield(bounds rig.BoundaryRectangle, base, amplitude, wavelength, traceLength float32, seed int64) *Heightfield {
	rng := rand.New(rand.NewSource(seed))
	h := &Heightfield{
		Bounds:      bounds,
		BaseHeight:  base,
		Amplitude:   amplitude,
		Wavelength:  wavelength,
		TraceLength: traceLength,
	}
	for i := range h.phases {
		h.phases[i] = rng.Float64() * 2 * math.Pi
	}
	return h
}

// FromConfig builds the sandbox terrain, or nil when disabled. The terrain
// covers the play area plus a margin of one wavelength.
func FromConfig(cfg *config.Config) *Heightfield {
	if !cfg.Terrain.Enabled {
		return nil
	}
	margin := float32(cfg.Terrain.Wavelength)
	bounds := rig.BoundaryRectangle{
		Origin:      mgl32.Vec2{float32(cfg.Boundary.OriginX), float32(cfg.Boundary.OriginY)},
		HalfExtents: mgl32.Vec2{float32(cfg.Boundary.HalfExtentX) + margin, float32(cfg.Boundary.HalfExtentY) + margin},
	}
	return NewHeightfield(bounds,
		float32(cfg.Terrain.BaseHeight),
		float32(cfg.Terrain.Amplitude),
		float32(cfg.Terrain.Wavelength),
		float32(cfg.Rig.GroundTraceLength),
		cfg.Terrain.Seed)
}

// GroundHeight implements rig.GroundHeightQuery.
func (h *Heightfield) GroundHeight(x, y float32) (float32, bool) {
	if !h.Bounds.Contains(mgl32.Vec2{x, y}) {
		return 0, false
	}
	z := h.sample(x, y)
	if h.TraceLength > 0 && float32(math.Abs(float64(z))) > h.TraceLength {
		return 0, false
	}
	return z, true
}

// Shade maps the height at (x, y) into [0, 1] for drawing. Misses shade as 0.
func (h *Heightfield) Shade(x, y float32) float32 {
	z, ok := h.GroundHeight(x, y)
	if !ok || h.Amplitude == 0 {
		return 0
	}
	return mgl32.Clamp((z-h.BaseHeight)/(2*h.Amplitude)+0.5, 0, 1)
}

func (h *Heightfield) sample(x, y float32) float32 {
	if h.Wavelength <= 0 {
		return h.BaseHeight
	}
	k := 2 * math.Pi / float64(h.Wavelength)
	fx, fy := float64(x)*k, float64(y)*k

	v := 0.6*math.Sin(fx+h.phases[0])*math.Cos(fy+h.phases[1]) +
		0.3*math.Sin(2.3*fx+h.phases[2]) +
		0.1*math.Cos(3.7*fy+h.phases[3])
	return h.BaseHeight + h.Amplitude*float32(v)
}
