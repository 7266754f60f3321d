package canvas

import (
	"fmt"
	"math"

	"github.com/canvasflow/designer/pkg/geom"
)

// Zoom bounds applied by [Viewport.SetZoom].
const (
	MinZoom     = 0.2
	MaxZoom     = 3.0
	DefaultZoom = 1.0
)

// Viewport maps between screen space and canvas space.
//
// Canvas coordinates are screen coordinates relative to Origin, divided by
// the zoom factor. The zero value is unusable; construct with [NewViewport].
type Viewport struct {
	// Origin is the screen position of the canvas's (0, 0).
	Origin geom.Point

	zoom     float64
	min, max float64
}

// NewViewport returns a viewport at zoom 1 with the default bounds.
func NewViewport() *Viewport {
	return &Viewport{zoom: DefaultZoom, min: MinZoom, max: MaxZoom}
}

// NewViewportWithBounds returns a viewport clamping zoom to [lo, hi].
// Invalid bounds fall back to the defaults.
func NewViewportWithBounds(lo, hi float64) *Viewport {
	if lo <= 0 || hi < lo {
		lo, hi = MinZoom, MaxZoom
	}
	v := &Viewport{min: lo, max: hi}
	v.SetZoom(DefaultZoom)
	return v
}

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom }

// SetZoom sets the zoom factor clamped to the viewport bounds and returns
// the value actually applied. NaN is ignored.
func (v *Viewport) SetZoom(z float64) float64 {
	if math.IsNaN(z) {
		return v.zoom
	}
	v.zoom = math.Max(v.min, math.Min(z, v.max))
	return v.zoom
}

// ZoomBy multiplies the zoom by factor, as a zoom button or wheel step does.
func (v *Viewport) ZoomBy(factor float64) float64 {
	return v.SetZoom(v.zoom * factor)
}

// ToCanvas converts a screen point to canvas coordinates.
func (v *Viewport) ToCanvas(p geom.Point) geom.Point {
	return p.Sub(v.Origin).Scale(1 / v.zoom)
}

// ToScreen converts a canvas point to screen coordinates.
func (v *Viewport) ToScreen(p geom.Point) geom.Point {
	return p.Scale(v.zoom).Add(v.Origin)
}

// ScaleDelta converts a screen-space distance to canvas units.
func (v *Viewport) ScaleDelta(d geom.Point) geom.Point {
	return d.Scale(1 / v.zoom)
}

// Percent formats the zoom as a whole percentage, e.g. "150%".
func (v *Viewport) Percent() string {
	return fmt.Sprintf("%d%%", int(math.Round(v.zoom*100)))
}
