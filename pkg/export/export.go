package export

import (
	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/layers"
)

// DefaultMargin is the blank border around the exported elements.
const DefaultMargin = 20.0

// Option configures a render.
type Option func(*renderer)

type renderer struct {
	margin    float64
	scale     float64
	guides    []Guide
	selected  map[string]bool
	hideNames bool
}

// Guide is an alignment line to draw across the picture.
type Guide struct {
	Axis geom.Axis
	Line float64
}

// WithMargin sets the blank border in canvas units.
func WithMargin(m float64) Option {
	return func(r *renderer) {
		if m >= 0 {
			r.margin = m
		}
	}
}

// WithGuides draws alignment guides at the given canvas lines.
func WithGuides(guides ...Guide) Option {
	return func(r *renderer) { r.guides = append(r.guides, guides...) }
}

// WithSelection outlines the elements with the given ids.
func WithSelection(ids ...string) Option {
	return func(r *renderer) {
		for _, id := range ids {
			r.selected[id] = true
		}
	}
}

// WithScale multiplies the raster size. Only PNG output uses it.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithoutNames omits element labels.
func WithoutNames() Option {
	return func(r *renderer) { r.hideNames = true }
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{margin: DefaultMargin, scale: 1, selected: map[string]bool{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Bounds returns the smallest rectangle covering every element. It reports
// false for an empty canvas.
func Bounds(elements []canvas.Element) (geom.Rect, bool) {
	rects := make([]geom.Rect, len(elements))
	for i, el := range elements {
		rects[i] = el.Rect()
	}
	return geom.Union(rects...)
}

// frame is the picture area in canvas units.
func (r *renderer) frame(elements []canvas.Element) geom.Rect {
	b, ok := Bounds(elements)
	if !ok {
		b = geom.Rect{}
	}
	return b.Expand(r.margin)
}

// block is one element ready to draw, in picture coordinates.
type block struct {
	el       canvas.Element
	x, y     float64
	w, h     float64
	label    string
	selected bool
	palette  palette
}

func (r *renderer) blocks(elements []canvas.Element, frame geom.Rect) []block {
	ordered := layers.PaintOrder(elements)
	out := make([]block, len(ordered))
	for i, el := range ordered {
		out[i] = block{
			el:       el,
			x:        el.Geometry.Left - frame.Left,
			y:        el.Geometry.Top - frame.Top,
			w:        el.Geometry.Width,
			h:        el.Geometry.Height,
			label:    layers.DisplayName(el),
			selected: r.selected[el.ID],
			palette:  paletteFor(el.Type),
		}
	}
	return out
}

// =============================================================================
// Palette
// =============================================================================

type palette struct {
	Fill   string
	Stroke string
	Text   string
}

const (
	selectionColor = "#3b82f6"
	guideColor     = "#ec4899"
)

func paletteFor(t canvas.Type) palette {
	switch t {
	case canvas.Button:
		return palette{Fill: "#3b82f6", Stroke: "#2563eb", Text: "#ffffff"}
	case canvas.Title, canvas.Text:
		return palette{Fill: "none", Stroke: "#d1d5db", Text: "#1f2937"}
	case canvas.Image:
		return palette{Fill: "#d1d5db", Stroke: "#9ca3af", Text: "#374151"}
	case canvas.Screen:
		return palette{Fill: "#ffffff", Stroke: "#9ca3af", Text: "#6b7280"}
	default:
		return palette{Fill: "#ffffff", Stroke: "#9ca3af", Text: "#374151"}
	}
}
