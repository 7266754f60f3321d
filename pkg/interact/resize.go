package interact

import (
	"strings"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
)

// BeginResize starts resizing id from its handle at pointer (screen space).
// Resizing does not change the selection and is allowed on locked elements.
func (e *Engine) BeginResize(id string, pointer geom.Point) error {
	el, ok := e.store.Get(id)
	if !ok {
		return errors.Unknown(id)
	}
	if e.g != nil {
		e.End()
	}

	g := e.begin(Resizing, id)
	g.pointer = pointer
	g.start[id] = el.Geometry
	g.order = []string{id}
	if el.Type == canvas.Image {
		g.startMeta = map[string]string{canvas.MetaSrc: el.Meta(canvas.MetaSrc)}
	}
	e.started()
	return nil
}

// resizeTo grows or shrinks the element by the pointer delta scaled to
// canvas units. A dimension whose new value would not exceed the size
// floor keeps its previous value. Image placeholders follow the new size
// unless the image holds pasted data.
func (e *Engine) resizeTo(pointer geom.Point) Frame {
	g := e.g
	start := g.start[g.primary]
	d := e.view.ScaleDelta(pointer.Sub(g.pointer))
	width, height := start.Width+d.X, start.Height+d.Y

	var p canvas.Patch
	if width > e.cfg.MinSize {
		p.Width = &width
	}
	if height > e.cfg.MinSize {
		p.Height = &height
	}
	if el, ok := e.store.Get(g.primary); ok && el.Type == canvas.Image {
		if src := el.Meta(canvas.MetaSrc); !strings.HasPrefix(src, "data:") {
			p.Metadata = map[string]string{canvas.MetaSrc: canvas.ImagePlaceholder(width, height)}
		}
	}
	_ = e.store.Update(g.primary, p)
	return e.frame()
}
