package interact

import "github.com/canvasflow/designer/pkg/geom"

// BeginMarquee starts a rubber-band selection at pointer (screen space).
// With additive the band adds to the current selection instead of
// replacing it.
func (e *Engine) BeginMarquee(pointer geom.Point, additive bool) error {
	if e.g != nil {
		e.End()
	}
	g := e.begin(Marquee, "")
	g.pointer = e.view.ToCanvas(pointer)
	g.additive = additive
	g.prevSelection = e.store.SelectedIDs()
	g.band = geom.Rect{Left: g.pointer.X, Top: g.pointer.Y}
	e.started()
	return nil
}

// marqueeTo stretches the band to pointer and selects every element whose
// rectangle intersects it.
func (e *Engine) marqueeTo(pointer geom.Point) Frame {
	g := e.g
	g.band = geom.FromPoints(g.pointer, e.view.ToCanvas(pointer))

	var ids []string
	if g.additive {
		ids = append(ids, g.prevSelection...)
	}
	for _, el := range e.store.Elements() {
		if el.Rect().Intersects(g.band) {
			ids = append(ids, el.ID)
		}
	}
	e.store.SelectMany(ids)
	g.selected = e.store.SelectedIDs()
	return e.frame()
}

// finishMarquee handles a release without movement: a plain click on empty
// canvas clears the selection.
func (e *Engine) finishMarquee() {
	g := e.g
	if g.frames == 0 && !g.additive {
		e.store.ClearSelection()
	}
}
