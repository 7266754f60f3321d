package interact

import (
	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/observability"
)

// BeginDrag starts dragging id from pointer (screen space).
//
// The element is first selected with click semantics (additive toggles).
// The drag is refused when id is unknown, locked, being text-edited, or
// when an additive click just deselected it. Every selected element that is
// not locked moves with the pointer; id is the primary element.
func (e *Engine) BeginDrag(id string, pointer geom.Point, additive bool) error {
	el, ok := e.store.Get(id)
	if !ok {
		return errors.Unknown(id)
	}
	if el.IsLocked {
		return errors.New(errors.ErrCodeLocked, "element %q is locked", id)
	}
	if id == e.editing {
		return errors.New(errors.ErrCodeGestureState, "element %q is being edited", id)
	}
	if e.g != nil {
		e.End()
	}

	e.store.Select(id, additive)
	if !e.store.IsSelected(id) {
		return errors.New(errors.ErrCodeGestureState, "element %q was deselected", id)
	}

	g := e.begin(Dragging, id)
	g.pointer = e.view.ToCanvas(pointer)
	for _, sel := range e.store.Selected() {
		if sel.IsLocked {
			continue
		}
		g.start[sel.ID] = sel.Geometry
		g.order = append(g.order, sel.ID)
	}
	e.started()
	return nil
}

// dragTo moves the primary element by the pointer delta, snapping it when
// it is the only selected element, and moves followers by the raw delta.
func (e *Engine) dragTo(pointer geom.Point) Frame {
	g := e.g
	delta := e.view.ToCanvas(pointer).Sub(g.pointer)

	start := g.start[g.primary]
	candidate := start.Rect()
	candidate.Left += delta.X
	candidate.Top += delta.Y

	e.guides = nil
	if e.store.Selection().Len() == 1 {
		var snaps []geom.Snap
		candidate, snaps = geom.SnapRect(candidate, e.snapTargets(), e.cfg.SnapThreshold)
		for _, s := range snaps {
			e.guides = append(e.guides, Guide{Axis: s.Axis, Line: s.Line})
			observability.Gesture().OnSnap(g.id, s.Axis.String(), s.Line)
		}
	}

	patches := make(map[string]canvas.Patch, len(g.order))
	for _, id := range g.order {
		if id == g.primary {
			patches[id] = canvas.MoveTo(candidate.Left, candidate.Top)
			continue
		}
		s := g.start[id]
		patches[id] = canvas.MoveTo(s.Left+delta.X, s.Top+delta.Y)
	}
	e.store.Apply(patches)

	if len(e.guides) > 0 {
		e.logger.Debug("snapped", "gesture", g.id, "left", candidate.Left, "top", candidate.Top, "guides", len(e.guides))
	}
	return e.frame()
}

// snapTargets returns the rectangles of every unselected element.
func (e *Engine) snapTargets() []geom.Rect {
	var out []geom.Rect
	for _, el := range e.store.Elements() {
		if el.ID == e.g.primary || e.store.IsSelected(el.ID) {
			continue
		}
		out = append(out, el.Rect())
	}
	return out
}
