// Package layout implements batch geometric operations on the selection:
// aligning centers, distributing with equal gaps, and grouping under a
// backdrop box.
//
// Each operation checks the selection size first. When too few elements
// are selected it returns a DEGENERATE_SELECTION error and leaves the store
// untouched. Widths and heights are never changed.
package layout

import (
	"cmp"
	"slices"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
)

// DefaultGroupPadding is the margin added around a group's bounding box.
const DefaultGroupPadding = 20.0

// GroupClassName is the presentation class of a group backdrop.
const GroupClassName = "bg-white border-2 border-gray-400 rounded-lg"

// Align moves every selected element so its center along axis equals the
// mean center of the selection. Vertical alignment sets tops, horizontal
// alignment sets lefts. It needs at least two selected elements.
func Align(store *canvas.Store, axis geom.Axis) error {
	selected := store.Selected()
	if len(selected) < 2 {
		return errors.Degenerate("align", len(selected), 2)
	}

	var sum float64
	for _, el := range selected {
		sum += el.Rect().Center(axis)
	}
	mean := sum / float64(len(selected))

	patches := make(map[string]canvas.Patch, len(selected))
	for _, el := range selected {
		patches[el.ID] = leadPatch(axis, mean-el.Rect().Size(axis)/2)
	}
	store.Apply(patches)
	return nil
}

// Distribute lays the selected elements out along axis with one fixed gap
// after each element but the last. Elements are ordered by leading edge;
// the first and last keep their positions and every middle element starts
// one gap after the previous element's trailing edge. The gap is the span
// from the first element's leading edge to the last element's trailing
// edge, minus the sizes of every element except the last, divided by
// count-1. The last element's size stays inside that span, so the space in
// front of the last element is generally not equal to the others. The gap
// may be negative. Distribute needs at least three selected elements.
func Distribute(store *canvas.Store, axis geom.Axis) error {
	selected := store.Selected()
	if len(selected) < 3 {
		return errors.Degenerate("distribute", len(selected), 3)
	}

	rects := make([]indexedRect, len(selected))
	for i, el := range selected {
		rects[i] = indexedRect{id: el.ID, rect: el.Rect()}
	}
	slices.SortStableFunc(rects, func(a, b indexedRect) int {
		return cmp.Compare(a.rect.Lead(axis), b.rect.Lead(axis))
	})

	first, last := rects[0].rect, rects[len(rects)-1].rect
	span := last.Lead(axis) + last.Size(axis) - first.Lead(axis)
	occupied := 0.0
	for _, r := range rects[:len(rects)-1] {
		occupied += r.rect.Size(axis)
	}
	gap := (span - occupied) / float64(len(rects)-1)

	patches := make(map[string]canvas.Patch, len(rects)-2)
	pos := first.Lead(axis) + first.Size(axis) + gap
	for _, r := range rects[1 : len(rects)-1] {
		patches[r.id] = leadPatch(axis, pos)
		pos += r.rect.Size(axis) + gap
	}
	store.Apply(patches)
	return nil
}

// Group adds a Box whose rectangle is the selection's bounding box grown by
// padding on every side. The box is stacked one below the lowest selected
// element and becomes the only selection. Grouped elements are not
// reparented; the box is a visual backdrop.
func Group(store *canvas.Store, padding float64) (canvas.Element, error) {
	selected := store.Selected()
	if len(selected) < 2 {
		return canvas.Element{}, errors.Degenerate("group", len(selected), 2)
	}

	rects := make([]geom.Rect, len(selected))
	minZ := selected[0].Geometry.ZIndex
	for i, el := range selected {
		rects[i] = el.Rect()
		minZ = min(minZ, el.Geometry.ZIndex)
	}
	bounds, _ := geom.Union(rects...)
	bounds = bounds.Expand(padding)

	group := store.Add(canvas.Box,
		canvas.At(bounds.Left, bounds.Top),
		canvas.Sized(bounds.Width, bounds.Height),
		canvas.WithZIndex(minZ-1),
		canvas.WithClassName(GroupClassName),
		canvas.WithTag("div"),
		canvas.WithMeta(canvas.MetaName, "Group"),
	)
	return group, nil
}

type indexedRect struct {
	id   string
	rect geom.Rect
}

func leadPatch(axis geom.Axis, pos float64) canvas.Patch {
	if axis == geom.Vertical {
		return canvas.Patch{Top: &pos}
	}
	return canvas.Patch{Left: &pos}
}
