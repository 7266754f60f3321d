// Package layers derives paint order and layer lists from element stacking
// indexes, and renumbers them when the user reorders layers.
//
// Paint order is ascending [canvas.Geometry.ZIndex]; ties keep insertion
// order. Layer lists shown to the user run front-to-back, the reverse of
// paint order.
package layers

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
)

// PaintOrder returns elements sorted back-to-front.
func PaintOrder(elements []canvas.Element) []canvas.Element {
	out := slices.Clone(elements)
	slices.SortStableFunc(out, func(a, b canvas.Element) int {
		return cmp.Compare(a.Geometry.ZIndex, b.Geometry.ZIndex)
	})
	return out
}

// List returns elements sorted front-to-back.
func List(elements []canvas.Element) []canvas.Element {
	out := PaintOrder(elements)
	slices.Reverse(out)
	return out
}

// Reorder renumbers every element from a front-to-back id ordering: the
// element at position i gets zIndex total-i. Live elements missing from
// order keep their relative stacking and go behind the listed ones.
// Duplicates after the first occurrence are ignored, and so are ids that
// name no live element; those are returned.
func Reorder(store *canvas.Store, order []string) (unknown []string) {
	seen := make(map[string]bool, store.Len())
	full := make([]string, 0, store.Len())
	for _, id := range order {
		if !store.Has(id) {
			unknown = append(unknown, id)
			continue
		}
		if !seen[id] {
			seen[id] = true
			full = append(full, id)
		}
	}
	for _, el := range List(store.Elements()) {
		if !seen[el.ID] {
			full = append(full, el.ID)
		}
	}

	total := len(full)
	patches := make(map[string]canvas.Patch, total)
	for i, id := range full {
		patches[id] = canvas.SetZ(total - i)
	}
	store.Apply(patches)
	return unknown
}

// FrontToBack returns the ids of a store in layer list order.
func FrontToBack(store *canvas.Store) []string {
	list := List(store.Elements())
	ids := make([]string, len(list))
	for i, el := range list {
		ids[i] = el.ID
	}
	return ids
}

// BringToFront moves id to the top of the stack.
func BringToFront(store *canvas.Store, id string) error {
	return Move(store, id, -store.Len())
}

// SendToBack moves id to the bottom of the stack.
func SendToBack(store *canvas.Store, id string) error {
	return Move(store, id, store.Len())
}

// Move shifts id by delta positions in the front-to-back list; negative
// values move it toward the front. The position is clamped to the list.
func Move(store *canvas.Store, id string, delta int) error {
	ids := FrontToBack(store)
	from := slices.Index(ids, id)
	if from < 0 {
		return errors.Unknown(id)
	}
	to := max(0, min(len(ids)-1, from+delta))
	ids = slices.Delete(ids, from, from+1)
	ids = slices.Insert(ids, to, id)
	Reorder(store, ids)
	return nil
}

// Colliding returns the sole selected element together with every element
// whose rectangle overlaps it, front-to-back. It reports false when the
// selection does not hold exactly one element.
func Colliding(store *canvas.Store) ([]canvas.Element, bool) {
	id, ok := store.Selection().Sole()
	if !ok {
		return nil, false
	}
	selected, _ := store.Get(id)
	r := selected.Rect()

	var out []canvas.Element
	for _, el := range store.Elements() {
		if el.ID == id || el.Rect().Intersects(r) {
			out = append(out, el)
		}
	}
	return List(out), true
}

// =============================================================================
// Layer List Entries
// =============================================================================

// Entry is one row of a layer list.
type Entry struct {
	// Index is the element's position in paint order across the whole
	// canvas, 0 for the backmost element.
	Index    int
	ID       string
	Name     string
	Type     canvas.Type
	ZIndex   int
	Selected bool
	Locked   bool
}

// Label returns the row text, e.g. "Layer 2: Title".
func (e Entry) Label() string {
	return fmt.Sprintf("Layer %d: %s", e.Index, e.Name)
}

// Entries builds front-to-back layer rows for shown, numbering them by
// their position in the full store's paint order.
func Entries(store *canvas.Store, shown []canvas.Element) []Entry {
	index := make(map[string]int, store.Len())
	for i, el := range PaintOrder(store.Elements()) {
		index[el.ID] = i
	}

	list := List(shown)
	out := make([]Entry, 0, len(list))
	for _, el := range list {
		out = append(out, Entry{
			Index:    index[el.ID],
			ID:       el.ID,
			Name:     DisplayName(el),
			Type:     el.Type,
			ZIndex:   el.Geometry.ZIndex,
			Selected: store.IsSelected(el.ID),
			Locked:   el.IsLocked,
		})
	}
	return out
}

// DisplayName returns the name shown in layer lists. An explicit name wins
// unless it is an automatic truncation, which is recomputed from the
// current content. Textual elements fall back to their content, others to
// their screen name or type.
func DisplayName(el canvas.Element) string {
	name := el.Meta(canvas.MetaName)
	if name != "" && !strings.HasSuffix(name, "...") {
		return name
	}
	if el.Type.IsTextual() {
		return canvas.AutoName(el.Type, el.Content)
	}
	if screen := el.Meta(canvas.MetaScreenName); screen != "" {
		return screen
	}
	return string(el.Type)
}
