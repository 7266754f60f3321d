package canvas

import (
	"maps"
	"slices"

	"github.com/canvasflow/designer/pkg/observability"
)

// Selection is a set of element ids. The zero value is an empty selection.
type Selection struct {
	ids map[string]struct{}
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in lexical order.
func (s Selection) IDs() []string {
	return slices.Sorted(maps.Keys(s.ids))
}

// Sole returns the only selected id, or false when the selection does not
// hold exactly one element.
func (s Selection) Sole() (string, bool) {
	if len(s.ids) != 1 {
		return "", false
	}
	for id := range s.ids {
		return id, true
	}
	return "", false
}

func (s Selection) clone() Selection {
	return Selection{ids: maps.Clone(s.ids)}
}

func (s *Selection) add(id string) {
	if s.ids == nil {
		s.ids = map[string]struct{}{}
	}
	s.ids[id] = struct{}{}
}

func (s *Selection) remove(id string) bool {
	if _, ok := s.ids[id]; !ok {
		return false
	}
	delete(s.ids, id)
	return true
}

// =============================================================================
// Store Selection API
// =============================================================================

// Selection returns a copy of the current selection.
func (s *Store) Selection() Selection {
	return s.selection.clone()
}

// IsSelected reports whether id is currently selected.
func (s *Store) IsSelected(id string) bool {
	return s.selection.Contains(id)
}

// Select applies click semantics to id.
//
// Without additive the selection collapses to exactly id, unless id already
// is the only selected element (then nothing changes). With additive the
// id is toggled in or out. Unknown ids are ignored. Select reports whether
// the selection changed.
func (s *Store) Select(id string, additive bool) bool {
	if _, ok := s.index[id]; !ok {
		return false
	}
	if !additive {
		if sole, ok := s.selection.Sole(); ok && sole == id {
			return false
		}
		s.selection = Selection{}
		s.selection.add(id)
		s.selectionChanged()
		return true
	}
	if !s.selection.remove(id) {
		s.selection.add(id)
	}
	s.selectionChanged()
	return true
}

// SelectMany replaces the selection with the live subset of ids.
func (s *Store) SelectMany(ids []string) {
	next := Selection{}
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			next.add(id)
		}
	}
	s.selection = next
	s.selectionChanged()
}

// ClearSelection empties the selection, as a click on empty canvas does.
func (s *Store) ClearSelection() {
	if s.selection.Len() == 0 {
		return
	}
	s.selection = Selection{}
	s.selectionChanged()
}

// Selected returns the selected elements in insertion order.
func (s *Store) Selected() []Element {
	var out []Element
	for _, el := range s.elements {
		if s.selection.Contains(el.ID) {
			out = append(out, el)
		}
	}
	return out
}

// SelectedIDs returns the selected ids in insertion order.
func (s *Store) SelectedIDs() []string {
	var out []string
	for _, el := range s.elements {
		if s.selection.Contains(el.ID) {
			out = append(out, el.ID)
		}
	}
	return out
}

func (s *Store) selectionChanged() {
	observability.Store().OnSelectionChange(s.SelectedIDs())
}
