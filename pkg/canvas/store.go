package canvas

import (
	"strconv"
	"strings"

	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/observability"
)

// Default position of an element added without [At].
const (
	DefaultLeft = 50.0
	DefaultTop  = 50.0
)

// idPrefix is prepended to the counter value to form element ids.
const idPrefix = "el-"

// Store is the authoritative element collection of one canvas.
//
// Mutations never modify a slice previously returned by [Store.Elements];
// each one builds a new slice. Elements are kept in insertion order, which
// is unrelated to paint order (see [Geometry.ZIndex]).
type Store struct {
	elements  []Element
	index     map[string]int
	counter   int
	selection Selection
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{index: map[string]int{}}
}

// FormatID returns the element id for a counter value.
func FormatID(n int) string {
	return idPrefix + strconv.Itoa(n)
}

// ParseID returns the counter value encoded in id.
func ParseID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Add creates an element of type t with the type's preset applied, then
// opts. It receives the next id, is stacked on top of every existing
// element unless [WithZIndex] is given, and becomes the only selected
// element.
func (s *Store) Add(t Type, opts ...Option) Element {
	d := newDraft(t, opts)
	el := d.el
	el.ID = FormatID(s.counter)
	el.IsLocked = false
	if !d.stacked {
		el.Geometry.ZIndex = len(s.elements) + 1
	}
	s.counter++

	next := make([]Element, len(s.elements), len(s.elements)+1)
	copy(next, s.elements)
	s.setElements(append(next, el))

	observability.Store().OnAdd(el.ID, string(el.Type))

	s.selection = Selection{}
	s.selection.add(el.ID)
	s.selectionChanged()
	return el
}

// AddScreen creates a screen frame of the given size, named after it.
func (s *Store) AddScreen(width, height float64, opts ...Option) Element {
	name := ScreenName(width, height)
	base := []Option{Sized(width, height), WithMeta(MetaName, name), WithMeta(MetaScreenName, name)}
	return s.Add(Screen, append(base, opts...)...)
}

// Get returns the element with the given id.
func (s *Store) Get(id string) (Element, bool) {
	i, ok := s.index[id]
	if !ok {
		return Element{}, false
	}
	return s.elements[i], true
}

// Has reports whether id is a live element.
func (s *Store) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Elements returns all elements in insertion order. The slice must be
// treated as read-only.
func (s *Store) Elements() []Element { return s.elements }

// Len returns the number of elements.
func (s *Store) Len() int { return len(s.elements) }

// Counter returns the value the next id will be built from.
func (s *Store) Counter() int { return s.counter }

// Update merges p into the element with the given id. An unknown id leaves
// the store unchanged and returns an INVALID_REFERENCE error, which callers
// running delayed work may safely ignore.
func (s *Store) Update(id string, p Patch) error {
	if s.Apply(map[string]Patch{id: p}) == 0 {
		return errors.Unknown(id)
	}
	return nil
}

// Apply merges every patch into its element in one write and returns how
// many elements were patched. Unknown ids are skipped.
func (s *Store) Apply(patches map[string]Patch) int {
	if len(patches) == 0 {
		return 0
	}
	var next []Element
	var ids []string
	for i, el := range s.elements {
		p, ok := patches[el.ID]
		if !ok {
			continue
		}
		if next == nil {
			next = make([]Element, len(s.elements))
			copy(next, s.elements)
		}
		next[i] = p.apply(el)
		ids = append(ids, el.ID)
	}
	if next == nil {
		return 0
	}
	s.elements = next
	observability.Store().OnUpdate(ids)
	return len(ids)
}

// Remove deletes the elements with the given ids and prunes them from the
// selection. It returns the number removed; repeating a removal is a no-op.
func (s *Store) Remove(ids ...string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			drop[id] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}

	next := make([]Element, 0, len(s.elements)-len(drop))
	var removed []string
	for _, el := range s.elements {
		if drop[el.ID] {
			removed = append(removed, el.ID)
			continue
		}
		next = append(next, el)
	}
	s.setElements(next)

	pruned := false
	for _, id := range removed {
		if s.selection.remove(id) {
			pruned = true
		}
	}
	observability.Store().OnRemove(removed)
	if pruned {
		s.selectionChanged()
	}
	return len(removed)
}

// RemoveSelected deletes every selected element that is not locked.
// Locked elements stay on the canvas and stay selected.
func (s *Store) RemoveSelected() int {
	var ids []string
	for _, el := range s.Selected() {
		if !el.IsLocked {
			ids = append(ids, el.ID)
		}
	}
	return s.Remove(ids...)
}

// Clear removes every element, resets the id counter and empties the
// selection.
func (s *Store) Clear() {
	n := len(s.elements)
	s.setElements(nil)
	s.counter = 0
	observability.Store().OnClear(n)
	s.dropSelection()
}

// Restore replaces the store contents with elements, as loaded from
// persistence. Elements without an id get a fresh one; later duplicates of
// an id are dropped. The counter becomes the larger of counter and one past
// the highest restored id, so new ids never collide with restored ones.
// The selection is emptied.
func (s *Store) Restore(elements []Element, counter int) {
	if counter < 0 {
		counter = 0
	}
	for _, el := range elements {
		if n, ok := ParseID(el.ID); ok && n >= counter {
			counter = n + 1
		}
	}

	next := make([]Element, 0, len(elements))
	seen := make(map[string]bool, len(elements))
	for _, el := range elements {
		el = el.Clone()
		if el.ID == "" {
			el.ID = FormatID(counter)
			counter++
		}
		if seen[el.ID] {
			continue
		}
		seen[el.ID] = true
		if el.Type == "" {
			el.Type = Box
		}
		next = append(next, el)
	}

	s.setElements(next)
	s.counter = counter
	for _, el := range next {
		observability.Store().OnAdd(el.ID, string(el.Type))
	}
	s.dropSelection()
}

// dropSelection empties the selection, reporting the change if anything
// was selected.
func (s *Store) dropSelection() {
	had := s.selection.Len() > 0
	s.selection = Selection{}
	if had {
		s.selectionChanged()
	}
}

// setElements installs a new slice and rebuilds the id index.
func (s *Store) setElements(elements []Element) {
	s.elements = elements
	s.index = make(map[string]int, len(elements))
	for i, el := range elements {
		s.index[el.ID] = i
	}
}
